package camera

// OV5640 register map (subset used by the driver).
const (
	regSystemReset00   uint16 = 0x3000
	regSystemReset02   uint16 = 0x3002
	regClockEnable02   uint16 = 0x3006
	regSystemCtrl0     uint16 = 0x3008
	regChipIDHigh      uint16 = 0x300A
	regChipIDLow       uint16 = 0x300B
	regMIPIControl00   uint16 = 0x300E
	regPadOutputEn01   uint16 = 0x3017
	regPadOutputEn02   uint16 = 0x3018
	regPadOutputVal00  uint16 = 0x3019
	regPadSelect01     uint16 = 0x301D
	regPadSelect02     uint16 = 0x301E
	regPLLCtrl0        uint16 = 0x3034
	regPLLCtrl1        uint16 = 0x3035
	regPLLCtrl2        uint16 = 0x3036
	regPLLCtrl3        uint16 = 0x3037
	regPLLCtrl4        uint16 = 0x3038
	regPLLCtrl5        uint16 = 0x3039
	regSystemRootDiv   uint16 = 0x3108
	regAWBRGainMSB     uint16 = 0x3400
	regAWBRGainLSB     uint16 = 0x3401
	regAWBGGainMSB     uint16 = 0x3402
	regAWBGGainLSB     uint16 = 0x3403
	regAWBBGainMSB     uint16 = 0x3404
	regAWBBGainLSB     uint16 = 0x3405
	regAWBManual       uint16 = 0x3406
	regTimingHS        uint16 = 0x3800 // 0x3800..0x3807 window start/end
	regTimingDVPHOHigh uint16 = 0x3808
	regTimingDVPHOLow  uint16 = 0x3809
	regTimingDVPVOHigh uint16 = 0x380A
	regTimingDVPVOLow  uint16 = 0x380B
	regTimingHOffset   uint16 = 0x3810 // 0x3810..0x3813 offsets
	regTimingTC20      uint16 = 0x3820
	regTimingTC21      uint16 = 0x3821
	regAECCtrl00       uint16 = 0x3A00
	regAECCtrl02       uint16 = 0x3A02
	regAECCtrl03       uint16 = 0x3A03
	regAECB50StepHigh  uint16 = 0x3A08
	regAECB50StepLow   uint16 = 0x3A09
	regAECB60StepHigh  uint16 = 0x3A0A
	regAECB60StepLow   uint16 = 0x3A0B
	regAECCtrl0D       uint16 = 0x3A0D
	regAECCtrl0E       uint16 = 0x3A0E
	regAECMaxExpoHigh  uint16 = 0x3A14
	regAECMaxExpoLow   uint16 = 0x3A15
	regFrameCtrl02     uint16 = 0x4202
	regFormatCtrl00    uint16 = 0x4300
	regCCIR656Ctrl00   uint16 = 0x4730
	regCCIR656FS       uint16 = 0x4732
	regCCIR656FE       uint16 = 0x4733
	regCCIR656LS       uint16 = 0x4734
	regCCIR656LE       uint16 = 0x4735
	regCCIR656Dummy    uint16 = 0x4736
	regPolarityCtrl    uint16 = 0x4740
	regMIPICtrl00      uint16 = 0x4800
	regMIPIVirtualChan uint16 = 0x4814
	regPCLKPeriod      uint16 = 0x4837
	regISPControl01    uint16 = 0x5001
	regFormatMuxCtrl   uint16 = 0x501F
	regAWBCtrl16       uint16 = 0x5190
	regAWBCtrl17       uint16 = 0x5191
	regAWBCtrl18       uint16 = 0x5192
	regPreISPTest1     uint16 = 0x503D
	regCIPSharpenMT1   uint16 = 0x5300
	regCIPSharpenMT2   uint16 = 0x5301
	regCIPSharpenOff1  uint16 = 0x5302
	regCIPSharpenOff2  uint16 = 0x5303
	regCIPCtrl         uint16 = 0x5308
	regCIPSharpenTH1   uint16 = 0x5309
	regCIPSharpenTH2   uint16 = 0x530A
	regCIPSharpenTOff1 uint16 = 0x530B
	regCIPSharpenTOff2 uint16 = 0x530C
	regCMX1            uint16 = 0x5381
	regCMX2            uint16 = 0x5382
	regCMX3            uint16 = 0x5383
	regCMX4            uint16 = 0x5384
	regCMXSignHigh     uint16 = 0x538A
	regCMXSignLow      uint16 = 0x538B
	regSDECtrl0        uint16 = 0x5580
	regSDECtrl1        uint16 = 0x5581
	regSDECtrl2        uint16 = 0x5582
	regSDECtrl3        uint16 = 0x5583
	regSDECtrl4        uint16 = 0x5584
	regSDECtrl5        uint16 = 0x5585
	regSDECtrl6        uint16 = 0x5586
	regSDECtrl7        uint16 = 0x5587
	regSDECtrl8        uint16 = 0x5588
	regScaleCtrl0      uint16 = 0x5600
	regScaleCtrl1      uint16 = 0x5601

	// Autofocus microcontroller.
	regAFCmdMain   uint16 = 0x3022
	regAFCmdAck    uint16 = 0x3023
	regAFStatus    uint16 = 0x3029
	afFirmwareBase uint16 = 0x8000
)

// ChipID is the identifier reported by ReadID.
const ChipID uint16 = 0x5640

// System control values written to 0x3008.
const (
	sysSoftReset byte = 0x80
	sysPowerUp   byte = 0x02
	sysPowerDown byte = 0x42
)
