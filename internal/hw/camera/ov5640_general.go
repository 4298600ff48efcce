package camera

import (
	"fmt"

	"github.com/cjeanneret/ov5640/internal/debug"
	"github.com/cjeanneret/ov5640/internal/logic/regseq"
)

// General mode output offset used for every size.
const (
	generalOffsetX = 4
	generalOffsetY = 0
)

// InitGeneral configures the sensor from the UXGA base settings for any of
// the extended output sizes, then boots the autofocus firmware. Only RGB565
// and JPEG are supported in this mode. It does nothing once the sensor is
// initialized.
func (c *OV5640) InitGeneral(res Resolution, pf PixelFormat) error {
	if c.initialized {
		return nil
	}
	if !res.valid() {
		return fmt.Errorf("%w: resolution %v", ErrUnsupported, res)
	}
	var mode regseq.Table
	switch pf {
	case RGB565:
		mode = rgb565ModeTable
	case JPEG:
		mode = jpegModeTable
	default:
		return fmt.Errorf("%w: pixel format %v in general mode", ErrUnsupported, pf)
	}

	debug.Section("OV5640 init (general mode)")
	debug.Value("resolution", res)
	debug.Value("pixel format", pf)

	if err := c.bus.Init(); err != nil {
		return fmt.Errorf("bus init: %w", err)
	}
	if err := c.regs.Apply(uxgaTable); err != nil {
		return fmt.Errorf("uxga settings: %w", err)
	}
	if err := c.regs.Apply(mode); err != nil {
		return fmt.Errorf("%v mode settings: %w", pf, err)
	}
	w, h := res.Size()
	if err := c.SetOutputSize(generalOffsetX, generalOffsetY, w, h); err != nil {
		return err
	}
	if err := c.SetPolarities(Polarities{PCLK: ActiveHigh, HREF: ActiveHigh, VSYNC: ActiveHigh}); err != nil {
		return err
	}
	if err := c.FocusInit(); err != nil {
		return err
	}

	c.initialized = true
	debug.Info("OV5640 initialized in general mode (%v, %v)", res, pf)
	return nil
}

// SetOutputSize sets the scaled output size and its offset as one grouped
// update.
func (c *OV5640) SetOutputSize(offX, offY, width, height uint16) error {
	t := regseq.Table{
		{Addr: regTimingDVPHOHigh, Val: byte(width >> 8)},
		{Addr: regTimingDVPHOLow, Val: byte(width)},
		{Addr: regTimingDVPVOHigh, Val: byte(height >> 8)},
		{Addr: regTimingDVPVOLow, Val: byte(height)},
		{Addr: regTimingHOffset, Val: byte(offX >> 8)},
		{Addr: regTimingHOffset + 1, Val: byte(offX)},
		{Addr: regTimingHOffset + 2, Val: byte(offY >> 8)},
		{Addr: regTimingHOffset + 3, Val: byte(offY)},
	}
	if err := c.regs.ApplyGroup(t); err != nil {
		return fmt.Errorf("set output size: %w", err)
	}
	debug.Setting("output size", fmt.Sprintf("%dx%d+%d+%d", width, height, offX, offY))
	return nil
}

// SetImageWindow sets the sensor array window as one grouped update.
func (c *OV5640) SetImageWindow(offX, offY, width, height uint16) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("%w: empty image window", ErrUnsupported)
	}
	xend := offX + width - 1
	yend := offY + height - 1
	t := regseq.Table{
		{Addr: regTimingHS, Val: byte(offX >> 8)},
		{Addr: regTimingHS + 1, Val: byte(offX)},
		{Addr: regTimingHS + 2, Val: byte(offY >> 8)},
		{Addr: regTimingHS + 3, Val: byte(offY)},
		{Addr: regTimingHS + 4, Val: byte(xend >> 8)},
		{Addr: regTimingHS + 5, Val: byte(xend)},
		{Addr: regTimingHS + 6, Val: byte(yend >> 8)},
		{Addr: regTimingHS + 7, Val: byte(yend)},
	}
	if err := c.regs.ApplyGroup(t); err != nil {
		return fmt.Errorf("set image window: %w", err)
	}
	debug.Setting("image window", fmt.Sprintf("%dx%d+%d+%d", width, height, offX, offY))
	return nil
}

// color matrix coefficients written in sequence to CMX4, levels -3..3.
var colorSaturationMatrix = [7][6]byte{
	{0x0C, 0x30, 0x3D, 0x3E, 0x3D, 0x01},
	{0x10, 0x3D, 0x4D, 0x4E, 0x4D, 0x01},
	{0x15, 0x52, 0x66, 0x68, 0x66, 0x02},
	{0x1A, 0x66, 0x80, 0x82, 0x80, 0x02},
	{0x1F, 0x7A, 0x9A, 0x9C, 0x9A, 0x02},
	{0x24, 0x8F, 0xB3, 0xB6, 0xB3, 0x03},
	{0x2B, 0xAB, 0xD6, 0xDA, 0xD6, 0x04},
}

// ApplyColorSaturation loads the color matrix for level -3..3 as one
// grouped update.
func (c *OV5640) ApplyColorSaturation(level int) error {
	if level < -3 || level > 3 {
		return fmt.Errorf("%w: color saturation %d (want -3..3)", ErrUnsupported, level)
	}
	t := regseq.Table{{Addr: regCMX1, Val: 0x1C}, {Addr: regCMX2, Val: 0x5A}, {Addr: regCMX3, Val: 0x06}}
	for _, v := range colorSaturationMatrix[level+3] {
		t = append(t, regseq.Entry{Addr: regCMX4, Val: v})
	}
	t = append(t, regseq.Entry{Addr: regCMXSignLow, Val: 0x98}, regseq.Entry{Addr: regCMXSignHigh, Val: 0x01})

	if err := c.regs.ApplyGroup(t); err != nil {
		return fmt.Errorf("apply color saturation: %w", err)
	}
	debug.Setting("color saturation", level)
	return nil
}

// SDE_CTRL5 / SDE_CTRL6 per contrast curve level -3..3.
var contrastCurves = [7][2]byte{
	{0x14, 0x14},
	{0x18, 0x18},
	{0x1C, 0x1C},
	{0x00, 0x20},
	{0x10, 0x24},
	{0x18, 0x28},
	{0x1C, 0x2C},
}

// ApplyContrastCurve sets the contrast curve for level -3..3 as one grouped
// update.
func (c *OV5640) ApplyContrastCurve(level int) error {
	if level < -3 || level > 3 {
		return fmt.Errorf("%w: contrast curve %d (want -3..3)", ErrUnsupported, level)
	}
	v := contrastCurves[level+3]
	if err := c.regs.ApplyGroup(regseq.Table{{Addr: regSDECtrl5, Val: v[0]}, {Addr: regSDECtrl6, Val: v[1]}}); err != nil {
		return fmt.Errorf("apply contrast curve: %w", err)
	}
	debug.Setting("contrast curve", level)
	return nil
}

// SharpnessAuto selects automatic sharpening. Values below it set a manual
// sharpening offset.
const SharpnessAuto = 33

var autoSharpnessTable = regseq.Table{
	{Addr: regCIPCtrl, Val: 0x25},
	{Addr: regCIPSharpenMT1, Val: 0x08},
	{Addr: regCIPSharpenMT2, Val: 0x30},
	{Addr: regCIPSharpenOff1, Val: 0x10},
	{Addr: regCIPSharpenOff2, Val: 0x00},
	{Addr: regCIPSharpenTH1, Val: 0x08},
	{Addr: regCIPSharpenTH2, Val: 0x30},
	{Addr: regCIPSharpenTOff1, Val: 0x04},
	{Addr: regCIPSharpenTOff2, Val: 0x06},
}

// SetSharpness sets a manual sharpening offset (0..32) or, for
// SharpnessAuto and above, automatic sharpening.
func (c *OV5640) SetSharpness(sharp int) error {
	if sharp < 0 || sharp > 0xFF {
		return fmt.Errorf("%w: sharpness %d", ErrUnsupported, sharp)
	}
	t := autoSharpnessTable
	if sharp < SharpnessAuto {
		t = regseq.Table{{Addr: regCIPCtrl, Val: 0x65}, {Addr: regCIPSharpenOff1, Val: byte(sharp)}}
	}
	if err := c.regs.Apply(t); err != nil {
		return fmt.Errorf("set sharpness: %w", err)
	}
	debug.Setting("sharpness", sharp)
	return nil
}
