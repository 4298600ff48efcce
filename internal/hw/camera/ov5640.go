package camera

import (
	"fmt"

	"github.com/cjeanneret/ov5640/internal/debug"
	"github.com/cjeanneret/ov5640/internal/hw/sccb"
	"github.com/cjeanneret/ov5640/internal/logic/regseq"
)

// readIDSettleMs is the wait after the soft reset issued by ReadID.
const readIDSettleMs = 500

// pixelFormatSettleMs is the delay after each pixel format register write.
const pixelFormatSettleMs = 1

// OV5640 drives an OmniVision OV5640 over SCCB.
//
// An OV5640 is not safe for concurrent use: the held special digital
// effect fields are updated in place. Callers serialize access.
type OV5640 struct {
	bus   sccb.Bus
	clock regseq.Clock
	regs  *regseq.Player

	iface          Interface
	virtualChannel byte
	initialized    bool
	effects        Effects
}

// NewOV5640 creates a driver for a sensor on bus. iface selects the
// parallel (DVP) or serial (MIPI CSI-2) output, vc is the MIPI virtual
// channel (0-3) and is ignored for DVP.
func NewOV5640(bus sccb.Bus, clock regseq.Clock, iface Interface, vc byte) *OV5640 {
	return &OV5640{
		bus:            bus,
		clock:          clock,
		regs:           regseq.NewPlayer(bus, clock),
		iface:          iface,
		virtualChannel: vc,
		effects:        DefaultEffects(),
	}
}

// Player exposes the register sequencer used by the driver.
func (c *OV5640) Player() *regseq.Player { return c.regs }

// Initialized reports whether Init or InitGeneral has completed.
func (c *OV5640) Initialized() bool { return c.initialized }

// Interface returns the configured output interface.
func (c *OV5640) Interface() Interface { return c.iface }

// Init configures the sensor for a standard resolution and pixel format.
// It does nothing once the sensor is initialized.
func (c *OV5640) Init(res Resolution, pf PixelFormat) error {
	if c.initialized {
		return nil
	}
	if !res.Standard() {
		return fmt.Errorf("%w: resolution %v", ErrUnsupported, res)
	}
	if !pf.valid() {
		return fmt.Errorf("%w: pixel format %v", ErrUnsupported, pf)
	}

	debug.Section("OV5640 init")
	debug.Value("interface", c.iface)
	debug.Value("resolution", res)
	debug.Value("pixel format", pf)

	if err := c.bus.Init(); err != nil {
		return fmt.Errorf("bus init: %w", err)
	}
	if err := c.regs.Apply(commonTable); err != nil {
		return fmt.Errorf("common settings: %w", err)
	}

	if c.iface == SerialMIPI {
		if err := c.EnableMIPIMode(); err != nil {
			return err
		}
		if err := c.SetMIPIVirtualChannel(c.virtualChannel); err != nil {
			return err
		}
	} else if err := c.EnableDVPMode(); err != nil {
		return err
	}

	if err := c.SetResolution(res); err != nil {
		return err
	}
	if err := c.SetPixelFormat(pf); err != nil {
		return err
	}
	if err := c.SetPolarities(Polarities{PCLK: ActiveHigh, HREF: ActiveHigh, VSYNC: ActiveHigh}); err != nil {
		return err
	}

	c.initialized = true
	debug.Info("OV5640 initialized (%v, %v, %v)", c.iface, res, pf)
	return nil
}

// DeInit marks the sensor as uninitialized. The bus stays open.
func (c *OV5640) DeInit() error {
	if c.initialized {
		debug.Live("OV5640 de-initialized")
		c.initialized = false
	}
	return nil
}

// Close de-initializes the sensor and releases the bus.
func (c *OV5640) Close() error {
	_ = c.DeInit()
	return c.bus.DeInit()
}

// ReadID opens the bus, soft-resets the sensor and returns its chip identifier.
func (c *OV5640) ReadID() (uint16, error) {
	if err := c.bus.Init(); err != nil {
		return 0, fmt.Errorf("bus init: %w", err)
	}
	if err := c.regs.Write(regSystemCtrl0, sysSoftReset); err != nil {
		return 0, fmt.Errorf("soft reset: %w", err)
	}
	regseq.Delay(c.clock, readIDSettleMs)

	hi, err := c.regs.Read(regChipIDHigh)
	if err != nil {
		return 0, fmt.Errorf("chip id: %w", err)
	}
	lo, err := c.regs.Read(regChipIDLow)
	if err != nil {
		return 0, fmt.Errorf("chip id: %w", err)
	}
	id := uint16(hi)<<8 | uint16(lo)
	debug.Info("Chip ID: 0x%04X", id)
	return id, nil
}

// CheckID is ReadID followed by a comparison against ChipID.
func (c *OV5640) CheckID() error {
	id, err := c.ReadID()
	if err != nil {
		return err
	}
	if id != ChipID {
		return fmt.Errorf("%w: 0x%04X, want 0x%04X", ErrUnexpectedID, id, ChipID)
	}
	return nil
}

// GetCapabilities reports every tunable as supported.
func (c *OV5640) GetCapabilities() Capabilities {
	return Capabilities{
		Resolution:    true,
		LightMode:     true,
		SpecialEffect: true,
		Brightness:    true,
		Saturation:    true,
		Contrast:      true,
		HueDegree:     true,
		MirrorFlip:    true,
		Zoom:          true,
		NightMode:     true,
	}
}

var resolutionTables = map[Resolution]regseq.Table{}

func init() {
	for r := R160x120; r <= R800x480; r++ {
		w, h := r.Size()
		resolutionTables[r] = regseq.Table{
			{Addr: regTimingDVPHOHigh, Val: byte(w >> 8)},
			{Addr: regTimingDVPHOLow, Val: byte(w)},
			{Addr: regTimingDVPVOHigh, Val: byte(h >> 8)},
			{Addr: regTimingDVPVOLow, Val: byte(h)},
		}
	}
}

// SetResolution programs the DVP output size for one of the five standard
// resolutions.
func (c *OV5640) SetResolution(res Resolution) error {
	if !res.Standard() {
		return fmt.Errorf("%w: resolution %v", ErrUnsupported, res)
	}
	if err := c.regs.Apply(resolutionTables[res]); err != nil {
		return fmt.Errorf("set resolution %v: %w", res, err)
	}
	debug.Setting("resolution", res)
	return nil
}

// GetResolution reads back the output size and maps it to a standard
// resolution.
func (c *OV5640) GetResolution() (Resolution, error) {
	var buf [4]byte
	for i := range buf {
		v, err := c.regs.Read(regTimingDVPHOHigh + uint16(i))
		if err != nil {
			return 0, fmt.Errorf("get resolution: %w", err)
		}
		buf[i] = v
	}
	w := uint16(buf[0])<<8 | uint16(buf[1])
	h := uint16(buf[2])<<8 | uint16(buf[3])

	for r := R160x120; r <= R800x480; r++ {
		rw, rh := r.Size()
		if rw == w && rh == h {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: output size %dx%d", ErrUnknownReadback, w, h)
}

func (p PixelFormat) valid() bool {
	return p >= RGB565 && p <= JPEG
}

// format registers 0x4300 / 0x501F per pixel format.
var pixelFormatTables = map[PixelFormat]regseq.Table{
	RGB565: {{Addr: regFormatCtrl00, Val: 0x6F}, {Addr: regFormatMuxCtrl, Val: 0x01}},
	YUV422: {{Addr: regFormatCtrl00, Val: 0x30}, {Addr: regFormatMuxCtrl, Val: 0x00}},
	RGB888: {{Addr: regFormatCtrl00, Val: 0x23}, {Addr: regFormatMuxCtrl, Val: 0x01}},
	Y8:     {{Addr: regFormatCtrl00, Val: 0x10}, {Addr: regFormatMuxCtrl, Val: 0x00}},
	JPEG:   {{Addr: regFormatCtrl00, Val: 0x30}, {Addr: regFormatMuxCtrl, Val: 0x00}},
}

type regUpdate struct {
	reg uint16
	fn  func(byte) byte
}

// JPEG mode: compression bit in 0x3821, JPEG blocks out of reset in 0x3002
// (bits 4..2) and their clocks on in 0x3006 (bits 5 and 3).
var (
	jpegEnable = []regUpdate{
		{regTimingTC21, func(v byte) byte { return v | jpegTC21Bit }},
		{regSystemReset02, func(v byte) byte { return v &^ jpegResetBits }},
		{regClockEnable02, func(v byte) byte { return v | jpegClockBits }},
	}
	jpegDisable = []regUpdate{
		{regTimingTC21, func(v byte) byte { return v &^ jpegTC21Bit }},
		{regSystemReset02, func(v byte) byte { return v | jpegResetBits }},
		{regClockEnable02, func(v byte) byte { return v &^ jpegClockBits }},
	}
)

const (
	jpegTC21Bit   byte = 1 << 5
	jpegResetBits byte = 1<<4 | 1<<3 | 1<<2
	jpegClockBits byte = 1<<5 | 1<<3
)

// SetPixelFormat selects the output encoding. JPEG additionally enables
// the compression engine and its clocks; any other format turns them back
// off when a previous JPEG selection left them on.
func (c *OV5640) SetPixelFormat(pf PixelFormat) error {
	if !pf.valid() {
		return fmt.Errorf("%w: pixel format %v", ErrUnsupported, pf)
	}
	if err := c.regs.ApplySettled(pixelFormatTables[pf], pixelFormatSettleMs); err != nil {
		return fmt.Errorf("set pixel format %v: %w", pf, err)
	}

	steps := jpegEnable
	if pf != JPEG {
		tc21, err := c.regs.Read(regTimingTC21)
		if err != nil {
			return fmt.Errorf("set pixel format %v: %w", pf, err)
		}
		if tc21&jpegTC21Bit == 0 {
			steps = nil
		} else {
			steps = jpegDisable
		}
	}
	for _, s := range steps {
		if err := c.regs.Update(s.reg, s.fn); err != nil {
			return fmt.Errorf("set pixel format %v: jpeg mode: %w", pf, err)
		}
	}
	debug.Setting("pixel format", pf)
	return nil
}

// GetPixelFormat reads back the format registers. YUV422 and JPEG share
// format settings and are told apart by the JPEG enable bit in 0x3821.
func (c *OV5640) GetPixelFormat() (PixelFormat, error) {
	ctrl, err := c.regs.Read(regFormatCtrl00)
	if err != nil {
		return 0, fmt.Errorf("get pixel format: %w", err)
	}
	mux, err := c.regs.Read(regFormatMuxCtrl)
	if err != nil {
		return 0, fmt.Errorf("get pixel format: %w", err)
	}

	switch {
	case ctrl == 0x6F && mux == 0x01:
		return RGB565, nil
	case ctrl == 0x23 && mux == 0x01:
		return RGB888, nil
	case ctrl == 0x10 && mux == 0x00:
		return Y8, nil
	case ctrl == 0x30 && mux == 0x00:
		tc21, err := c.regs.Read(regTimingTC21)
		if err != nil {
			return 0, fmt.Errorf("get pixel format: %w", err)
		}
		if tc21&jpegTC21Bit != 0 {
			return JPEG, nil
		}
		return YUV422, nil
	}
	return 0, fmt.Errorf("%w: format 0x%02X mux 0x%02X", ErrUnknownReadback, ctrl, mux)
}

func (p Polarity) valid() bool { return p == ActiveLow || p == ActiveHigh }

// SetPolarities sets the PCLK, HREF and VSYNC polarities.
func (c *OV5640) SetPolarities(p Polarities) error {
	if !p.PCLK.valid() || !p.HREF.valid() || !p.VSYNC.valid() {
		return fmt.Errorf("%w: polarities %+v", ErrUnsupported, p)
	}
	v := byte(p.PCLK)<<5 | byte(p.HREF)<<1 | byte(p.VSYNC)
	if err := c.regs.Write(regPolarityCtrl, v); err != nil {
		return fmt.Errorf("set polarities: %w", err)
	}
	debug.Setting("polarities", fmt.Sprintf("0x%02X", v))
	return nil
}

// GetPolarities reads back the PCLK, HREF and VSYNC polarities.
func (c *OV5640) GetPolarities() (Polarities, error) {
	v, err := c.regs.Read(regPolarityCtrl)
	if err != nil {
		return Polarities{}, fmt.Errorf("get polarities: %w", err)
	}
	return Polarities{
		PCLK:  Polarity(v >> 5 & 0x01),
		HREF:  Polarity(v >> 1 & 0x01),
		VSYNC: Polarity(v & 0x01),
	}, nil
}

var dvpTable = regseq.Table{
	{Addr: regPadOutputEn01, Val: 0xFF},
	{Addr: regPadOutputEn02, Val: 0xF3},
	{Addr: 0x302E, Val: 0x00},
	{Addr: 0x471C, Val: 0x50},
	{Addr: regMIPIControl00, Val: 0x58},
	{Addr: regPLLCtrl0, Val: 0x18},
	{Addr: regPLLCtrl1, Val: 0x41},
	{Addr: regPLLCtrl2, Val: 0x60},
	{Addr: regPLLCtrl3, Val: 0x13},
	{Addr: regSystemRootDiv, Val: 0x01},
}

var padDisableTable = regseq.Table{
	{Addr: regPadOutputEn01, Val: 0x00},
	{Addr: regPadOutputEn02, Val: 0x00},
	{Addr: regPadSelect01, Val: 0x00},
	{Addr: regPadSelect02, Val: 0x00},
}

var mipiTable = regseq.Table{
	{Addr: regPadOutputEn01, Val: 0x00},
	{Addr: regPadOutputEn02, Val: 0x00},
	{Addr: 0x302E, Val: 0x08},
	{Addr: regPCLKPeriod, Val: 0x23},
	{Addr: regPLLCtrl0, Val: 0x18},
	{Addr: regPLLCtrl1, Val: 0x12},
	{Addr: regPLLCtrl2, Val: 0x1C},
	{Addr: regPLLCtrl3, Val: 0x13},
	{Addr: regSystemRootDiv, Val: 0x01},
	{Addr: regMIPIVirtualChan, Val: 0x2A},
	{Addr: regMIPICtrl00, Val: 0x24},
	{Addr: regPadOutputVal00, Val: 0x70},
	{Addr: regMIPIControl00, Val: 0x45},
	{Addr: regFrameCtrl02, Val: 0x00},
}

// EnableDVPMode configures the pads and clocks for parallel output.
func (c *OV5640) EnableDVPMode() error {
	if err := c.regs.Apply(dvpTable); err != nil {
		return fmt.Errorf("enable dvp: %w", err)
	}
	debug.Live("DVP mode enabled")
	return nil
}

// DisablePadOutput tri-states the parallel output pads.
func (c *OV5640) DisablePadOutput() error {
	if err := c.regs.Apply(padDisableTable); err != nil {
		return fmt.Errorf("disable pads: %w", err)
	}
	debug.Live("Pad output disabled")
	return nil
}

// EnableMIPIMode configures the sensor for MIPI CSI-2 output.
func (c *OV5640) EnableMIPIMode() error {
	if err := c.regs.Apply(mipiTable); err != nil {
		return fmt.Errorf("enable mipi: %w", err)
	}
	debug.Live("MIPI mode enabled")
	return nil
}

// SetMIPIVirtualChannel sets bits 7:6 of the MIPI control register.
func (c *OV5640) SetMIPIVirtualChannel(vc byte) error {
	if vc > 3 {
		return fmt.Errorf("%w: virtual channel %d", ErrUnsupported, vc)
	}
	err := c.regs.Update(regMIPIVirtualChan, func(v byte) byte {
		return v&^(3<<6) | vc<<6
	})
	if err != nil {
		return fmt.Errorf("set virtual channel: %w", err)
	}
	c.virtualChannel = vc
	debug.Setting("virtual channel", vc)
	return nil
}

var pclkSettings = map[PCLK][2]byte{
	PCLK7M:  {0x38, 0x16},
	PCLK8M:  {0x40, 0x16},
	PCLK9M:  {0x60, 0x18},
	PCLK12M: {0x60, 0x16},
	PCLK24M: {0x60, 0x13},
	PCLK48M: {0x60, 0x03},
}

// SetPCLK programs the PLL multiplier and divider. Both writes must succeed.
func (c *OV5640) SetPCLK(p PCLK) error {
	s, ok := pclkSettings[p]
	if !ok {
		return fmt.Errorf("%w: pclk %v", ErrUnsupported, p)
	}
	if err := c.regs.Write(regPLLCtrl2, s[0]); err != nil {
		return fmt.Errorf("set pclk %v: %w", p, err)
	}
	if err := c.regs.Write(regPLLCtrl3, s[1]); err != nil {
		return fmt.Errorf("set pclk %v: %w", p, err)
	}
	debug.Setting("pclk", p)
	return nil
}

// Start wakes the sensor from software standby.
func (c *OV5640) Start() error {
	if err := c.regs.Write(regSystemCtrl0, sysPowerUp); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	debug.Live("Streaming started")
	return nil
}

// Stop puts the sensor into software standby.
func (c *OV5640) Stop() error {
	if err := c.regs.Write(regSystemCtrl0, sysPowerDown); err != nil {
		return fmt.Errorf("stop: %w", err)
	}
	debug.Live("Streaming stopped")
	return nil
}
