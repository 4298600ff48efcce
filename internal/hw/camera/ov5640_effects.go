package camera

import (
	"fmt"

	"github.com/cjeanneret/ov5640/internal/debug"
	"github.com/cjeanneret/ov5640/internal/logic/regseq"
)

// Effects holds the four fields that share the special digital effects
// control register (SDE_CTRL8). Each field is owned by one setter and
// reflects the last value passed to it; none is read back from hardware.
type Effects struct {
	Brightness byte
	Saturation byte
	Contrast   byte
	Hue        byte
}

// DefaultEffects returns the power-on held state.
func DefaultEffects() Effects {
	return Effects{Brightness: 0x01, Saturation: 0x41, Contrast: 0x41, Hue: 0x32}
}

// Control combines the four fields into the SDE_CTRL8 byte.
func (e Effects) Control() byte {
	return e.Brightness | e.Saturation | e.Contrast | e.Hue
}

// Effects returns the held special digital effect state.
func (c *OV5640) Effects() Effects { return c.effects }

const (
	minLevel   = -4
	maxLevel   = 4
	minHueStep = -6
	maxHueStep = 5
)

var (
	brightnessLevels = [9]byte{0x40, 0x30, 0x20, 0x10, 0x00, 0x10, 0x20, 0x30, 0x40}
	saturationLevels = [9]byte{0x00, 0x10, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70, 0x80}
	contrastLevels   = [9]byte{0x10, 0x14, 0x18, 0x1C, 0x20, 0x24, 0x28, 0x2C, 0x30}

	hueCtrl1 = [12]byte{0x80, 0x6F, 0x40, 0x00, 0x40, 0x6F, 0x80, 0x6F, 0x40, 0x00, 0x40, 0x6F}
	hueCtrl2 = [12]byte{0x00, 0x40, 0x6F, 0x80, 0x6F, 0x40, 0x00, 0x40, 0x6F, 0x80, 0x6F, 0x40}
	hueCtrl8 = [12]byte{0x32, 0x32, 0x32, 0x02, 0x02, 0x02, 0x01, 0x01, 0x01, 0x31, 0x31, 0x31}
)

func checkLevel(kind string, level int) error {
	if level < minLevel || level > maxLevel {
		return fmt.Errorf("%w: %s level %d (want %d..%d)", ErrUnsupported, kind, level, minLevel, maxLevel)
	}
	return nil
}

// writeEffects writes the setter-specific table then the combined
// control byte.
func (c *OV5640) writeEffects(kind string, t regseq.Table) error {
	if err := c.regs.Apply(t); err != nil {
		return fmt.Errorf("set %s: %w", kind, err)
	}
	if err := c.regs.Write(regSDECtrl8, c.effects.Control()); err != nil {
		return fmt.Errorf("set %s: %w", kind, err)
	}
	return nil
}

// SetBrightness sets the brightness level (-4..4).
func (c *OV5640) SetBrightness(level int) error {
	if err := checkLevel("brightness", level); err != nil {
		return err
	}
	c.effects.Brightness = 0x09
	if level < 0 {
		c.effects.Brightness = 0x01
	}
	debug.Setting("brightness", level)
	return c.writeEffects("brightness", regseq.Table{
		{Addr: regISPControl01, Val: 0xFF},
		{Addr: regSDECtrl7, Val: brightnessLevels[level-minLevel]},
		{Addr: regSDECtrl0, Val: 0x07},
	})
}

// SetSaturation sets the saturation level (-4..4).
func (c *OV5640) SetSaturation(level int) error {
	if err := checkLevel("saturation", level); err != nil {
		return err
	}
	c.effects.Saturation = 0x41
	v := saturationLevels[level-minLevel]
	debug.Setting("saturation", level)
	return c.writeEffects("saturation", regseq.Table{
		{Addr: regISPControl01, Val: 0xFF},
		{Addr: regSDECtrl3, Val: v},
		{Addr: regSDECtrl4, Val: v},
		{Addr: regSDECtrl0, Val: 0x07},
	})
}

// SetContrast sets the contrast level (-4..4).
func (c *OV5640) SetContrast(level int) error {
	if err := checkLevel("contrast", level); err != nil {
		return err
	}
	c.effects.Contrast = 0x41
	v := contrastLevels[level-minLevel]
	debug.Setting("contrast", level)
	return c.writeEffects("contrast", regseq.Table{
		{Addr: regISPControl01, Val: 0xFF},
		{Addr: regSDECtrl0, Val: 0x07},
		{Addr: regSDECtrl6, Val: v},
		{Addr: regSDECtrl5, Val: v},
	})
}

// SetHueDegree rotates hue by step*30 degrees, step in -6..5.
func (c *OV5640) SetHueDegree(step int) error {
	if step < minHueStep || step > maxHueStep {
		return fmt.Errorf("%w: hue step %d (want %d..%d)", ErrUnsupported, step, minHueStep, maxHueStep)
	}
	i := step - minHueStep
	c.effects.Hue = hueCtrl8[i]
	debug.Setting("hue", fmt.Sprintf("%d°", step*30))
	return c.writeEffects("hue", regseq.Table{
		{Addr: regISPControl01, Val: 0xFF},
		{Addr: regSDECtrl0, Val: 0x07},
		{Addr: regSDECtrl1, Val: hueCtrl1[i]},
		{Addr: regSDECtrl2, Val: hueCtrl2[i]},
	})
}

// awb gains per light mode: manual flag, R MSB/LSB, G MSB/LSB, B MSB/LSB.
var lightModeGains = map[LightMode][7]byte{
	LightAuto:   {0x00, 0x04, 0x00, 0x04, 0x00, 0x04, 0x00},
	LightSunny:  {0x01, 0x06, 0x1C, 0x04, 0x00, 0x04, 0xF3},
	LightOffice: {0x01, 0x05, 0x48, 0x04, 0x00, 0x07, 0xCF},
	LightHome:   {0x01, 0x04, 0x10, 0x04, 0x00, 0x08, 0xB6},
	LightCloudy: {0x01, 0x06, 0x48, 0x04, 0x00, 0x04, 0xD3},
}

// SetLightMode selects automatic white balance or a fixed preset.
func (c *OV5640) SetLightMode(m LightMode) error {
	g, ok := lightModeGains[m]
	if !ok {
		return fmt.Errorf("%w: light mode %v", ErrUnsupported, m)
	}
	t := regseq.Table{
		{Addr: regAWBManual, Val: 0x00},
		{Addr: regAWBCtrl16, Val: 0x46},
		{Addr: regAWBCtrl17, Val: 0xF8},
		{Addr: regAWBCtrl18, Val: 0x04},
		{Addr: regAWBManual, Val: g[0]},
		{Addr: regAWBRGainMSB, Val: g[1]},
		{Addr: regAWBRGainLSB, Val: g[2]},
		{Addr: regAWBGGainMSB, Val: g[3]},
		{Addr: regAWBGGainLSB, Val: g[4]},
		{Addr: regAWBBGainMSB, Val: g[5]},
		{Addr: regAWBBGainLSB, Val: g[6]},
	}
	if err := c.regs.Apply(t); err != nil {
		return fmt.Errorf("set light mode %v: %w", m, err)
	}
	debug.Setting("light mode", m)
	return nil
}

var colorEffectTables = map[ColorEffect]regseq.Table{
	EffectBlue:     {{Addr: regISPControl01, Val: 0xFF}, {Addr: regSDECtrl0, Val: 0x1F}, {Addr: regSDECtrl3, Val: 0xA0}, {Addr: regSDECtrl4, Val: 0x40}},
	EffectRed:      {{Addr: regISPControl01, Val: 0xFF}, {Addr: regSDECtrl0, Val: 0x1F}, {Addr: regSDECtrl3, Val: 0x80}, {Addr: regSDECtrl4, Val: 0xC0}},
	EffectGreen:    {{Addr: regISPControl01, Val: 0xFF}, {Addr: regSDECtrl0, Val: 0x18}, {Addr: regSDECtrl3, Val: 0x60}, {Addr: regSDECtrl4, Val: 0x60}},
	EffectBW:       {{Addr: regISPControl01, Val: 0xFF}, {Addr: regSDECtrl0, Val: 0x1F}, {Addr: regSDECtrl3, Val: 0x80}, {Addr: regSDECtrl4, Val: 0x80}},
	EffectSepia:    {{Addr: regISPControl01, Val: 0xFF}, {Addr: regSDECtrl0, Val: 0x1F}, {Addr: regSDECtrl3, Val: 0x40}, {Addr: regSDECtrl4, Val: 0xA0}},
	EffectNegative: {{Addr: regISPControl01, Val: 0xFF}, {Addr: regSDECtrl0, Val: 0x47}},
	EffectNone:     {{Addr: regISPControl01, Val: 0x7F}, {Addr: regSDECtrl0, Val: 0x07}},
}

// SetColorEffect applies a special digital effect.
func (c *OV5640) SetColorEffect(e ColorEffect) error {
	t, ok := colorEffectTables[e]
	if !ok {
		return fmt.Errorf("%w: color effect %v", ErrUnsupported, e)
	}
	if err := c.regs.Apply(t); err != nil {
		return fmt.Errorf("set color effect %v: %w", e, err)
	}
	debug.Setting("color effect", e)
	return nil
}

// SetMirrorFlip sets the sensor readout orientation.
func (c *OV5640) SetMirrorFlip(m MirrorFlip) error {
	if m < MirrorFlipNone || m > MirrorAndFlip {
		return fmt.Errorf("%w: mirror/flip %v", ErrUnsupported, m)
	}
	tc20, err := c.regs.Read(regTimingTC20)
	if err != nil {
		return fmt.Errorf("set mirror/flip: %w", err)
	}
	tc21, err := c.regs.Read(regTimingTC21)
	if err != nil {
		return fmt.Errorf("set mirror/flip: %w", err)
	}
	tc20 &= 0xF9
	tc21 &= 0xF9
	if m == Flip || m == MirrorAndFlip {
		tc20 |= 0x06
	}
	if m == Mirror || m == MirrorAndFlip {
		tc21 |= 0x06
	}
	if err := c.regs.Apply(regseq.Table{{Addr: regTimingTC20, Val: tc20}, {Addr: regTimingTC21, Val: tc21}}); err != nil {
		return fmt.Errorf("set mirror/flip: %w", err)
	}
	debug.Setting("mirror/flip", m)
	return nil
}

// SetZoom sets the digital zoom. Above x1 the scaler value is adjusted for
// the current output resolution, which must be one of the standard ones.
func (c *OV5640) SetZoom(z Zoom) error {
	if !z.valid() {
		return fmt.Errorf("%w: zoom %v", ErrUnsupported, z)
	}
	var t regseq.Table
	if z == ZoomX1 {
		t = regseq.Table{{Addr: regScaleCtrl0, Val: 0x10}}
	} else {
		res, err := c.GetResolution()
		if err != nil {
			return fmt.Errorf("set zoom: %w", err)
		}
		v := byte(z)
		switch res {
		case R320x240, R480x272:
			v >>= 1
		case R640x480:
			v >>= 2
		}
		t = regseq.Table{{Addr: regScaleCtrl0, Val: 0x00}, {Addr: regScaleCtrl1, Val: v}}
	}
	if err := c.regs.Apply(t); err != nil {
		return fmt.Errorf("set zoom %v: %w", z, err)
	}
	debug.Setting("zoom", z)
	return nil
}

// night mode: auto frame rate 15 fps down to 3.75 fps, 24 MHz in / 24 MHz PCLK.
var nightModeTable = regseq.Table{
	{Addr: regPLLCtrl4, Val: 0x00},
	{Addr: regPLLCtrl5, Val: 0x00},
	{Addr: regAECCtrl00, Val: 0x7C},
	{Addr: regAECB50StepHigh, Val: 0x01},
	{Addr: regAECB50StepLow, Val: 0x27},
	{Addr: regAECB60StepHigh, Val: 0x00},
	{Addr: regAECB60StepLow, Val: 0xF6},
	{Addr: regAECCtrl0D, Val: 0x04},
	{Addr: regAECCtrl0E, Val: 0x04},
	{Addr: regAECCtrl02, Val: 0x0B},
	{Addr: regAECCtrl03, Val: 0x88},
	{Addr: regAECMaxExpoHigh, Val: 0x0B},
	{Addr: regAECMaxExpoLow, Val: 0x88},
}

// SetNightMode enables the low-light auto frame rate or clears its enable bit.
func (c *OV5640) SetNightMode(enable bool) error {
	var err error
	if enable {
		err = c.regs.Apply(nightModeTable)
	} else {
		err = c.regs.Update(regAECCtrl00, func(v byte) byte { return v &^ 0x04 })
	}
	if err != nil {
		return fmt.Errorf("set night mode: %w", err)
	}
	debug.Setting("night mode", enable)
	return nil
}

// SetColorbar enables or disables the built-in color bar test pattern.
func (c *OV5640) SetColorbar(mode Colorbar) error {
	var t regseq.Table
	switch mode {
	case ColorbarEnabled:
		t = regseq.Table{{Addr: regSDECtrl4, Val: 0x40}, {Addr: regPreISPTest1, Val: 0x80}}
	case ColorbarGradualV:
		t = regseq.Table{{Addr: regSDECtrl4, Val: 0x40}, {Addr: regPreISPTest1, Val: 0x8C}}
	case ColorbarDisabled:
		t = regseq.Table{{Addr: regSDECtrl4, Val: 0x10}, {Addr: regPreISPTest1, Val: 0x00}}
	default:
		return fmt.Errorf("%w: colorbar %v", ErrUnsupported, mode)
	}
	if err := c.regs.Apply(t); err != nil {
		return fmt.Errorf("set colorbar: %w", err)
	}
	debug.Setting("colorbar", mode)
	return nil
}

// SetEmbeddedSync switches to CCIR656 embedded synchronization with the
// given codes and raises the clip limits so sync codes are not clipped.
func (c *OV5640) SetEmbeddedSync(codes SyncCodes) error {
	t := regseq.Table{
		{Addr: regCCIR656Ctrl00, Val: 0x83},
		{Addr: regCCIR656FS, Val: codes.FrameStart},
		{Addr: regCCIR656FE, Val: codes.FrameEnd},
		{Addr: regCCIR656LS, Val: codes.LineStart},
		{Addr: regCCIR656LE, Val: codes.LineEnd},
		{Addr: regCCIR656Dummy, Val: 0x01},
		{Addr: 0x4302, Val: 0x02},
		{Addr: 0x4306, Val: 0x02},
		{Addr: 0x430A, Val: 0x02},
	}
	if err := c.regs.Apply(t); err != nil {
		return fmt.Errorf("set embedded sync: %w", err)
	}
	debug.Setting("embedded sync", fmt.Sprintf("%+v", codes))
	return nil
}
