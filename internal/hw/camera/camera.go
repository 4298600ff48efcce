package camera

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupported is returned when an argument is outside the supported
	// set. Nothing is written to the sensor in that case.
	ErrUnsupported = errors.New("camera: unsupported value")

	// ErrUnexpectedID is returned when the chip identifier does not match.
	ErrUnexpectedID = errors.New("camera: unexpected chip id")

	// ErrUnknownReadback is returned when registers hold a combination that
	// maps to no supported setting.
	ErrUnknownReadback = errors.New("camera: register state matches no supported setting")
)

// Camera is the high-level interface used by the rest of the application.
// It represents an abstract image sensor regardless of the bus it sits on.
type Camera interface {
	Init(res Resolution, pf PixelFormat) error
	DeInit() error
	ReadID() (uint16, error)
	GetCapabilities() Capabilities

	SetResolution(res Resolution) error
	GetResolution() (Resolution, error)
	SetPixelFormat(pf PixelFormat) error
	GetPixelFormat() (PixelFormat, error)

	SetLightMode(m LightMode) error
	SetColorEffect(e ColorEffect) error
	SetBrightness(level int) error
	SetSaturation(level int) error
	SetContrast(level int) error
	SetHueDegree(step int) error
	SetMirrorFlip(m MirrorFlip) error
	SetZoom(z Zoom) error
	SetNightMode(enable bool) error
}

// Capabilities lists the tunables a sensor driver supports.
type Capabilities struct {
	Resolution    bool `json:"resolution"`
	LightMode     bool `json:"light_mode"`
	SpecialEffect bool `json:"special_effect"`
	Brightness    bool `json:"brightness"`
	Saturation    bool `json:"saturation"`
	Contrast      bool `json:"contrast"`
	HueDegree     bool `json:"hue_degree"`
	MirrorFlip    bool `json:"mirror_flip"`
	Zoom          bool `json:"zoom"`
	NightMode     bool `json:"night_mode"`
}

// Resolution is an output frame size. The first five values are supported
// by SetResolution; the full list is available in general mode.
type Resolution int

const (
	R160x120 Resolution = iota
	R320x240
	R480x272
	R640x480
	R800x480
	R800x600
	R1024x768
	R1280x800
	R1440x900
	R1280x1024
	R1600x1200
	R1920x1080
	R2048x1536
	R2100x1575
)

var resolutionSizes = [...][2]uint16{
	{160, 120},
	{320, 240},
	{480, 272},
	{640, 480},
	{800, 480},
	{800, 600},
	{1024, 768},
	{1280, 800},
	{1440, 900},
	{1280, 1024},
	{1600, 1200},
	{1920, 1080},
	{2048, 1536},
	{2100, 1575},
}

// Size returns the width and height in pixels.
func (r Resolution) Size() (width, height uint16) {
	if r < 0 || int(r) >= len(resolutionSizes) {
		return 0, 0
	}
	s := resolutionSizes[r]
	return s[0], s[1]
}

// Standard reports whether SetResolution supports r.
func (r Resolution) Standard() bool {
	return r >= R160x120 && r <= R800x480
}

func (r Resolution) valid() bool {
	return r >= R160x120 && r <= R2100x1575
}

func (r Resolution) String() string {
	if !r.valid() {
		return fmt.Sprintf("Resolution(%d)", int(r))
	}
	w, h := r.Size()
	return fmt.Sprintf("%dx%d", w, h)
}

// ParseResolution parses "WIDTHxHEIGHT".
func ParseResolution(s string) (Resolution, error) {
	for r := R160x120; r <= R2100x1575; r++ {
		if strings.EqualFold(s, r.String()) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: resolution %q", ErrUnsupported, s)
}

// PixelFormat is the sensor output encoding.
type PixelFormat int

const (
	RGB565 PixelFormat = iota
	RGB888
	YUV422
	Y8
	JPEG
)

var pixelFormatNames = []string{"rgb565", "rgb888", "yuv422", "y8", "jpeg"}

func (p PixelFormat) String() string { return enumName(pixelFormatNames, int(p), "PixelFormat") }

// ParsePixelFormat parses a lower-case format name such as "rgb565".
func ParsePixelFormat(s string) (PixelFormat, error) {
	i, err := parseEnum(pixelFormatNames, "pixel format", s)
	return PixelFormat(i), err
}

// LightMode selects automatic or a fixed white balance preset.
type LightMode int

const (
	LightAuto LightMode = iota
	LightSunny
	LightOffice
	LightHome
	LightCloudy
)

var lightModeNames = []string{"auto", "sunny", "office", "home", "cloudy"}

func (m LightMode) String() string { return enumName(lightModeNames, int(m), "LightMode") }

func ParseLightMode(s string) (LightMode, error) {
	i, err := parseEnum(lightModeNames, "light mode", s)
	return LightMode(i), err
}

// ColorEffect is a special digital effect applied by the ISP.
type ColorEffect int

const (
	EffectNone ColorEffect = iota
	EffectBlue
	EffectRed
	EffectGreen
	EffectBW
	EffectSepia
	EffectNegative
)

var colorEffectNames = []string{"none", "blue", "red", "green", "bw", "sepia", "negative"}

func (e ColorEffect) String() string { return enumName(colorEffectNames, int(e), "ColorEffect") }

func ParseColorEffect(s string) (ColorEffect, error) {
	i, err := parseEnum(colorEffectNames, "color effect", s)
	return ColorEffect(i), err
}

// MirrorFlip selects image orientation.
type MirrorFlip int

const (
	MirrorFlipNone MirrorFlip = iota
	Flip
	Mirror
	MirrorAndFlip
)

var mirrorFlipNames = []string{"none", "flip", "mirror", "mirror_flip"}

func (m MirrorFlip) String() string { return enumName(mirrorFlipNames, int(m), "MirrorFlip") }

func ParseMirrorFlip(s string) (MirrorFlip, error) {
	i, err := parseEnum(mirrorFlipNames, "mirror/flip", s)
	return MirrorFlip(i), err
}

// Zoom is a digital zoom factor. The values are the scaler settings used
// at full output size.
type Zoom byte

const (
	ZoomX8 Zoom = 0x00
	ZoomX4 Zoom = 0x11
	ZoomX2 Zoom = 0x22
	ZoomX1 Zoom = 0x44
)

func (z Zoom) String() string {
	switch z {
	case ZoomX1:
		return "x1"
	case ZoomX2:
		return "x2"
	case ZoomX4:
		return "x4"
	case ZoomX8:
		return "x8"
	}
	return fmt.Sprintf("Zoom(0x%02X)", byte(z))
}

func (z Zoom) valid() bool {
	return z == ZoomX1 || z == ZoomX2 || z == ZoomX4 || z == ZoomX8
}

func ParseZoom(s string) (Zoom, error) {
	for _, z := range []Zoom{ZoomX1, ZoomX2, ZoomX4, ZoomX8} {
		if strings.EqualFold(s, z.String()) {
			return z, nil
		}
	}
	return 0, fmt.Errorf("%w: zoom %q", ErrUnsupported, s)
}

// Colorbar selects the built-in test pattern.
type Colorbar int

const (
	ColorbarDisabled Colorbar = iota
	ColorbarEnabled
	ColorbarGradualV
)

var colorbarNames = []string{"disabled", "enabled", "gradual_v"}

func (c Colorbar) String() string { return enumName(colorbarNames, int(c), "Colorbar") }

func ParseColorbar(s string) (Colorbar, error) {
	i, err := parseEnum(colorbarNames, "colorbar", s)
	return Colorbar(i), err
}

// PCLK is a pixel clock preset for the DVP interface.
type PCLK int

const (
	PCLK7M PCLK = iota
	PCLK8M
	PCLK9M
	PCLK12M
	PCLK24M
	PCLK48M
)

var pclkNames = []string{"7mhz", "8mhz", "9mhz", "12mhz", "24mhz", "48mhz"}

func (p PCLK) String() string { return enumName(pclkNames, int(p), "PCLK") }

func ParsePCLK(s string) (PCLK, error) {
	i, err := parseEnum(pclkNames, "pclk", s)
	return PCLK(i), err
}

// Polarity of a DVP sync or clock signal.
type Polarity byte

const (
	ActiveLow  Polarity = 0
	ActiveHigh Polarity = 1
)

// Polarities groups the three DVP signal polarities.
type Polarities struct {
	PCLK  Polarity
	HREF  Polarity
	VSYNC Polarity
}

// SyncCodes are the CCIR656 embedded synchronization codes.
type SyncCodes struct {
	FrameStart byte
	FrameEnd   byte
	LineStart  byte
	LineEnd    byte
}

// Interface is the sensor's data output interface.
type Interface int

const (
	ParallelDVP Interface = iota
	SerialMIPI
)

var interfaceNames = []string{"dvp", "mipi"}

func (i Interface) String() string { return enumName(interfaceNames, int(i), "Interface") }

func ParseInterface(s string) (Interface, error) {
	i, err := parseEnum(interfaceNames, "interface", s)
	return Interface(i), err
}

func enumName(names []string, i int, kind string) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("%s(%d)", kind, i)
	}
	return names[i]
}

func parseEnum(names []string, kind, s string) (int, error) {
	for i, n := range names {
		if strings.EqualFold(s, n) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s %q (want one of %s)", ErrUnsupported, kind, s, strings.Join(names, ", "))
}
