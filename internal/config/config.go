package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cjeanneret/ov5640/internal/hw/camera"
	"github.com/cjeanneret/ov5640/internal/hw/sccb"
	"gopkg.in/yaml.v3"
)

// BusConfig selects the SCCB transport.
type BusConfig struct {
	Type          string `yaml:"type" json:"type"`                       // "mock" or "i2c"
	Name          string `yaml:"name" json:"name"`                       // periph adapter name, e.g. "/dev/i2c-1" ("" = first)
	Address       uint16 `yaml:"address" json:"address"`                 // 7-bit device address (default 0x3C)
	OpenTimeoutMs int    `yaml:"open_timeout_ms" json:"open_timeout_ms"` // how long to retry opening the adapter
}

// PowerConfig describes the PWDN / RESETB wiring (BCM numbering).
type PowerConfig struct {
	MockGPIO bool `yaml:"mock_gpio" json:"mock_gpio"` // use mock GPIO (true=dev/test, false=real Raspberry Pi)
	PwdnPin  int  `yaml:"pwdn_pin" json:"pwdn_pin"`   // 0 = not wired
	ResetPin int  `yaml:"reset_pin" json:"reset_pin"` // 0 = not wired
	SettleMs int  `yaml:"settle_ms" json:"settle_ms"` // wait after each RESETB edge
}

// SensorConfig selects the output mode applied at bring-up.
type SensorConfig struct {
	Interface      string `yaml:"interface" json:"interface"`             // "dvp" or "mipi"
	VirtualChannel int    `yaml:"virtual_channel" json:"virtual_channel"` // MIPI only, 0-3
	InitMode       string `yaml:"init_mode" json:"init_mode"`             // "standard" or "general"
	Resolution     string `yaml:"resolution" json:"resolution"`           // e.g. "640x480"
	PixelFormat    string `yaml:"pixel_format" json:"pixel_format"`       // e.g. "rgb565"
	PCLK           string `yaml:"pclk" json:"pclk"`                       // e.g. "24mhz" ("" = keep table default)
	Autofocus      string `yaml:"autofocus" json:"autofocus"`             // "none", "single" or "continuous"
}

// TuningConfig is the image tuning profile applied after init.
type TuningConfig struct {
	Brightness  int    `yaml:"brightness" json:"brightness"`     // -4..4
	Contrast    int    `yaml:"contrast" json:"contrast"`         // -4..4
	Saturation  int    `yaml:"saturation" json:"saturation"`     // -4..4
	HueDegree   int    `yaml:"hue_degree" json:"hue_degree"`     // -180..150, multiple of 30
	LightMode   string `yaml:"light_mode" json:"light_mode"`     // auto, sunny, office, home, cloudy
	ColorEffect string `yaml:"color_effect" json:"color_effect"` // none, blue, red, green, bw, sepia, negative
	MirrorFlip  string `yaml:"mirror_flip" json:"mirror_flip"`   // none, flip, mirror, mirror_flip
	Zoom        string `yaml:"zoom" json:"zoom"`                 // x1, x2, x4, x8
	NightMode   bool   `yaml:"night_mode" json:"night_mode"`
	Colorbar    string `yaml:"colorbar" json:"colorbar"` // disabled, enabled, gradual_v
}

// DefaultsConfig contains generic parameters.
type DefaultsConfig struct {
	DebugLevel int `yaml:"debug_level" json:"debug_level"` // debug level 0-4 (0=off, 1=info, 2=live, 3=verbose, 4=trace)
}

// Config aggregates all application configuration.
type Config struct {
	Bus      BusConfig      `yaml:"bus" json:"bus"`
	Power    PowerConfig    `yaml:"power" json:"power"`
	Sensor   SensorConfig   `yaml:"sensor" json:"sensor"`
	Tuning   TuningConfig   `yaml:"tuning" json:"tuning"`
	Defaults DefaultsConfig `yaml:"defaults" json:"defaults"`
}

// Autofocus modes.
const (
	AutofocusNone       = "none"
	AutofocusSingle     = "single"
	AutofocusContinuous = "continuous"
)

// Init modes.
const (
	InitStandard = "standard"
	InitGeneral  = "general"
)

// ValidateConfigPath checks that path is a .yaml file directly inside a
// configs/ directory, after cleaning.
func ValidateConfigPath(path string) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	clean := filepath.Clean(path)
	if strings.Contains(filepath.ToSlash(clean), "../") || strings.HasPrefix(clean, "..") {
		return fmt.Errorf("config path %q escapes the configs directory", path)
	}
	if filepath.Ext(clean) != ".yaml" {
		return fmt.Errorf("config path %q must have a .yaml extension", path)
	}
	if filepath.Base(filepath.Dir(clean)) != "configs" {
		return fmt.Errorf("config path %q must be inside a configs/ directory", path)
	}
	return nil
}

// Load reads a YAML file and returns the configuration with defaults
// applied and every setting validated.
func Load(path string) (*Config, error) {
	if err := ValidateConfigPath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Bus.Type == "" {
		c.Bus.Type = "mock"
	}
	if c.Bus.Address == 0 {
		c.Bus.Address = sccb.DefaultAddress
	}
	if c.Bus.OpenTimeoutMs <= 0 {
		c.Bus.OpenTimeoutMs = 3000
	}
	if c.Power.SettleMs <= 0 {
		c.Power.SettleMs = 20 // RESETB needs >= 20 ms before the first SCCB access
	}
	if c.Sensor.Interface == "" {
		c.Sensor.Interface = "dvp"
	}
	if c.Sensor.InitMode == "" {
		c.Sensor.InitMode = InitStandard
	}
	if c.Sensor.Resolution == "" {
		c.Sensor.Resolution = "640x480"
	}
	if c.Sensor.PixelFormat == "" {
		c.Sensor.PixelFormat = "rgb565"
	}
	if c.Sensor.Autofocus == "" {
		c.Sensor.Autofocus = AutofocusNone
	}
	if c.Tuning.LightMode == "" {
		c.Tuning.LightMode = "auto"
	}
	if c.Tuning.ColorEffect == "" {
		c.Tuning.ColorEffect = "none"
	}
	if c.Tuning.MirrorFlip == "" {
		c.Tuning.MirrorFlip = "none"
	}
	if c.Tuning.Zoom == "" {
		c.Tuning.Zoom = "x1"
	}
	if c.Tuning.Colorbar == "" {
		c.Tuning.Colorbar = "disabled"
	}
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Bus.Type != "mock" && c.Bus.Type != "i2c" {
		return fmt.Errorf("bus.type must be mock or i2c, got %q", c.Bus.Type)
	}
	if c.Bus.Address > 0x7F {
		return fmt.Errorf("bus.address must be a 7-bit address, got 0x%X", c.Bus.Address)
	}
	// 0x00-0x07 and 0x78-0x7F are reserved I2C addresses. 0x78 is also the
	// sensor's 8-bit write address, a common mistake for 0x3C.
	if c.Bus.Address < 0x08 || c.Bus.Address >= 0x78 {
		return fmt.Errorf("bus.address 0x%02X is a reserved I2C address (the OV5640 answers at 0x%02X)", c.Bus.Address, sccb.DefaultAddress)
	}
	if c.Power.PwdnPin < 0 || c.Power.ResetPin < 0 {
		return fmt.Errorf("power pins must be >= 0 (0 = not wired)")
	}
	if c.Power.PwdnPin != 0 && c.Power.PwdnPin == c.Power.ResetPin {
		return fmt.Errorf("power.pwdn_pin and power.reset_pin must differ, both %d", c.Power.PwdnPin)
	}

	iface, err := camera.ParseInterface(c.Sensor.Interface)
	if err != nil {
		return fmt.Errorf("sensor.interface: %w", err)
	}
	if c.Sensor.VirtualChannel < 0 || c.Sensor.VirtualChannel > 3 {
		return fmt.Errorf("sensor.virtual_channel must be 0-3, got %d", c.Sensor.VirtualChannel)
	}
	if c.Sensor.VirtualChannel != 0 && iface != camera.SerialMIPI {
		return fmt.Errorf("sensor.virtual_channel requires the mipi interface")
	}
	res, err := camera.ParseResolution(c.Sensor.Resolution)
	if err != nil {
		return fmt.Errorf("sensor.resolution: %w", err)
	}
	pf, err := camera.ParsePixelFormat(c.Sensor.PixelFormat)
	if err != nil {
		return fmt.Errorf("sensor.pixel_format: %w", err)
	}
	switch c.Sensor.InitMode {
	case InitStandard:
		if !res.Standard() {
			return fmt.Errorf("sensor.resolution %s requires init_mode general", res)
		}
	case InitGeneral:
		if pf != camera.RGB565 && pf != camera.JPEG {
			return fmt.Errorf("sensor.pixel_format %s is not available in init_mode general", pf)
		}
	default:
		return fmt.Errorf("sensor.init_mode must be standard or general, got %q", c.Sensor.InitMode)
	}
	if c.Sensor.PCLK != "" {
		if _, err := camera.ParsePCLK(c.Sensor.PCLK); err != nil {
			return fmt.Errorf("sensor.pclk: %w", err)
		}
	}
	switch c.Sensor.Autofocus {
	case AutofocusNone, AutofocusSingle, AutofocusContinuous:
	default:
		return fmt.Errorf("sensor.autofocus must be none, single or continuous, got %q", c.Sensor.Autofocus)
	}

	for name, v := range map[string]int{
		"brightness": c.Tuning.Brightness,
		"contrast":   c.Tuning.Contrast,
		"saturation": c.Tuning.Saturation,
	} {
		if v < -4 || v > 4 {
			return fmt.Errorf("tuning.%s must be between -4 and 4, got %d", name, v)
		}
	}
	if c.Tuning.HueDegree%30 != 0 || c.Tuning.HueDegree < -180 || c.Tuning.HueDegree > 150 {
		return fmt.Errorf("tuning.hue_degree must be a multiple of 30 in -180..150, got %d", c.Tuning.HueDegree)
	}
	if _, err := camera.ParseLightMode(c.Tuning.LightMode); err != nil {
		return fmt.Errorf("tuning.light_mode: %w", err)
	}
	if _, err := camera.ParseColorEffect(c.Tuning.ColorEffect); err != nil {
		return fmt.Errorf("tuning.color_effect: %w", err)
	}
	if _, err := camera.ParseMirrorFlip(c.Tuning.MirrorFlip); err != nil {
		return fmt.Errorf("tuning.mirror_flip: %w", err)
	}
	zoom, err := camera.ParseZoom(c.Tuning.Zoom)
	if err != nil {
		return fmt.Errorf("tuning.zoom: %w", err)
	}
	// The scaler setting above x1 is only defined for the standard sizes.
	if zoom != camera.ZoomX1 && !res.Standard() {
		return fmt.Errorf("tuning.zoom %s is not available at resolution %s (x1 only)", zoom, res)
	}
	if _, err := camera.ParseColorbar(c.Tuning.Colorbar); err != nil {
		return fmt.Errorf("tuning.colorbar: %w", err)
	}
	if c.Defaults.DebugLevel < 0 || c.Defaults.DebugLevel > 4 {
		return fmt.Errorf("defaults.debug_level must be 0-4, got %d", c.Defaults.DebugLevel)
	}
	return nil
}

// OpenTimeout returns how long opening the I2C adapter is retried.
func (c *Config) OpenTimeout() time.Duration {
	return time.Duration(c.Bus.OpenTimeoutMs) * time.Millisecond
}

// Interface returns the sensor output interface. The config must be valid.
func (c *Config) Interface() camera.Interface {
	v, _ := camera.ParseInterface(c.Sensor.Interface)
	return v
}

// Resolution returns the configured output size.
func (c *Config) Resolution() camera.Resolution {
	v, _ := camera.ParseResolution(c.Sensor.Resolution)
	return v
}

// PixelFormat returns the configured output format.
func (c *Config) PixelFormat() camera.PixelFormat {
	v, _ := camera.ParsePixelFormat(c.Sensor.PixelFormat)
	return v
}

// PCLK returns the configured pixel clock, or false to keep the default.
func (c *Config) PCLK() (camera.PCLK, bool) {
	if c.Sensor.PCLK == "" {
		return 0, false
	}
	v, err := camera.ParsePCLK(c.Sensor.PCLK)
	return v, err == nil
}

// Profile is the typed tuning profile.
type Profile struct {
	Brightness  int
	Contrast    int
	Saturation  int
	HueStep     int // hue rotation in 30 degree steps
	LightMode   camera.LightMode
	ColorEffect camera.ColorEffect
	MirrorFlip  camera.MirrorFlip
	Zoom        camera.Zoom
	NightMode   bool
	Colorbar    camera.Colorbar
}

// Profile converts the tuning section. The config must be valid.
func (t TuningConfig) Profile() Profile {
	p := Profile{
		Brightness: t.Brightness,
		Contrast:   t.Contrast,
		Saturation: t.Saturation,
		HueStep:    t.HueDegree / 30,
		NightMode:  t.NightMode,
	}
	p.LightMode, _ = camera.ParseLightMode(t.LightMode)
	p.ColorEffect, _ = camera.ParseColorEffect(t.ColorEffect)
	p.MirrorFlip, _ = camera.ParseMirrorFlip(t.MirrorFlip)
	p.Zoom, _ = camera.ParseZoom(t.Zoom)
	p.Colorbar, _ = camera.ParseColorbar(t.Colorbar)
	return p
}

// Normalize fills unset tuning enumerations with their defaults and
// validates the section with the same rules as Load.
func (t *TuningConfig) Normalize() error {
	c := Config{Tuning: *t}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return err
	}
	*t = c.Tuning
	return nil
}
