// Package bringup runs the sensor from power-on to streaming.
package bringup

import (
	"context"
	"fmt"

	"github.com/cjeanneret/ov5640/internal/config"
	"github.com/cjeanneret/ov5640/internal/debug"
	"github.com/cjeanneret/ov5640/internal/hw/camera"
)

// Sensor is the driver surface used by bring-up. *camera.OV5640
// implements it.
type Sensor interface {
	camera.Camera
	CheckID() error
	InitGeneral(res camera.Resolution, pf camera.PixelFormat) error
	SetPCLK(p camera.PCLK) error
	SetColorbar(mode camera.Colorbar) error
	FocusInit() error
	SingleFocus() error
	ContinuousFocus() error
	Start() error
	Stop() error
}

// Power sequences the control lines. Optional.
type Power interface {
	PowerUp() error
	PowerDown() error
}

// Params is one bring-up run.
type Params struct {
	InitMode    string // config.InitStandard or config.InitGeneral
	Resolution  camera.Resolution
	PixelFormat camera.PixelFormat
	PCLK        camera.PCLK
	SetPCLK     bool
	Profile     config.Profile
	Autofocus   string // config.Autofocus*
}

// ParamsFromConfig builds run parameters from a validated configuration.
func ParamsFromConfig(cfg *config.Config) Params {
	p := Params{
		InitMode:    cfg.Sensor.InitMode,
		Resolution:  cfg.Resolution(),
		PixelFormat: cfg.PixelFormat(),
		Profile:     cfg.Tuning.Profile(),
		Autofocus:   cfg.Sensor.Autofocus,
	}
	p.PCLK, p.SetPCLK = cfg.PCLK()
	return p
}

// Sequence drives a sensor through bring-up.
type Sequence struct {
	sensor Sensor
	power  Power

	// OnStep, if set, is called before each step.
	OnStep func(n int, name string)
}

// NewSequence creates a bring-up sequence. power may be nil when the
// control lines are hard-wired.
func NewSequence(s Sensor, power Power) *Sequence {
	return &Sequence{sensor: s, power: power}
}

type step struct {
	name string
	run  func() error
}

// Run powers the sensor, checks its ID, initializes it, applies the
// tuning profile, focuses and starts streaming. The context is checked
// between steps; a step in progress always completes.
func (s *Sequence) Run(ctx context.Context, p Params) error {
	debug.Section("OV5640 bring-up")

	steps := []step{}
	if s.power != nil {
		steps = append(steps, step{"power up", s.power.PowerUp})
	}
	steps = append(steps, step{"check chip ID", s.sensor.CheckID})

	switch p.InitMode {
	case config.InitGeneral:
		steps = append(steps, step{"init (general)", func() error {
			return s.sensor.InitGeneral(p.Resolution, p.PixelFormat)
		}})
	case config.InitStandard, "":
		steps = append(steps, step{"init", func() error {
			return s.sensor.Init(p.Resolution, p.PixelFormat)
		}})
	default:
		return fmt.Errorf("unknown init mode %q", p.InitMode)
	}

	if p.SetPCLK {
		steps = append(steps, step{"pixel clock " + p.PCLK.String(), func() error {
			return s.sensor.SetPCLK(p.PCLK)
		}})
	}
	steps = append(steps, step{"tuning profile", func() error {
		return s.ApplyProfile(p.Profile)
	}})
	if p.Autofocus != "" && p.Autofocus != config.AutofocusNone {
		// general init already boots the AF firmware
		boot := p.InitMode != config.InitGeneral
		steps = append(steps, step{"autofocus " + p.Autofocus, func() error {
			return s.Focus(p.Autofocus, boot)
		}})
	}
	steps = append(steps, step{"start streaming", s.sensor.Start})

	for i, st := range steps {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		debug.Step(i+1, st.name)
		if s.OnStep != nil {
			s.OnStep(i+1, st.name)
		}
		if err := st.run(); err != nil {
			return fmt.Errorf("%s: %w", st.name, err)
		}
	}

	debug.Info("Bring-up complete")
	return nil
}

// ApplyProfile applies every setting of a tuning profile in a fixed order.
// The first failure stops the remaining settings.
func (s *Sequence) ApplyProfile(p config.Profile) error {
	settings := []step{
		{"light mode", func() error { return s.sensor.SetLightMode(p.LightMode) }},
		{"brightness", func() error { return s.sensor.SetBrightness(p.Brightness) }},
		{"contrast", func() error { return s.sensor.SetContrast(p.Contrast) }},
		{"saturation", func() error { return s.sensor.SetSaturation(p.Saturation) }},
		{"hue", func() error { return s.sensor.SetHueDegree(p.HueStep) }},
		{"color effect", func() error { return s.sensor.SetColorEffect(p.ColorEffect) }},
		{"mirror/flip", func() error { return s.sensor.SetMirrorFlip(p.MirrorFlip) }},
		{"zoom", func() error { return s.sensor.SetZoom(p.Zoom) }},
		{"night mode", func() error { return s.sensor.SetNightMode(p.NightMode) }},
		{"colorbar", func() error { return s.sensor.SetColorbar(p.Colorbar) }},
	}
	for _, st := range settings {
		if err := st.run(); err != nil {
			return fmt.Errorf("%s: %w", st.name, err)
		}
	}
	return nil
}

// Focus runs one autofocus command. With boot set, the AF firmware is
// uploaded first.
func (s *Sequence) Focus(mode string, boot bool) error {
	if boot {
		if err := s.sensor.FocusInit(); err != nil {
			return err
		}
	}
	switch mode {
	case config.AutofocusSingle:
		return s.sensor.SingleFocus()
	case config.AutofocusContinuous:
		return s.sensor.ContinuousFocus()
	}
	return fmt.Errorf("unknown autofocus mode %q", mode)
}

// Shutdown stops streaming and powers the sensor down. Every step runs;
// the first error is returned.
func (s *Sequence) Shutdown() error {
	debug.Section("OV5640 shutdown")
	var first error
	keep := func(err error) {
		if err != nil && first == nil {
			first = err
		}
	}
	keep(s.sensor.Stop())
	keep(s.sensor.DeInit())
	if s.power != nil {
		keep(s.power.PowerDown())
	}
	return first
}
