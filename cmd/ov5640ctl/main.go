package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/cjeanneret/ov5640/internal/config"
	"github.com/cjeanneret/ov5640/internal/debug"
	"github.com/cjeanneret/ov5640/internal/hw/camera"
	"github.com/cjeanneret/ov5640/internal/hw/gpio"
	"github.com/cjeanneret/ov5640/internal/hw/power"
	"github.com/cjeanneret/ov5640/internal/hw/sccb"
	"github.com/cjeanneret/ov5640/internal/logic/bringup"
	"github.com/cjeanneret/ov5640/internal/logic/regseq"
	"github.com/cjeanneret/ov5640/internal/web"
)

func main() {
	// CLI flags
	webPort := &webPortFlag{defaultPort: 8080}
	flag.Var(webPort, "web", "start web server on port; -web= for default 8080, -web 8980 for custom port")
	cfgPath := flag.String("config", filepath.Join("configs", "default.yaml"), "path to config file")
	resolution := flag.String("resolution", "", "override sensor resolution (e.g. 640x480)")
	pixelFormat := flag.String("pixel_format", "", "override pixel format (rgb565, rgb888, yuv422, y8, jpeg)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Load configuration
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	// Validate CLI overrides (empty means "use config value")
	if err := validateCLIOverrides(*resolution, *pixelFormat); err != nil {
		log.Fatalf("invalid CLI override: %v", err)
	}
	if err := applyOverrides(cfg, *resolution, *pixelFormat); err != nil {
		log.Fatalf("invalid CLI override: %v", err)
	}

	// Initialize debug system
	debug.Init(cfg.Defaults.DebugLevel)
	debug.Section("Initialization")
	debug.Value("Config path", *cfgPath)
	debug.Value("Debug level", cfg.Defaults.DebugLevel)

	// Initialize GPIO driver
	debug.Value("Mock GPIO", cfg.Power.MockGPIO)
	gpioDriver, err := gpio.NewDriver(cfg.Power.MockGPIO)
	if err != nil {
		log.Fatalf("init GPIO failed: %v", err)
	}
	defer func() {
		if err := gpioDriver.Close(); err != nil {
			log.Printf("closing GPIO driver failed: %v", err)
		}
	}()

	clock := regseq.NewSystemClock()
	pwr, err := newPowerFromConfig(gpioDriver, clock, cfg)
	if err != nil {
		log.Fatalf("init power lines failed: %v", err)
	}

	// Initialize sensor
	cam := camera.NewOV5640(newBusFromConfig(cfg), clock, cfg.Interface(), byte(cfg.Sensor.VirtualChannel))
	defer func() {
		if err := cam.Close(); err != nil {
			log.Printf("closing sensor failed: %v", err)
		}
	}()
	debug.Value("Bus type", cfg.Bus.Type)
	debug.Value("Interface", cfg.Interface())

	seq := bringup.NewSequence(cam, pwr)

	if port := webPort.port(); port > 0 {
		webAddr := fmt.Sprintf(":%d", port)
		broadcaster := web.NewStatusBroadcaster()
		debug.SetOutput(io.MultiWriter(os.Stdout, web.BroadcastWriter(broadcaster)))

		if err := seq.Run(ctx, bringup.ParamsFromConfig(cfg)); err != nil {
			log.Fatalf("bring-up failed: %v", err)
		}
		defer shutdown(seq)

		srv := web.NewServer(webAddr, broadcaster, cam, cfg, seq.ApplyProfile, focusFunc(seq, cfg))
		if err := srv.Run(ctx); err != nil {
			log.Printf("web server: %v", err)
		}
		return
	}

	{
		// Bring the sensor up once and leave it streaming
		if err := seq.Run(ctx, bringup.ParamsFromConfig(cfg)); err != nil {
			log.Fatalf("bring-up failed: %v", err)
		}
		debug.Summary("Sensor streaming")
		debug.Value("Resolution", cfg.Resolution())
		debug.Value("Pixel format", cfg.PixelFormat())
	}
}

func shutdown(seq *bringup.Sequence) {
	if err := seq.Shutdown(); err != nil {
		log.Printf("shutdown failed: %v", err)
	}
}

// newBusFromConfig selects the SCCB transport. The mock bus is wrapped in
// the sensor simulator so bring-up succeeds on a PC.
func newBusFromConfig(cfg *config.Config) sccb.Bus {
	switch cfg.Bus.Type {
	case "i2c":
		return sccb.NewI2CBus(cfg.Bus.Name, cfg.Bus.Address, cfg.OpenTimeout())
	default:
		return camera.Simulate(sccb.NewMockBus())
	}
}

// newPowerFromConfig returns nil when neither control line is wired.
func newPowerFromConfig(g gpio.Driver, clock regseq.Clock, cfg *config.Config) (bringup.Power, error) {
	pc := powerConfig(cfg.Power)
	if pc.PwdnPin == power.NoPin && pc.ResetPin == power.NoPin {
		debug.Info("No power lines wired, sensor assumed powered")
		return nil, nil
	}
	seq, err := power.NewSequencer(g, clock, pc)
	if err != nil {
		return nil, err
	}
	return seq, nil
}

// powerConfig maps the configured BCM pins to the sequencer wiring. Pin 0
// in the config file means the line is not wired.
func powerConfig(pc config.PowerConfig) power.Config {
	pin := func(p int) int {
		if p == 0 {
			return power.NoPin
		}
		return p
	}
	return power.Config{
		PwdnPin:  pin(pc.PwdnPin),
		ResetPin: pin(pc.ResetPin),
		SettleMs: uint32(pc.SettleMs),
	}
}

// focusFunc runs an autofocus command from the web API. The AF firmware is
// uploaded on first use unless bring-up already booted it.
func focusFunc(seq *bringup.Sequence, cfg *config.Config) web.FocusFunc {
	booted := firmwareBooted(cfg)
	return func(mode string) error {
		if err := seq.Focus(mode, !booted); err != nil {
			return err
		}
		booted = true
		return nil
	}
}

// firmwareBooted reports whether bring-up with cfg leaves the AF firmware
// running: general init boots it, and so does any configured autofocus.
func firmwareBooted(cfg *config.Config) bool {
	return cfg.Sensor.InitMode == config.InitGeneral || cfg.Sensor.Autofocus != config.AutofocusNone
}

// validateCLIOverrides checks that non-empty CLI overrides name a known value.
// Empty values are ignored (they mean "use config value").
func validateCLIOverrides(resolution, pixelFormat string) error {
	if resolution != "" {
		if _, err := camera.ParseResolution(resolution); err != nil {
			return fmt.Errorf("resolution: %w", err)
		}
	}
	if pixelFormat != "" {
		if _, err := camera.ParsePixelFormat(pixelFormat); err != nil {
			return fmt.Errorf("pixel_format: %w", err)
		}
	}
	return nil
}

// applyOverrides mutates cfg with the non-empty overrides and re-validates
// it, since a resolution valid on its own may not fit the init mode.
func applyOverrides(cfg *config.Config, resolution, pixelFormat string) error {
	if resolution != "" {
		cfg.Sensor.Resolution = resolution
	}
	if pixelFormat != "" {
		cfg.Sensor.PixelFormat = pixelFormat
	}
	return cfg.Validate()
}

// webPortFlag implements flag.Value for -web: 0 = disabled, -web= or -web 8080 → 8080, -web 8980 → 8980.
type webPortFlag struct {
	val         int
	defaultPort int
}

func (w *webPortFlag) String() string {
	if w.val == 0 {
		return "0"
	}
	return strconv.Itoa(w.val)
}

func (w *webPortFlag) Set(s string) error {
	if s == "" {
		w.val = w.defaultPort
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if v <= 0 || v > 65535 {
		return fmt.Errorf("port must be 1-65535, got %d", v)
	}
	w.val = v
	return nil
}

func (w *webPortFlag) port() int { return w.val }
