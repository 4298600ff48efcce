// Package power sequences the sensor's PWDN and RESETB control lines.
//
// Power-up: PWDN to LOW (leave power-down), RESETB held LOW, settle,
// RESETB to HIGH, settle before the first SCCB access.
// Power-down: RESETB to LOW, then PWDN to HIGH.
package power

import (
	"fmt"

	"github.com/cjeanneret/ov5640/internal/debug"
	"github.com/cjeanneret/ov5640/internal/hw/gpio"
	"github.com/cjeanneret/ov5640/internal/logic/regseq"
)

// NoPin marks a control line that is not wired to a GPIO (e.g. PWDN tied
// to ground on the module).
const NoPin = -1

// Config describes the wiring of the control lines.
type Config struct {
	PwdnPin  int
	ResetPin int
	SettleMs uint32 // wait after each RESETB edge
}

// Sequencer drives the control lines.
type Sequencer struct {
	gpio  gpio.Driver
	clock regseq.Clock
	cfg   Config
	on    bool
}

// NewSequencer configures the wired pins as outputs and holds the sensor
// powered down.
func NewSequencer(g gpio.Driver, clock regseq.Clock, cfg Config) (*Sequencer, error) {
	s := &Sequencer{gpio: g, clock: clock, cfg: cfg}
	for _, pin := range []int{cfg.PwdnPin, cfg.ResetPin} {
		if pin == NoPin {
			continue
		}
		if err := g.SetupPin(pin, gpio.Output); err != nil {
			return nil, fmt.Errorf("setup pin %d: %w", pin, err)
		}
	}
	if err := s.hold(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sequencer) write(pin int, level gpio.Level) error {
	if pin == NoPin {
		return nil
	}
	if err := s.gpio.WritePin(pin, level); err != nil {
		return fmt.Errorf("write pin %d: %w", pin, err)
	}
	return nil
}

// hold puts the sensor in reset and power-down.
func (s *Sequencer) hold() error {
	if err := s.write(s.cfg.ResetPin, gpio.Low); err != nil {
		return err
	}
	return s.write(s.cfg.PwdnPin, gpio.High)
}

// PowerUp brings the sensor out of power-down and reset.
func (s *Sequencer) PowerUp() error {
	debug.Verbose("Power up (PWDN=%d, RESETB=%d, settle %d ms)", s.cfg.PwdnPin, s.cfg.ResetPin, s.cfg.SettleMs)
	if err := s.write(s.cfg.PwdnPin, gpio.Low); err != nil {
		return err
	}
	if err := s.write(s.cfg.ResetPin, gpio.Low); err != nil {
		return err
	}
	regseq.Delay(s.clock, s.cfg.SettleMs)
	if err := s.write(s.cfg.ResetPin, gpio.High); err != nil {
		return err
	}
	regseq.Delay(s.clock, s.cfg.SettleMs)
	s.on = true
	debug.Live("Sensor powered up")
	return nil
}

// PowerDown puts the sensor back in reset and power-down.
func (s *Sequencer) PowerDown() error {
	if err := s.hold(); err != nil {
		return err
	}
	s.on = false
	debug.Live("Sensor powered down")
	return nil
}

// On reports whether the last sequence run was PowerUp.
func (s *Sequencer) On() bool { return s.on }
