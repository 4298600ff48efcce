package gpio

import (
	"fmt"

	"github.com/cjeanneret/ov5640/internal/debug"
	"github.com/stianeikeland/go-rpio/v4"
)

// RPiDriver drives Raspberry Pi GPIOs through go-rpio.
type RPiDriver struct {
	pins map[int]rpio.Pin
}

// NewRPiDriver memory-maps the GPIO block.
// Requires /dev/gpiomem access or root.
func NewRPiDriver() (*RPiDriver, error) {
	debug.Info("Initializing real GPIO driver (go-rpio)")

	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("open GPIO: %w (are you running on a Raspberry Pi?)", err)
	}
	return &RPiDriver{pins: make(map[int]rpio.Pin)}, nil
}

func (r *RPiDriver) SetupPin(pin int, mode PinMode) error {
	debug.Pin("SetupPin", pin, mode)

	p := rpio.Pin(pin)
	switch mode {
	case Input:
		p.Input()
	case Output:
		p.Output()
	default:
		return fmt.Errorf("unknown pin mode: %d", mode)
	}
	r.pins[pin] = p
	return nil
}

func (r *RPiDriver) pin(n int, mode PinMode) (rpio.Pin, error) {
	if p, ok := r.pins[n]; ok {
		return p, nil
	}
	if err := r.SetupPin(n, mode); err != nil {
		return 0, err
	}
	return r.pins[n], nil
}

// WritePin drives pin to level, configuring it as an output on first use.
func (r *RPiDriver) WritePin(pin int, level Level) error {
	debug.Pin("WritePin", pin, level)
	p, err := r.pin(pin, Output)
	if err != nil {
		return err
	}
	if level == High {
		p.High()
	} else {
		p.Low()
	}
	return nil
}

// ReadPin samples pin, configuring it as an input on first use.
func (r *RPiDriver) ReadPin(pin int) (Level, error) {
	p, err := r.pin(pin, Input)
	if err != nil {
		return Low, err
	}
	l := Level(p.Read() == rpio.High)
	debug.Pin("ReadPin", pin, l)
	return l, nil
}

// Close returns every used pin to input and unmaps the GPIO block.
func (r *RPiDriver) Close() error {
	debug.Trace("GPIO Close (real driver)")
	for pin, p := range r.pins {
		debug.Verbose("Resetting pin %d to input", pin)
		p.Input()
	}
	return rpio.Close()
}
