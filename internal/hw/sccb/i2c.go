package sccb

import (
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/cjeanneret/ov5640/internal/debug"
	"periph.io/x/periph/conn/i2c"
	"periph.io/x/periph/conn/i2c/i2creg"
	"periph.io/x/periph/host"
)

// I2CBus is the real transport, backed by a periph.io I2C adapter
// (e.g. /dev/i2c-1 on a Raspberry Pi).
type I2CBus struct {
	name        string
	addr        uint16
	openTimeout time.Duration
	opener      func() (i2c.BusCloser, error)

	bus i2c.BusCloser
	dev *i2c.Dev
}

// NewI2CBus creates a transport for the device at addr on the named adapter.
// An empty name selects the first registered adapter.
// openTimeout bounds how long Init keeps retrying to open the adapter.
func NewI2CBus(name string, addr uint16, openTimeout time.Duration) *I2CBus {
	return newI2CBus(name, addr, openTimeout, func() (i2c.BusCloser, error) {
		if _, err := host.Init(); err != nil {
			return nil, backoff.Permanent(fmt.Errorf("periph host init: %w", err))
		}
		return i2creg.Open(name)
	})
}

func newI2CBus(name string, addr uint16, openTimeout time.Duration, opener func() (i2c.BusCloser, error)) *I2CBus {
	if openTimeout <= 0 {
		openTimeout = 3 * time.Second
	}
	return &I2CBus{
		name:        name,
		addr:        addr,
		openTimeout: openTimeout,
		opener:      opener,
	}
}

// Init opens the adapter. The kernel device node can show up late after
// boot, so opening is retried with an exponential backoff.
func (b *I2CBus) Init() error {
	if b.dev != nil {
		return nil
	}
	debug.Info("Opening I2C bus %q (device 0x%02X)", b.name, b.addr)

	var bus i2c.BusCloser
	op := func() error {
		var err error
		bus, err = b.opener()
		if err != nil {
			debug.Verbose("I2C open %q failed: %v", b.name, err)
		}
		return err
	}
	err := backoff.Retry(op, &backoff.ExponentialBackOff{
		InitialInterval:     25 * time.Millisecond,
		RandomizationFactor: 0.,
		Multiplier:          2.,
		MaxInterval:         500 * time.Millisecond,
		MaxElapsedTime:      b.openTimeout,
		Clock:               backoff.SystemClock})
	if err != nil {
		return fmt.Errorf("%w: open i2c bus %q: %v", ErrBus, b.name, err)
	}

	b.bus = bus
	b.dev = &i2c.Dev{Bus: bus, Addr: b.addr}
	return nil
}

// DeInit closes the adapter.
func (b *I2CBus) DeInit() error {
	if b.bus == nil {
		return nil
	}
	debug.Trace("I2C close %q", b.name)
	err := b.bus.Close()
	b.bus = nil
	b.dev = nil
	return err
}

// Write sends the register address followed by data in a single transfer.
func (b *I2CBus) Write(reg uint16, data []byte) error {
	debug.Reg("write", reg, data)
	if b.dev == nil {
		return &Error{Op: "write", Reg: reg, Err: ErrNotOpen}
	}
	if err := b.dev.Tx(frame(reg, data), nil); err != nil {
		return &Error{Op: "write", Reg: reg, Err: err}
	}
	return nil
}

// Read writes the register address then reads len(buf) bytes after a repeated start.
func (b *I2CBus) Read(reg uint16, buf []byte) error {
	if b.dev == nil {
		return &Error{Op: "read", Reg: reg, Err: ErrNotOpen}
	}
	if err := b.dev.Tx(frame(reg, nil), buf); err != nil {
		return &Error{Op: "read", Reg: reg, Err: err}
	}
	debug.Reg("read", reg, buf)
	return nil
}
