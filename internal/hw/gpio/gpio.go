// Package gpio drives the sensor's control lines (PWDN, RESETB).
package gpio

import (
	"fmt"
	"sync"

	"github.com/cjeanneret/ov5640/internal/debug"
)

// Level represents the logical state of a GPIO pin.
type Level bool

const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l {
		return "HIGH"
	}
	return "LOW"
}

// PinMode indicates whether a GPIO is input or output.
type PinMode int

const (
	Input PinMode = iota
	Output
)

func (m PinMode) String() string {
	switch m {
	case Input:
		return "input"
	case Output:
		return "output"
	}
	return fmt.Sprintf("PinMode(%d)", int(m))
}

// Driver controls GPIO lines. A real Raspberry Pi implementation or a
// mock for development on PC can be plugged in.
type Driver interface {
	SetupPin(pin int, mode PinMode) error
	WritePin(pin int, level Level) error
	ReadPin(pin int) (Level, error)
	Close() error
}

// MockDriver keeps pin levels in memory. Reading an output pin returns the
// last level written to it.
type MockDriver struct {
	mu     sync.Mutex
	modes  map[int]PinMode
	levels map[int]Level
}

// NewDriver creates a GPIO driver. If mock is true, returns a MockDriver
// (for dev/test); otherwise a real RPiDriver.
func NewDriver(mock bool) (Driver, error) {
	if mock {
		debug.Info("Using MOCK GPIO driver (development mode)")
		return NewMockDriver(), nil
	}
	return NewRPiDriver()
}

// NewMockDriver creates an in-memory driver with every pin low.
func NewMockDriver() *MockDriver {
	return &MockDriver{
		modes:  make(map[int]PinMode),
		levels: make(map[int]Level),
	}
}

func (m *MockDriver) SetupPin(pin int, mode PinMode) error {
	debug.Pin("SetupPin", pin, mode)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modes[pin] = mode
	return nil
}

func (m *MockDriver) WritePin(pin int, level Level) error {
	debug.Pin("WritePin", pin, level)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.levels[pin] = level
	return nil
}

func (m *MockDriver) ReadPin(pin int) (Level, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l := m.levels[pin]
	debug.Pin("ReadPin", pin, l)
	return l, nil
}

// Mode returns the configured mode of pin and whether it was set up.
func (m *MockDriver) Mode(pin int) (PinMode, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	mode, ok := m.modes[pin]
	return mode, ok
}

func (m *MockDriver) Close() error {
	debug.Trace("GPIO Close (mock)")
	return nil
}
