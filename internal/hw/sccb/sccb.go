// Package sccb is the two-wire register transport used to talk to the sensor.
//
// SCCB is I2C-compatible: every access starts with a 16-bit big-endian
// register address followed by the payload (write) or a repeated-start read.
package sccb

import (
	"errors"
	"fmt"
)

// DefaultAddress is the 7-bit bus address of the OV5640 (0x78 in 8-bit notation).
const DefaultAddress uint16 = 0x3C

var (
	// ErrBus is wrapped by every transport failure.
	ErrBus = errors.New("sccb: bus error")

	// ErrNACK is reported when the device does not acknowledge a transfer.
	ErrNACK = errors.New("sccb: no acknowledge")

	// ErrNotOpen is reported when Read/Write is called before Init.
	ErrNotOpen = errors.New("sccb: bus not initialized")
)

// Bus performs register-level transfers against a single device.
type Bus interface {
	// Init prepares the underlying adapter. It may be called more than once.
	Init() error
	// DeInit releases the adapter.
	DeInit() error
	// Write writes len(data) bytes starting at reg.
	Write(reg uint16, data []byte) error
	// Read fills buf with len(buf) bytes starting at reg.
	Read(reg uint16, buf []byte) error
}

// Error describes a failed register transfer.
type Error struct {
	Op  string // "read" or "write"
	Reg uint16
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("sccb %s 0x%04X: %v", e.Op, e.Reg, e.Err)
}

// Unwrap lets errors.Is match both ErrBus and the underlying cause.
func (e *Error) Unwrap() []error {
	return []error{ErrBus, e.Err}
}

// WriteReg writes a single byte.
func WriteReg(b Bus, reg uint16, val byte) error {
	return b.Write(reg, []byte{val})
}

// ReadReg reads a single byte.
func ReadReg(b Bus, reg uint16) (byte, error) {
	var buf [1]byte
	if err := b.Read(reg, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// Update performs a read-modify-write of a single register.
func Update(b Bus, reg uint16, fn func(byte) byte) error {
	v, err := ReadReg(b, reg)
	if err != nil {
		return err
	}
	return WriteReg(b, reg, fn(v))
}

func frame(reg uint16, data []byte) []byte {
	w := make([]byte, 2+len(data))
	w[0] = byte(reg >> 8)
	w[1] = byte(reg)
	copy(w[2:], data)
	return w
}
