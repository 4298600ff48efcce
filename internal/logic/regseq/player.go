// Package regseq plays register tables against the sensor: plain ordered
// writes, grouped (latched) updates and poll-until-ready sessions.
package regseq

import (
	"fmt"

	"github.com/cjeanneret/ov5640/internal/debug"
	"github.com/cjeanneret/ov5640/internal/hw/sccb"
)

// Entry is one register assignment.
type Entry struct {
	Addr uint16
	Val  byte
}

// Table is an ordered list of register assignments.
type Table []Entry

// Player writes tables through a bus, one single-byte write per entry.
type Player struct {
	bus   sccb.Bus
	clock Clock
}

func NewPlayer(bus sccb.Bus, clock Clock) *Player {
	return &Player{bus: bus, clock: clock}
}

// Bus returns the underlying transport.
func (p *Player) Bus() sccb.Bus { return p.bus }

// Clock returns the clock used for settle delays and polls.
func (p *Player) Clock() Clock { return p.clock }

// Apply writes every entry in order and stops at the first failure.
// Entries already written are not rolled back.
func (p *Player) Apply(t Table) error {
	return p.ApplySettled(t, 0)
}

// ApplySettled is Apply with a delay of settleMs after each write.
func (p *Player) ApplySettled(t Table, settleMs uint32) error {
	debug.Verbose("Applying table: %d entries (settle %d ms)", len(t), settleMs)
	for i, e := range t {
		if err := sccb.WriteReg(p.bus, e.Addr, e.Val); err != nil {
			return fmt.Errorf("table entry %d/%d: %w", i+1, len(t), err)
		}
		if settleMs > 0 {
			Delay(p.clock, settleMs)
		}
	}
	return nil
}

// Write writes a single register.
func (p *Player) Write(reg uint16, val byte) error {
	return sccb.WriteReg(p.bus, reg, val)
}

// Read reads a single register.
func (p *Player) Read(reg uint16) (byte, error) {
	return sccb.ReadReg(p.bus, reg)
}

// Update performs a read-modify-write of reg.
func (p *Player) Update(reg uint16, fn func(byte) byte) error {
	return sccb.Update(p.bus, reg, fn)
}
