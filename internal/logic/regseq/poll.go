package regseq

import (
	"errors"
	"fmt"

	"github.com/cjeanneret/ov5640/internal/debug"
)

// ErrTimeout is returned when a poll exhausts its retry budget.
var ErrTimeout = errors.New("regseq: poll timeout")

// Poll waits for a status register to reach a sentinel value.
type Poll struct {
	Reg      uint16
	Want     byte
	Limit    int    // number of reads before giving up
	Interval uint32 // milliseconds slept before each read
}

// PollResult describes a finished poll session.
type PollResult struct {
	Attempts int
	Elapsed  uint32 // milliseconds
	Last     byte   // last value read
}

// Poll sleeps, reads, compares and counts until the register matches or
// Limit reads have been made. A transport failure aborts immediately.
func (p *Player) Poll(s Poll) (PollResult, error) {
	var res PollResult
	start := p.clock.Tick()
	for res.Attempts < s.Limit {
		Delay(p.clock, s.Interval)
		v, err := p.Read(s.Reg)
		res.Attempts++
		res.Elapsed = Elapsed(p.clock, start)
		if err != nil {
			return res, fmt.Errorf("poll 0x%04X: %w", s.Reg, err)
		}
		res.Last = v
		if v == s.Want {
			debug.Verbose("Poll 0x%04X == 0x%02X after %d reads (%d ms)", s.Reg, s.Want, res.Attempts, res.Elapsed)
			return res, nil
		}
	}
	debug.Verbose("Poll 0x%04X timed out after %d reads (last 0x%02X)", s.Reg, res.Attempts, res.Last)
	return res, fmt.Errorf("%w: reg 0x%04X want 0x%02X last 0x%02X after %d reads",
		ErrTimeout, s.Reg, s.Want, res.Last, res.Attempts)
}
