package regseq

import (
	"fmt"

	"github.com/cjeanneret/ov5640/internal/debug"
)

// GroupControlReg latches register writes so the sensor applies a batch
// on a single frame boundary.
const GroupControlReg uint16 = 0x3212

// Group control values for group 3.
const (
	GroupStart  byte = 0x03
	GroupEnd    byte = 0x13
	GroupLaunch byte = 0xA3
)

// GroupError reports a grouped update whose batch was recorded but whose
// launch write failed. The batch can be launched again with Relaunch.
type GroupError struct {
	Err error
}

func (e *GroupError) Error() string {
	return fmt.Sprintf("group launch: %v", e.Err)
}

func (e *GroupError) Unwrap() error { return e.Err }

// Group runs fn between group start and end markers and then launches
// the group. Any failure is returned and later steps are skipped.
func (p *Player) Group(fn func() error) error {
	debug.Trace("Group start")
	if err := p.Write(GroupControlReg, GroupStart); err != nil {
		return fmt.Errorf("group start: %w", err)
	}
	if err := fn(); err != nil {
		return fmt.Errorf("group batch: %w", err)
	}
	if err := p.Write(GroupControlReg, GroupEnd); err != nil {
		return fmt.Errorf("group end: %w", err)
	}
	if err := p.Write(GroupControlReg, GroupLaunch); err != nil {
		return &GroupError{Err: err}
	}
	debug.Trace("Group launched")
	return nil
}

// ApplyGroup plays t as one grouped update.
func (p *Player) ApplyGroup(t Table) error {
	return p.Group(func() error { return p.Apply(t) })
}

// Relaunch re-issues only the launch write for the last recorded group.
func (p *Player) Relaunch() error {
	debug.Verbose("Relaunching group")
	if err := p.Write(GroupControlReg, GroupLaunch); err != nil {
		return &GroupError{Err: err}
	}
	return nil
}
