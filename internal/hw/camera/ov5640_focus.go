package camera

import (
	_ "embed"
	"fmt"

	"github.com/cjeanneret/ov5640/internal/debug"
	"github.com/cjeanneret/ov5640/internal/logic/regseq"
)

// afFirmware is the autofocus microcontroller program, loaded at 0x8000.
//
//go:embed firmware/ov5640_af.bin
var afFirmware []byte

// Autofocus command and status values.
const (
	afCmdSingle     byte = 0x03
	afCmdContinuous byte = 0x04
	afCmdIdle       byte = 0x08
	afCmdAckPending byte = 0x01

	afStatusBooting byte = 0x7F
	afStatusIdle    byte = 0x70
	afStatusFocused byte = 0x10
	afAckDone       byte = 0x00
)

// Poll budgets for the autofocus microcontroller.
var (
	afBootPoll   = regseq.Poll{Reg: regAFStatus, Want: afStatusIdle, Limit: 1000, Interval: 5}
	afSinglePoll = regseq.Poll{Reg: regAFStatus, Want: afStatusFocused, Limit: 200, Interval: 5}
	afAckPoll    = regseq.Poll{Reg: regAFCmdAck, Want: afAckDone, Limit: 200, Interval: 5}
)

var afStartTable = regseq.Table{
	{Addr: regAFCmdMain, Val: 0x00},
	{Addr: regAFCmdAck, Val: 0x00},
	{Addr: 0x3024, Val: 0x00},
	{Addr: 0x3025, Val: 0x00},
	{Addr: 0x3026, Val: 0x00},
	{Addr: 0x3027, Val: 0x00},
	{Addr: 0x3028, Val: 0x00},
	{Addr: regAFStatus, Val: afStatusBooting},
	{Addr: regSystemReset00, Val: 0x00},
}

// FocusInit uploads the autofocus firmware, starts the microcontroller and
// waits until it reports idle.
func (c *OV5640) FocusInit() error {
	debug.Verbose("Uploading AF firmware (%d bytes)", len(afFirmware))
	if err := c.regs.Write(regSystemReset00, 0x20); err != nil {
		return fmt.Errorf("af reset: %w", err)
	}
	for i, b := range afFirmware {
		if err := c.regs.Write(afFirmwareBase+uint16(i), b); err != nil {
			return fmt.Errorf("af firmware byte %d: %w", i, err)
		}
	}
	if err := c.regs.Apply(afStartTable); err != nil {
		return fmt.Errorf("af start: %w", err)
	}
	res, err := c.regs.Poll(afBootPoll)
	if err != nil {
		return fmt.Errorf("af boot: %w", err)
	}
	debug.Live("AF firmware running after %d ms", res.Elapsed)
	return nil
}

// SingleFocus triggers one autofocus pass and waits until the lens is focused.
func (c *OV5640) SingleFocus() error {
	if err := c.TriggerSingleFocus(); err != nil {
		return err
	}
	res, err := c.regs.Poll(afSinglePoll)
	if err != nil {
		return fmt.Errorf("single focus: %w", err)
	}
	debug.Live("Single focus done after %d ms", res.Elapsed)
	return nil
}

// ContinuousFocus returns the autofocus engine to idle and then starts
// continuous focusing, waiting for each command to be acknowledged.
func (c *OV5640) ContinuousFocus() error {
	if err := c.TriggerContinuousIdle(); err != nil {
		return err
	}
	if _, err := c.regs.Poll(afAckPoll); err != nil {
		return fmt.Errorf("continuous focus idle: %w", err)
	}
	if err := c.TriggerContinuousFocus(); err != nil {
		return err
	}
	if _, err := c.regs.Poll(afAckPoll); err != nil {
		return fmt.Errorf("continuous focus start: %w", err)
	}
	debug.Live("Continuous focus running")
	return nil
}

// TriggerSingleFocus issues the single focus command without waiting.
func (c *OV5640) TriggerSingleFocus() error {
	if err := c.regs.Write(regAFCmdMain, afCmdSingle); err != nil {
		return fmt.Errorf("single focus: %w", err)
	}
	return nil
}

// SingleFocusDone reports whether the last single focus pass has finished.
func (c *OV5640) SingleFocusDone() (bool, error) {
	v, err := c.regs.Read(regAFStatus)
	if err != nil {
		return false, fmt.Errorf("focus status: %w", err)
	}
	return v == afStatusFocused, nil
}

// TriggerContinuousIdle asks the autofocus engine to go idle without waiting.
func (c *OV5640) TriggerContinuousIdle() error {
	return c.afCommand(afCmdIdle)
}

// TriggerContinuousFocus starts continuous focusing without waiting.
func (c *OV5640) TriggerContinuousFocus() error {
	return c.afCommand(afCmdContinuous)
}

// ContinuousFocusDone reports whether the last continuous focus command
// has been acknowledged.
func (c *OV5640) ContinuousFocusDone() (bool, error) {
	v, err := c.regs.Read(regAFCmdAck)
	if err != nil {
		return false, fmt.Errorf("focus ack: %w", err)
	}
	return v == afAckDone, nil
}

func (c *OV5640) afCommand(cmd byte) error {
	if err := c.regs.Apply(regseq.Table{{Addr: regAFCmdAck, Val: afCmdAckPending}, {Addr: regAFCmdMain, Val: cmd}}); err != nil {
		return fmt.Errorf("af command 0x%02X: %w", cmd, err)
	}
	return nil
}
