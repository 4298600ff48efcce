package camera

import (
	"github.com/cjeanneret/ov5640/internal/debug"
	"github.com/cjeanneret/ov5640/internal/hw/sccb"
)

// simBusyReads is how many status reads the simulated autofocus engine
// reports busy before completing a command.
const simBusyReads = 3

// Simulate turns a MockBus into a minimal OV5640: the chip ID registers
// are preloaded and the autofocus engine answers boot, single focus and
// continuous focus commands after a few busy reads.
// Used for development on PC and in tests.
func Simulate(m *sccb.MockBus) *sccb.MockBus {
	debug.Info("Using simulated OV5640 (development mode)")

	m.Set(regChipIDHigh, byte(ChipID>>8))
	m.Set(regChipIDLow, byte(ChipID&0xFF))

	busy := func(reg uint16, busyVal, done byte) {
		vals := make([]byte, 0, simBusyReads+1)
		for i := 0; i < simBusyReads; i++ {
			vals = append(vals, busyVal)
		}
		m.Script(reg, append(vals, done)...)
	}

	m.OnWrite(func(reg uint16, val byte) {
		switch {
		case reg == regSystemReset00 && val == 0x00 && m.Get(regAFStatus) == afStatusBooting:
			busy(regAFStatus, afStatusBooting, afStatusIdle)
		case reg == regAFCmdMain && val == afCmdSingle:
			busy(regAFStatus, afStatusIdle, afStatusFocused)
		case reg == regAFCmdMain && (val == afCmdIdle || val == afCmdContinuous):
			busy(regAFCmdAck, afCmdAckPending, afAckDone)
		case reg == regSystemCtrl0 && val == sysSoftReset:
			// reset bit self-clears
			m.Set(regSystemCtrl0, sysPowerUp)
		}
	})
	return m
}
