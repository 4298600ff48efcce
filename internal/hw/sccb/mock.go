package sccb

import (
	"fmt"
	"sync"

	"github.com/cjeanneret/ov5640/internal/debug"
)

// Access is one recorded transfer on a MockBus.
type Access struct {
	Op   string // "read" or "write"
	Reg  uint16
	Data []byte
}

// MockBus is an in-memory register map standing in for the device.
// Multi-byte transfers auto-increment the register address, like the real part.
// Like I2CBus, transfers fail with ErrNotOpen until Init is called.
// Used for development on a PC and in tests.
type MockBus struct {
	mu sync.Mutex

	regs    map[uint16]byte
	scripts map[uint16][]byte
	hooks   []func(reg uint16, val byte)
	log     []Access

	initCalls int
	open      bool

	// Fault injection. A failure is reported for the Nth (1-based) write or
	// read; zero disables it.
	failWriteAt int
	failReadAt  int
	writes      int
	reads       int
	failRegs    map[uint16]error
}

// NewMockBus creates an empty simulated device.
func NewMockBus() *MockBus {
	return &MockBus{
		regs:     make(map[uint16]byte),
		scripts:  make(map[uint16][]byte),
		failRegs: make(map[uint16]error),
	}
}

func (m *MockBus) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	debug.Trace("SCCB init (mock)")
	m.initCalls++
	m.open = true
	return nil
}

func (m *MockBus) DeInit() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	debug.Trace("SCCB deinit (mock)")
	m.open = false
	return nil
}

func (m *MockBus) Write(reg uint16, data []byte) error {
	debug.Reg("write", reg, data)

	m.mu.Lock()
	if !m.open {
		m.mu.Unlock()
		return &Error{Op: "write", Reg: reg, Err: ErrNotOpen}
	}
	m.writes++
	m.log = append(m.log, Access{Op: "write", Reg: reg, Data: append([]byte(nil), data...)})
	if m.failWriteAt > 0 && m.writes == m.failWriteAt {
		m.mu.Unlock()
		return &Error{Op: "write", Reg: reg, Err: ErrNACK}
	}
	if err, ok := m.failRegs[reg]; ok {
		m.mu.Unlock()
		return &Error{Op: "write", Reg: reg, Err: err}
	}
	for i, b := range data {
		m.regs[reg+uint16(i)] = b
	}
	hooks := append([]func(uint16, byte){}, m.hooks...)
	m.mu.Unlock()

	// Hooks run unlocked so they may call Set.
	for i, b := range data {
		for _, h := range hooks {
			h(reg+uint16(i), b)
		}
	}
	return nil
}

func (m *MockBus) Read(reg uint16, buf []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.open {
		return &Error{Op: "read", Reg: reg, Err: ErrNotOpen}
	}
	m.reads++
	if m.failReadAt > 0 && m.reads == m.failReadAt {
		m.log = append(m.log, Access{Op: "read", Reg: reg})
		return &Error{Op: "read", Reg: reg, Err: ErrNACK}
	}
	for i := range buf {
		r := reg + uint16(i)
		if s := m.scripts[r]; len(s) > 0 {
			m.regs[r] = s[0]
			m.scripts[r] = s[1:]
		}
		buf[i] = m.regs[r]
	}
	m.log = append(m.log, Access{Op: "read", Reg: reg, Data: append([]byte(nil), buf...)})
	debug.Reg("read", reg, buf)
	return nil
}

// Set preloads a register value.
func (m *MockBus) Set(reg uint16, val byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.regs[reg] = val
}

// Get returns the current register value.
func (m *MockBus) Get(reg uint16) byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.regs[reg]
}

// Script queues values returned by successive reads of reg. Once the queue
// is drained the last value sticks.
func (m *MockBus) Script(reg uint16, values ...byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scripts[reg] = append(m.scripts[reg], values...)
}

// OnWrite registers a hook called for every byte written.
func (m *MockBus) OnWrite(h func(reg uint16, val byte)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, h)
}

// FailWriteAt makes the nth write from now fail with ErrNACK.
func (m *MockBus) FailWriteAt(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWriteAt = m.writes + n
}

// FailReadAt makes the nth read from now fail with ErrNACK.
func (m *MockBus) FailReadAt(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failReadAt = m.reads + n
}

// FailReg makes every write to reg fail with err.
func (m *MockBus) FailReg(reg uint16, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.failRegs, reg)
		return
	}
	m.failRegs[reg] = err
}

// Log returns a copy of every recorded transfer.
func (m *MockBus) Log() []Access {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Access(nil), m.log...)
}

// Writes returns only the recorded writes.
func (m *MockBus) Writes() []Access {
	var out []Access
	for _, a := range m.Log() {
		if a.Op == "write" {
			out = append(out, a)
		}
	}
	return out
}

// Reads returns only the recorded reads.
func (m *MockBus) Reads() []Access {
	var out []Access
	for _, a := range m.Log() {
		if a.Op == "read" {
			out = append(out, a)
		}
	}
	return out
}

// ResetLog clears the transfer log and counters.
func (m *MockBus) ResetLog() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log = nil
	m.writes = 0
	m.reads = 0
	m.failWriteAt = 0
	m.failReadAt = 0
}

// InitCalls reports how many times Init was called.
func (m *MockBus) InitCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initCalls
}

func (a Access) String() string {
	return fmt.Sprintf("%s 0x%04X % X", a.Op, a.Reg, a.Data)
}
