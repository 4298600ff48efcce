package sccb

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newOpenMock() *MockBus {
	m := NewMockBus()
	_ = m.Init()
	return m
}

func TestMockBus_ImplementsBus(t *testing.T) {
	var _ Bus = NewMockBus()
}

func TestMockBus_RequiresInit(t *testing.T) {
	m := NewMockBus()
	if err := WriteReg(m, 0x3008, 0x82); !errors.Is(err, ErrNotOpen) || !errors.Is(err, ErrBus) {
		t.Errorf("write before Init error = %v, want ErrNotOpen", err)
	}
	if _, err := ReadReg(m, 0x300A); !errors.Is(err, ErrNotOpen) {
		t.Errorf("read before Init error = %v, want ErrNotOpen", err)
	}
	if n := len(m.Log()); n != 0 {
		t.Errorf("rejected transfers were logged: %d", n)
	}

	if err := m.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := WriteReg(m, 0x3008, 0x82); err != nil {
		t.Errorf("write after Init: %v", err)
	}

	_ = m.DeInit()
	if _, err := ReadReg(m, 0x3008); !errors.Is(err, ErrNotOpen) {
		t.Errorf("read after DeInit error = %v, want ErrNotOpen", err)
	}
}

func TestMockBus_MultiByteAutoIncrement(t *testing.T) {
	m := newOpenMock()
	if err := m.Write(0x3808, []byte{0x02, 0x80, 0x01, 0xE0}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	buf := make([]byte, 4)
	if err := m.Read(0x3808, buf); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if diff := cmp.Diff([]byte{0x02, 0x80, 0x01, 0xE0}, buf); diff != "" {
		t.Errorf("read back mismatch (-want +got):\n%s", diff)
	}
	if got := m.Get(0x380B); got != 0xE0 {
		t.Errorf("reg 0x380B = 0x%02X, want 0xE0", got)
	}
}

func TestMockBus_ScriptedReads(t *testing.T) {
	m := newOpenMock()
	m.Script(0x3029, 0x7F, 0x7F, 0x70)

	var got []byte
	for i := 0; i < 4; i++ {
		v, err := ReadReg(m, 0x3029)
		if err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		got = append(got, v)
	}
	// the last scripted value sticks
	if diff := cmp.Diff([]byte{0x7F, 0x7F, 0x70, 0x70}, got); diff != "" {
		t.Errorf("scripted reads (-want +got):\n%s", diff)
	}
}

func TestMockBus_FailWriteAt(t *testing.T) {
	m := newOpenMock()
	m.FailWriteAt(2)

	if err := WriteReg(m, 0x3212, 0x03); err != nil {
		t.Fatalf("first write should succeed: %v", err)
	}
	err := WriteReg(m, 0x5381, 0x1C)
	if !errors.Is(err, ErrNACK) || !errors.Is(err, ErrBus) {
		t.Fatalf("second write error = %v, want ErrNACK", err)
	}
	if got := m.Get(0x5381); got != 0 {
		t.Errorf("failed write should not land, reg = 0x%02X", got)
	}
	if err := WriteReg(m, 0x5381, 0x1C); err != nil {
		t.Errorf("third write should succeed: %v", err)
	}
}

func TestMockBus_FailReg(t *testing.T) {
	m := newOpenMock()
	boom := errors.New("boom")
	m.FailReg(0x3036, boom)

	if err := WriteReg(m, 0x3036, 0x60); !errors.Is(err, boom) {
		t.Errorf("error = %v, want boom", err)
	}
	m.FailReg(0x3036, nil)
	if err := WriteReg(m, 0x3036, 0x60); err != nil {
		t.Errorf("write after clearing failure: %v", err)
	}
}

func TestMockBus_OnWriteHook(t *testing.T) {
	m := newOpenMock()
	m.OnWrite(func(reg uint16, val byte) {
		if reg == 0x3022 && val == 0x03 {
			m.Set(0x3029, 0x10)
		}
	})

	if err := WriteReg(m, 0x3022, 0x03); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := m.Get(0x3029); got != 0x10 {
		t.Errorf("hook did not run, reg 0x3029 = 0x%02X", got)
	}
}

func TestMockBus_LogOrder(t *testing.T) {
	m := newOpenMock()
	_ = WriteReg(m, 0x3008, 0x80)
	_, _ = ReadReg(m, 0x300A)
	_ = WriteReg(m, 0x3008, 0x02)

	want := []Access{
		{Op: "write", Reg: 0x3008, Data: []byte{0x80}},
		{Op: "read", Reg: 0x300A, Data: []byte{0x00}},
		{Op: "write", Reg: 0x3008, Data: []byte{0x02}},
	}
	if diff := cmp.Diff(want, m.Log()); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
	if n := len(m.Writes()); n != 2 {
		t.Errorf("Writes() = %d entries, want 2", n)
	}

	m.ResetLog()
	if n := len(m.Log()); n != 0 {
		t.Errorf("log should be empty after reset, got %d", n)
	}
}
