package regseq

import (
	"errors"
	"testing"

	"github.com/cjeanneret/ov5640/internal/hw/sccb"
	"github.com/google/go-cmp/cmp"
)

func openMockBus() *sccb.MockBus {
	m := sccb.NewMockBus()
	_ = m.Init()
	return m
}

func writesOf(m *sccb.MockBus) []Entry {
	var out []Entry
	for _, a := range m.Writes() {
		for i, b := range a.Data {
			out = append(out, Entry{Addr: a.Reg + uint16(i), Val: b})
		}
	}
	return out
}

func TestApply_WritesInOrder(t *testing.T) {
	m := openMockBus()
	p := NewPlayer(m, NewFakeClock(0))
	tbl := Table{{0x3017, 0xFF}, {0x3018, 0xF3}, {0x302E, 0x00}}

	if err := p.Apply(tbl); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if diff := cmp.Diff([]Entry(tbl), writesOf(m)); diff != "" {
		t.Errorf("writes (-want +got):\n%s", diff)
	}
}

func TestApply_OneByteWritePerEntry(t *testing.T) {
	m := openMockBus()
	p := NewPlayer(m, NewFakeClock(0))
	_ = p.Apply(Table{{0x3808, 0x02}, {0x3809, 0x80}})

	for _, a := range m.Writes() {
		if len(a.Data) != 1 {
			t.Errorf("write to 0x%04X carried %d bytes, want 1", a.Reg, len(a.Data))
		}
	}
}

func TestApply_AbortsAtFirstFailure(t *testing.T) {
	m := openMockBus()
	m.FailWriteAt(2)
	p := NewPlayer(m, NewFakeClock(0))

	err := p.Apply(Table{{0x4300, 0x6F}, {0x501F, 0x01}, {0x3821, 0x20}})
	if !errors.Is(err, sccb.ErrBus) {
		t.Fatalf("Apply error = %v, want ErrBus", err)
	}
	if n := len(m.Writes()); n != 2 {
		t.Errorf("writes attempted = %d, want 2", n)
	}
	// no rollback of the first entry
	if got := m.Get(0x4300); got != 0x6F {
		t.Errorf("reg 0x4300 = 0x%02X, want 0x6F", got)
	}
}

func TestApply_EmptyTable(t *testing.T) {
	m := openMockBus()
	p := NewPlayer(m, NewFakeClock(0))
	if err := p.Apply(nil); err != nil {
		t.Fatalf("Apply(nil): %v", err)
	}
	if n := len(m.Log()); n != 0 {
		t.Errorf("empty table touched the bus %d times", n)
	}
}

func TestApplySettled_DelaysAfterEachWrite(t *testing.T) {
	m := openMockBus()
	c := NewFakeClock(100)
	p := NewPlayer(m, c)

	if err := p.ApplySettled(Table{{0x4300, 0x30}, {0x501F, 0x00}}, 1); err != nil {
		t.Fatalf("ApplySettled: %v", err)
	}
	if diff := cmp.Diff([]uint32{1, 1}, c.Sleeps()); diff != "" {
		t.Errorf("sleeps (-want +got):\n%s", diff)
	}
}
