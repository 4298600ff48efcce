package regseq

import (
	"errors"
	"testing"

	"github.com/cjeanneret/ov5640/internal/hw/sccb"
	"github.com/google/go-cmp/cmp"
)

func TestApplyGroup_Framing(t *testing.T) {
	m := openMockBus()
	p := NewPlayer(m, NewFakeClock(0))

	if err := p.ApplyGroup(Table{{0x5585, 0x14}, {0x5586, 0x14}}); err != nil {
		t.Fatalf("ApplyGroup: %v", err)
	}
	want := []Entry{
		{GroupControlReg, 0x03},
		{0x5585, 0x14},
		{0x5586, 0x14},
		{GroupControlReg, 0x13},
		{GroupControlReg, 0xA3},
	}
	if diff := cmp.Diff(want, writesOf(m)); diff != "" {
		t.Errorf("grouped writes (-want +got):\n%s", diff)
	}
}

func TestApplyGroup_LaunchFailureReportsError(t *testing.T) {
	m := openMockBus()
	m.FailWriteAt(5) // start, 2 entries, end, launch
	p := NewPlayer(m, NewFakeClock(0))

	err := p.ApplyGroup(Table{{0x5585, 0x14}, {0x5586, 0x14}})
	var ge *GroupError
	if !errors.As(err, &ge) {
		t.Fatalf("error = %v, want *GroupError", err)
	}
	if !errors.Is(err, sccb.ErrBus) {
		t.Errorf("launch failure should wrap ErrBus")
	}

	// retry only the launch
	m.ResetLog()
	if err := p.Relaunch(); err != nil {
		t.Fatalf("Relaunch: %v", err)
	}
	if diff := cmp.Diff([]Entry{{GroupControlReg, 0xA3}}, writesOf(m)); diff != "" {
		t.Errorf("relaunch writes (-want +got):\n%s", diff)
	}
}

func TestApplyGroup_BatchFailureSkipsLaunch(t *testing.T) {
	m := openMockBus()
	m.FailWriteAt(2)
	p := NewPlayer(m, NewFakeClock(0))

	err := p.ApplyGroup(Table{{0x5585, 0x14}, {0x5586, 0x14}})
	if err == nil {
		t.Fatal("expected error")
	}
	var ge *GroupError
	if errors.As(err, &ge) {
		t.Errorf("batch failure should not be reported as a launch failure")
	}
	for _, e := range writesOf(m) {
		if e.Addr == GroupControlReg && e.Val == GroupLaunch {
			t.Error("group launched after batch failure")
		}
	}
}

func TestGroup_StartFailure(t *testing.T) {
	m := openMockBus()
	m.FailReg(GroupControlReg, sccb.ErrNACK)
	p := NewPlayer(m, NewFakeClock(0))

	called := false
	err := p.Group(func() error { called = true; return nil })
	if err == nil || called {
		t.Errorf("start failure: err=%v, batch called=%v", err, called)
	}
}
