package regseq

import (
	"sync"
	"time"
)

// Clock is the millisecond time source used by delays and poll loops.
// Tick wraps modulo 2^32; elapsed time is always computed with unsigned
// subtraction so a wrap between two readings is harmless.
type Clock interface {
	Tick() uint32
	Sleep(ms uint32)
}

// SystemClock is the wall-clock implementation.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a clock whose tick counts from now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Tick() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}

func (c *SystemClock) Sleep(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// Elapsed returns the number of milliseconds from start to now, wrap-safe.
func Elapsed(c Clock, start uint32) uint32 {
	return c.Tick() - start
}

// Delay blocks for at least ms milliseconds as measured by the clock's tick.
func Delay(c Clock, ms uint32) {
	start := c.Tick()
	for Elapsed(c, start) < ms {
		c.Sleep(ms - Elapsed(c, start))
	}
}

// FakeClock is a simulated clock: Sleep advances the tick instantly.
// Safe for use from hooks running on another goroutine.
type FakeClock struct {
	mu     sync.Mutex
	now    uint32
	sleeps []uint32
}

// NewFakeClock returns a simulated clock starting at tick.
func NewFakeClock(tick uint32) *FakeClock {
	return &FakeClock{now: tick}
}

func (f *FakeClock) Tick() uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *FakeClock) Sleep(ms uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now += ms
	f.sleeps = append(f.sleeps, ms)
}

// Advance moves the tick forward without recording a sleep.
func (f *FakeClock) Advance(ms uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now += ms
}

// Sleeps returns every recorded Sleep argument.
func (f *FakeClock) Sleeps() []uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]uint32(nil), f.sleeps...)
}
