package core

import "time"

// FixedStep helps run simulation updates at a steady interval from a
// frame-driven loop that must not block.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	now func() time.Time
}

// NewFixedStep constructs a FixedStep controller that fires once per interval.
// The first call to ShouldStep fires immediately.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the step interval. Non-positive values fall back to
// 100ms. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	f.step = interval
}

// SetClock replaces the time source, mainly for tests.
func (f *FixedStep) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	f.now = now
	f.last = time.Time{}
}

// Rearm makes the next ShouldStep call fire immediately.
func (f *FixedStep) Rearm() {
	f.accumulator = f.step
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// A long stall must not turn into a burst of catch-up steps.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
