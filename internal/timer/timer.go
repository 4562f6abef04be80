package timer

import (
	"fmt"
	"time"
)

// Timer tracks accumulated running time across pause/resume cycles.
// The zero value is not usable; create one with New.
type Timer struct {
	clock       Clock
	running     bool
	startedAt   time.Time
	accumulated time.Duration
}

// New returns a stopped timer with nothing accumulated.
// A nil clock means SystemClock.
func New(clock Clock) Timer {
	if clock == nil {
		clock = SystemClock
	}
	return Timer{clock: clock}
}

// Start begins accumulating time. Calling it on a running timer does nothing;
// in particular the current segment's start instant is kept.
func (t *Timer) Start() {
	if t.running {
		return
	}
	t.running = true
	t.startedAt = t.clock.Now()
}

// Resume continues a paused timer. It behaves exactly like Start.
func (t *Timer) Resume() {
	t.Start()
}

// Pause folds the current segment into the accumulated total and stops.
// Pausing a stopped timer does nothing.
func (t *Timer) Pause() {
	if !t.running {
		return
	}
	t.accumulated += t.segment()
	t.running = false
	t.startedAt = time.Time{}
}

// Elapsed returns the total running time, including the segment in progress.
func (t Timer) Elapsed() time.Duration {
	if !t.running {
		return t.accumulated
	}
	return t.accumulated + t.segment()
}

// Running reports whether the timer is currently accumulating time.
func (t Timer) Running() bool {
	return t.running
}

// Paused reports whether the timer has run before and is now stopped.
func (t Timer) Paused() bool {
	return !t.running && t.accumulated > 0
}

// segment is the length of the current run segment, never negative.
func (t Timer) segment() time.Duration {
	d := t.clock.Now().Sub(t.startedAt)
	if d < 0 {
		return 0
	}
	return d
}

// Format renders d as zero-padded minutes and seconds. Minutes do not roll
// over into hours.
func Format(d time.Duration) string {
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
