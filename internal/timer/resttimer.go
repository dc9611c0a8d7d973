package timer

import (
	"time"

	"forja/internal/clock"
)

// RestTimer counts down a rest interval against the wall clock. It anchors
// an absolute deadline and recomputes remaining time on every read, so a
// suspended process (screen lock, backgrounded terminal) wakes up to the
// correct value instead of a frozen one.
type RestTimer struct {
	clk   clock.Clock
	end   time.Time
	total time.Duration

	doneFired bool
	skipped   bool
}

func New(clk clock.Clock, duration time.Duration) *RestTimer {
	return &RestTimer{
		clk:   clk,
		end:   clk.Now().Add(duration),
		total: duration,
	}
}

// Remaining is recomputed from the deadline, never decremented.
func (t *RestTimer) Remaining() time.Duration {
	r := t.end.Sub(t.clk.Now())
	if r < 0 {
		return 0
	}
	return r
}

func (t *RestTimer) Total() time.Duration {
	return t.total
}

// Progress is the elapsed fraction in [0, 1], for progress-bar rendering.
func (t *RestTimer) Progress() float64 {
	if t.total <= 0 {
		return 1
	}
	p := 1 - float64(t.Remaining())/float64(t.total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Add pushes the deadline out and grows the total, so the progress bar
// scales with the extension.
func (t *RestTimer) Add(d time.Duration) {
	t.end = t.end.Add(d)
	t.total += d
}

// Subtract pulls the deadline in without shrinking the total; the bar just
// drains faster.
func (t *RestTimer) Subtract(d time.Duration) {
	t.end = t.end.Add(-d)
}

// Tick reports the current remaining time and whether the timer just
// completed. The done signal fires at most once per timer, and never after
// a skip.
func (t *RestTimer) Tick() (remaining time.Duration, done bool) {
	remaining = t.Remaining()
	if remaining > 0 || t.doneFired || t.skipped {
		return remaining, false
	}

	t.doneFired = true
	return 0, true
}

// Skip ends the timer early, reporting how much rest was skipped so callers
// can log actual vs planned. One-shot: a second skip, or a skip after
// completion, reports ok=false.
func (t *RestTimer) Skip() (remaining time.Duration, ok bool) {
	if t.skipped || t.doneFired {
		return 0, false
	}

	t.skipped = true
	remaining = t.Remaining()
	t.end = t.clk.Now()
	return remaining, true
}

// Done reports whether the timer has finished, by completion or skip.
func (t *RestTimer) Done() bool {
	return t.doneFired || t.skipped
}
