package clock

import "time"

// Clock abstracts time.Now so countdown and recovery-window math can be
// tested with a controllable source.
type Clock interface {
	Now() time.Time
}

type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fake is a manually advanced clock for tests.
type Fake struct {
	Current time.Time
}

func NewFake(t time.Time) *Fake {
	return &Fake{Current: t}
}

func (f *Fake) Now() time.Time {
	return f.Current
}

func (f *Fake) Advance(d time.Duration) {
	f.Current = f.Current.Add(d)
}
