// Package clock abstracts the wall clock so lifecycle operations can be
// tested deterministically instead of reading time.Now ambiently.
package clock

import (
	"sync"
	"time"
)

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// System reads the real wall clock.
type System struct{}

// Now returns the current local time.
func (System) Now() time.Time {
	return time.Now()
}

// Fake is a settable clock for tests. The zero value starts at the zero
// time; use Set or Advance to move it.
type Fake struct {
	mu  sync.Mutex
	now time.Time
}

// NewFake returns a fake clock pinned at t.
func NewFake(t time.Time) *Fake {
	return &Fake{now: t}
}

// Now returns the pinned time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.now
}

// Set pins the clock to t.
func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = t
}

// Advance moves the clock forward by d.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = f.now.Add(d)
}
