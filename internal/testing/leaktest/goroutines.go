// Package leaktest fails tests whose goroutines outlive the code under test.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	// DefaultGrace is how long goroutines get to exit before they count as leaked
	DefaultGrace = 500 * time.Millisecond

	pollInterval = 10 * time.Millisecond
)

// Snapshot is the goroutine count taken before the code under test runs
type Snapshot struct {
	t     testing.TB
	base  int
	grace time.Duration
}

// Take records the current goroutine count after letting runtime helpers settle
func Take(t testing.TB) *Snapshot {
	t.Helper()
	runtime.Gosched()
	time.Sleep(pollInterval)
	return &Snapshot{t: t, base: runtime.NumGoroutine(), grace: DefaultGrace}
}

// WithGrace returns a copy that waits at most d for goroutines to exit
func (s *Snapshot) WithGrace(d time.Duration) *Snapshot {
	c := *s
	c.grace = d
	return &c
}

// Surplus polls until no more than allowed goroutines exceed the snapshot or
// the grace period ends, and returns the final excess.
func (s *Snapshot) Surplus(allowed int) int {
	deadline := time.Now().Add(s.grace)
	for {
		runtime.Gosched()
		extra := runtime.NumGoroutine() - s.base
		if extra <= allowed || !time.Now().Before(deadline) {
			return extra
		}
		time.Sleep(pollInterval)
	}
}

// Verify reports an error when more than allowed goroutines are still running
func (s *Snapshot) Verify(allowed int) {
	s.t.Helper()
	if extra := s.Surplus(allowed); extra > allowed {
		s.t.Errorf("goroutine leak: %d still running after %v (baseline %d, allowed %d)",
			extra, s.grace, s.base, allowed)
	}
}

// CheckNoGoroutineLeak runs fn and requires every goroutine it started to exit
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	snap := Take(t)
	fn()
	snap.Verify(0)
}
