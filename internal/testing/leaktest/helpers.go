// Package leaktest verifies that background goroutines started by a component
// exit once the component is stopped.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	// SettleTimeout bounds how long Check waits for goroutines to exit
	SettleTimeout = time.Second
	pollInterval  = 5 * time.Millisecond
)

// GoroutineChecker remembers the goroutine count at construction
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check waits up to SettleTimeout for the goroutine count to return within
// tolerance of the recorded baseline, failing the test otherwise.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after, ok := settle(g.before+tolerance, SettleTimeout)
	if !ok {
		g.t.Errorf("goroutine leak: before=%d, after=%d, tolerance=%d", g.before, after, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails if it leaves goroutines behind.
// fn is expected to start and stop whatever it exercises.
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// VerifyOnCleanup registers a leak check that runs after the test and its
// deferred stops have finished.
func VerifyOnCleanup(t testing.TB, tolerance int) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	t.Cleanup(func() { checker.Check(tolerance) })
}

func settle(target int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target {
			return n, true
		}
		if time.Now().After(deadline) {
			return n, false
		}
		time.Sleep(pollInterval)
	}
}
