// Package tour_test holds helpers shared across the *_test.go files of this
// package: canonical instances and a deterministic clock.
package tour_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/ringtour/tour"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Canonical instances
// -----------------------------------------------------------------------------

const (
	lowDemo  = -21
	highDemo = 11
	initDemo = 0
)

var (
	// hopscotchPoints makes the greedy walk zig-zag (cost 41 vs optimum 33).
	hopscotchPoints = []int{-21, -5, -1, 0, 1, 3, 11}

	// demoPoints is the driver's default instance.
	demoPoints = []int{-21, -11, -6, -5, -1, 0, 1, 5, 7, 11}
)

// mustBuild builds a problem or fails the test.
func mustBuild(t testing.TB, lowest, highest, initial int, points []int) *tour.Problem {
	t.Helper()
	p, err := tour.Build(lowest, highest, initial, points)
	require.NoError(t, err)

	return p
}

// requireValidTour asserts closure, length and exactly-once coverage.
func requireValidTour(t testing.TB, p *tour.Problem, res tour.Result) {
	t.Helper()
	require.NoError(t, tour.ValidateTour(p, res.Tour))
	require.Len(t, res.Tour, p.Len()+1)
	cost, err := tour.TourCost(p, res.Tour)
	require.NoError(t, err)
	require.Equal(t, cost, res.Cost, "reported cost must match recomputed cost")
}

// -----------------------------------------------------------------------------
// Deterministic clock
// -----------------------------------------------------------------------------

// stepClock advances by step on every call and counts calls.
type stepClock struct {
	t     time.Time
	step  time.Duration
	calls int
}

func newStepClock(step time.Duration) *stepClock {
	return &stepClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), step: step}
}

func (c *stepClock) Now() time.Time {
	c.calls++
	c.t = c.t.Add(c.step)

	return c.t
}

// clockOptions returns Options wired to c.
func clockOptions(c *stepClock) tour.Options {
	opts := tour.DefaultOptions()
	opts.Now = c.Now

	return opts
}

// factorial is n! for small n.
func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}

	return f
}
