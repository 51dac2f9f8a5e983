package tour

import (
	"errors"
	"io"
	"log/slog"
	"math/bits"
	"time"
)

// Capacity limits of the exact strategies. Both index the visited set with
// a uint64 bitmask over canonical node positions.
const (
	// MaxPermutationPoints bounds the bitmask of the exhaustive search.
	// Far smaller inputs are already impractical (n! branches).
	MaxPermutationPoints = 64

	// MaxHeldKarpPoints bounds the n·2ⁿ DP table.
	MaxHeldKarpPoints = 16

	// MaxDomainSize is the widest board Build accepts. A tour has at most
	// Size+1 edges of at most Size/2 each, so every tour cost fits in int.
	MaxDomainSize = 1 << (bits.UintSize/2 - 1)
)

var (
	// ErrNilProblem is returned when a solver receives a nil *Problem.
	ErrNilProblem = errors.New("tour: nil problem")

	// ErrUnsupportedStrategy is returned for an unknown Strategy value or name.
	ErrUnsupportedStrategy = errors.New("tour: unsupported strategy")

	// ErrTooManyPoints is returned when a problem exceeds the capacity of
	// the requested strategy.
	ErrTooManyPoints = errors.New("tour: too many points for strategy")

	// ErrInvalidTour is returned by ValidateTour and TourCost when a tour
	// does not describe a closed visit of the problem's points.
	ErrInvalidTour = errors.New("tour: invalid tour")
)

// Visit is the visitation state of a Node.
type Visit uint8

const (
	// Unvisited nodes are still candidates for the next step.
	Unvisited Visit = iota
	// Visited nodes are already on the tour.
	Visited
)

// String returns "U" or "V".
func (v Visit) String() string {
	if v == Visited {
		return "V"
	}

	return "U"
}

// Node is the visitation record of one point.
// Two nodes are Equal when their points are equal, whatever their state.
type Node struct {
	Point int
	State Visit

	// distance is per-iteration scratch space of the heuristic.
	distance int
}

// Equal compares nodes by point only.
func (n Node) Equal(o Node) bool { return n.Point == o.Point }

// Visited reports whether n is on the tour already.
func (n Node) Visited() bool { return n.State == Visited }

// Strategy selects a tour-construction algorithm.
type Strategy int

const (
	// Heuristic is the greedy nearest-neighbour walk.
	Heuristic Strategy = iota
	// Exhaustive enumerates every permutation.
	Exhaustive
	// DynamicProgramming is the Held–Karp bitmask DP.
	DynamicProgramming
)

var strategyNames = [...]string{
	Heuristic:          "heuristic",
	Exhaustive:         "permutation",
	DynamicProgramming: "heldkarp",
}

// String returns the canonical lower-case name used by ParseStrategy.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return "unknown"
	}

	return strategyNames[s]
}

// Capacity is the largest node count (initial point included) s can solve.
func (s Strategy) Capacity() int {
	switch s {
	case Exhaustive:
		return MaxPermutationPoints
	case DynamicProgramming:
		return MaxHeldKarpPoints
	default:
		return int(^uint(0) >> 1)
	}
}

// Exact reports whether s always returns a minimum-cost tour.
func (s Strategy) Exact() bool { return s == Exhaustive || s == DynamicProgramming }

// ParseStrategy accepts canonical names and a few common aliases.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "heuristic", "nearest-neighbor", "nn":
		return Heuristic, nil
	case "permutation", "exhaustive", "brute-force":
		return Exhaustive, nil
	case "heldkarp", "held-karp", "dp":
		return DynamicProgramming, nil
	}

	return 0, ErrUnsupportedStrategy
}

// Result is the outcome of one solver run.
type Result struct {
	// Strategy that produced the tour.
	Strategy Strategy

	// Tour lists point values in visiting order; Tour[0] and Tour[len-1]
	// are the initial point and len(Tour) == Problem.Len()+1.
	Tour []int

	// Cost is the total circular distance, closing edge included.
	Cost int

	// Candidates is the number of closed tours scored: 1 for the
	// heuristic, (n-1)! for the permutation search, n-1 for Held–Karp.
	Candidates int

	// Elapsed is the wall-clock time spent in the solver, measured with
	// Options.Now.
	Elapsed time.Duration
}

// Options configures the solvers. The zero value is usable; nil fields fall
// back to DefaultOptions.
type Options struct {
	// Logger receives debug lines at the end of each solve.
	Logger *slog.Logger

	// Now is the clock used to measure Result.Elapsed.
	Now func() time.Time
}

// DefaultOptions returns Options with a discarding logger and time.Now.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Now:    time.Now,
	}
}

func (o Options) normalize() Options {
	def := DefaultOptions()
	if o.Logger == nil {
		o.Logger = def.Logger
	}
	if o.Now == nil {
		o.Now = def.Now
	}

	return o
}

// finish stamps the elapsed time on res and logs the run.
func (o Options) finish(res *Result, started time.Time) {
	res.Elapsed = o.Now().Sub(started)
	o.Logger.Debug("tour solved",
		slog.String("strategy", res.Strategy.String()),
		slog.Int("points", len(res.Tour)-1),
		slog.Int("cost", res.Cost),
		slog.Int("candidates", res.Candidates),
		slog.Duration("elapsed", res.Elapsed),
	)
}
