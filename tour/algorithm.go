package tour

import (
	"errors"
	"time"
)

// Algorithm binds one Strategy to one input and memoises its solution.
//
// Construction never fails: input errors are recorded and reported through
// HasError/ErrorMessage/Err, and every solution query on an errored
// Algorithm returns an empty value. The first solution query runs the solver;
// later queries return the cached result.
//
// An Algorithm is not safe for concurrent first use.
type Algorithm struct {
	strategy Strategy
	opts     Options
	problem  *Problem
	err      error

	solved bool
	result Result
}

// NewAlgorithm validates the input for strategy using DefaultOptions.
func NewAlgorithm(strategy Strategy, lowest, highest, initial int, points []int) *Algorithm {
	return NewAlgorithmWithOptions(strategy, lowest, highest, initial, points, DefaultOptions())
}

// NewAlgorithmWithOptions is NewAlgorithm with explicit Options.
// The strategy capacity is checked after the structural input rules.
func NewAlgorithmWithOptions(strategy Strategy, lowest, highest, initial int, points []int, opts Options) *Algorithm {
	a := &Algorithm{strategy: strategy, opts: opts.normalize()}

	a.problem, a.err = Build(lowest, highest, initial, points)
	if a.err == nil {
		a.err = checkCapacity(a.problem, strategy)
	}

	return a
}

// NewHeuristic is NewAlgorithm(Heuristic, …).
func NewHeuristic(lowest, highest, initial int, points []int) *Algorithm {
	return NewAlgorithm(Heuristic, lowest, highest, initial, points)
}

// NewPermutation is NewAlgorithm(Exhaustive, …).
func NewPermutation(lowest, highest, initial int, points []int) *Algorithm {
	return NewAlgorithm(Exhaustive, lowest, highest, initial, points)
}

// Strategy returns the bound strategy.
func (a *Algorithm) Strategy() Strategy { return a.strategy }

// Problem returns the validated problem, nil on input error.
func (a *Algorithm) Problem() *Problem { return a.problem }

// HasError reports whether the input was rejected.
func (a *Algorithm) HasError() bool { return a.err != nil }

// Err returns the input error, nil if none.
func (a *Algorithm) Err() error { return a.err }

// ErrorMessage describes the input error; empty when HasError is false.
func (a *Algorithm) ErrorMessage() string {
	if a.err == nil {
		return ""
	}
	var verr *ValidationError
	if errors.As(a.err, &verr) {
		return verr.Message()
	}

	return a.err.Error()
}

// Result solves on first use and returns the cached Result.
func (a *Algorithm) Result() (Result, error) {
	if a.err != nil {
		return Result{}, a.err
	}
	if !a.solved {
		res, err := Solve(a.problem, a.strategy, a.opts)
		if err != nil {
			a.err = err
			return Result{}, err
		}
		a.result, a.solved = res, true
	}

	return a.result, nil
}

// Solution returns the rendered tour, or "" when HasError is true.
func (a *Algorithm) Solution() string {
	res, err := a.Result()
	if err != nil {
		return ""
	}

	return res.Solution()
}

// ExecutionTime returns the measured solve duration (solving on first use).
func (a *Algorithm) ExecutionTime() time.Duration {
	res, err := a.Result()
	if err != nil {
		return 0
	}

	return res.Elapsed
}

// ExecutionTimeMillis is ExecutionTime in whole milliseconds.
func (a *Algorithm) ExecutionTimeMillis() int64 { return a.ExecutionTime().Milliseconds() }

// InputParameters dumps the validated input; empty when HasError is true
// because of invalid input.
func (a *Algorithm) InputParameters() string {
	if a.problem == nil {
		return ""
	}

	return a.problem.InputParameters()
}
