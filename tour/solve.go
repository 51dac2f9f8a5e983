// Package tour - unified dispatcher.
//
// Solve routes a validated Problem to the requested Strategy; it is the
// single entry point used by Algorithm and by the command-line driver.
package tour

import "fmt"

// Solve runs strategy s on p.
//
// Errors: ErrNilProblem, ErrUnsupportedStrategy, or ErrTooManyPoints
// wrapped with the offending sizes.
func Solve(p *Problem, s Strategy, opts Options) (Result, error) {
	if p == nil {
		return Result{}, ErrNilProblem
	}
	if err := checkCapacity(p, s); err != nil {
		return Result{}, err
	}

	switch s {
	case Heuristic:
		return NearestNeighbor(p, opts)
	case Exhaustive:
		return Permutation(p, opts)
	case DynamicProgramming:
		return HeldKarp(p, opts)
	default:
		return Result{}, ErrUnsupportedStrategy
	}
}

// checkCapacity rejects unknown strategies and oversized problems.
func checkCapacity(p *Problem, s Strategy) error {
	if s < Heuristic || s > DynamicProgramming {
		return ErrUnsupportedStrategy
	}
	if p.Len() > s.Capacity() {
		return fmt.Errorf("%w: %s handles at most %d points, got %d", ErrTooManyPoints, s, s.Capacity(), p.Len())
	}

	return nil
}
