// Package tour - input and tour validation shared by every strategy.
//
// Input checks run in a fixed order and the first failure wins:
//  1. bounds      (lowest < highest, size ≤ MaxDomainSize)
//  2. initial     (initial ∈ [lowest, highest])
//  3. duplicates  (first repeated value in input order)
//  4. points      (first out-of-range value in input order)
//
// Stages 3 and 4 are separate passes over the whole input rather than one
// point-by-point walk, so {20, 1, 1} on [0, 10] reports the duplicate 1,
// not the out-of-range 20.
//
// All checks are deterministic and side-effect free; failures surface as
// *ValidationError, never as panics.
package tour

import (
	"errors"

	"github.com/katalvlaran/ringtour/ring"
)

// validateInput runs the staged checks and returns the domain on success.
//
// Complexity: O(n) time, O(n) extra space for the duplicate set.
func validateInput(lowest, highest, initial int, points []int) (ring.Bounds[int], error) {
	// Stage 1: domain shape.
	bounds, err := ring.NewBounds(lowest, highest)
	switch {
	case errors.Is(err, ring.ErrBoundsTooWide):
		return ring.Bounds[int]{}, &ValidationError{Kind: DomainTooLarge}
	case err != nil:
		return ring.Bounds[int]{}, &ValidationError{Kind: InvalidBounds}
	case bounds.Size() > MaxDomainSize:
		return ring.Bounds[int]{}, &ValidationError{Kind: DomainTooLarge}
	}

	// Stage 2: start position.
	if !bounds.Contains(initial) {
		return ring.Bounds[int]{}, &ValidationError{Kind: InitialPointOutOfBounds, Point: initial}
	}

	// Stage 3: uniqueness.
	seen := make(map[int]struct{}, len(points))
	for _, p := range points {
		if _, dup := seen[p]; dup {
			return ring.Bounds[int]{}, &ValidationError{Kind: DuplicatePoint, Point: p}
		}
		seen[p] = struct{}{}
	}

	// Stage 4: membership.
	for _, p := range points {
		if !bounds.Contains(p) {
			return ring.Bounds[int]{}, &ValidationError{Kind: PointOutOfBounds, Point: p}
		}
	}

	return bounds, nil
}

// ValidateTour enforces the closed-tour invariants against p:
//
//	len(tour) == p.Len()+1, tour[0] == tour[len-1] == p.Initial(),
//	every point of p appears exactly once in tour[0:len-1].
//
// Complexity: O(n log n) time (index lookups), O(n) space.
func ValidateTour(p *Problem, tour []int) error {
	if p == nil {
		return ErrNilProblem
	}
	n := p.Len()
	if len(tour) != n+1 {
		return ErrInvalidTour
	}
	if tour[0] != p.initial || tour[n] != p.initial {
		return ErrInvalidTour
	}

	seen := make([]bool, n)

	var (
		i, idx int
		ok     bool
	)
	for i = 0; i < n; i++ {
		idx, ok = p.Index(tour[i])
		if !ok || seen[idx] {
			return ErrInvalidTour
		}
		seen[idx] = true
	}

	return nil
}
