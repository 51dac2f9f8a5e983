// Package tour - cost utilities shared by every strategy.
//
// TourCost sums circular distances along consecutive tour entries; the
// closing edge is counted only when the tour repeats the start at the end,
// which every Result does.
package tour

// TourCost returns Σ Distance(tour[i], tour[i+1]) on p's domain.
//
// Contract:
//   - len(tour) >= 2 and every entry is a point of p; otherwise ErrInvalidTour.
//   - The tour need not be complete; use ValidateTour for closure checks.
//
// Complexity: O(n log n).
func TourCost(p *Problem, tour []int) (int, error) {
	if p == nil {
		return 0, ErrNilProblem
	}
	if len(tour) < 2 {
		return 0, ErrInvalidTour
	}

	var (
		sum int
		i   int
		ok  bool
	)
	for i = 0; i < len(tour); i++ {
		if _, ok = p.Index(tour[i]); !ok {
			return 0, ErrInvalidTour
		}
		if i > 0 {
			sum += p.bounds.Distance(tour[i-1], tour[i])
		}
	}

	return sum, nil
}

// pointsOf maps canonical indices back to point values.
func (p *Problem) pointsOf(path []int) []int {
	out := make([]int, len(path))
	for i, idx := range path {
		out[i] = p.nodes[idx].Point
	}

	return out
}
