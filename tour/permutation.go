// Package tour - exhaustive permutation search.
//
// Enumerates every visiting order of the non-initial points, closes each
// one back to the initial point and keeps the cheapest. Since every order is
// considered the result is optimal, at the price of (n-1)! branches: past
// n≈10–11 this is no longer practical, and that is the caller's call.
//
// Branching:
//   - the initial point is fixed as path[0];
//   - siblings are tried in ascending point order;
//   - every branch receives its own copy of the visited set (a uint64 mask,
//     copied by value) and of the path slice, so siblings never observe
//     each other's steps.
//
// Selection: candidates are scored as they complete, in generation order;
// a candidate replaces the incumbent only if strictly cheaper, so ties go to
// the first one generated.
//
// Complexity: O(n!) branches, O(n) copy each; O(n²) space for the stack of
// path copies.
package tour

// permSearch holds the read-only inputs and the incumbent of one run.
type permSearch struct {
	n     int
	start int
	dist  [][]int
	full  uint64

	bestPath   []int
	bestCost   int
	found      bool
	candidates int
}

// Permutation finds a minimum-cost tour by exhaustive enumeration.
// Problems with more than MaxPermutationPoints nodes return ErrTooManyPoints.
func Permutation(p *Problem, opts Options) (Result, error) {
	if p == nil {
		return Result{}, ErrNilProblem
	}
	if p.Len() > MaxPermutationPoints {
		return Result{}, ErrTooManyPoints
	}
	opts = opts.normalize()
	started := opts.Now()

	n := p.Len()
	s := &permSearch{
		n:     n,
		start: p.start,
		dist:  p.DistanceMatrix(),
		full:  maskAll(n),
	}
	s.enumerate(uint64(1)<<p.start, []int{p.start}, 0)

	res := Result{
		Strategy:   Exhaustive,
		Tour:       p.pointsOf(s.bestPath),
		Cost:       s.bestCost,
		Candidates: s.candidates,
	}
	opts.finish(&res, started)

	return res, nil
}

// enumerate extends path (cost so far: cost) by every unvisited node.
func (s *permSearch) enumerate(visited uint64, path []int, cost int) {
	last := path[len(path)-1]

	if visited == s.full {
		// Close the tour and score it.
		s.candidates++
		total := cost + s.dist[last][s.start]
		if !s.found || total < s.bestCost {
			closed := make([]int, len(path), len(path)+1)
			copy(closed, path)
			s.bestPath = append(closed, s.start)
			s.bestCost = total
			s.found = true
		}
		return
	}

	var v int
	for v = 0; v < s.n; v++ {
		if visited&(uint64(1)<<v) != 0 {
			continue
		}
		branch := make([]int, len(path), len(path)+1)
		copy(branch, path)
		branch = append(branch, v)

		s.enumerate(visited|uint64(1)<<v, branch, cost+s.dist[last][v])
	}
}

// maskAll returns a mask with the low n bits set (n ≤ 64).
func maskAll(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}

	return uint64(1)<<n - 1
}
