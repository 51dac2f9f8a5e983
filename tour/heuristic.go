// Package tour - Nearest-Neighbour heuristic.
//
// From the initial point, walk to the nearest unvisited point and repeat
// until none remain, then return to the initial point.
//
// State machine over a private copy of the node flags:
//   - start:      current = initial, mark Visited, emit.
//   - transition: write the distance from current into every Unvisited node,
//     pick the minimum (first in ascending point order on ties), mark it
//     Visited, emit, move current.
//   - terminal:   no Unvisited node left; emit initial to close the tour.
//
// Known limitation: greedy steps can strand far clusters and make the arm
// hopscotch across the board. With lowest=-21, highest=11, initial=0 and
// points {-21,-5,-1,0,1,3,11} the walk costs 41 while the optimum is 33.
//
// Complexity: O(n²) time, O(n) space.
package tour

// NearestNeighbor builds a tour greedily. It never mutates p.
func NearestNeighbor(p *Problem, opts Options) (Result, error) {
	if p == nil {
		return Result{}, ErrNilProblem
	}
	opts = opts.normalize()
	started := opts.Now()

	var (
		nodes   = p.Nodes()
		current = p.start
		order   = make([]int, 0, len(nodes)+1)
		cost    int
	)

	nodes[current].State = Visited
	order = append(order, current)

	for hasUnvisited(nodes) {
		// Largest distance any two points can have is below the domain size.
		shortest := p.bounds.Size()

		for i := range nodes {
			if nodes[i].Visited() {
				continue
			}
			nodes[i].distance = p.bounds.Distance(nodes[current].Point, nodes[i].Point)
			if nodes[i].distance < shortest {
				shortest = nodes[i].distance
			}
		}

		next := firstUnvisitedAt(nodes, shortest)
		nodes[next].State = Visited
		order = append(order, next)
		cost += shortest
		current = next
	}

	// Return to the initial node.
	cost += p.bounds.Distance(nodes[current].Point, p.initial)
	order = append(order, p.start)

	res := Result{
		Strategy:   Heuristic,
		Tour:       p.pointsOf(order),
		Cost:       cost,
		Candidates: 1,
	}
	opts.finish(&res, started)

	return res, nil
}

// hasUnvisited reports whether any node is still Unvisited.
func hasUnvisited(nodes []Node) bool {
	for i := range nodes {
		if !nodes[i].Visited() {
			return true
		}
	}

	return false
}

// firstUnvisitedAt returns the first Unvisited node whose scratch distance
// equals d. nodes are ascending by point, which fixes the tie-break.
func firstUnvisitedAt(nodes []Node, d int) int {
	for i := range nodes {
		if !nodes[i].Visited() && nodes[i].distance == d {
			return i
		}
	}

	return -1
}
