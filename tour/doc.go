// Package tour solves the robot tour optimisation problem on a circular
// domain: starting from an initial point, visit every required point exactly
// once and return to the start, minimising the total circular distance
// (see package ring for the metric).
//
// The problem comes from circuit-board assembly: a robot arm must solder a
// set of contact points and then return to the first one to prepare for the
// next board, so its tool path is a closed tour.
//
// Three strategies share one validated Problem value:
//
//   - Heuristic (NearestNeighbor) always walks to the closest unvisited
//     point, ties broken by the lower point value. It runs in O(n²) but is
//     not optimal: on [-21, 11] from 0 with {-21,-5,-1,0,1,3,11} it
//     hopscotches left and right across the board.
//   - Exhaustive (Permutation) enumerates every visiting order and keeps
//     the first cheapest one. Optimal by construction, with O(n!) branches,
//     so it is impractical beyond n≈10–11.
//   - DynamicProgramming (HeldKarp) is the Held–Karp bitmask DP, O(n²·2ⁿ)
//     time and O(n·2ⁿ) memory for n ≤ MaxHeldKarpPoints. It is optimal and
//     finds the same cost as Permutation.
//
// Every solver works on its own copy of the node set, so running several
// strategies on the same Problem never interferes. Results carry the tour,
// its cost and the measured wall-clock duration.
//
// Callers that prefer a stateful object with an error flag use Algorithm:
//
//	a := tour.NewHeuristic(-21, 11, 0, []int{-21, -5, -1, 0, 1, 3, 11})
//	if a.HasError() {
//		fmt.Println(a.ErrorMessage())
//		return
//	}
//	fmt.Println(a.Solution()) // "0 -1 1 3 -5 -21 11 0 "
package tour
