// Package ringtour finds closed robot tours over points on a circular
// board, where moving past the highest point lands on the lowest.
//
// The module is split into small packages:
//
//	ring/         circular bounds and the wrap-around distance
//	tour/         problem setup, validation, solvers and the Algorithm facade
//	config/       YAML problem files with struct-tag validation
//	report/       text (lipgloss) and JSON rendering of solved tours
//	cmd/ringtour/ command line driver
//
// Three strategies are available: the nearest-neighbour heuristic, the
// exhaustive permutation search and the Held–Karp dynamic program. The two
// exact strategies always agree on the optimal cost.
//
//	a := tour.NewPermutation(-21, 11, 0, []int{-21, -5, -1, 0, 1, 3, 11})
//	if a.HasError() {
//		log.Fatal(a.ErrorMessage())
//	}
//	fmt.Println(a.Solution()) // 0 -1 -5 -21 11 3 1 0
package ringtour
