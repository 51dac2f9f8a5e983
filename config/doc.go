// Package config loads ringtour problem files.
//
// A problem file is YAML:
//
//	lowest: -21
//	highest: 11
//	initial: 0
//	points: [-21, -11, -6, -5, -1, 0, 1, 5, 7, 11]
//	strategies: [heuristic, permutation]
//	format: text
//
// Missing keys keep the values of Default. The file shape (strategy names,
// output format) is checked with go-playground/validator struct tags; the
// structural rules of the tour itself (bounds, duplicates, ranges) are left
// to tour.Build so that their order and messages stay in one place.
package config
