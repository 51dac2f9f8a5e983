// Package ring models a circular ordinal domain: a bounded number line
// [Lowest, Highest] whose ends are glued together, so that stepping past
// Highest lands on Lowest and stepping below Lowest lands on Highest.
//
// Example, Lowest=1 and Highest=8:
//
//	    7  8
//	  6      1
//	  5      2
//	    4  3
//
// The distance between two points is the shorter of the two ways around:
//
//	size     = Highest - Lowest + 1
//	direct   = |a - b|
//	Distance = min(direct, size - direct)
//
// so on [-21, 11] (size 33) the points -21 and 11 are neighbours (distance 1).
//
// Everything is generic over signed integer types
// (golang.org/x/exp/constraints.Signed); callers that just need int use
// Bounds[int].
//
// Complexity: every operation is O(1).
package ring
