package ring

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	// ErrInvalidBounds is returned when Lowest is not strictly below Highest.
	ErrInvalidBounds = errors.New("ring: lowest point must be less than highest point")

	// ErrBoundsTooWide is returned when Highest-Lowest+1 does not fit in T,
	// e.g. the full int8 range [-128, 127].
	ErrBoundsTooWide = errors.New("ring: domain size overflows the point type")
)

// Bounds is the inclusive range [Lowest, Highest] of a circular domain.
// The zero value is not a valid domain; build one with NewBounds.
type Bounds[T constraints.Signed] struct {
	Lowest  T
	Highest T
}

// NewBounds returns Bounds{lowest, highest}, ErrInvalidBounds if
// lowest >= highest, or ErrBoundsTooWide if Size would overflow T.
func NewBounds[T constraints.Signed](lowest, highest T) (Bounds[T], error) {
	if lowest >= highest {
		return Bounds[T]{}, ErrInvalidBounds
	}
	if !sizeFits(lowest, highest) {
		return Bounds[T]{}, ErrBoundsTooWide
	}

	return Bounds[T]{Lowest: lowest, Highest: highest}, nil
}

// Valid reports whether Lowest < Highest and Size fits in T.
func (b Bounds[T]) Valid() bool { return b.Lowest < b.Highest && sizeFits(b.Lowest, b.Highest) }

// Size is the number of points on the circle, Highest-Lowest+1.
// Only meaningful for Valid bounds.
func (b Bounds[T]) Size() T { return b.Highest - b.Lowest + 1 }

// Contains reports whether p lies in [Lowest, Highest].
func (b Bounds[T]) Contains(p T) bool { return p >= b.Lowest && p <= b.Highest }

// sizeFits reports whether highest-lowest+1 is representable, given
// lowest < highest. Signed overflow wraps, so a span past the maximum
// shows up as a negative difference.
func sizeFits[T constraints.Signed](lowest, highest T) bool {
	span := highest - lowest
	return span >= 0 && span+1 > 0
}
