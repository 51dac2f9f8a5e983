package ring

import "golang.org/x/exp/constraints"

// Distance returns the circular distance between a and b on the domain
// [lowest, highest]: the shorter of the direct gap and the gap going the
// other way around.
//
// Gaps are computed in uint64, so the result is exact even when the domain
// size itself does not fit in T (the full int8 range, say). Only the two
// antipodal points of such a domain have a distance T cannot hold.
//
// Contract:
//   - lowest < highest; a and b in [lowest, highest].
//   - Distance(a, b) == Distance(b, a); Distance(a, a) == 0.
//   - 0 ≤ result ≤ size/2.
func Distance[T constraints.Signed](a, b, lowest, highest T) T {
	var (
		ua, ub = uint64(int64(a)), uint64(int64(b))
		span   = uint64(int64(highest)) - uint64(int64(lowest)) // size-1
		direct uint64
	)
	if a >= b {
		direct = ua - ub
	} else {
		direct = ub - ua
	}
	if other := span - direct + 1; other < direct {
		return T(other)
	}

	return T(direct)
}

// Distance is the method form of Distance for points of this domain.
func (b Bounds[T]) Distance(x, y T) T { return Distance(x, y, b.Lowest, b.Highest) }

// Wrap maps any value onto the circle, so Highest+1 becomes Lowest and
// Lowest-1 becomes Highest.
func (b Bounds[T]) Wrap(p T) T {
	size := b.Size()
	off := (p - b.Lowest) % size
	if off < 0 {
		off += size
	}

	return b.Lowest + off
}

// Forward counts the steps from `from` to `to` moving upwards (towards Highest,
// wrapping to Lowest).
func (b Bounds[T]) Forward(from, to T) T {
	steps := (to - from) % b.Size()
	if steps < 0 {
		steps += b.Size()
	}

	return steps
}

// Backward counts the steps from `from` to `to` moving downwards.
func (b Bounds[T]) Backward(from, to T) T { return b.Forward(to, from) }
