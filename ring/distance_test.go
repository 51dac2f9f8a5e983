package ring_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ringtour/ring"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBounds(t *testing.T) {
	b, err := ring.NewBounds(-21, 11)
	require.NoError(t, err)
	assert.Equal(t, 33, b.Size())
	assert.True(t, b.Valid())

	_, err = ring.NewBounds(5, 2)
	assert.ErrorIs(t, err, ring.ErrInvalidBounds)
	_, err = ring.NewBounds(3, 3)
	assert.ErrorIs(t, err, ring.ErrInvalidBounds)
	assert.False(t, ring.Bounds[int]{}.Valid())
}

func TestNewBounds_TooWide(t *testing.T) {
	_, err := ring.NewBounds[int8](-128, 127)
	assert.ErrorIs(t, err, ring.ErrBoundsTooWide)
	_, err = ring.NewBounds(math.MinInt, math.MaxInt)
	assert.ErrorIs(t, err, ring.ErrBoundsTooWide)
	_, err = ring.NewBounds(math.MinInt+1, 0)
	assert.ErrorIs(t, err, ring.ErrBoundsTooWide, "size one past MaxInt")
	assert.False(t, ring.Bounds[int8]{Lowest: -128, Highest: 127}.Valid())

	b, err := ring.NewBounds[int8](-127, 126)
	require.NoError(t, err)
	assert.Equal(t, int8(127), b.Size())
	bi, err := ring.NewBounds(math.MinInt+1, -1)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, bi.Size())
}

func TestDistance_Table(t *testing.T) {
	cases := []struct {
		name       string
		a, b       int
		lo, hi     int
		want       int
		wantMethod int
	}{
		{"ends are neighbours", -21, 11, -21, 11, 1, 1},
		{"same point", 0, 0, -21, 11, 0, 0},
		{"direct wins", 0, 5, -21, 11, 5, 5},
		{"wrap wins", -20, 10, -21, 11, 3, 3},
		{"half way even size", 1, 5, 1, 8, 4, 4},
		{"half way odd size", 0, 5, 0, 10, 5, 5},
		{"odd size past half", 0, 6, 0, 10, 5, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ring.Distance(tc.a, tc.b, tc.lo, tc.hi))
			b := ring.Bounds[int]{Lowest: tc.lo, Highest: tc.hi}
			assert.Equal(t, tc.wantMethod, b.Distance(tc.a, tc.b))
		})
	}
}

func TestDistance_Int8(t *testing.T) {
	// Generic over any signed type.
	assert.Equal(t, int8(1), ring.Distance[int8](-3, 3, -3, 3))
	assert.Equal(t, int64(2), ring.Bounds[int64]{Lowest: 0, Highest: 9}.Distance(9, 1))
}

func TestDistance_FullRange(t *testing.T) {
	cases := []struct {
		name string
		got  int64
		want int64
	}{
		{"int8 wrap gap", int64(ring.Distance[int8](-100, 100, -128, 127)), 56},
		{"int8 direct gap", int64(ring.Distance[int8](-28, 99, -128, 127)), 127},
		{"int8 ends", int64(ring.Distance[int8](-128, 127, -128, 127)), 1},
		{"int direct", int64(ring.Distance(0, 5, math.MinInt, math.MaxInt)), 5},
		{"int ends", int64(ring.Distance(math.MinInt, math.MaxInt, math.MinInt, math.MaxInt)), 1},
		{"int64 wrap", ring.Distance[int64](math.MinInt64+2, math.MaxInt64-3, math.MinInt64, math.MaxInt64), 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
			assert.GreaterOrEqual(t, tc.got, int64(0))
		})
	}
}

func TestBounds_Contains(t *testing.T) {
	b := ring.Bounds[int]{Lowest: 0, Highest: 10}
	assert.True(t, b.Contains(0))
	assert.True(t, b.Contains(10))
	assert.False(t, b.Contains(-1))
	assert.False(t, b.Contains(11))
}

func TestBounds_Wrap(t *testing.T) {
	b := ring.Bounds[int]{Lowest: 1, Highest: 8}
	assert.Equal(t, 1, b.Wrap(9))
	assert.Equal(t, 8, b.Wrap(0))
	assert.Equal(t, 5, b.Wrap(5))
	assert.Equal(t, 3, b.Wrap(19))
	assert.Equal(t, 6, b.Wrap(-10))
}

func TestBounds_ForwardBackward(t *testing.T) {
	b := ring.Bounds[int]{Lowest: 1, Highest: 8}
	assert.Equal(t, 2, b.Forward(7, 1))
	assert.Equal(t, 6, b.Backward(7, 1))
	assert.Equal(t, 0, b.Forward(4, 4))
	assert.Equal(t, 3, b.Forward(2, 5))
	assert.Equal(t, 5, b.Backward(2, 5))
}

// TestDistance_Properties checks the metric laws over random domains.
func TestDistance_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	// domain [lo, lo+span], points picked as offsets inside it
	properties.Property("symmetric", prop.ForAll(
		func(lo, span, x, y int) bool {
			a, b := lo+x%(span+1), lo+y%(span+1)
			return ring.Distance(a, b, lo, lo+span) == ring.Distance(b, a, lo, lo+span)
		},
		gen.IntRange(-1000, 1000), gen.IntRange(1, 500), gen.IntRange(0, 10000), gen.IntRange(0, 10000),
	))

	properties.Property("zero iff equal", prop.ForAll(
		func(lo, span, x, y int) bool {
			a, b := lo+x%(span+1), lo+y%(span+1)
			d := ring.Distance(a, b, lo, lo+span)
			return (d == 0) == (a == b)
		},
		gen.IntRange(-1000, 1000), gen.IntRange(1, 500), gen.IntRange(0, 10000), gen.IntRange(0, 10000),
	))

	properties.Property("bounded by half the circle", prop.ForAll(
		func(lo, span, x, y int) bool {
			a, b := lo+x%(span+1), lo+y%(span+1)
			d := ring.Distance(a, b, lo, lo+span)
			return d >= 0 && 2*d <= span+1
		},
		gen.IntRange(-1000, 1000), gen.IntRange(1, 500), gen.IntRange(0, 10000), gen.IntRange(0, 10000),
	))

	properties.Property("min of both directions", prop.ForAll(
		func(lo, span, x, y int) bool {
			bd := ring.Bounds[int]{Lowest: lo, Highest: lo + span}
			a, b := lo+x%(span+1), lo+y%(span+1)
			return bd.Distance(a, b) == min(bd.Forward(a, b), bd.Backward(a, b))
		},
		gen.IntRange(-1000, 1000), gen.IntRange(1, 500), gen.IntRange(0, 10000), gen.IntRange(0, 10000),
	))

	properties.TestingRun(t)
}
