package tour_test

import (
	"testing"

	"github.com/katalvlaran/ringtour/tour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHeldKarp_MatchesPermutation on the fixed instances.
func TestHeldKarp_MatchesPermutation(t *testing.T) {
	for _, pts := range [][]int{hopscotchPoints, demoPoints} {
		p := mustBuild(t, lowDemo, highDemo, initDemo, pts)

		dp, err := tour.HeldKarp(p, tour.Options{})
		require.NoError(t, err)
		requireValidTour(t, p, dp)

		perm, err := tour.Permutation(p, tour.Options{})
		require.NoError(t, err)

		assert.Equal(t, perm.Cost, dp.Cost)
		assert.Equal(t, tour.DynamicProgramming, dp.Strategy)
		assert.Equal(t, p.Len()-1, dp.Candidates)
	}
}

// TestHeldKarp_StartNotLowest anchors the DP on a middle node.
func TestHeldKarp_StartNotLowest(t *testing.T) {
	p := mustBuild(t, 0, 20, 10, []int{0, 5, 15, 20})

	res, err := tour.HeldKarp(p, tour.Options{})
	require.NoError(t, err)
	requireValidTour(t, p, res)
	assert.Equal(t, 10, res.Tour[0])
	assert.Equal(t, 21, res.Cost)
}

// TestHeldKarp_SmallCases covers one and two nodes.
func TestHeldKarp_SmallCases(t *testing.T) {
	res, err := tour.HeldKarp(mustBuild(t, 0, 10, 2, nil), tour.Options{})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, res.Tour)
	assert.Zero(t, res.Cost)

	res, err = tour.HeldKarp(mustBuild(t, 0, 10, 2, []int{5}), tour.Options{})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5, 2}, res.Tour)
	assert.Equal(t, 6, res.Cost)
}

// TestHeldKarp_Errors covers nil and oversized problems.
func TestHeldKarp_Errors(t *testing.T) {
	_, err := tour.HeldKarp(nil, tour.Options{})
	assert.ErrorIs(t, err, tour.ErrNilProblem)

	pts := make([]int, tour.MaxHeldKarpPoints)
	for i := range pts {
		pts[i] = i + 1
	}
	big := mustBuild(t, 0, 100, 0, pts)
	_, err = tour.HeldKarp(big, tour.Options{})
	assert.ErrorIs(t, err, tour.ErrTooManyPoints)
}
