// Package tour - Held–Karp dynamic programming.
//
// dp[mask][j] is the minimum cost of a path that starts at the initial
// node, visits exactly the nodes in mask (which always contains the initial
// node) and ends at j. Closing the tour adds d[j][start] and picks the best j.
//
// Ties are resolved towards the lower predecessor index and then the lower
// closing index, so the output is deterministic.
//
// Time complexity:   O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
package tour

import "math"

// HeldKarp finds a minimum-cost tour with the Held–Karp DP.
// Problems with more than MaxHeldKarpPoints nodes return ErrTooManyPoints.
func HeldKarp(p *Problem, opts Options) (Result, error) {
	if p == nil {
		return Result{}, ErrNilProblem
	}
	if p.Len() > MaxHeldKarpPoints {
		return Result{}, ErrTooManyPoints
	}
	opts = opts.normalize()
	started := opts.Now()

	var (
		n         = p.Len()
		d         = p.DistanceMatrix()
		start     = p.start
		startMask = 1 << start
		allMask   = (1 << n) - 1
		inf       = math.MaxInt
	)

	// Single point: the arm never moves.
	if n == 1 {
		res := Result{Strategy: DynamicProgramming, Tour: []int{p.initial, p.initial}, Candidates: 1}
		opts.finish(&res, started)
		return res, nil
	}

	// --- 1. Allocate flat DP and parent tables, cell (mask, j) at mask*n+j ---
	dp := make([]int, (allMask+1)*n)
	parent := make([]int, (allMask+1)*n)
	for i := range dp {
		dp[i] = inf
		parent[i] = -1
	}
	dp[startMask*n+start] = 0

	// --- 2. Fill masks that contain the start node ---
	var (
		mask, prev int
		j, k       int
		cand       int
	)
	for mask = startMask; mask <= allMask; mask++ {
		if mask&startMask == 0 {
			continue
		}
		for j = 0; j < n; j++ {
			if j == start || mask&(1<<j) == 0 {
				continue
			}
			prev = mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 || dp[prev*n+k] == inf {
					continue
				}
				cand = dp[prev*n+k] + d[k][j]
				if cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = k
				}
			}
		}
	}

	// --- 3. Close the tour back to start ---
	var (
		bestCost = inf
		last     = -1
	)
	for j = 0; j < n; j++ {
		if j == start {
			continue
		}
		cand = dp[allMask*n+j] + d[j][start]
		if cand < bestCost {
			bestCost = cand
			last = j
		}
	}

	// --- 4. Reconstruct from the parent table ---
	order := make([]int, n+1)
	order[0], order[n] = start, start
	mask, j = allMask, last
	for i := n - 1; i >= 1; i-- {
		order[i] = j
		k = parent[mask*n+j]
		mask ^= 1 << j
		j = k
	}

	res := Result{
		Strategy:   DynamicProgramming,
		Tour:       p.pointsOf(order),
		Cost:       bestCost,
		Candidates: n - 1,
	}
	opts.finish(&res, started)

	return res, nil
}
