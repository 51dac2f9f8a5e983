package tour

import (
	"strconv"
	"strings"
)

// Solution renders the tour as space-separated point values, each followed
// by a space, e.g. "0 1 5 -5 -21 11 0 ". Callers should not rely on the
// presence or absence of the trailing space.
func (r Result) Solution() string {
	var sb strings.Builder
	for _, p := range r.Tour {
		sb.WriteString(strconv.Itoa(p))
		sb.WriteByte(' ')
	}

	return sb.String()
}

// ExecutionTimeMillis returns Elapsed in whole milliseconds.
func (r Result) ExecutionTimeMillis() int64 { return r.Elapsed.Milliseconds() }

// Gap returns how much costlier r is than best, in percent of best.
// A zero-cost best yields 0 when r is also free, otherwise 100.
func (r Result) Gap(best Result) float64 {
	if best.Cost == 0 {
		if r.Cost == 0 {
			return 0
		}
		return 100
	}

	return float64(r.Cost-best.Cost) * 100 / float64(best.Cost)
}
