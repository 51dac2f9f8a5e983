package tour

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/ringtour/ring"
)

// Problem is a validated tour instance: the circular domain, the initial
// point and the canonical node set (points to visit plus the initial point,
// unique, ascending by value, all Unvisited).
//
// A Problem is immutable once built; solvers take private copies of its
// nodes, so one Problem may be handed to any number of strategies.
type Problem struct {
	bounds  ring.Bounds[int]
	initial int
	nodes   []Node
	start   int // index of initial in nodes
}

// Build validates the raw input and constructs a Problem.
//
// Errors are *ValidationError values (see validate.go for the check order);
// use errors.Is with ErrInvalidBounds, ErrDomainTooLarge,
// ErrInitialOutOfBounds, ErrDuplicatePoint or ErrPointOutOfBounds to
// classify them.
//
// The caller's slice is neither retained nor modified.
//
// Complexity: O(n log n).
func Build(lowest, highest, initial int, points []int) (*Problem, error) {
	bounds, err := validateInput(lowest, highest, initial, points)
	if err != nil {
		return nil, err
	}

	values := make([]int, 0, len(points)+1)
	values = append(values, points...)
	if !slices.Contains(values, initial) {
		values = append(values, initial)
	}
	slices.Sort(values)

	nodes := make([]Node, len(values))
	for i, v := range values {
		nodes[i] = Node{Point: v, State: Unvisited}
	}
	start, _ := slices.BinarySearch(values, initial)

	return &Problem{bounds: bounds, initial: initial, nodes: nodes, start: start}, nil
}

// Bounds returns the circular domain.
func (p *Problem) Bounds() ring.Bounds[int] { return p.bounds }

// Lowest returns the lowest point of the domain.
func (p *Problem) Lowest() int { return p.bounds.Lowest }

// Highest returns the highest point of the domain.
func (p *Problem) Highest() int { return p.bounds.Highest }

// Initial returns the start and end of every tour.
func (p *Problem) Initial() int { return p.initial }

// Len is the number of distinct points, initial point included.
func (p *Problem) Len() int { return len(p.nodes) }

// Points returns the canonical ascending point values.
func (p *Problem) Points() []int {
	out := make([]int, len(p.nodes))
	for i := range p.nodes {
		out[i] = p.nodes[i].Point
	}

	return out
}

// Nodes returns a fresh, all-Unvisited copy of the node set.
func (p *Problem) Nodes() []Node { return slices.Clone(p.nodes) }

// Index returns the canonical position of point, if present.
func (p *Problem) Index(point int) (int, bool) {
	return slices.BinarySearchFunc(p.nodes, point, func(n Node, v int) int { return cmp.Compare(n.Point, v) })
}

// Distance is the circular distance on the problem's domain.
func (p *Problem) Distance(a, b int) int { return p.bounds.Distance(a, b) }

// DistanceMatrix returns d[i][j] = Distance(Points()[i], Points()[j]).
//
// Complexity: O(n²) time and space.
func (p *Problem) DistanceMatrix() [][]int {
	n := len(p.nodes)
	d := make([][]int, n)

	var i, j int
	for i = 0; i < n; i++ {
		d[i] = make([]int, n)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d[i][j] = p.bounds.Distance(p.nodes[i].Point, p.nodes[j].Point)
			d[j][i] = d[i][j]
		}
	}

	return d
}

// InputParameters is a human-readable dump of the problem for debugging.
// It is not a stable machine format.
func (p *Problem) InputParameters() string {
	var sb strings.Builder

	sb.WriteString("Lowest Point: ")
	sb.WriteString(strconv.Itoa(p.bounds.Lowest))
	sb.WriteByte('\n')

	sb.WriteString("Highest Point: ")
	sb.WriteString(strconv.Itoa(p.bounds.Highest))
	sb.WriteByte('\n')

	sb.WriteString("Initial Point: ")
	sb.WriteString(strconv.Itoa(p.initial))
	sb.WriteByte('\n')

	sb.WriteString("Points To Visit: ")
	sb.WriteByte('\n')
	for i := range p.nodes {
		sb.WriteString(strconv.Itoa(p.nodes[i].Point))
		sb.WriteByte(' ')
	}

	return sb.String()
}
