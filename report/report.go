// Package report renders solved tours for people (styled text) or for
// machines (JSON).
//
// The text layout follows the classic demo output: the input dump, then one
// block per strategy with its path, cost and execution time. When at least
// one exact strategy ran, every block also shows its gap to the optimum.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/ringtour/tour"
)

// ErrUnknownFormat is returned by Write for formats other than text/json.
var ErrUnknownFormat = errors.New("report: unknown format")

// Report groups the results of several strategies on one problem.
type Report struct {
	Problem *tour.Problem
	Results []tour.Result
}

// New builds a Report.
func New(p *tour.Problem, results ...tour.Result) Report {
	return Report{Problem: p, Results: results}
}

// Optimum returns the cheapest result of an exact strategy, if any ran.
func (r Report) Optimum() (tour.Result, bool) {
	var (
		best  tour.Result
		found bool
	)
	for _, res := range r.Results {
		if !res.Strategy.Exact() {
			continue
		}
		if !found || res.Cost < best.Cost {
			best, found = res, true
		}
	}

	return best, found
}

// Write renders r in format ("text" or "json").
func Write(w io.Writer, format string, r Report) error {
	switch format {
	case "text", "":
		return Text(w, r)
	case "json":
		return JSON(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Text writes the human-readable report. Styling degrades to plain text
// when w is not a terminal.
func Text(w io.Writer, r Report) error {
	var (
		re    = lipgloss.NewRenderer(w)
		title = re.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF00FF"))
		input = re.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)
		head = re.NewStyle().Bold(true)
		path = re.NewStyle().Foreground(lipgloss.Color("#00FF00"))
		dim  = re.NewStyle().Faint(true)
	)

	var sb strings.Builder
	sb.WriteString(title.Render("Robot Tour Optimization"))
	sb.WriteString("\n")
	if r.Problem != nil {
		sb.WriteString(input.Render(strings.TrimRight(r.Problem.InputParameters(), " ")))
		sb.WriteString("\n")
	}

	opt, haveOpt := r.Optimum()
	for _, res := range r.Results {
		sb.WriteString("\n")
		sb.WriteString(head.Render(fmt.Sprintf("The %s algorithm returned the following path:", res.Strategy)))
		sb.WriteString("\n")
		sb.WriteString(path.Render(strings.TrimSpace(res.Solution())))
		sb.WriteString("\n")

		line := fmt.Sprintf("Cost: %d  Execution Time: %dms", res.Cost, res.ExecutionTimeMillis())
		if haveOpt {
			line += fmt.Sprintf("  Gap: %+.2f%%", res.Gap(opt))
		}
		sb.WriteString(dim.Render(line))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

type jsonReport struct {
	Lowest  int          `json:"lowest"`
	Highest int          `json:"highest"`
	Initial int          `json:"initial"`
	Points  []int        `json:"points"`
	Results []jsonResult `json:"results"`
}

type jsonResult struct {
	Strategy   string   `json:"strategy"`
	Tour       []int    `json:"tour"`
	Solution   string   `json:"solution"`
	Cost       int      `json:"cost"`
	Candidates int      `json:"candidates"`
	ElapsedMS  float64  `json:"elapsed_ms"`
	GapPercent *float64 `json:"gap_percent,omitempty"`
}

// JSON writes r as one indented JSON document.
func JSON(w io.Writer, r Report) error {
	out := jsonReport{Results: make([]jsonResult, 0, len(r.Results))}
	if r.Problem != nil {
		out.Lowest = r.Problem.Lowest()
		out.Highest = r.Problem.Highest()
		out.Initial = r.Problem.Initial()
		out.Points = r.Problem.Points()
	}

	opt, haveOpt := r.Optimum()
	for _, res := range r.Results {
		jr := jsonResult{
			Strategy:   res.Strategy.String(),
			Tour:       res.Tour,
			Solution:   strings.TrimSpace(res.Solution()),
			Cost:       res.Cost,
			Candidates: res.Candidates,
			ElapsedMS:  float64(res.Elapsed.Microseconds()) / 1000,
		}
		if haveOpt {
			gap := res.Gap(opt)
			jr.GapPercent = &gap
		}
		out.Results = append(out.Results, jr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
