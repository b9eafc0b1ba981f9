package export

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/ehorn/torchcross/core/crossing"
)

// LegStats summarizes the per-leg crossing costs of a plan.
type LegStats struct {
	Count  int
	Total  float64
	Mean   float64
	Max    float64
	Median float64
	P90    float64
}

// Summarize computes leg cost statistics for the history.
func Summarize(h crossing.History) LegStats {
	legs := h.Legs()
	if len(legs) == 0 {
		return LegStats{}
	}
	sorted := append([]float64(nil), legs...)
	sort.Float64s(sorted)
	s := LegStats{
		Count:  len(legs),
		Total:  h.TotalTime(),
		Mean:   stat.Mean(sorted, nil),
		Max:    sorted[len(sorted)-1],
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:    stat.Quantile(0.9, stat.Empirical, sorted, nil),
	}
	return s
}

// WriteSummary renders the leg statistics for the history.
func WriteSummary(w io.Writer, h crossing.History) error {
	s := Summarize(h)
	_, err := fmt.Fprintf(w, "legs=%d total=%.2f mean=%.2f median=%.2f p90=%.2f max=%.2f\n",
		s.Count, s.Total, s.Mean, s.Median, s.P90, s.Max)
	return err
}
