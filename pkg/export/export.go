package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ehorn/torchcross/core/crossing"
)

// Snapshot is one step of the plan in exportable form.
type Snapshot struct {
	Origin      []string `json:"origin"`
	Transit     []string `json:"transit"`
	Destination []string `json:"destination"`
	LegCost     float64  `json:"leg_cost"`
}

// Plan is the exportable form of a full crossing history.
type Plan struct {
	Snapshots []Snapshot `json:"snapshots"`
	TotalTime float64    `json:"total_time"`
}

func names(area crossing.Area) []string {
	actors := area.Actors()
	out := make([]string, len(actors))
	for i, a := range actors {
		out[i] = a.Name
	}
	return out
}

// NewPlan converts a history into its exportable form.
func NewPlan(h crossing.History) Plan {
	p := Plan{Snapshots: make([]Snapshot, 0, h.Len()), TotalTime: h.TotalTime()}
	for i := 0; i < h.Len(); i++ {
		st := h.Snapshot(i)
		p.Snapshots = append(p.Snapshots, Snapshot{
			Origin:      names(st.Origin()),
			Transit:     names(st.Transit()),
			Destination: names(st.Destination()),
			LegCost:     st.TransitSpeed(),
		})
	}
	return p
}

// WriteText renders the plan step by step, one area per line, followed by
// the total crossing time.
func WriteText(w io.Writer, h crossing.History) error {
	p := NewPlan(h)
	for _, s := range p.Snapshots {
		if _, err := fmt.Fprintf(w, "ORIGIN: %s\nTRANSIT: %s\nDESTINATION: %s\n\n",
			strings.Join(s.Origin, " "), strings.Join(s.Transit, " "), strings.Join(s.Destination, " ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "TOTAL TIME %v\n", p.TotalTime)
	return err
}

// WriteJSON writes the plan to w in JSON format.
func WriteJSON(w io.Writer, h crossing.History) error {
	enc := json.NewEncoder(w)
	return enc.Encode(NewPlan(h))
}

// WriteCSV writes one row per snapshot, areas as space-joined name lists.
func WriteCSV(w io.Writer, h crossing.History) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"snapshot", "origin", "transit", "destination", "leg_cost"}); err != nil {
		return err
	}
	for i, s := range NewPlan(h).Snapshots {
		rec := []string{
			strconv.Itoa(i),
			strings.Join(s.Origin, " "),
			strings.Join(s.Transit, " "),
			strings.Join(s.Destination, " "),
			strconv.FormatFloat(s.LegCost, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
