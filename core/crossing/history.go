package crossing

// History is an ordered, append-only log of state snapshots. Insertion order
// is chronological order.
type History struct {
	snapshots []State
}

// Record appends an independent copy of the state.
func (h *History) Record(s State) {
	h.snapshots = append(h.snapshots, s.Clone())
}

// Len returns the number of recorded snapshots.
func (h History) Len() int { return len(h.snapshots) }

// Snapshot returns an independent copy of the i-th recorded state.
func (h History) Snapshot(i int) State { return h.snapshots[i].Clone() }

// Last returns a copy of the most recent snapshot, if any.
func (h History) Last() (State, bool) {
	if len(h.snapshots) == 0 {
		return State{}, false
	}
	return h.snapshots[len(h.snapshots)-1].Clone(), true
}

// TotalTime sums the transit speed over every snapshot. Snapshots with an
// empty lane contribute nothing, so each completed leg is counted exactly
// once: at the snapshot taken while its crossers are still in the lane.
func (h History) TotalTime() float64 {
	t := 0.0
	for _, s := range h.snapshots {
		t += s.TransitSpeed()
	}
	return t
}

// Legs returns the cost of each leg in chronological order.
func (h History) Legs() []float64 {
	var legs []float64
	for _, s := range h.snapshots {
		if c := s.TransitSpeed(); c > 0 {
			legs = append(legs, c)
		}
	}
	return legs
}

// Visited reports whether an equal state was previously recorded. The greedy
// planner never revisits a state; this exists for exhaustive strategies that
// must avoid cycles.
func (h History) Visited(s State) bool {
	for _, prev := range h.snapshots {
		if prev.Equal(s) {
			return true
		}
	}
	return false
}
