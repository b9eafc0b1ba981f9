package crossing

import (
	"testing"

	"github.com/ehorn/torchcross/core/model"
)

func TestHistoryRecordsIndependentCopies(t *testing.T) {
	actors := fourActors()
	st, _ := NewState(actors)
	var h History
	h.Record(st)
	if err := st.OriginToTransit(actors[0]); err != nil {
		t.Fatalf("move: %v", err)
	}
	snap := h.Snapshot(0)
	if snap.Origin().Size() != 4 {
		t.Fatalf("recorded snapshot changed after later mutation")
	}
}

func TestHistoryTotalTime(t *testing.T) {
	actors := fourActors()
	st, _ := NewState(actors)
	var h History
	h.Record(st) // empty lane, contributes 0

	if err := st.OriginToTransit(actors[0]); err != nil {
		t.Fatalf("move: %v", err)
	}
	if err := st.OriginToTransit(actors[1]); err != nil {
		t.Fatalf("move: %v", err)
	}
	h.Record(st) // lane holds A and B, contributes 2
	if err := st.DrainToDestination(); err != nil {
		t.Fatalf("drain: %v", err)
	}
	h.Record(st) // empty again

	if got := h.TotalTime(); got != 2 {
		t.Fatalf("expected total 2, got %v", got)
	}
	legs := h.Legs()
	if len(legs) != 1 || legs[0] != 2 {
		t.Fatalf("expected one leg of cost 2, got %v", legs)
	}
}

func TestHistoryVisited(t *testing.T) {
	actors := fourActors()
	st, _ := NewState(actors)
	var h History
	h.Record(st)

	same, _ := NewState(actors)
	if !h.Visited(same) {
		t.Fatalf("equal state must be reported visited")
	}

	other := st.Clone()
	if err := other.OriginToTransit(actors[0]); err != nil {
		t.Fatalf("move: %v", err)
	}
	if h.Visited(other) {
		t.Fatalf("unseen state must not be reported visited")
	}
}

func TestHistoryLast(t *testing.T) {
	var h History
	if _, ok := h.Last(); ok {
		t.Fatalf("empty history has no last snapshot")
	}
	st, _ := NewState([]model.Actor{{ID: 0, Name: "A", Speed: 1}})
	h.Record(st)
	last, ok := h.Last()
	if !ok || !last.Equal(st) {
		t.Fatalf("last snapshot mismatch")
	}
}
