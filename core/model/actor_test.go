package model

import "testing"

func TestActorLessOrdersBySpeed(t *testing.T) {
	a := Actor{ID: 0, Speed: 1}
	b := Actor{ID: 1, Speed: 5}
	if !a.Less(b) {
		t.Fatalf("expected %v < %v", a, b)
	}
	if b.Less(a) {
		t.Fatalf("ordering not antisymmetric")
	}
}

func TestActorLessBreaksTiesByID(t *testing.T) {
	a := Actor{ID: 0, Speed: 3}
	b := Actor{ID: 1, Speed: 3}
	if !a.Less(b) {
		t.Fatalf("lower id must sort first on equal speed")
	}
	if b.Less(a) {
		t.Fatalf("tie-break must be strict")
	}
}

func TestIngestAssignsSequentialIDs(t *testing.T) {
	actors, err := Ingest([]Definition{{Name: "A", Speed: 1}, {Name: "A", Speed: 2}, {Name: "B", Speed: 5}})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	for i, a := range actors {
		if a.ID != i {
			t.Fatalf("actor %d got id %d", i, a.ID)
		}
	}
	if actors[0].Name != "A" || actors[1].Name != "A" {
		t.Fatalf("duplicate names must be preserved: %v", actors)
	}
}

func TestIngestRejectsNonPositiveSpeed(t *testing.T) {
	if _, err := Ingest([]Definition{{Name: "A", Speed: 0}}); err == nil {
		t.Fatalf("expected error for zero speed")
	}
	if _, err := Ingest([]Definition{{Name: "A", Speed: -2}}); err == nil {
		t.Fatalf("expected error for negative speed")
	}
}

func TestIngestEmpty(t *testing.T) {
	actors, err := Ingest(nil)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if len(actors) != 0 {
		t.Fatalf("expected no actors, got %v", actors)
	}
}
