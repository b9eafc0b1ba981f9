package model

import "fmt"

// Actor is one participant in the crossing. Actors are immutable once
// ingested; identity is the ID, the name is display-only and may repeat.
type Actor struct {
	ID    int
	Name  string
	Speed float64 // time to cross alone, or as the slower half of a pair
}

// Less orders actors by (Speed, ID). Slower actors sort later; the ID breaks
// ties so the order is strict even among equal speeds.
func (a Actor) Less(b Actor) bool {
	if a.Speed == b.Speed {
		return a.ID < b.ID
	}
	return a.Speed < b.Speed
}

// Definition is a named speed as supplied by ingestion, before an ID exists.
type Definition struct {
	Name  string
	Speed float64
}

// Ingest assigns each definition a unique, monotonically increasing ID in
// input order and returns the resulting actors. Non-positive speeds are
// rejected before any actor is built.
func Ingest(defs []Definition) ([]Actor, error) {
	actors := make([]Actor, 0, len(defs))
	for i, d := range defs {
		if d.Speed <= 0 {
			return nil, fmt.Errorf("actor %q: speed must be positive, got %v", d.Name, d.Speed)
		}
		actors = append(actors, Actor{ID: i, Name: d.Name, Speed: d.Speed})
	}
	return actors, nil
}
