package crossing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ehorn/torchcross/core/model"
)

var (
	// ErrEmptyArea is returned when Fastest or Slowest is asked of an area
	// with no members.
	ErrEmptyArea = errors.New("area is empty")
	// ErrNotPresent is returned when a transfer names an actor the source
	// area does not hold.
	ErrNotPresent = errors.New("actor not present in area")
	// ErrDuplicateID is returned when an actor would be added to an area
	// that already holds its ID.
	ErrDuplicateID = errors.New("duplicate actor id")
)

// Area is a set of actors keyed by ID. The zero value is an empty area.
type Area struct {
	members map[int]model.Actor
}

// NewArea builds an area holding the given actors.
func NewArea(actors ...model.Actor) (Area, error) {
	var a Area
	for _, actor := range actors {
		if err := a.Add(actor); err != nil {
			return Area{}, err
		}
	}
	return a, nil
}

// Add inserts the actor. Adding an ID already present is an error rather
// than a silent overwrite.
func (a *Area) Add(actor model.Actor) error {
	if a.members == nil {
		a.members = make(map[int]model.Actor)
	}
	if _, ok := a.members[actor.ID]; ok {
		return fmt.Errorf("add %q (%d): %w", actor.Name, actor.ID, ErrDuplicateID)
	}
	a.members[actor.ID] = actor
	return nil
}

// Empty reports whether no actor is in the area.
func (a Area) Empty() bool { return len(a.members) == 0 }

// Size returns the number of actors in the area.
func (a Area) Size() int { return len(a.members) }

// Contains reports whether the actor with the given ID is in the area.
func (a Area) Contains(id int) bool {
	_, ok := a.members[id]
	return ok
}

// Fastest returns the actor with minimal (speed, id).
func (a Area) Fastest() (model.Actor, error) {
	if a.Empty() {
		return model.Actor{}, fmt.Errorf("fastest: %w", ErrEmptyArea)
	}
	var best model.Actor
	first := true
	for _, actor := range a.members {
		if first || actor.Less(best) {
			best = actor
			first = false
		}
	}
	return best, nil
}

// Slowest returns the actor with maximal (speed, id).
func (a Area) Slowest() (model.Actor, error) {
	if a.Empty() {
		return model.Actor{}, fmt.Errorf("slowest: %w", ErrEmptyArea)
	}
	var worst model.Actor
	first := true
	for _, actor := range a.members {
		if first || worst.Less(actor) {
			worst = actor
			first = false
		}
	}
	return worst, nil
}

// Transfer moves the actor from this area to another.
func (a *Area) Transfer(actor model.Actor, to *Area) error {
	if _, ok := a.members[actor.ID]; !ok {
		return fmt.Errorf("transfer %q (%d): %w", actor.Name, actor.ID, ErrNotPresent)
	}
	if err := to.Add(actor); err != nil {
		return err
	}
	delete(a.members, actor.ID)
	return nil
}

// TransferAll moves every member to another area, slowest first. The order
// only matters for producing a deterministic sequence of transfers.
func (a *Area) TransferAll(to *Area) error {
	for !a.Empty() {
		actor, err := a.Slowest()
		if err != nil {
			return err
		}
		if err := a.Transfer(actor, to); err != nil {
			return err
		}
	}
	return nil
}

// Equal reports set equality by membership.
func (a Area) Equal(b Area) bool {
	if len(a.members) != len(b.members) {
		return false
	}
	for id := range a.members {
		if _, ok := b.members[id]; !ok {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the area.
func (a Area) Clone() Area {
	if a.members == nil {
		return Area{}
	}
	c := Area{members: make(map[int]model.Actor, len(a.members))}
	for id, actor := range a.members {
		c.members[id] = actor
	}
	return c
}

// Actors returns the members ordered fastest first.
func (a Area) Actors() []model.Actor {
	out := make([]model.Actor, 0, len(a.members))
	for _, actor := range a.members {
		out = append(out, actor)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
