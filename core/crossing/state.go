package crossing

import (
	"errors"
	"fmt"

	"github.com/ehorn/torchcross/core/model"
)

// transitCapacity is the maximum number of actors in the lane at once.
const transitCapacity = 2

// ErrTransitFull is returned when a move would put a third actor in transit.
var ErrTransitFull = errors.New("transit area is full")

// State is who is where at one instant: the origin bank, the lane, and the
// destination bank. Moves between banks and the lane go through the
// directional primitives below; the bank-to-lane primitives are the only
// place the capacity limit is enforced, so no caller can build an illegal
// state.
type State struct {
	origin      Area
	transit     Area
	destination Area
}

// NewState places every actor in the origin area. Duplicate IDs are rejected
// before any planning can start.
func NewState(actors []model.Actor) (State, error) {
	origin, err := NewArea(actors...)
	if err != nil {
		return State{}, err
	}
	return State{origin: origin}, nil
}

// Origin returns a copy of the origin area.
func (s State) Origin() Area { return s.origin.Clone() }

// Transit returns a copy of the transit area.
func (s State) Transit() Area { return s.transit.Clone() }

// Destination returns a copy of the destination area.
func (s State) Destination() Area { return s.destination.Clone() }

// OriginToTransit moves one actor from the origin bank into the lane.
func (s *State) OriginToTransit(a model.Actor) error {
	if s.transit.Size() >= transitCapacity {
		return fmt.Errorf("origin to transit %q (%d): %w", a.Name, a.ID, ErrTransitFull)
	}
	return s.origin.Transfer(a, &s.transit)
}

// TransitToDestination moves one actor from the lane to the destination bank.
func (s *State) TransitToDestination(a model.Actor) error {
	return s.transit.Transfer(a, &s.destination)
}

// DestinationToTransit moves one actor from the destination bank into the lane.
func (s *State) DestinationToTransit(a model.Actor) error {
	if s.transit.Size() >= transitCapacity {
		return fmt.Errorf("destination to transit %q (%d): %w", a.Name, a.ID, ErrTransitFull)
	}
	return s.destination.Transfer(a, &s.transit)
}

// TransitToOrigin moves one actor from the lane back to the origin bank.
func (s *State) TransitToOrigin(a model.Actor) error {
	return s.transit.Transfer(a, &s.origin)
}

// DrainToDestination empties the lane onto the destination bank, slowest first.
func (s *State) DrainToDestination() error {
	return s.transit.TransferAll(&s.destination)
}

// DrainToOrigin empties the lane back onto the origin bank, slowest first.
func (s *State) DrainToOrigin() error {
	return s.transit.TransferAll(&s.origin)
}

// TransitSpeed is the cost of the last completed lane crossing: zero when the
// lane is empty, otherwise the slowest occupant's speed.
func (s State) TransitSpeed() float64 {
	if s.transit.Empty() {
		return 0
	}
	slowest, err := s.transit.Slowest()
	if err != nil {
		return 0
	}
	return slowest.Speed
}

// Population is the total number of actors across all three areas.
func (s State) Population() int {
	return s.origin.Size() + s.transit.Size() + s.destination.Size()
}

// Equal compares the three areas.
func (s State) Equal(o State) bool {
	return s.origin.Equal(o.origin) && s.transit.Equal(o.transit) && s.destination.Equal(o.destination)
}

// Clone returns a fully independent copy of the state.
func (s State) Clone() State {
	return State{
		origin:      s.origin.Clone(),
		transit:     s.transit.Clone(),
		destination: s.destination.Clone(),
	}
}
