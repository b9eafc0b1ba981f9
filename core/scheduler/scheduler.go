package scheduler

import (
	"fmt"

	"github.com/ehorn/torchcross/core/crossing"
	"github.com/ehorn/torchcross/core/logger"
)

// FastCrossing is the greedy crossing planner. It is stateless between runs:
// every call to Cross builds a fresh history.
type FastCrossing struct {
	log logger.Logger
}

// New returns a FastCrossing. A nil logger disables logging.
func New(log logger.Logger) *FastCrossing {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &FastCrossing{log: log}
}

// Cross plans the full crossing from the given initial state and returns the
// history of snapshots, one per state-changing step. The initial state must
// hold every actor in origin; an error is returned otherwise, or if any move
// turns out to be illegal, which cannot happen from a well-formed start.
func (f *FastCrossing) Cross(initial crossing.State) (crossing.History, error) {
	var hist crossing.History
	if !initial.Transit().Empty() || !initial.Destination().Empty() {
		return hist, fmt.Errorf("initial state must hold every actor in origin")
	}

	st := initial.Clone()
	hist.Record(st)

	switch st.Origin().Size() {
	case 0:
		return hist, nil
	case 1:
		if err := f.moveFastestFromOrigin(&st); err != nil {
			return hist, err
		}
		hist.Record(st)
		if err := f.drainToDestination(&st, &hist); err != nil {
			return hist, err
		}
		return hist, nil
	}

	for !st.Origin().Empty() {
		// Send the two fastest ahead as couriers for the coming batches.
		if err := f.moveFastestFromOrigin(&st); err != nil {
			return hist, err
		}
		if err := f.moveFastestFromOrigin(&st); err != nil {
			return hist, err
		}
		hist.Record(st)
		if err := f.drainToDestination(&st, &hist); err != nil {
			return hist, err
		}

		if st.Origin().Empty() {
			break
		}
		// One courier returns so the slow pair can take the lane; the other
		// stays behind as the receiving guide.
		if err := f.retrieveFastest(&st, &hist); err != nil {
			return hist, err
		}
		if err := f.sendSlowest(&st, &hist); err != nil {
			return hist, err
		}
		if !st.Origin().Empty() {
			// Bring the second courier back before the next batch.
			if err := f.retrieveFastest(&st, &hist); err != nil {
				return hist, err
			}
		}
	}

	last, _ := hist.Last()
	f.log.Infof("crossing planned: %d actors, %d legs, total time %.2f",
		last.Destination().Size(), len(hist.Legs()), hist.TotalTime())
	return hist, nil
}

// retrieveFastest sends the fastest actor on the destination bank back to
// origin.
func (f *FastCrossing) retrieveFastest(st *crossing.State, hist *crossing.History) error {
	a, err := st.Destination().Fastest()
	if err != nil {
		return fmt.Errorf("retrieve fastest: %w", err)
	}
	if err := st.DestinationToTransit(a); err != nil {
		return err
	}
	hist.Record(*st)
	f.log.Debugf("courier %q (%d) returns, cost %.2f", a.Name, a.ID, st.TransitSpeed())
	if err := st.DrainToOrigin(); err != nil {
		return err
	}
	hist.Record(*st)
	return nil
}

// sendSlowest moves the two slowest actors on the origin bank across
// together, paying only for the slower of the pair.
func (f *FastCrossing) sendSlowest(st *crossing.State, hist *crossing.History) error {
	for i := 0; i < 2; i++ {
		a, err := st.Origin().Slowest()
		if err != nil {
			return fmt.Errorf("send slowest: %w", err)
		}
		if err := st.OriginToTransit(a); err != nil {
			return err
		}
	}
	hist.Record(*st)
	return f.drainToDestination(st, hist)
}

func (f *FastCrossing) moveFastestFromOrigin(st *crossing.State) error {
	a, err := st.Origin().Fastest()
	if err != nil {
		return fmt.Errorf("move fastest: %w", err)
	}
	return st.OriginToTransit(a)
}

func (f *FastCrossing) drainToDestination(st *crossing.State, hist *crossing.History) error {
	f.log.Debugf("leg completes, cost %.2f", st.TransitSpeed())
	if err := st.DrainToDestination(); err != nil {
		return err
	}
	hist.Record(*st)
	return nil
}
