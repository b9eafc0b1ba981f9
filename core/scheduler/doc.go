// Package scheduler plans a complete crossing for a population of actors.
// FastCrossing implements a fixed greedy policy: the two fastest actors are
// sent ahead as couriers, one returns to hand the lane to the two slowest,
// and the remaining courier escorts the next batch. The policy makes the
// same structural choice every iteration regardless of speed values; it
// matches the known optimum for the classical puzzle inputs but is not
// proven optimal for arbitrary speed distributions.
package scheduler
