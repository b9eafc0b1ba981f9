// Package crossing models a single-lane crossing shared by a group of actors.
// It holds the three areas actors can occupy (origin bank, the lane itself,
// destination bank), the legal moves between them, and an append-only history
// of state snapshots from which the total crossing time is derived. All types
// have value semantics: a Clone is a fully independent copy, so histories can
// retain arbitrarily many snapshots without aliasing.
package crossing
