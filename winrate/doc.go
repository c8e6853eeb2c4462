// SPDX-License-Identifier: MIT

// Package winrate builds the matchup win-rate grid for a 5-vs-5 draft.
//
// It parses the raw hero list and serialized grid (Parse), extends the grid
// with per-row and per-column averages (Augment) and derives the aggregate
// win chance of the row team (AggregateOutcome).
//
// Every function is pure. Bad input is reported as a *MalformedInputError,
// which matches ErrMalformedInput through errors.Is.
package winrate
