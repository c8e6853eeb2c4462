// Package draftheat renders diverging win-rate heatmaps for a 5-vs-5 draft.
//
// Given ten hero names (five radiant, five dire) and the 5×5 grid of radiant
// win rates against each dire hero, draftheat:
//
//   - parses and validates the input (winrate.Parse),
//   - appends per-hero averages as an extra "Avg" row and column and derives
//     the aggregate team win chance (winrate.Augment, winrate.AggregateOutcome),
//   - anchors a red → white → green scale on the cell closest to a fair 50%
//     (scale.FindAnchor, scale.BuildScale),
//   - draws the grid, labels, colorbar and title to PNG or SVG (render.Figure).
//
// heatmap.Pipeline ties the steps together with augmentation as a single
// enabled/disabled switch. The draftheat command exposes it as a one-shot
// `render` subcommand and as an HTTP service (`serve`).
//
// Layout:
//
//	matrix/   row-major Dense grid, reductions, append-row/column, row-major ArgMin
//	winrate/  input parsing, augmentation, aggregate outcome
//	scale/    anchor search and diverging color scale
//	render/   go-chart figure binding
//	heatmap/  the parameterized pipeline
//	config/   viper configuration and zerolog logger setup
//	server/   chi HTTP API
//	cmd/      cobra CLI
package draftheat
