// SPDX-License-Identifier: MIT

// Package scale builds the diverging red → white → green color scale used to
// paint a win-rate grid.
//
// White is not placed at the middle of the data range but at the position
// of the value closest to a fair 50% outcome (FindAnchor), so the gradient
// shows deviation from fairness. BuildScale turns that position into a
// ColorScale; TitleColor picks the headline color for an aggregate outcome.
package scale
