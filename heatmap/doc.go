// SPDX-License-Identifier: MIT

// Package heatmap wires winrate, scale and render into a single pipeline
// that turns a hero list and a serialized win-rate grid into an image.
//
// Diagnostics (min, max, the value closest to 50 and its cell, the anchor
// and the aggregate outcome) are logged through zerolog; the default
// logger discards them.
package heatmap
