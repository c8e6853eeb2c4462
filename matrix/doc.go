// SPDX-License-Identifier: MIT

// Package matrix provides the small dense-matrix core the heatmap pipeline
// is built on.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with error-returning At/Set and a
//     finite-only numeric policy (NaN/±Inf rejected on write).
//   - Reductions: RowMeans, ColMeans, Extrema, MeanOf.
//   - Shape growth: AppendCol, AppendRow (inputs are never mutated).
//   - Search: ArgMin, a "first match wins" row-major scan.
//
// Every kernel accepts the Matrix interface and takes a fast path when handed
// a *Dense. All loops run rows first, then columns, so results (including
// floating-point sums and tie-breaks) are identical across runs.
//
// Errors are package sentinels (ErrEmpty, ErrDimensionMismatch, ...) wrapped
// with the name of the operation; match them with errors.Is.
package matrix
