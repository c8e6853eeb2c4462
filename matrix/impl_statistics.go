// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the reductions the heatmap pipeline is built from: per-row means,
//     per-column means, global extrema and the mean of a vector.
//   - Keep the accumulation order fixed so sums are bit-identical across runs.
//
// Exposed API (see api.go):
//   - RowMeans(X)  -> []float64 (len = rows)
//   - ColMeans(X)  -> []float64 (len = cols)
//   - Extrema(X)   -> (min, max)
//   - MeanOf(x)    -> float64
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At and operate on row-major flat buffers.

package matrix

// Operation name constants for unified error wrapping.
const (
	opRowMeans = "RowMeans"
	opColMeans = "ColMeans"
	opExtrema  = "Extrema"
	opMeanOf   = "MeanOf"
)

// rowMeans computes Σ_j X[i,j] / c for every row i.
//
// Implementation:
//   - Stage 1: Validate X is non-nil and non-empty.
//   - Stage 2: Sum each row left to right (Dense fast-path; At fallback).
//   - Stage 3: Divide by the column count.
//
// Errors:
//   - ErrNilMatrix, ErrEmpty from validation; wrapped At errors from the fallback.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func rowMeans(X Matrix) ([]float64, error) {
	if err := ValidateNonEmpty(X); err != nil {
		return nil, matrixErrorf(opRowMeans, err)
	}

	r, c := X.Rows(), X.Cols()
	means := make([]float64, r)
	var i, j int
	var s, v float64

	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			s = 0.0
			base := i * c
			for j = 0; j < c; j++ {
				s += d.data[base+j]
			}
			means[i] = s / float64(c)
		}

		return means, nil
	}

	var err error
	for i = 0; i < r; i++ {
		s = 0.0
		for j = 0; j < c; j++ {
			v, err = X.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opRowMeans, err)
			}
			s += v
		}
		means[i] = s / float64(c)
	}

	return means, nil
}

// colMeans computes Σ_i X[i,j] / r for every column j.
//
// Implementation:
//   - Stage 1: Validate X is non-nil and non-empty.
//   - Stage 2: Accumulate column sums top to bottom in a single i→j pass.
//   - Stage 3: Divide by the row count.
//
// Notes:
//   - The accumulation order is top-to-bottom per column, the same order a
//     per-column loop would use, so results do not depend on the traversal
//     strategy.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func colMeans(X Matrix) ([]float64, error) {
	if err := ValidateNonEmpty(X); err != nil {
		return nil, matrixErrorf(opColMeans, err)
	}

	r, c := X.Rows(), X.Cols()
	means := make([]float64, c) // sums first, then averages in place
	var i, j int
	var v float64

	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				means[j] += d.data[base+j]
			}
		}
	} else {
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, err = X.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opColMeans, err)
				}
				means[j] += v
			}
		}
	}

	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	return means, nil
}

// extrema returns the smallest and largest element of X.
//
// Behavior highlights:
//   - Comparisons are strict, so for repeated extrema the first occurrence in
//     row-major order is the one observed (relevant only for NaN-free input).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func extrema(X Matrix) (lo, hi float64, err error) {
	if err = ValidateNonEmpty(X); err != nil {
		return 0, 0, matrixErrorf(opExtrema, err)
	}

	r, c := X.Rows(), X.Cols()
	var i, j int
	var v float64

	if d, ok := X.(*Dense); ok {
		lo, hi = d.data[0], d.data[0]
		for _, v = range d.data[1:] {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}

		return lo, hi, nil
	}

	if lo, err = X.At(0, 0); err != nil {
		return 0, 0, matrixErrorf(opExtrema, err)
	}
	hi = lo
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err = X.At(i, j)
			if err != nil {
				return 0, 0, matrixErrorf(opExtrema, err)
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	return lo, hi, nil
}

// meanOf returns the arithmetic mean of x, summed left to right.
func meanOf(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, matrixErrorf(opMeanOf, ErrEmpty)
	}
	s := 0.0
	for _, v := range x {
		s += v
	}

	return s / float64(len(x)), nil
}
