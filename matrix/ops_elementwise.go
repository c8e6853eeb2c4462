// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* shape-growing and scanning kernels (ew*) so the
//     public facades in api.go stay one-liners.
//   - Keep all loops deterministic: flat 0..n-1 or i→j.
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels).
//   - Kernels never mutate their input; growing kernels return a fresh *Dense.

package matrix

import "math"

// ewAppendCol returns a new r×(c+1) Dense whose last column is col.
// Time: O(r*c). Space: O(r*(c+1)). Deterministic i→j loops.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(col) != r), ErrNaNInf (non-finite col).
func ewAppendCol(X Matrix, col []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("AppendCol", err)
	}
	r, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(col, r); err != nil {
		return nil, matrixErrorf("AppendCol", err)
	}
	if err := ValidateFiniteVec(col); err != nil {
		return nil, matrixErrorf("AppendCol", err)
	}
	out, err := NewDense(r, c+1)
	if err != nil {
		return nil, matrixErrorf("AppendCol", err)
	}

	nc := c + 1
	var i, j int
	if d, ok := X.(*Dense); ok {
		out.validateNaNInf = d.validateNaNInf
		for i = 0; i < r; i++ {
			copy(out.data[i*nc:i*nc+c], d.data[i*c:(i+1)*c])
			out.data[i*nc+c] = col[i]
		}

		return out, nil
	}

	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf("AppendCol", err)
			}
			out.data[i*nc+j] = v
		}
		out.data[i*nc+c] = col[i]
	}

	return out, nil
}

// ewAppendRow returns a new (r+1)×c Dense whose last row is row.
// Time: O(r*c). Space: O((r+1)*c).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(row) != c), ErrNaNInf (non-finite row).
func ewAppendRow(X Matrix, row []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("AppendRow", err)
	}
	r, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(row, c); err != nil {
		return nil, matrixErrorf("AppendRow", err)
	}
	if err := ValidateFiniteVec(row); err != nil {
		return nil, matrixErrorf("AppendRow", err)
	}
	out, err := NewDense(r+1, c)
	if err != nil {
		return nil, matrixErrorf("AppendRow", err)
	}

	var i, j int
	if d, ok := X.(*Dense); ok {
		out.validateNaNInf = d.validateNaNInf
		copy(out.data[:r*c], d.data)
	} else {
		var v float64
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, matrixErrorf("AppendRow", err)
				}
				out.data[i*c+j] = v
			}
		}
	}
	copy(out.data[r*c:], row)

	return out, nil
}

// ewArgMin scans X in row-major order and returns the coordinates and score
// of the first element minimizing score(v).
//
// Behavior highlights:
//   - Strict "<" while scanning: on ties the earliest cell (row-major) wins.
//   - NaN scores never win a comparison.
//
// Time: O(r*c). Space: O(1).
func ewArgMin(X Matrix, score func(v float64) float64) (row, col int, best float64, err error) {
	if err = ValidateNonEmpty(X); err != nil {
		return 0, 0, 0, matrixErrorf("ArgMin", err)
	}

	best = math.Inf(1)
	row, col = -1, -1
	visit := func(i, j int, v float64) bool {
		s := score(v)
		if s < best || row < 0 && !math.IsNaN(s) {
			row, col, best = i, j, s
		}

		return true
	}

	if d, ok := X.(*Dense); ok {
		d.Do(visit)
	} else {
		r, c := X.Rows(), X.Cols()
		var i, j int
		var v float64
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return 0, 0, 0, matrixErrorf("ArgMin", err)
				}
				visit(i, j, v)
			}
		}
	}
	if row < 0 {
		return 0, 0, 0, matrixErrorf("ArgMin", ErrNaNInf)
	}

	return row, col, best, nil
}
