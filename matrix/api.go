// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, documented entry points over the private kernels.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only forward.

package matrix

// ---------- Reductions ----------

// RowMeans returns the arithmetic mean of every row of X (len = Rows()).
// Rows are summed left to right. Complexity: O(r*c).
func RowMeans(X Matrix) ([]float64, error) { return rowMeans(X) }

// ColMeans returns the arithmetic mean of every column of X (len = Cols()).
// Columns are summed top to bottom. Complexity: O(r*c).
func ColMeans(X Matrix) ([]float64, error) { return colMeans(X) }

// Extrema returns the minimum and maximum element of X.
func Extrema(X Matrix) (lo, hi float64, err error) { return extrema(X) }

// MeanOf returns the arithmetic mean of x or ErrEmpty for an empty slice.
func MeanOf(x []float64) (float64, error) { return meanOf(x) }

// ---------- Shape growth ----------

// AppendCol returns a new matrix equal to X with col appended as its last column.
// X is not modified.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when len(col) != Rows(), ErrNaNInf.
func AppendCol(X Matrix, col []float64) (*Dense, error) { return ewAppendCol(X, col) }

// AppendRow returns a new matrix equal to X with row appended as its last row.
// X is not modified.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when len(row) != Cols(), ErrNaNInf.
func AppendRow(X Matrix, row []float64) (*Dense, error) { return ewAppendRow(X, row) }

// ---------- Search ----------

// ArgMin returns the position and score of the first element (row-major)
// that minimizes score(v). Later elements with an equal score never replace it.
//
// Example: the cell closest to 50 is ArgMin(X, func(v float64) float64 { return math.Abs(v - 50) }).
func ArgMin(X Matrix, score func(v float64) float64) (row, col int, best float64, err error) {
	return ewArgMin(X, score)
}
