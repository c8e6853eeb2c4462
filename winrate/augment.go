// SPDX-License-Identifier: MIT

package winrate

import (
	"errors"

	"github.com/katalvlaran/draftheat/matrix"
)

const (
	opAugment          = "Augment"
	opAggregateOutcome = "AggregateOutcome"

	// favouredAbove is the strict threshold a team must beat to be favoured.
	favouredAbove = 50.0
	fullChance    = 100.0
)

// Augment returns a new (R+1)×(C+1) matrix: m with its row means appended as
// the last column, then the column means of that R×(C+1) matrix appended as
// the last row. The bottom-right cell is therefore the mean of the row means.
//
// The order is fixed (rows first, then columns) so non-square grids are
// well-defined. m is not modified.
//
// Errors:
//   - *MalformedInputError when finite values are so large that a row or
//     column sum overflows to ±Inf.
func Augment(m matrix.Matrix) (*matrix.Dense, error) {
	rowAvg, err := matrix.RowMeans(m)
	if err != nil {
		return nil, winrateErrorf(opAugment, err)
	}
	withCol, err := matrix.AppendCol(m, rowAvg)
	if err != nil {
		return nil, winrateErrorf(opAugment, overflowError(err))
	}
	colAvg, err := matrix.ColMeans(withCol)
	if err != nil {
		return nil, winrateErrorf(opAugment, err)
	}
	out, err := matrix.AppendRow(withCol, colAvg)
	if err != nil {
		return nil, winrateErrorf(opAugment, overflowError(err))
	}

	return out, nil
}

// overflowError reports a non-finite mean as bad grid input. The grid itself
// is finite (Parse rejects NaN/Inf), so a non-finite mean can only come from
// values too large to sum.
func overflowError(err error) error {
	if !errors.Is(err, matrix.ErrNaNInf) {
		return err
	}

	return gridError(-1, -1, "", "values too large to average", err)
}

// Outcome is the aggregate win chance of the row team, in percent.
type Outcome struct {
	TeamA float64
}

// TeamB returns the column team's chance, 100 - TeamA.
func (o Outcome) TeamB() float64 { return fullChance - o.TeamA }

// Favoured reports whether the row team is strictly above 50%.
// Exactly 50 is not favoured.
func (o Outcome) Favoured() bool { return o.TeamA > favouredAbove }

// AggregateOutcome averages the first R entries of the trailing column of an
// augmented matrix, skipping the synthetic corner cell.
//
// Errors:
//   - ErrNotAugmented when aug has fewer than 2 rows or columns.
func AggregateOutcome(aug matrix.Matrix) (Outcome, error) {
	if err := matrix.ValidateNonEmpty(aug); err != nil {
		return Outcome{}, winrateErrorf(opAggregateOutcome, err)
	}
	r, c := aug.Rows()-1, aug.Cols()-1
	if r < 1 || c < 1 {
		return Outcome{}, winrateErrorf(opAggregateOutcome, ErrNotAugmented)
	}

	avgs := make([]float64, r)
	var err error
	for i := 0; i < r; i++ {
		if avgs[i], err = aug.At(i, c); err != nil {
			return Outcome{}, winrateErrorf(opAggregateOutcome, err)
		}
	}
	mean, err := matrix.MeanOf(avgs)
	if err != nil {
		return Outcome{}, winrateErrorf(opAggregateOutcome, err)
	}

	return Outcome{TeamA: mean}, nil
}
