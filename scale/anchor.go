// SPDX-License-Identifier: MIT
// Package: scale
//
// Purpose:
//   - Locate the cell whose value is closest to a fair reference (50%) and
//     express its position within the grid's [min,max] range as a number in [0,1].
//
// Behavior highlights:
//   - Ties on |v-reference| go to the first cell in row-major order.
//   - A grid whose values are all equal gets DegenerateAnchor instead of a
//     division by zero.

package scale

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/draftheat/matrix"
)

const (
	opFindAnchor = "FindAnchor"

	// DefaultReference is the fair win rate the anchor is measured against.
	DefaultReference = 50.0

	// DegenerateAnchor is the anchor position used when max == min.
	DegenerateAnchor = 0.5
)

// ErrDegenerateRange is matched by every *DegenerateRangeError.
var ErrDegenerateRange = errors.New("scale: degenerate value range")

// DegenerateRangeError reports a grid whose values are all equal.
type DegenerateRangeError struct {
	Value float64 // the single value every cell holds
}

// Error implements error.
func (e *DegenerateRangeError) Error() string {
	return fmt.Sprintf("scale: all values equal %g, range is zero", e.Value)
}

// Unwrap returns ErrDegenerateRange.
func (e *DegenerateRangeError) Unwrap() error { return ErrDegenerateRange }

// Anchor is the normalized position of the value closest to the reference,
// plus the figures it was derived from.
type Anchor struct {
	Position   float64 // (Value-Min)/(Max-Min), or DegenerateAnchor
	Value      float64 // raw value of the chosen cell
	Row, Col   int     // chosen cell, row-major first among ties
	Distance   float64 // |Value - reference|
	Min, Max   float64
	Degenerate bool // Max == Min
}

// Option customizes FindAnchor.
type Option func(*anchorOptions)

type anchorOptions struct {
	reference float64
	strict    bool
}

// WithReference measures closeness against ref instead of DefaultReference.
func WithReference(ref float64) Option {
	return func(o *anchorOptions) { o.reference = ref }
}

// WithStrictRange makes FindAnchor also return a *DegenerateRangeError when
// every value is equal. The returned Anchor is still usable.
func WithStrictRange() Option {
	return func(o *anchorOptions) { o.strict = true }
}

// FindAnchor computes the color anchor of m.
//
// Implementation:
//   - Stage 1: min and max over every cell of m.
//   - Stage 2: first cell (row-major, strict "<") minimizing |v - reference|.
//   - Stage 3: Position = (v* - min) / (max - min), or DegenerateAnchor when max == min.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrEmpty for unusable input.
//   - *DegenerateRangeError only under WithStrictRange.
func FindAnchor(m matrix.Matrix, opts ...Option) (Anchor, error) {
	o := anchorOptions{reference: DefaultReference}
	for _, opt := range opts {
		opt(&o)
	}
	if math.IsNaN(o.reference) || math.IsInf(o.reference, 0) {
		return Anchor{}, fmt.Errorf("%s: reference %v: %w", opFindAnchor, o.reference, matrix.ErrNaNInf)
	}

	lo, hi, err := matrix.Extrema(m)
	if err != nil {
		return Anchor{}, fmt.Errorf("%s: %w", opFindAnchor, err)
	}
	ref := o.reference
	row, col, dist, err := matrix.ArgMin(m, func(v float64) float64 { return math.Abs(v - ref) })
	if err != nil {
		return Anchor{}, fmt.Errorf("%s: %w", opFindAnchor, err)
	}
	v, err := m.At(row, col)
	if err != nil {
		return Anchor{}, fmt.Errorf("%s: %w", opFindAnchor, err)
	}

	a := Anchor{Value: v, Row: row, Col: col, Distance: dist, Min: lo, Max: hi}
	if hi == lo {
		a.Position = DegenerateAnchor
		a.Degenerate = true
		if o.strict {
			return a, fmt.Errorf("%s: %w", opFindAnchor, &DegenerateRangeError{Value: lo})
		}

		return a, nil
	}
	a.Position = normalize(v, lo, hi)

	return a, nil
}
