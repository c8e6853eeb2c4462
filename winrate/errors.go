// SPDX-License-Identifier: MIT
// Package winrate: sentinel errors and the structured input error.

package winrate

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is matched (via errors.Is) by every *MalformedInputError.
var ErrMalformedInput = errors.New("winrate: malformed input")

// ErrNotAugmented is returned by AggregateOutcome when the matrix lacks the
// trailing row-average column and average row.
var ErrNotAugmented = errors.New("winrate: matrix is not augmented")

// MalformedInputError describes why raw names or grid text were rejected.
//
// Field is "names" or "grid"; Row/Col locate the offending token when known
// (-1 otherwise); Token holds the raw text that failed to parse, if any.
type MalformedInputError struct {
	Field  string
	Row    int
	Col    int
	Token  string
	Reason string
	Err    error // underlying strconv error, may be nil
}

// Error implements error.
func (e *MalformedInputError) Error() string {
	switch {
	case e.Row >= 0 && e.Col >= 0:
		return fmt.Sprintf("winrate: malformed %s at row %d, value %d (%q): %s", e.Field, e.Row, e.Col, e.Token, e.Reason)
	case e.Row >= 0:
		return fmt.Sprintf("winrate: malformed %s at row %d: %s", e.Field, e.Row, e.Reason)
	default:
		return fmt.Sprintf("winrate: malformed %s: %s", e.Field, e.Reason)
	}
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *MalformedInputError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedInput}
	}

	return []error{ErrMalformedInput, e.Err}
}

func namesError(reason string) error {
	return &MalformedInputError{Field: "names", Row: -1, Col: -1, Reason: reason}
}

func gridError(row, col int, token, reason string, cause error) error {
	return &MalformedInputError{Field: "grid", Row: row, Col: col, Token: token, Reason: reason, Err: cause}
}

// winrateErrorf tags err with the public operation that observed it.
func winrateErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
