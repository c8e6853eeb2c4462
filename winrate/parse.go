// SPDX-License-Identifier: MIT
// Package: winrate
//
// Purpose:
//   - Turn the raw invocation strings (a comma list of hero names and a
//     serialized grid) into a *matrix.Dense plus the axis Labels.
//
// Behavior highlights:
//   - Values are NOT clamped: anything finite is accepted, including values
//     outside [0,100] produced upstream.
//   - NaN and ±Inf tokens are malformed (strconv would accept them).

package winrate

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/draftheat/matrix"
)

// TeamSize is the number of heroes on each side of the draft.
const TeamSize = 5

const (
	opParse   = "Parse"
	bitSize64 = 64
)

// ParseNames splits a comma-separated hero list and trims each entry.
// It performs no validation; Parse rejects wrong counts and empty names.
func ParseNames(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

// Parse builds the TeamSize×TeamSize win-rate grid and its labels.
//
// Implementation:
//   - Stage 1: Validate names: exactly 2*TeamSize, none empty after trimming.
//     The first TeamSize name the rows (radiant), the rest the columns (dire).
//   - Stage 2: Split grid into TeamSize rows, each into TeamSize values.
//   - Stage 3: Parse each token as float64, rejecting non-numeric and non-finite.
//
// Errors:
//   - *MalformedInputError (errors.Is ErrMalformedInput) for any of the above.
func Parse(names []string, grid string, opts ...Option) (*matrix.Dense, Labels, error) {
	o := defaultParseOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(names) != 2*TeamSize {
		return nil, Labels{}, winrateErrorf(opParse,
			namesError("want "+strconv.Itoa(2*TeamSize)+" names, got "+strconv.Itoa(len(names))))
	}
	trimmed := make([]string, len(names))
	for i, n := range names {
		trimmed[i] = strings.TrimSpace(n)
		if trimmed[i] == "" {
			return nil, Labels{}, winrateErrorf(opParse, namesError("name "+strconv.Itoa(i)+" is empty"))
		}
	}

	rows := strings.Split(strings.TrimSpace(grid), o.rowSep)
	if len(rows) != TeamSize {
		return nil, Labels{}, winrateErrorf(opParse, &MalformedInputError{
			Field: "grid", Row: -1, Col: -1,
			Reason: "want " + strconv.Itoa(TeamSize) + " rows, got " + strconv.Itoa(len(rows)),
		})
	}

	values := make([][]float64, TeamSize)
	var i, j int
	for i = 0; i < TeamSize; i++ {
		tokens := strings.Split(rows[i], o.valueSep)
		if len(tokens) != TeamSize {
			return nil, Labels{}, winrateErrorf(opParse, gridError(i, -1, "",
				"want "+strconv.Itoa(TeamSize)+" values, got "+strconv.Itoa(len(tokens)), nil))
		}
		values[i] = make([]float64, TeamSize)
		for j = 0; j < TeamSize; j++ {
			tok := strings.TrimSpace(tokens[j])
			v, err := strconv.ParseFloat(tok, bitSize64)
			if err != nil {
				return nil, Labels{}, winrateErrorf(opParse, gridError(i, j, tok, "not a number", err))
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, Labels{}, winrateErrorf(opParse, gridError(i, j, tok, "not a finite number", nil))
			}
			values[i][j] = v
		}
	}

	m, err := matrix.NewDenseFromRows(values)
	if err != nil {
		return nil, Labels{}, winrateErrorf(opParse, err)
	}

	return m, NewLabels(trimmed, false), nil
}
