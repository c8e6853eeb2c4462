// SPDX-License-Identifier: MIT

package winrate

// AvgLabel names the synthetic average row and column.
const AvgLabel = "Avg"

// Labels holds the axis names, index-aligned with the matrix they describe.
type Labels struct {
	Rows []string // radiant heroes (+ AvgLabel when augmented)
	Cols []string // dire heroes (+ AvgLabel when augmented)
}

// NewLabels splits names into row and column halves and, when augmented is
// true, appends AvgLabel to both. The input slice is never retained.
func NewLabels(names []string, augmented bool) Labels {
	half := len(names) / 2
	extra := 0
	if augmented {
		extra = 1
	}
	l := Labels{
		Rows: make([]string, 0, half+extra),
		Cols: make([]string, 0, len(names)-half+extra),
	}
	l.Rows = append(l.Rows, names[:half]...)
	l.Cols = append(l.Cols, names[half:]...)
	if augmented {
		l.Rows = append(l.Rows, AvgLabel)
		l.Cols = append(l.Cols, AvgLabel)
	}

	return l
}

// Augmented returns a copy of l with AvgLabel appended to both axes.
func (l Labels) Augmented() Labels {
	out := Labels{
		Rows: make([]string, len(l.Rows), len(l.Rows)+1),
		Cols: make([]string, len(l.Cols), len(l.Cols)+1),
	}
	copy(out.Rows, l.Rows)
	copy(out.Cols, l.Cols)
	out.Rows = append(out.Rows, AvgLabel)
	out.Cols = append(out.Cols, AvgLabel)

	return out
}
