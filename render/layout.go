// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"math"
)

// ErrCanvasTooSmall is returned when the labels and colorbar leave no room
// for readable cells.
var ErrCanvasTooSmall = errors.New("render: canvas too small for grid")

const (
	pad        = 12
	tickGap    = 6
	barGap     = 24
	barWidth   = 20
	barSteps   = 64
	barTicks   = 4
	minCell    = 16
	tickSample = "-000.0"
)

// textMeasurer reports pixel extents of text set in the figure's font.
// Figure implements it with the same renderer and sizes Draw uses.
type textMeasurer interface {
	textWidth(body string, size float64) int
	lineHeight(size float64) int
}

// layout holds pixel geometry for one figure, computed before any drawing.
type layout struct {
	left, top  int // top-left corner of the grid
	cell       int // side of one square cell
	rows, cols int
	barLeft    int
	titleY     int
	labelLine  int // line height at labelFontSize
	width      int
	height     int
}

func (l layout) gridRight() int  { return l.left + l.cols*l.cell }
func (l layout) gridBottom() int { return l.top + l.rows*l.cell }

func widest(m textMeasurer, labels []string, size float64) int {
	w := 0
	for _, s := range labels {
		w = max(w, m.textWidth(s, size))
	}

	return w
}

// computeLayout reserves margins for row labels (left), rotated column
// labels (bottom), the title and colorbar caption (top) and the colorbar
// (right), then fits the largest square cells into what is left.
func computeLayout(m textMeasurer, rowLabels, colLabels []string, width, height int) (layout, error) {
	rows, cols := len(rowLabels), len(colLabels)
	labelLine := m.lineHeight(labelFontSize)
	titleLine := m.lineHeight(titleFontSize)

	left := pad + widest(m, rowLabels, labelFontSize) + tickGap
	top := pad + titleLine + labelLine + tickGap
	rotated := float64(widest(m, colLabels, labelFontSize)+labelLine) * math.Sin(math.Pi/4)
	bottom := pad + tickGap + int(math.Ceil(rotated))
	right := barGap + max(
		barWidth+tickGap+m.textWidth(tickSample, labelFontSize),
		m.textWidth(ColorbarLabel, labelFontSize),
	) + pad

	cw := (width - left - right) / cols
	ch := (height - top - bottom) / rows
	cell := min(cw, ch)
	if cell < minCell {
		return layout{}, ErrCanvasTooSmall
	}

	l := layout{
		left:      left,
		top:       top,
		cell:      cell,
		rows:      rows,
		cols:      cols,
		titleY:    pad + titleLine,
		labelLine: labelLine,
		width:     width,
		height:    height,
	}
	l.barLeft = l.gridRight() + barGap

	return l, nil
}
