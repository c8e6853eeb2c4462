// SPDX-License-Identifier: MIT
// Package: render
//
// Purpose:
//   - Bind the computed grid, labels, color scale and outcome to a go-chart
//     Renderer and encode the result as PNG or SVG.
//
// Ownership:
//   - A Figure owns exactly one Renderer. It is created by NewFigure and
//     released by Close; callers use `defer fig.Close()` on every path.

package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"

	"github.com/katalvlaran/draftheat/scale"
	"github.com/katalvlaran/draftheat/winrate"
)

// Text shown on the figure.
const (
	DefaultTitle  = "Dota 2 Winrates Heatmap"
	ColorbarLabel = "Winrate %"
)

const (
	titleFontSize = 14
	labelFontSize = 10
	cellFontSize  = 9
)

var (
	// ErrFigureClosed is returned by every method called after Close.
	ErrFigureClosed = errors.New("render: figure is closed")

	// ErrBadSpec is returned by Draw when values and labels disagree in shape.
	ErrBadSpec = errors.New("render: values and labels do not match")

	// ErrBadSize is returned by NewFigure for non-positive dimensions.
	ErrBadSize = errors.New("render: width and height must be > 0")
)

// Spec is everything Draw needs. Values is row-major and index-aligned with
// RowLabels × ColLabels. Min and Max bound the color scale.
type Spec struct {
	Values    [][]float64
	RowLabels []string
	ColLabels []string
	Scale     scale.ColorScale
	Min, Max  float64
	Outcome   *winrate.Outcome // nil: neutral title
}

// Title returns the headline and its color. With an outcome the text is
// "Radiant/Dire win chance: X.XX%/Y.YY%" colored by scale.TitleColor.
func Title(o *winrate.Outcome) (string, drawing.Color) {
	if o == nil {
		return DefaultTitle, drawing.ColorBlack
	}

	return fmt.Sprintf("Radiant/Dire win chance: %.2f%%/%.2f%%", o.TeamA, o.TeamB()), scale.TitleColor(o.TeamA)
}

// CellText formats one grid value.
func CellText(v float64) string { return fmt.Sprintf("%.2f%%", v) }

// Figure is a drawable canvas backed by a go-chart Renderer.
type Figure struct {
	format Format
	width  int
	height int
	r      chart.Renderer
	font   *truetype.Font
}

// NewFigure acquires a renderer of the given format and size.
func NewFigure(format Format, width, height int) (*Figure, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("NewFigure(%d,%d): %w", width, height, ErrBadSize)
	}
	provider, err := format.provider()
	if err != nil {
		return nil, fmt.Errorf("NewFigure: %w", err)
	}
	r, err := provider(width, height)
	if err != nil {
		return nil, fmt.Errorf("NewFigure: renderer: %w", err)
	}
	f, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("NewFigure: font: %w", err)
	}

	return &Figure{format: format, width: width, height: height, r: r, font: f}, nil
}

// Format reports the figure's output encoding.
func (f *Figure) Format() Format { return f.format }

// Close releases the renderer. It is safe to call more than once.
func (f *Figure) Close() error {
	f.r = nil
	f.font = nil

	return nil
}

// Draw paints the full heatmap: background, cells with their values, row
// and rotated column labels, the colorbar and the title.
func (f *Figure) Draw(s Spec) error {
	if f.r == nil {
		return ErrFigureClosed
	}
	rows := len(s.Values)
	if rows == 0 || rows != len(s.RowLabels) {
		return fmt.Errorf("Draw: %d rows, %d row labels: %w", rows, len(s.RowLabels), ErrBadSpec)
	}
	for i, row := range s.Values {
		if len(row) != len(s.ColLabels) || len(row) == 0 {
			return fmt.Errorf("Draw: row %d has %d values, %d column labels: %w", i, len(row), len(s.ColLabels), ErrBadSpec)
		}
	}
	l, err := computeLayout(f, s.RowLabels, s.ColLabels, f.width, f.height)
	if err != nil {
		return fmt.Errorf("Draw: %w", err)
	}

	f.rect(0, 0, f.width, f.height, drawing.ColorWhite)
	f.drawCells(s, l)
	f.drawTicks(s, l)
	f.drawColorbar(s, l)

	title, color := Title(s.Outcome)
	tx := max(pad, (f.width-f.textWidth(title, titleFontSize))/2)
	f.text(title, tx, l.titleY, titleFontSize, color, 0)

	return nil
}

// WriteTo encodes the figure into w.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	if f.r == nil {
		return 0, ErrFigureClosed
	}
	cw := &countingWriter{w: w}
	if err := f.r.Save(cw); err != nil {
		return cw.n, fmt.Errorf("WriteTo: %w", err)
	}

	return cw.n, nil
}

func (f *Figure) drawCells(s Spec, l layout) {
	var i, j int
	for i = 0; i < l.rows; i++ {
		y := l.top + i*l.cell
		for j = 0; j < l.cols; j++ {
			x := l.left + j*l.cell
			v := s.Values[i][j]
			f.rect(x, y, x+l.cell, y+l.cell, s.Scale.Map(v, s.Min, s.Max))

			body := CellText(v)
			tb := f.measure(body, cellFontSize)
			f.text(body, x+(l.cell-tb.Width())/2, y+(l.cell+tb.Height())/2, cellFontSize, drawing.ColorBlack, 0)
		}
	}
}

func (f *Figure) drawTicks(s Spec, l layout) {
	for i, name := range s.RowLabels {
		tb := f.measure(name, labelFontSize)
		cy := l.top + i*l.cell + l.cell/2
		f.text(name, l.left-tickGap-tb.Width(), cy+tb.Height()/2, labelFontSize, drawing.ColorBlack, 0)
	}
	for j, name := range s.ColLabels {
		cx := l.left + j*l.cell + l.cell/2
		f.text(name, cx, l.gridBottom()+tickGap+l.labelLine/2, labelFontSize, drawing.ColorBlack, math.Pi/4)
	}
}

func (f *Figure) drawColorbar(s Spec, l layout) {
	top, bottom := l.top, l.gridBottom()
	h := bottom - top
	for k := 0; k < barSteps; k++ {
		y1 := bottom - k*h/barSteps
		y0 := bottom - (k+1)*h/barSteps
		f.rect(l.barLeft, y0, l.barLeft+barWidth, y1, s.Scale.At((float64(k)+0.5)/barSteps))
	}

	ticks := barTicks
	if s.Max == s.Min {
		ticks = 0
	}
	for k := 0; k <= ticks; k++ {
		v := s.Min + (s.Max-s.Min)*float64(k)/float64(barTicks)
		y := bottom - k*h/barTicks
		if ticks == 0 {
			y = top + h/2
		}
		body := fmt.Sprintf("%.1f", v)
		tb := f.measure(body, labelFontSize)
		f.text(body, l.barLeft+barWidth+tickGap, y+tb.Height()/2, labelFontSize, drawing.ColorBlack, 0)
	}

	f.text(ColorbarLabel, l.barLeft, top-tickGap, labelFontSize, drawing.ColorBlack, 0)
}

func (f *Figure) rect(x0, y0, x1, y1 int, c drawing.Color) {
	f.r.SetFillColor(c)
	f.r.SetStrokeColor(c)
	f.r.SetStrokeWidth(0)
	f.r.MoveTo(x0, y0)
	f.r.LineTo(x1, y0)
	f.r.LineTo(x1, y1)
	f.r.LineTo(x0, y1)
	f.r.LineTo(x0, y0)
	f.r.Close()
	f.r.Fill()
}

func (f *Figure) setFont(size float64, c drawing.Color) {
	f.r.SetFont(f.font)
	f.r.SetFontSize(size)
	f.r.SetFontColor(c)
}

func (f *Figure) measure(body string, size float64) chart.Box {
	f.setFont(size, drawing.ColorBlack)

	return f.r.MeasureText(body)
}

func (f *Figure) textWidth(body string, size float64) int {
	return f.measure(body, size).Width()
}

// lineHeight is the ascent plus descent of the figure font at size.
func (f *Figure) lineHeight(size float64) int {
	var face font.Face = truetype.NewFace(f.font, &truetype.Options{Size: size, DPI: f.r.GetDPI()})
	defer face.Close()
	m := face.Metrics()

	return (m.Ascent + m.Descent).Ceil()
}

func (f *Figure) text(body string, x, y int, size float64, c drawing.Color, rotation float64) {
	f.setFont(size, c)
	if rotation != 0 {
		f.r.SetTextRotation(rotation)
		defer f.r.ClearTextRotation()
	}
	f.r.Text(body, x, y)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
