// SPDX-License-Identifier: MIT
// Package: heatmap
//
// Purpose:
//   - One parameterized path from raw strings to an image:
//     Parse → [Augment → AggregateOutcome] → FindAnchor → BuildScale → Figure.
//   - Augmentation is a flag on the Pipeline, not a separate code path.
//
// Concurrency:
//   - A Pipeline is read-only after construction; every call works on
//     call-local data, so one Pipeline may serve concurrent requests.

package heatmap

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/draftheat/matrix"
	"github.com/katalvlaran/draftheat/render"
	"github.com/katalvlaran/draftheat/scale"
	"github.com/katalvlaran/draftheat/winrate"
)

// Defaults used by New.
const (
	DefaultWidth  = 800
	DefaultHeight = 640
)

// ErrUnknownAugmentation is returned by ParseAugmentation.
var ErrUnknownAugmentation = errors.New("heatmap: augmentation must be \"enabled\" or \"disabled\"")

// Augmentation selects whether the Avg row/column and the aggregate outcome
// are computed and drawn.
type Augmentation int

const (
	AugmentationEnabled Augmentation = iota
	AugmentationDisabled
)

// String implements fmt.Stringer.
func (a Augmentation) String() string {
	if a == AugmentationDisabled {
		return "disabled"
	}

	return "enabled"
}

// ParseAugmentation maps "enabled" / "disabled" (case-insensitive).
func ParseAugmentation(s string) (Augmentation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "enabled":
		return AugmentationEnabled, nil
	case "disabled":
		return AugmentationDisabled, nil
	default:
		return 0, fmt.Errorf("ParseAugmentation(%q): %w", s, ErrUnknownAugmentation)
	}
}

// Pipeline holds the knobs of one heatmap rendering.
type Pipeline struct {
	Augmentation   Augmentation
	Reference      float64 // fair value the anchor is measured against
	Strict         bool    // fail on a zero value range instead of using scale.DegenerateAnchor
	Width, Height  int
	RowSeparator   string
	ValueSeparator string
	Logger         zerolog.Logger
}

// Option customizes New.
type Option func(*Pipeline)

// WithAugmentation sets the augmentation mode.
func WithAugmentation(a Augmentation) Option { return func(p *Pipeline) { p.Augmentation = a } }

// WithReference sets the fair reference value.
func WithReference(ref float64) Option { return func(p *Pipeline) { p.Reference = ref } }

// WithStrictRange turns a zero value range into an error.
func WithStrictRange(strict bool) Option { return func(p *Pipeline) { p.Strict = strict } }

// WithSize sets the image size in pixels.
func WithSize(width, height int) Option {
	return func(p *Pipeline) { p.Width, p.Height = width, height }
}

// WithSeparators sets the grid row and value separators.
func WithSeparators(row, value string) Option {
	return func(p *Pipeline) { p.RowSeparator, p.ValueSeparator = row, value }
}

// WithLogger routes diagnostics to l.
func WithLogger(l zerolog.Logger) Option { return func(p *Pipeline) { p.Logger = l } }

// New returns a Pipeline with augmentation enabled, reference 50, an
// 800×640 canvas and a no-op logger, then applies opts.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		Augmentation:   AugmentationEnabled,
		Reference:      scale.DefaultReference,
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		RowSeparator:   winrate.DefaultRowSeparator,
		ValueSeparator: winrate.DefaultValueSeparator,
		Logger:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Result is the numeric outcome of one pipeline call.
type Result struct {
	Raw     *matrix.Dense // parsed grid
	Grid    *matrix.Dense // grid that is drawn: Raw, or its augmentation
	Labels  winrate.Labels
	Anchor  scale.Anchor
	Scale   scale.ColorScale
	Outcome *winrate.Outcome // nil when augmentation is disabled
}

// Spec converts r into what render.Figure.Draw consumes.
func (r *Result) Spec() render.Spec {
	return render.Spec{
		Values:    r.Grid.RawRows(),
		RowLabels: r.Labels.Rows,
		ColLabels: r.Labels.Cols,
		Scale:     r.Scale,
		Min:       r.Anchor.Min,
		Max:       r.Anchor.Max,
		Outcome:   r.Outcome,
	}
}

// Compute runs the numeric part of the pipeline.
//
// Errors:
//   - *winrate.MalformedInputError for bad names or grid text.
//   - *scale.DegenerateRangeError when Strict is set and every value is equal.
func (p *Pipeline) Compute(names []string, grid string) (*Result, error) {
	raw, labels, err := winrate.Parse(names, grid,
		winrate.WithRowSeparator(p.RowSeparator),
		winrate.WithValueSeparator(p.ValueSeparator))
	if err != nil {
		return nil, err
	}

	res := &Result{Raw: raw, Grid: raw, Labels: labels}
	if p.Augmentation == AugmentationEnabled {
		if res.Grid, err = winrate.Augment(raw); err != nil {
			return nil, err
		}
		res.Labels = labels.Augmented()
		out, err := winrate.AggregateOutcome(res.Grid)
		if err != nil {
			return nil, err
		}
		res.Outcome = &out
	}

	anchorOpts := []scale.Option{scale.WithReference(p.Reference)}
	if p.Strict {
		anchorOpts = append(anchorOpts, scale.WithStrictRange())
	}
	if res.Anchor, err = scale.FindAnchor(res.Grid, anchorOpts...); err != nil {
		return nil, err
	}
	if res.Scale, err = scale.BuildScale(res.Anchor.Position); err != nil {
		return nil, err
	}

	p.logDiagnostics(res)
	p.Logger.Debug().Stringer("grid", res.Grid).Msg("drawn grid")

	return res, nil
}

// Render draws res and encodes it as format into w.
func (p *Pipeline) Render(w io.Writer, format render.Format, res *Result) error {
	fig, err := p.draw(format, res)
	if err != nil {
		return err
	}
	defer fig.Close()

	_, err = fig.WriteTo(w)

	return err
}

// RenderFile computes the heatmap and writes it to path, choosing PNG or SVG
// from the extension. Nothing is created at path unless every step succeeds.
func (p *Pipeline) RenderFile(path string, names []string, grid string) (*Result, error) {
	format, err := render.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	res, err := p.Compute(names, grid)
	if err != nil {
		return nil, err
	}

	fig, err := p.draw(format, res)
	if err != nil {
		return nil, err
	}
	defer fig.Close()

	if err = fig.SaveFile(path); err != nil {
		return nil, err
	}
	p.Logger.Info().Str("path", path).Str("format", string(format)).Msg("heatmap written")

	return res, nil
}

// draw returns a figure with res painted on it. The caller owns the figure
// and must Close it.
func (p *Pipeline) draw(format render.Format, res *Result) (*render.Figure, error) {
	fig, err := render.NewFigure(format, p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	if err = fig.Draw(res.Spec()); err != nil {
		_ = fig.Close()
		return nil, err
	}

	return fig, nil
}

func (p *Pipeline) logDiagnostics(res *Result) {
	a := res.Anchor
	ev := p.Logger.Info()
	if a.Degenerate {
		ev = p.Logger.Warn()
	}
	ev.Float64("min", a.Min).
		Float64("max", a.Max).
		Float64("closest_to_reference", a.Value).
		Int("row", a.Row).
		Int("col", a.Col).
		Float64("distance", a.Distance).
		Float64("anchor", a.Position).
		Bool("degenerate", a.Degenerate).
		Stringer("augmentation", p.Augmentation).
		Msg("color anchor")

	if res.Outcome != nil {
		p.Logger.Info().
			Float64("radiant", res.Outcome.TeamA).
			Float64("dire", res.Outcome.TeamB()).
			Bool("radiant_favoured", res.Outcome.Favoured()).
			Msg("aggregate outcome")
	}
}
