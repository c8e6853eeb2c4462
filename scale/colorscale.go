// SPDX-License-Identifier: MIT

package scale

import (
	"errors"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// StopEpsilon is the minimum gap kept between adjacent stops. An anchor at
// exactly 0 or 1 is moved inward by this much.
const StopEpsilon = 1e-6

const (
	opBuildScale  = "BuildScale"
	fairThreshold = 50.0
	opaque        = 255
)

// ErrInvalidAnchor is returned by BuildScale for a NaN anchor.
var ErrInvalidAnchor = errors.New("scale: invalid anchor")

// Diverging endpoints and midpoint.
var (
	Red   = drawing.Color{R: 255, G: 0, B: 0, A: opaque}
	White = drawing.Color{R: 255, G: 255, B: 255, A: opaque}
	Green = drawing.Color{R: 0, G: 255, B: 0, A: opaque}
)

// Stop is one keypoint of a color scale.
type Stop struct {
	Pos   float64
	Color drawing.Color
}

// ColorScale maps t in [0,1] to a color by linear interpolation between
// strictly increasing stops.
type ColorScale struct {
	stops []Stop
}

// BuildScale returns the three-stop red → white → green scale with white at
// anchor. anchor is clamped to [StopEpsilon, 1-StopEpsilon].
func BuildScale(anchor float64) (ColorScale, error) {
	if math.IsNaN(anchor) {
		return ColorScale{}, fmt.Errorf("%s: %w", opBuildScale, ErrInvalidAnchor)
	}
	pos := math.Min(math.Max(anchor, StopEpsilon), 1-StopEpsilon)

	return ColorScale{stops: []Stop{
		{Pos: 0, Color: Red},
		{Pos: pos, Color: White},
		{Pos: 1, Color: Green},
	}}, nil
}

// Stops returns a copy of the scale's keypoints.
func (s ColorScale) Stops() []Stop {
	out := make([]Stop, len(s.stops))
	copy(out, s.stops)

	return out
}

// At returns the color at t; t outside [0,1] is clamped. A NaN t maps to the
// first stop. The zero ColorScale returns the zero Color.
func (s ColorScale) At(t float64) drawing.Color {
	n := len(s.stops)
	if n == 0 {
		return drawing.Color{}
	}
	if math.IsNaN(t) || t <= s.stops[0].Pos {
		return s.stops[0].Color
	}
	if t >= s.stops[n-1].Pos {
		return s.stops[n-1].Color
	}

	for k := 1; k < n; k++ {
		hi := s.stops[k]
		if t > hi.Pos {
			continue
		}
		lo := s.stops[k-1]
		f := (t - lo.Pos) / (hi.Pos - lo.Pos)

		return lerp(lo.Color, hi.Color, f)
	}

	return s.stops[n-1].Color
}

// Map normalizes v into [lo,hi] and returns its color. A zero-width range
// maps every value to the color at DegenerateAnchor.
func (s ColorScale) Map(v, lo, hi float64) drawing.Color {
	if hi == lo {
		return s.At(DegenerateAnchor)
	}

	return s.At(normalize(v, lo, hi))
}

// normalize maps v from [lo, hi] onto [0, 1]. Operands are halved first so
// hi - lo stays finite for any finite bounds; halving is exact.
func normalize(v, lo, hi float64) float64 {
	return (v/2 - lo/2) / (hi/2 - lo/2)
}

// TitleColor is Green when outcome is strictly above 50, Red otherwise.
func TitleColor(outcome float64) drawing.Color {
	if outcome > fairThreshold {
		return Green
	}

	return Red
}

func lerp(a, b drawing.Color, f float64) drawing.Color {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*f))
	}

	return drawing.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
