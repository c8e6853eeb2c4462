// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Format is an output image encoding.
type Format string

// Supported formats.
const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ErrUnsupportedFormat is returned for any extension or name other than png/svg.
var ErrUnsupportedFormat = errors.New("render: unsupported image format")

// ParseFormat accepts "png" or "svg" (case-insensitive, optional leading dot).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case string(PNG):
		return PNG, nil
	case string(SVG):
		return SVG, nil
	default:
		return "", fmt.Errorf("ParseFormat(%q): %w", s, ErrUnsupportedFormat)
	}
}

// FormatFromPath picks the format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("FormatFromPath(%q): no extension: %w", path, ErrUnsupportedFormat)
	}

	return ParseFormat(ext)
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string { return "." + string(f) }

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	if f == SVG {
		return chart.ContentTypeSVG
	}

	return chart.ContentTypePNG
}

func (f Format) provider() (chart.RendererProvider, error) {
	switch f {
	case PNG:
		return chart.PNG, nil
	case SVG:
		return chart.SVG, nil
	default:
		return nil, fmt.Errorf("format %q: %w", string(f), ErrUnsupportedFormat)
	}
}
