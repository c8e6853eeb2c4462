// SPDX-License-Identifier: MIT

// Package render draws a win-rate heatmap with a go-chart Renderer.
//
// A Figure is created with NewFigure, painted with Draw and encoded with
// WriteTo or SaveFile. Close releases it; every method after Close returns
// ErrFigureClosed.
//
//	fig, err := render.NewFigure(render.PNG, 800, 640)
//	if err != nil {
//		return err
//	}
//	defer fig.Close()
//	if err = fig.Draw(spec); err != nil {
//		return err
//	}
//	return fig.SaveFile("heatmap.png")
package render
