// SPDX-License-Identifier: MIT

package heatmap_test

import (
	"fmt"

	"github.com/katalvlaran/draftheat/heatmap"
	"github.com/katalvlaran/draftheat/render"
)

// ExamplePipeline_Compute runs the numeric half of the pipeline on a draft
// where only one radiant hero deviates from an even matchup.
func ExamplePipeline_Compute() {
	names := []string{"Axe", "Lion", "Io", "Tiny", "Lina", "Pudge", "Zeus", "Mirana", "Sven", "Jakiro"}
	grid := "40,50,60,50,50;50,50,50,50,50;50,50,50,50,50;50,50,50,50,50;50,50,50,50,50"

	res, err := heatmap.New().Compute(names, grid)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	title, _ := render.Title(res.Outcome)
	fmt.Println(title)
	fmt.Printf("range %.0f..%.0f, anchor %.2f at (%d,%d)\n",
		res.Anchor.Min, res.Anchor.Max, res.Anchor.Position, res.Anchor.Row, res.Anchor.Col)
	fmt.Println(res.Labels.Rows[len(res.Labels.Rows)-1], res.Grid.Rows(), "x", res.Grid.Cols())

	// Output:
	// Radiant/Dire win chance: 50.00%/50.00%
	// range 40..60, anchor 0.50 at (0,1)
	// Avg 6 x 6
}

func ExampleParseAugmentation() {
	a, err := heatmap.ParseAugmentation("disabled")
	fmt.Println(a, err)

	// Output:
	// disabled <nil>
}
