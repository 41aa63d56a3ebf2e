// Package slicer turns a colour grid into a sequence of rendered layers:
// iterate colours in selector order, optimise and trace each, and yield
// render-ordered Scribes plus the Processes that populate them. One
// exported entry point composes several algorithm strategies, with
// process.RunAll driving the parallel per-colour fan-out.
package slicer

import (
	"github.com/arvida/rastertrace/grid"
	"github.com/arvida/rastertrace/layout"
	"github.com/arvida/rastertrace/optimize"
	"github.com/arvida/rastertrace/process"
	"github.com/arvida/rastertrace/scribe"
	"github.com/arvida/rastertrace/selector"
	"github.com/arvida/rastertrace/tracer"
)

// Factory produces a Scribe to receive the paths of a given colour.
type Factory func(colour int) scribe.Scribe

// Result is a Slicer's output: a render-ordered list of Scribes (matching
// selector order) and the Processes that must all be driven to completion
// before those Scribes are consumed downstream.
type Result struct {
	Scribes   []scribe.Scribe
	Processes []*process.Runner
}

// Run slices g into render-ordered layers: for each selected colour it
// eagerly computes the optimised grid, then defers only the trace itself
// (a Tracer.Step loop) into a Process.
func Run(g grid.Grid, sel selector.Selector, opt optimize.Optimiser, scribes Factory) (*Result, error) {
	palette := grid.Palette(g)
	res := &Result{}

	for {
		c := sel.Select(g, palette)
		if c <= 0 {
			break
		}
		palette = removeColour(palette, c)
		future := optimize.NewColourSet(palette...)

		job, err := opt.Prepare(g, c, future)
		if err != nil {
			return nil, err
		}
		optimised := optimize.Run(job)

		l := layout.New(optimised)
		s := scribes(c)
		t := tracer.New(l, s)

		res.Scribes = append(res.Scribes, s)
		res.Processes = append(res.Processes, process.New(t.Step))
	}
	return res, nil
}

func removeColour(palette []int, c int) []int {
	out := make([]int, 0, len(palette))
	for _, p := range palette {
		if p != c {
			out = append(out, p)
		}
	}
	return out
}
