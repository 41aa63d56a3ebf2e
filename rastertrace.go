// Package rastertrace converts an indexed-colour raster grid into a
// minimal set of closed vector outlines per colour, using an even-odd
// fill rule and colour overpainting to keep path and vertex counts low.
// This file is the public facade wiring Grid → Slicer → Scribes; the
// algorithmic core lives in the grid, layout, scribe, tracer, savings,
// optimize, selector, process, and slicer packages.
package rastertrace

import (
	"github.com/arvida/rastertrace/grid"
	"github.com/arvida/rastertrace/optimize"
	"github.com/arvida/rastertrace/scribe"
	"github.com/arvida/rastertrace/selector"
	"github.com/arvida/rastertrace/slicer"
)

// Grid re-exports grid.Grid so callers need not import the subpackage for
// the one type they must implement or construct.
type Grid = grid.Grid

// ScribeFactory re-exports slicer.Factory.
type ScribeFactory = slicer.Factory

// Result re-exports slicer.Result.
type Result = slicer.Result

// DefaultOptimiser returns the Clever optimiser configured with the
// move+draw-size scorer for both phases, non-eager — a reasonable default
// since Clever is the most thorough of the available variants.
func DefaultOptimiser() optimize.Optimiser {
	return optimize.Clever(optimize.ScoreSize, optimize.ScoreSize, false)
}

// DefaultSelector returns a PerimeterSelector with its recommended
// default diagonal/orthogonal weights.
func DefaultSelector() selector.Selector {
	return selector.NewPerimeterSelector(selector.DefaultPerimeterOptions())
}

// Trace runs the basic Slicer over g with the default selector and
// optimiser, producing a render-ordered list of Scribes and the
// Processes that populate them. Callers run the Processes (serially or
// in parallel; process.RunAll is convenient for the latter) before
// consuming the Scribes.
func Trace(g Grid, scribes ScribeFactory) (*Result, error) {
	return slicer.Run(g, DefaultSelector(), DefaultOptimiser(), scribes)
}

// TraceWith runs the basic Slicer with caller-supplied selector and
// optimiser strategies.
func TraceWith(g Grid, sel selector.Selector, opt optimize.Optimiser, scribes ScribeFactory) (*Result, error) {
	return slicer.Run(g, sel, opt, scribes)
}

// TraceTournament runs a tournament of candidate optimisers: every
// optimiser in optimisers competes per colour and the Scribe with the
// minimum Score under cmp is kept.
func TraceTournament(g Grid, sel selector.Selector, optimisers []optimize.Optimiser, scribes ScribeFactory, cmp scribe.Comparator) (*Result, error) {
	return slicer.RunMulti(g, sel, optimisers, scribes, cmp)
}
