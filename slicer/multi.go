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

// RunMulti runs a tournament of candidate optimisers: for each selected
// colour, every candidate optimiser drives a private Tracer into its own
// ReplayingScribe, the competing chains run concurrently, and the Scribe
// with the minimum Score under cmp is kept (ties broken by first
// enumeration order). The winner's replay becomes the per-colour Process.
func RunMulti(g grid.Grid, sel selector.Selector, optimisers []optimize.Optimiser, scribes Factory, cmp scribe.Comparator) (*Result, error) {
	palette := grid.Palette(g)
	res := &Result{}

	for {
		c := sel.Select(g, palette)
		if c <= 0 {
			break
		}
		palette = removeColour(palette, c)
		future := optimize.NewColourSet(palette...)

		winner, err := raceOptimisers(g, c, future, optimisers, cmp)
		if err != nil {
			return nil, err
		}

		s := scribes(c)
		res.Scribes = append(res.Scribes, s)
		res.Processes = append(res.Processes, process.New(replayOnce(winner, s)))
	}
	return res, nil
}

// raceOptimisers runs every optimiser's optimise+trace chain to a private
// ReplayingScribe concurrently and returns the one with the best Score.
func raceOptimisers(g grid.Grid, current int, future optimize.ColourSet, optimisers []optimize.Optimiser, cmp scribe.Comparator) (*scribe.ReplayingScribe, error) {
	results := make([]*scribe.ReplayingScribe, len(optimisers))
	errs := make([]error, len(optimisers))
	runners := make([]*process.Runner, len(optimisers))

	for i, opt := range optimisers {
		i, opt := i, opt
		job, err := opt.Prepare(g, current, future)
		if err != nil {
			errs[i] = err
			runners[i] = process.New(func() bool { return false })
			continue
		}
		rs := scribe.NewReplaying()
		results[i] = rs
		done := false
		runners[i] = process.New(func() bool {
			if job.Step() {
				return true
			}
			if !done {
				done = true
				t := tracer.New(layout.New(job.OptimisedGrid()), rs)
				t.Run()
			}
			return false
		})
	}

	if err := process.RunAll(nil, runners); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	best := 0
	for i := 1; i < len(results); i++ {
		if cmp(results[i].Score(), results[best].Score()) {
			best = i
		}
	}
	return results[best], nil
}

// replayOnce returns a Step that replays rs into dst on its first call and
// reports completion on every call thereafter.
func replayOnce(rs *scribe.ReplayingScribe, dst scribe.Scribe) process.Step {
	replayed := false
	return func() bool {
		if !replayed {
			rs.Replay(dst)
			replayed = true
		}
		return false
	}
}
