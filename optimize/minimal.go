package optimize

import "github.com/arvida/rastertrace/grid"

// Minimal performs no rewriting: the output grid is solid exactly where
// the source colour equals current.
func Minimal() Optimiser {
	return OptimiserFunc(func(src grid.Grid, current int, future ColourSet) (Job, error) {
		if err := validate(current, future); err != nil {
			return nil, err
		}
		return &doneJob{g: minimalGrid(src, current)}, nil
	})
}

// Mapped treats all current+future cells as solid, with no work to do.
func Mapped() Optimiser {
	return OptimiserFunc(func(src grid.Grid, current int, future ColourSet) (Job, error) {
		if err := validate(current, future); err != nil {
			return nil, err
		}
		return &doneJob{g: mappedGrid(src, reducer(current, future))}, nil
	})
}

// doneJob is a Job that is already complete on construction.
type doneJob struct {
	g *grid.Bool
}

// Step implements Job; Minimal/Mapped have no work, so Step always reports
// completion immediately.
func (d *doneJob) Step() bool { return false }

// OptimisedGrid implements Job.
func (d *doneJob) OptimisedGrid() grid.Grid { return d.g }
