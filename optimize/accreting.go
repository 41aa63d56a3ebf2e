package optimize

import (
	"github.com/arvida/rastertrace/grid"
	"github.com/arvida/rastertrace/savings"
)

// Accreting starts from the Minimal image and adds future cells whose 3×3
// saving passes the scorer test, monotonically growing the solid set.
// Cells of colour current are never un-set.
func Accreting(scorer Scorer, eager bool) Optimiser {
	return OptimiserFunc(func(src grid.Grid, current int, future ColourSet) (Job, error) {
		if err := validate(current, future); err != nil {
			return nil, err
		}
		w, h := src.Width(), src.Height()
		j := &accretingJob{
			src:     src,
			future:  future,
			working: minimalGrid(src, current),
			queue:   newCellQueue(w, h),
			scorer:  scorer,
			eager:   eager,
		}
		j.queue.enqueueAll()
		return j, nil
	})
}

type accretingJob struct {
	src     grid.Grid
	future  ColourSet
	working *grid.Bool
	queue   *cellQueue
	scorer  Scorer
	eager   bool
}

// Step pops one queued cell and, if it is an uncommitted future cell whose
// saving passes, accretes it and requeues its non-solid neighbours.
func (j *accretingJob) Step() bool {
	if j.queue.empty() {
		return false
	}
	p := j.queue.pop()
	colour := j.src.Colour(p.X, p.Y)
	if j.future.Contains(colour) && !j.working.Get(p.X, p.Y) {
		pattern := pattern3x3(j.working.Get, p.X, p.Y)
		sav := savings.Get(pattern)
		if passes(j.scorer, sav, j.eager) {
			j.working.Set(p.X, p.Y, true)
			j.queue.requeueNeighbours(p.X, p.Y, func(nx, ny int) bool {
				return !j.working.Get(nx, ny)
			})
		}
	}
	return true
}

// OptimisedGrid implements Job.
func (j *accretingJob) OptimisedGrid() grid.Grid { return j.working }
