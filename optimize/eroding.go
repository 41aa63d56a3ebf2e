package optimize

import (
	"github.com/arvida/rastertrace/grid"
	"github.com/arvida/rastertrace/savings"
)

// Eroding starts from the Mapped image and removes future cells whose 3×3
// saving passes the scorer test, monotonically shrinking the solid set —
// the dual of Accreting.
func Eroding(scorer Scorer, eager bool) Optimiser {
	return OptimiserFunc(func(src grid.Grid, current int, future ColourSet) (Job, error) {
		if err := validate(current, future); err != nil {
			return nil, err
		}
		w, h := src.Width(), src.Height()
		j := &erodingJob{
			src:     src,
			future:  future,
			working: mappedGrid(src, reducer(current, future)),
			queue:   newCellQueue(w, h),
			scorer:  scorer,
			eager:   eager,
		}
		j.queue.enqueueAll()
		return j, nil
	})
}

type erodingJob struct {
	src     grid.Grid
	future  ColourSet
	working *grid.Bool
	queue   *cellQueue
	scorer  Scorer
	eager   bool
}

// Step pops one queued cell and, if it is a still-solid future cell whose
// saving (read with the centre bit set, i.e. the erosion orientation)
// passes, clears it and requeues its solid neighbours.
func (j *erodingJob) Step() bool {
	if j.queue.empty() {
		return false
	}
	p := j.queue.pop()
	colour := j.src.Colour(p.X, p.Y)
	if j.future.Contains(colour) && j.working.Get(p.X, p.Y) {
		pattern := pattern3x3(j.working.Get, p.X, p.Y)
		sav := savings.Get(pattern)
		if passes(j.scorer, sav, j.eager) {
			j.working.Set(p.X, p.Y, false)
			j.queue.requeueNeighbours(p.X, p.Y, func(nx, ny int) bool {
				return j.working.Get(nx, ny)
			})
		}
	}
	return true
}

// OptimisedGrid implements Job.
func (j *erodingJob) OptimisedGrid() grid.Grid { return j.working }
