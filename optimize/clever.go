package optimize

import (
	"github.com/arvida/rastertrace/grid"
	"github.com/arvida/rastertrace/savings"
)

// cleverTemplate is one entry of the 16-pattern corner/projection library:
// included/excluded bit masks (disjoint) plus the walk's primary
// direction and its 90°-turn "side" direction. A pattern matches a
// candidate's 3×3 neighbourhood iff (pattern&Include)==Include and
// (pattern&Exclude)==0.
//
// The 16 masks are derived as data rather than hand-enumerated literals:
// 4 rotations of a fixed direction/turn pair, each contributing a
// projection-thin, projection-thick, corner-L and corner-full variant.
type cleverTemplate struct {
	Include, Exclude int
	Dir, Turn        [2]int
}

func bit(dx, dy int) int {
	return 1 << uint((dy+1)*3+(dx+1))
}

func add(a, b [2]int) [2]int { return [2]int{a[0] + b[0], a[1] + b[1]} }
func neg(a [2]int) [2]int    { return [2]int{-a[0], -a[1]} }

// buildTemplates enumerates the 16 entries: for each of the 4 axis
// directions (rotated 90° each time) with its consistent right-turn side,
// one projection-thin, projection-thick, corner-L, and corner-full
// template.
func buildTemplates() []cleverTemplate {
	dirs := [][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	out := make([]cleverTemplate, 0, 16)
	for _, d := range dirs {
		t := [2]int{-d[1], d[0]} // 90° turn, consistent rotation
		back := neg(d)
		backTurn := add(back, t)

		out = append(out,
			// projection-thin: a straight run behind the candidate, side clear.
			cleverTemplate{
				Include: bit(back[0], back[1]),
				Exclude: bit(d[0], d[1]) | bit(t[0], t[1]),
				Dir:     d, Turn: t,
			},
			// projection-thick: the behind cell and its side-diagonal are solid.
			cleverTemplate{
				Include: bit(back[0], back[1]) | bit(backTurn[0], backTurn[1]),
				Exclude: bit(d[0], d[1]) | bit(t[0], t[1]),
				Dir:     d, Turn: t,
			},
			// corner-L: only the side-diagonal behind the candidate is solid.
			cleverTemplate{
				Include: bit(backTurn[0], backTurn[1]),
				Exclude: bit(d[0], d[1]) | bit(t[0], t[1]) | bit(back[0], back[1]),
				Dir:     d, Turn: t,
			},
			// corner-full: the side-diagonal and the side cell itself are solid.
			cleverTemplate{
				Include: bit(backTurn[0], backTurn[1]) | bit(t[0], t[1]),
				Exclude: bit(d[0], d[1]) | bit(back[0], back[1]),
				Dir:     d, Turn: t,
			},
		)
	}
	return out
}

var cleverTemplates = buildTemplates()

func (tpl cleverTemplate) matches(pattern int) bool {
	return pattern&tpl.Include == tpl.Include && pattern&tpl.Exclude == 0
}

// Clever runs an accretion pass with a fallback corner/projection template
// fill, followed by a reluctant erosion pass.
func Clever(accretionScorer, erosionScorer Scorer, eager bool) Optimiser {
	return OptimiserFunc(func(src grid.Grid, current int, future ColourSet) (Job, error) {
		if err := validate(current, future); err != nil {
			return nil, err
		}
		w, h := src.Width(), src.Height()
		j := &cleverJob{
			src:             src,
			future:          future,
			reduce:          reducer(current, future),
			working:         minimalGrid(src, current),
			queue:           newCellQueue(w, h),
			accretionScorer: accretionScorer,
			erosionScorer:   erosionScorer,
			eager:           eager,
			phase:           cleverAccretion,
		}
		j.queue.enqueueAll()
		return j, nil
	})
}

type cleverPhase int

const (
	cleverAccretion cleverPhase = iota
	cleverErosion
	cleverDone
)

type cleverJob struct {
	src             grid.Grid
	future          ColourSet
	reduce          func(int) bool
	working         *grid.Bool
	queue           *cellQueue
	accretionScorer Scorer
	erosionScorer   Scorer
	eager           bool
	phase           cleverPhase
}

// Step advances one cell of the current phase, transitioning from
// accretion to erosion once the accretion queue drains.
func (j *cleverJob) Step() bool {
	switch j.phase {
	case cleverAccretion:
		if j.queue.empty() {
			j.startErosion()
			return j.Step()
		}
		j.stepAccretion()
		return true
	case cleverErosion:
		if j.queue.empty() {
			j.phase = cleverDone
			return false
		}
		j.stepErosion()
		return true
	default:
		return false
	}
}

func (j *cleverJob) stepAccretion() {
	p := j.queue.pop()
	colour := j.src.Colour(p.X, p.Y)
	if !j.future.Contains(colour) || j.working.Get(p.X, p.Y) {
		return
	}
	pattern := pattern3x3(j.working.Get, p.X, p.Y)
	sav := savings.Get(pattern)
	if passes(j.accretionScorer, sav, j.eager) {
		j.accrete(p.X, p.Y)
		return
	}
	j.tryTemplates(pattern, p.X, p.Y)
}

func (j *cleverJob) accrete(x, y int) {
	j.working.Set(x, y, true)
	j.queue.requeueNeighbours(x, y, func(nx, ny int) bool {
		return !j.working.Get(nx, ny)
	})
}

// tryTemplates matches the candidate's pattern against the template
// library and, on a match, walks forward filling a linear corner run of
// length >= 2.
func (j *cleverJob) tryTemplates(pattern, x, y int) {
	for _, tpl := range cleverTemplates {
		if !tpl.matches(pattern) {
			continue
		}
		if j.applyTemplate(tpl, x, y) {
			return
		}
	}
}

// applyTemplate walks forward from (x,y) along tpl.Dir, extending the run
// while the side cell (tpl.Turn away from the current position) stays
// solid. (x,y) enters the run unconditionally: tpl.matches has already
// constrained its own side bit through Include/Exclude, so the side test
// is applied only to the cells walked beyond it.
func (j *cleverJob) applyTemplate(tpl cleverTemplate, x, y int) bool {
	walked := make([]layoutPoint, 0, 4)
	walked = append(walked, layoutPoint{x, y})
	px, py := x, y
	for {
		px, py = px+tpl.Dir[0], py+tpl.Dir[1]
		if j.working.Get(px, py) {
			break
		}
		sx, sy := px+tpl.Turn[0], py+tpl.Turn[1]
		if !j.working.Get(sx, sy) {
			break
		}
		colour := j.src.Colour(px, py)
		if !j.reduce(colour) {
			return false // past colour along the walk: abort, no changes
		}
		walked = append(walked, layoutPoint{px, py})
	}
	if len(walked) < 2 {
		return false
	}
	for _, p := range walked {
		j.working.Set(p.X, p.Y, true)
		j.queue.requeueNeighbours(p.X, p.Y, func(nx, ny int) bool {
			return !j.working.Get(nx, ny)
		})
	}
	return true
}

func (j *cleverJob) startErosion() {
	j.phase = cleverErosion
	j.queue = newCellQueue(j.working.Width(), j.working.Height())
	w, h := j.working.Width(), j.working.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if j.working.Get(x, y) {
				j.queue.enqueue(x, y)
			}
		}
	}
}

func (j *cleverJob) stepErosion() {
	p := j.queue.pop()
	colour := j.src.Colour(p.X, p.Y)
	if !j.future.Contains(colour) || !j.working.Get(p.X, p.Y) {
		return
	}
	pattern := pattern3x3(j.working.Get, p.X, p.Y)
	sav := savings.Get(pattern)
	if j.erosionScorer(sav) > 0 {
		j.working.Set(p.X, p.Y, false)
		j.queue.requeueNeighbours(p.X, p.Y, func(nx, ny int) bool {
			return j.working.Get(nx, ny)
		})
	}
}

// OptimisedGrid implements Job.
func (j *cleverJob) OptimisedGrid() grid.Grid { return j.working }
