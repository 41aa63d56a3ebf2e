// Package optimize implements the per-colour cell-map rewriters: Minimal,
// Mapped, Accreting, Eroding, and Clever. Each exposes a Prepare call
// returning a cooperative Job (Step/OptimisedGrid), all sharing one
// validate step (Minimal and Mapped live together in minimal.go, the
// others in a file each), expressed as an
// interface/sum-type rather than a class hierarchy since the variants
// share no state and differ only in their Step logic.
package optimize

import (
	"errors"

	"github.com/arvida/rastertrace/grid"
	"github.com/arvida/rastertrace/savings"
)

// ErrInvalidColour indicates current was 0, or current appears in future.
var ErrInvalidColour = errors.New("optimize: current colour must be non-zero and absent from future")

// ColourSet is a small set of colour indices, used for the "future" role:
// colours scheduled to be painted over the current one later. The zero
// value is an empty set.
type ColourSet map[int]struct{}

// NewColourSet builds a ColourSet from the given colours.
func NewColourSet(colours ...int) ColourSet {
	s := make(ColourSet, len(colours))
	for _, c := range colours {
		s[c] = struct{}{}
	}
	return s
}

// Contains reports whether c is a member.
func (s ColourSet) Contains(c int) bool {
	_, ok := s[c]
	return ok
}

// Job is a cooperative optimiser run: Step does a bounded amount of work
// and reports whether more remains; OptimisedGrid returns the terminal
// working grid once Step has returned false (it is also safe, but
// meaningless, to call mid-run).
type Job interface {
	Step() bool
	OptimisedGrid() grid.Grid
}

// Run drives a Job to completion and returns its optimised grid.
func Run(j Job) grid.Grid {
	for j.Step() {
	}
	return j.OptimisedGrid()
}

// Optimiser prepares a Job for a given source grid, current colour, and
// future colour set.
type Optimiser interface {
	Prepare(src grid.Grid, current int, future ColourSet) (Job, error)
}

// OptimiserFunc adapts a plain function to the Optimiser interface.
type OptimiserFunc func(src grid.Grid, current int, future ColourSet) (Job, error)

// Prepare implements Optimiser.
func (f OptimiserFunc) Prepare(src grid.Grid, current int, future ColourSet) (Job, error) {
	return f(src, current, future)
}

// validate rejects a current colour of 0 (transparent has no outline) or
// one that also appears in future (a colour cannot be both current and
// scheduled to paint over itself).
func validate(current int, future ColourSet) error {
	if current == 0 || future.Contains(current) {
		return ErrInvalidColour
	}
	return nil
}

// reducer returns the predicate "colour = current or colour ∈ future",
// used by every grid-aware optimiser.
func reducer(current int, future ColourSet) func(colour int) bool {
	return func(colour int) bool {
		return colour == current || future.Contains(colour)
	}
}

// minimalGrid returns the Minimal image: solid iff source colour == current.
func minimalGrid(src grid.Grid, current int) *grid.Bool {
	w, h := src.Width(), src.Height()
	out := grid.NewBool(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if src.Colour(x, y) == current {
				out.Set(x, y, true)
			}
		}
	}
	return out
}

// mappedGrid returns the Mapped image: solid iff reduce(source colour).
func mappedGrid(src grid.Grid, reduce func(int) bool) *grid.Bool {
	w, h := src.Width(), src.Height()
	out := grid.NewBool(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if reduce(src.Colour(x, y)) {
				out.Set(x, y, true)
			}
		}
	}
	return out
}

// pattern3x3 computes the bit pattern for the 3×3 neighbourhood centred
// on (x,y), reading solidity from get. Bit i corresponds to the
// i-th cell in row-major order starting top-left; bit 4 is the centre.
func pattern3x3(get func(x, y int) bool, x, y int) int {
	p := 0
	i := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if get(x+dx, y+dy) {
				p |= 1 << uint(i)
			}
			i++
		}
	}
	return p
}

// Scorer reduces a Saving to a single comparable value (e.g. moves, draws,
// or moves+draws) that Accreting/Eroding/Clever test against zero.
type Scorer func(savings.Saving) int

// ScoreDraws scores by draw-count delta alone.
func ScoreDraws(s savings.Saving) int { return s.Draws }

// ScoreMoves scores by move-count delta alone.
func ScoreMoves(s savings.Saving) int { return s.Moves }

// ScoreSize scores by total coordinate-count delta (moves+draws).
func ScoreSize(s savings.Saving) int { return s.Moves + s.Draws }

// passes applies the eager/strict threshold test: eager accepts a
// break-even saving (scorer(saving) >= 0), strict requires a strict
// improvement (scorer(saving) > 0).
func passes(scorer Scorer, sav savings.Saving, eager bool) bool {
	v := scorer(sav)
	if eager {
		return v >= 0
	}
	return v > 0
}

// neighbourOffsets lists the 8 offsets of a 3×3 neighbourhood excluding
// the centre, used to requeue cells whose saving may have changed after a
// flip.
var neighbourOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// cellQueue is a FIFO of grid cells with "is queued" membership tracking,
// the to-process bitset shared by Accreting and Eroding.
type cellQueue struct {
	w, h    int
	items   []layoutPoint
	queued  []bool // w*h, true if currently in items
}

type layoutPoint struct{ X, Y int }

func newCellQueue(w, h int) *cellQueue {
	q := &cellQueue{w: w, h: h, queued: make([]bool, w*h)}
	return q
}

func (q *cellQueue) idx(x, y int) int { return y*q.w + x }

func (q *cellQueue) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < q.w && y < q.h
}

// enqueueAll seeds the queue with every cell, in row-major order.
func (q *cellQueue) enqueueAll() {
	for y := 0; y < q.h; y++ {
		for x := 0; x < q.w; x++ {
			q.items = append(q.items, layoutPoint{x, y})
			q.queued[q.idx(x, y)] = true
		}
	}
}

// enqueue adds (x,y) if in bounds and not already queued.
func (q *cellQueue) enqueue(x, y int) {
	if !q.inBounds(x, y) {
		return
	}
	i := q.idx(x, y)
	if q.queued[i] {
		return
	}
	q.queued[i] = true
	q.items = append(q.items, layoutPoint{x, y})
}

// pop removes and returns the front item. Caller must check empty() first.
func (q *cellQueue) pop() layoutPoint {
	p := q.items[0]
	q.items = q.items[1:]
	q.queued[q.idx(p.X, p.Y)] = false
	return p
}

func (q *cellQueue) empty() bool { return len(q.items) == 0 }

// requeueNeighbours enqueues the 3×3 neighbours of (x,y) for which want
// (typically "currently non-solid" for accretion, "currently solid" for
// erosion) holds.
func (q *cellQueue) requeueNeighbours(x, y int, want func(nx, ny int) bool) {
	for _, o := range neighbourOffsets {
		nx, ny := x+o[0], y+o[1]
		if !q.inBounds(nx, ny) {
			continue
		}
		if want(nx, ny) {
			q.enqueue(nx, ny)
		}
	}
}
