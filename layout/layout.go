// Package layout implements a rectangular step-graph encoding: a finite
// set of directed unit-length "steps" over the lattice points of a grid,
// with availability tracked as a flat bitset keyed by identifier
// arithmetic rather than a pointer graph, so a step and its inverse can
// be located and cleared together without any reference cycles.
package layout

import (
	"errors"
	"fmt"

	"github.com/arvida/rastertrace/grid"
)

// ErrInvalidStep indicates a step identifier outside [0, NumSteps()) was
// passed to a Layout method.
var ErrInvalidStep = errors.New("layout: invalid step identifier")

// Point is an integer lattice point.
type Point struct{ X, Y int }

// Layout is the rectangular step-graph over a W×H grid. Construction scans
// every undirected edge of the lattice and marks it available iff the two
// cells straddling it differ in solidity (colour 0 vs non-0).
type Layout struct {
	w, h             int
	numHPos, numVPos int
	avail            []uint64 // one bit per undirected edge position
}

// New builds a Layout from g. Horizontal capacity is 2*W*(H+1) and
// vertical capacity is 2*H*(W+1); this Layout stores one availability
// bit per undirected edge (half of each capacity).
func New(g grid.Grid) *Layout {
	w, h := g.Width(), g.Height()
	numHPos := w * (h + 1)
	numVPos := h * (w + 1)
	numPos := numHPos + numVPos
	l := &Layout{
		w:       w,
		h:       h,
		numHPos: numHPos,
		numVPos: numVPos,
		avail:   make([]uint64, (numPos+63)/64),
	}

	solid := func(x, y int) bool { return g.Colour(x, y) != 0 }

	// Horizontal edges: position p = W*y + x, x in [0,W), y in [0,H].
	for y := 0; y <= h; y++ {
		for x := 0; x < w; x++ {
			p := w*y + x
			above := solid(x, y-1)
			below := solid(x, y)
			l.setAvail(p, above != below)
		}
	}
	// Vertical edges: position q = (W+1)*y + x, x in [0,W], y in [0,H).
	for y := 0; y < h; y++ {
		for x := 0; x <= w; x++ {
			q := (w+1)*y + x
			left := solid(x-1, y)
			right := solid(x, y)
			l.setAvail(numHPos+q, left != right)
		}
	}
	return l
}

// NumSteps returns the total number of directed step identifiers, 2× the
// number of undirected edges.
func (l *Layout) NumSteps() int { return 2 * (l.numHPos + l.numVPos) }

func (l *Layout) setAvail(pos int, v bool) {
	if v {
		l.avail[pos/64] |= 1 << uint(pos%64)
	}
}

func (l *Layout) validPos(pos int) bool {
	return pos >= 0 && pos < l.numHPos+l.numVPos
}

// Available reports whether step id (or equivalently its inverse) is
// still unconsumed.
func (l *Layout) Available(id int) bool {
	pos := id / 2
	if !l.validPos(pos) {
		return false
	}
	return l.avail[pos/64]&(1<<uint(pos%64)) != 0
}

// Consume marks id and its inverse as no longer available.
func (l *Layout) Consume(id int) error {
	pos := id / 2
	if !l.validPos(pos) {
		return fmt.Errorf("layout: consume %d: %w", id, ErrInvalidStep)
	}
	l.avail[pos/64] &^= 1 << uint(pos%64)
	return nil
}

// Invert returns the inverse of id (same endpoints, opposite direction).
func (l *Layout) Invert(id int) int { return id ^ 1 }

// endpoints decodes id into its start and end lattice points.
func (l *Layout) endpoints(id int) (start, end Point, ok bool) {
	pos := id / 2
	forward := id%2 == 0
	if !l.validPos(pos) {
		return Point{}, Point{}, false
	}
	if pos < l.numHPos {
		x := pos % l.w
		y := pos / l.w
		start, end = Point{x, y}, Point{x + 1, y}
	} else {
		q := pos - l.numHPos
		x := q % (l.w + 1)
		y := q / (l.w + 1)
		start, end = Point{x, y}, Point{x, y + 1}
	}
	if !forward {
		start, end = end, start
	}
	return start, end, true
}

// Start returns the lattice point id leaves from.
func (l *Layout) Start(id int) Point {
	s, _, _ := l.endpoints(id)
	return s
}

// End returns the lattice point id arrives at.
func (l *Layout) End(id int) Point {
	_, e, _ := l.endpoints(id)
	return e
}

func direction(start, end Point) Point {
	return Point{end.X - start.X, end.Y - start.Y}
}

func (l *Layout) dir(id int) Point {
	s, e, _ := l.endpoints(id)
	return direction(s, e)
}

// Parallel reports whether a and b point the same direction.
func (l *Layout) Parallel(a, b int) bool { return l.dir(a) == l.dir(b) }

// Antiparallel reports whether a and b point exactly opposite directions.
func (l *Layout) Antiparallel(a, b int) bool {
	da, db := l.dir(a), l.dir(b)
	return da.X == -db.X && da.Y == -db.Y
}

// incident returns the (up to 4) directed step identifiers leaving (x,y),
// one per incident undirected edge that exists within the grid bounds.
// Availability is not checked here; callers filter.
func (l *Layout) incident(x, y int) []int {
	out := make([]int, 0, 4)
	if x < l.w { // edge to the right: (x,y)-(x+1,y)
		p := l.w*y + x
		out = append(out, 2*p) // forward: start (x,y)
	}
	if x > 0 { // edge to the left: (x-1,y)-(x,y)
		p := l.w*y + (x - 1)
		out = append(out, 2*p+1) // reverse: start (x,y)
	}
	if y < l.h { // edge downward: (x,y)-(x,y+1)
		q := (l.w+1)*y + x
		out = append(out, 2*(l.numHPos+q))
	}
	if y > 0 { // edge upward: (x,y-1)-(x,y)
		q := (l.w+1)*(y-1) + x
		out = append(out, 2*(l.numHPos+q)+1)
	}
	return out
}

// AnyStep returns the identifier of any currently available step,
// preferring to start at a corner: it scans the availability bitset from
// its lowest position and returns the reverse-direction identifier of
// the first available undirected edge. This is a heuristic, not a proof
// of corner-seeking on pathological shapes. Returns -1 if no step is
// available.
func (l *Layout) AnyStep() int {
	total := l.numHPos + l.numVPos
	for pos := 0; pos < total; pos++ {
		if l.avail[pos/64]&(1<<uint(pos%64)) != 0 {
			return 2*pos + 1
		}
	}
	return -1
}

// Options returns up to three successor step identifiers whose start
// equals End(id), excluding Invert(id) and any unavailable step.
func (l *Layout) Options(id int) []int {
	v := l.End(id)
	inv := l.Invert(id)
	cands := l.incident(v.X, v.Y)
	out := make([]int, 0, 3)
	for _, c := range cands {
		if c == inv {
			continue
		}
		if !l.Available(c) {
			continue
		}
		out = append(out, c)
	}
	return out
}
