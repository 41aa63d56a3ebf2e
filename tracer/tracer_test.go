package tracer_test

import (
	"testing"

	"github.com/arvida/rastertrace/grid"
	"github.com/arvida/rastertrace/layout"
	"github.com/arvida/rastertrace/scribe"
	"github.com/arvida/rastertrace/tracer"
	"github.com/stretchr/testify/require"
)

// recordingScribe captures the full move/draw/close sequence for
// assertions about the traced shape.
type recordingScribe struct {
	moves  []layout.Point
	draws  []layout.Point
	closes int
}

func (r *recordingScribe) Move(p layout.Point) { r.moves = append(r.moves, p) }
func (r *recordingScribe) Draw(p layout.Point) { r.draws = append(r.draws, p) }
func (r *recordingScribe) Close()              { r.closes++ }

func trace(g grid.Grid) *recordingScribe {
	rs := &recordingScribe{}
	l := layout.New(g)
	t := tracer.New(l, rs)
	t.Run()
	return rs
}

// TestSingleSolidCellUnitSquare covers the boundary case: a single solid
// cell traces to one move, four draws (returning to the start corner),
// one close.
func TestSingleSolidCellUnitSquare(t *testing.T) {
	d, err := grid.NewDense(1, 1)
	require.NoError(t, err)
	d.Set(0, 0, 1)

	rs := trace(d)
	require.Len(t, rs.moves, 1)
	require.Equal(t, 1, rs.closes)
	require.GreaterOrEqual(t, len(rs.draws), 3)
	require.LessOrEqual(t, len(rs.draws), 4)

	corners := append([]layout.Point{rs.moves[0]}, rs.draws...)
	distinct := map[layout.Point]bool{}
	for _, p := range corners {
		distinct[p] = true
	}
	require.Len(t, distinct, 4, "a unit square has exactly 4 distinct corners")
}

// TestIsolatedCentreCell covers a 3×3 grid with only the centre cell
// solid: it traces one closed path of exactly 4 distinct corners.
func TestIsolatedCentreCell(t *testing.T) {
	d, err := grid.NewDense(3, 3)
	require.NoError(t, err)
	d.Set(1, 1, 1)

	rs := trace(d)
	require.Len(t, rs.moves, 1)
	require.Equal(t, 1, rs.closes)

	distinct := map[layout.Point]bool{rs.moves[0]: true}
	for _, p := range rs.draws {
		distinct[p] = true
	}
	require.Len(t, distinct, 4)
	for p := range distinct {
		require.True(t, p == (layout.Point{X: 1, Y: 1}) || p == (layout.Point{X: 2, Y: 1}) || p == (layout.Point{X: 2, Y: 2}) || p == (layout.Point{X: 1, Y: 2}))
	}
}

// TestSolidMiddleRow covers a 3×3 grid with row y=1 entirely solid: it
// traces to one path visiting (0,1), (3,1), (3,2), (0,2).
func TestSolidMiddleRow(t *testing.T) {
	d, err := grid.NewDense(3, 3)
	require.NoError(t, err)
	d.Set(0, 1, 1)
	d.Set(1, 1, 1)
	d.Set(2, 1, 1)

	rs := trace(d)
	require.Len(t, rs.moves, 1)
	require.Equal(t, 1, rs.closes)

	want := map[layout.Point]bool{
		{X: 0, Y: 1}: true, {X: 3, Y: 1}: true, {X: 3, Y: 2}: true, {X: 0, Y: 2}: true,
	}
	distinct := map[layout.Point]bool{rs.moves[0]: true}
	for _, p := range rs.draws {
		distinct[p] = true
	}
	require.Equal(t, want, distinct)
}

// TestEmptyGridNoPaths covers the "grid entirely transparent" boundary
// case.
func TestEmptyGridNoPaths(t *testing.T) {
	d, err := grid.NewDense(4, 4)
	require.NoError(t, err)
	rs := trace(d)
	require.Empty(t, rs.moves)
	require.Empty(t, rs.draws)
	require.Zero(t, rs.closes)
}

// TestDiagonalCellsTwoSeparateSquares covers the boundary case: two
// diagonally adjacent same-colour cells sharing only a corner trace as
// two separate closed rectangles.
func TestDiagonalCellsTwoSeparateSquares(t *testing.T) {
	d, err := grid.NewDense(2, 2)
	require.NoError(t, err)
	d.Set(0, 0, 1)
	d.Set(1, 1, 1)

	rs := trace(d)
	require.Len(t, rs.moves, 2, "two diagonally-touching cells trace as two separate subpaths")
	require.Equal(t, 2, rs.closes)
}

// TestInverseStepsFullyConsumed checks that after completion every step
// that was initially available has been consumed along with its inverse.
func TestInverseStepsFullyConsumed(t *testing.T) {
	d, err := grid.NewDense(3, 3)
	require.NoError(t, err)
	d.Set(0, 1, 1)
	d.Set(1, 1, 1)
	d.Set(2, 1, 1)

	l := layout.New(d)
	before := make([]bool, l.NumSteps())
	for id := range before {
		before[id] = l.Available(id)
	}
	tr := tracer.New(l, scribe.NewCounting())
	tr.Run()
	for id, wasAvail := range before {
		if wasAvail {
			require.False(t, l.Available(id), "step %d should have been consumed", id)
		}
	}
}

func TestCountingScribeMatchesMovesAndDraws(t *testing.T) {
	d, err := grid.NewDense(1, 1)
	require.NoError(t, err)
	d.Set(0, 0, 1)

	l := layout.New(d)
	cs := scribe.NewCounting()
	tracer.New(l, cs).Run()
	require.Equal(t, 1, cs.Score().Moves)
	require.Equal(t, 4, cs.Score().Draws)
}
