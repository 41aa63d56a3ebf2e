// Package scribe defines the write-only drawing-command sink the Tracer
// emits to, and the Score summary used to compare competing traces.
package scribe

import "github.com/arvida/rastertrace/layout"

// Scribe receives move/draw/close drawing commands. move implicitly closes
// any currently open subpath; close finalises the current subpath. A
// Scribe never raises errors: if a downstream renderer needs to signal
// I/O failure that is its own concern, layered outside the core.
type Scribe interface {
	Move(p layout.Point)
	Draw(p layout.Point)
	Close()
}

// Score is a scribe's output summary: counts of move and draw commands.
// moves+draws is the size of the emitted coordinate sequence; draws is the
// count of straight-line segments.
type Score struct {
	Moves int
	Draws int
}

// Size returns Moves+Draws.
func (s Score) Size() int { return s.Moves + s.Draws }

// Less orders by draws-then-moves+draws, a reasonable default ordering.
// Callers needing a different ordering should use a custom Comparator
// instead.
func (s Score) Less(o Score) bool {
	if s.Draws != o.Draws {
		return s.Draws < o.Draws
	}
	return s.Size() < o.Size()
}

// Comparator reports whether a should be preferred over b (a "is less
// than" b, in sort terms).
type Comparator func(a, b Score) bool

// ByDraws compares by draw count alone.
func ByDraws(a, b Score) bool { return a.Draws < b.Draws }

// BySize compares by moves+draws.
func BySize(a, b Score) bool { return a.Size() < b.Size() }

// CountingScribe discards coordinates and only tallies a Score. Used by
// the 3×3 saving table and anywhere only the Score matters.
type CountingScribe struct {
	score Score
	open  bool
}

// NewCounting returns a fresh CountingScribe.
func NewCounting() *CountingScribe { return &CountingScribe{} }

// Move implements Scribe.
func (c *CountingScribe) Move(layout.Point) {
	c.score.Moves++
	c.open = true
}

// Draw implements Scribe.
func (c *CountingScribe) Draw(layout.Point) {
	c.score.Draws++
}

// Close implements Scribe.
func (c *CountingScribe) Close() {
	c.open = false
}

// Score returns the accumulated score.
func (c *CountingScribe) Score() Score { return c.score }
