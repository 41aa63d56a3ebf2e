package scribe

import "github.com/arvida/rastertrace/layout"

// opKind distinguishes recorded Scribe commands. ReplayingScribe records
// opcodes rather than captured closures, so replay is simple data
// dispatch with no risk of stale captured state; Replay switches on the
// opcode.
type opKind uint8

const (
	opMove opKind = iota
	opDraw
	opClose
)

type op struct {
	kind  opKind
	point layout.Point
}

// ReplayingScribe records a verbatim move/draw/close sequence and exposes
// its Score, so a tournament of candidate traces can each write to a
// private ReplayingScribe, have their Scores compared, and replay only
// the winner into the real downstream Scribe.
type ReplayingScribe struct {
	ops   []op
	score Score
}

// NewReplaying returns a fresh, empty ReplayingScribe.
func NewReplaying() *ReplayingScribe { return &ReplayingScribe{} }

// Move implements Scribe.
func (r *ReplayingScribe) Move(p layout.Point) {
	r.ops = append(r.ops, op{kind: opMove, point: p})
	r.score.Moves++
}

// Draw implements Scribe.
func (r *ReplayingScribe) Draw(p layout.Point) {
	r.ops = append(r.ops, op{kind: opDraw, point: p})
	r.score.Draws++
}

// Close implements Scribe.
func (r *ReplayingScribe) Close() {
	r.ops = append(r.ops, op{kind: opClose})
}

// Score returns the recorded Score.
func (r *ReplayingScribe) Score() Score { return r.score }

// Replay re-issues the recorded command sequence to dst verbatim.
func (r *ReplayingScribe) Replay(dst Scribe) {
	for _, o := range r.ops {
		switch o.kind {
		case opMove:
			dst.Move(o.point)
		case opDraw:
			dst.Draw(o.point)
		case opClose:
			dst.Close()
		}
	}
}
