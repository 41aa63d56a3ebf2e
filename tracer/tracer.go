// Package tracer drives a layout.Layout to emit a sequence of closed paths
// to a scribe.Scribe. The Tracer is a cooperative step-function, a small
// struct holding mutable traversal state with a single entry point
// advancing it by one transition.
package tracer

import (
	"github.com/arvida/rastertrace/layout"
	"github.com/arvida/rastertrace/scribe"
)

// Tracer walks a Layout, consuming steps and emitting moves/draws/closes
// with even-odd fill semantics and straight-line preference at crossings.
// It has no error modes: it is total on any well-formed Layout.
type Tracer struct {
	layout      *layout.Layout
	scribe      scribe.Scribe
	cur         int
	foundCorner bool
}

// New returns a Tracer that will drive l and emit to s.
func New(l *layout.Layout, s scribe.Scribe) *Tracer {
	return &Tracer{layout: l, scribe: s, cur: -1}
}

// Step processes one step transition and reports whether work remains.
// Calling Step repeatedly until it returns false traces every closed path
// in the Layout.
func (t *Tracer) Step() bool {
	if t.cur == -1 {
		t.cur = t.layout.AnyStep()
		if t.cur == -1 {
			return false
		}
		t.foundCorner = false
	}

	if t.foundCorner {
		_ = t.layout.Consume(t.cur)
	}

	successors := t.layout.Options(t.cur)
	next, turn := t.selectNext(successors)

	if t.foundCorner {
		if turn || next == -1 {
			t.scribe.Draw(t.layout.End(t.cur))
		}
		if next == -1 {
			t.scribe.Close()
		}
	} else if turn {
		t.foundCorner = true
		t.scribe.Move(t.layout.End(t.cur))
	}

	t.cur = next
	return true
}

// Run drives Step to completion.
func (t *Tracer) Run() {
	for t.Step() {
	}
}

// selectNext prefers a parallel successor (straight-through); otherwise
// it demotes any successor that is antiparallel
// to another successor, and pick the first non-demoted ("primary")
// successor, falling back to the first demoted ("secondary") one, or -1
// if there are no successors at all.
func (t *Tracer) selectNext(successors []int) (next int, turn bool) {
	for _, s := range successors {
		if t.layout.Parallel(s, t.cur) {
			return s, false
		}
	}

	demoted := make(map[int]bool, len(successors))
	for i, a := range successors {
		for j, b := range successors {
			if i == j {
				continue
			}
			if t.layout.Antiparallel(a, b) {
				demoted[a] = true
			}
		}
	}

	primary := -1
	for _, s := range successors {
		if !demoted[s] {
			primary = s
			break
		}
	}
	if primary != -1 {
		return primary, true
	}
	if len(successors) > 0 {
		return successors[0], true
	}
	return -1, true
}
