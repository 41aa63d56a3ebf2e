// Package selector implements colour-ordering strategies for the Slicer:
// given a candidate set of colours, pick the next one to trace. Named
// "selector" (not "select", a Go keyword).
package selector

import "github.com/arvida/rastertrace/grid"

// Selector picks the next colour to trace from candidates, or -1 if
// candidates is empty.
type Selector interface {
	Select(g grid.Grid, candidates []int) int
}

// PerimeterOptions tunes the weighting PerimeterSelector gives to
// diagonal vs. orthogonal transparent adjacency.
type PerimeterOptions struct {
	Diagonal   float64
	Orthogonal float64
}

// DefaultPerimeterOptions returns the recommended defaults: diagonal 0.7,
// orthogonal 1.0.
func DefaultPerimeterOptions() PerimeterOptions {
	return PerimeterOptions{Diagonal: 0.7, Orthogonal: 1.0}
}

// PerimeterSelector selects the candidate colour that maximises a
// weighted count of transparent-adjacent cells. For every lattice point
// it examines the four cells straddling it (top-left, top-right,
// bottom-left, bottom-right) and, for each pair of those four that
// differ with one side transparent, credits the non-transparent colour:
// the two corner-sharing (diagonal) pairs score Diagonal, the four
// edge-sharing (orthogonal) pairs score Orthogonal — symmetric regardless
// of which of the four positions holds the candidate colour.
type PerimeterSelector struct {
	opts PerimeterOptions
}

// NewPerimeterSelector returns a PerimeterSelector with the given weights.
func NewPerimeterSelector(opts PerimeterOptions) *PerimeterSelector {
	return &PerimeterSelector{opts: opts}
}

// Select implements Selector. Ties are broken by ascending colour index,
// for deterministic output across runs.
func (s *PerimeterSelector) Select(g grid.Grid, candidates []int) int {
	if len(candidates) == 0 {
		return -1
	}
	sorted := append([]int(nil), candidates...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	isCandidate := make(map[int]bool, len(sorted))
	for _, c := range sorted {
		isCandidate[c] = true
	}

	scores := make(map[int]float64)
	credit := func(a, b int, weight float64) {
		if a == b {
			return
		}
		if a == 0 && isCandidate[b] {
			scores[b] += weight
		}
		if b == 0 && isCandidate[a] {
			scores[a] += weight
		}
	}

	w, h := g.Width(), g.Height()
	for y := 0; y <= h; y++ {
		for x := 0; x <= w; x++ {
			tl := g.Colour(x-1, y-1)
			tr := g.Colour(x, y-1)
			bl := g.Colour(x-1, y)
			br := g.Colour(x, y)

			credit(tl, br, s.opts.Diagonal)
			credit(tr, bl, s.opts.Diagonal)
			credit(tl, tr, s.opts.Orthogonal)
			credit(tr, br, s.opts.Orthogonal)
			credit(br, bl, s.opts.Orthogonal)
			credit(bl, tl, s.opts.Orthogonal)
		}
	}

	best := -1
	bestScore := -1.0
	for _, c := range sorted {
		if scores[c] > bestScore {
			bestScore = scores[c]
			best = c
		}
	}
	return best
}
