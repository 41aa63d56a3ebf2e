// Package savings builds and publishes the 3×3 saving table: a fixed
// mapping from every 3×3 bit pattern to the Score delta of flipping its
// centre cell. The table is global, read-only after construction, and
// built exactly once, keyed by small integer pattern codes. It is
// published with sync.Once rather than an explicit init-time build, so
// first access from any number of concurrent goroutines is still safe
// and idempotent.
package savings

import (
	"sync"

	"github.com/arvida/rastertrace/grid"
	"github.com/arvida/rastertrace/layout"
	"github.com/arvida/rastertrace/scribe"
	"github.com/arvida/rastertrace/tracer"
)

// NumPatterns is the number of distinct 3×3 bit patterns, [0, 512).
const NumPatterns = 512

// CentreBit is the bit index of the centre cell in the row-major 3×3
// encoding (bit 4).
const CentreBit = 1 << 4

// Saving is the (move, draw) delta of flipping a pattern's centre bit.
// Positive values mean flipping the centre reduces emitted output: adding
// it when the pattern's centre bit is clear, removing it when it is set.
type Saving struct {
	Moves int
	Draws int
}

// Negate returns the saving with both deltas negated.
func (s Saving) Negate() Saving { return Saving{Moves: -s.Moves, Draws: -s.Draws} }

var (
	once  sync.Once
	table [NumPatterns]Saving
)

// Get returns the saving for a 3×3 pattern in [0, 512). Patterns outside
// that range are a programming error and return the zero Saving.
func Get(pattern int) Saving {
	once.Do(build)
	if pattern < 0 || pattern >= NumPatterns {
		return Saving{}
	}
	return table[pattern]
}

func build() {
	for p := 0; p < NumPatterns; p++ {
		m0, d0 := traceScore(patternGrid(p))
		m1, d1 := traceScore(patternGrid(p ^ CentreBit))
		table[p] = Saving{Moves: m0 - m1, Draws: d0 - d1}
	}
}

// patternGrid materializes a 3×3 dense grid from its bit pattern. Bit i
// sets cell (i%3, i/3) solid (colour 1); all other cells are 0.
func patternGrid(pattern int) *grid.Dense {
	g, _ := grid.NewDense(3, 3)
	for i := 0; i < 9; i++ {
		if pattern&(1<<uint(i)) != 0 {
			g.Set(i%3, i/3, 1)
		}
	}
	return g
}

func traceScore(g grid.Grid) (moves, draws int) {
	l := layout.New(g)
	cs := scribe.NewCounting()
	tracer.New(l, cs).Run()
	sc := cs.Score()
	return sc.Moves, sc.Draws
}
