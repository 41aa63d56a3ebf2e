package savings_test

import (
	"testing"

	"github.com/arvida/rastertrace/savings"
	"github.com/stretchr/testify/require"
)

// TestCentreOnlyPatternNegatesEmptyPattern: pattern 16 (only the centre
// bit set) saves the negation of pattern 0's saving, and saving(0) equals
// (-1, -4) — the negative of a single unit square's (moves, draws).
func TestCentreOnlyPatternNegatesEmptyPattern(t *testing.T) {
	s0 := savings.Get(0)
	require.Equal(t, savings.Saving{Moves: -1, Draws: -4}, s0)

	s16 := savings.Get(savings.CentreBit)
	require.Equal(t, s0.Negate(), s16)
}

// TestSavingTableSymmetry checks that for every pattern p with the centre
// bit clear, saving(p) == negation of saving(p | centre).
func TestSavingTableSymmetry(t *testing.T) {
	for p := 0; p < savings.NumPatterns; p++ {
		if p&savings.CentreBit != 0 {
			continue
		}
		got := savings.Get(p)
		want := savings.Get(p | savings.CentreBit).Negate()
		require.Equal(t, want, got, "pattern %09b", p)
	}
}

func TestGetOutOfRange(t *testing.T) {
	require.Equal(t, savings.Saving{}, savings.Get(-1))
	require.Equal(t, savings.Saving{}, savings.Get(savings.NumPatterns))
}
