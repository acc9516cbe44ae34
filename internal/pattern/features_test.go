package pattern

import (
	"testing"

	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/board"
)

func TestInputFeatureDimsMatchesOffsets(t *testing.T) {
	last := FeatureOffsets[NumPatternFeatures-1] + pow3[PatternSize[NumPatternFeatures-1]]
	if last != InputFeatureDims {
		t.Fatalf("InputFeatureDims = %d, want %d", InputFeatureDims, last)
	}
}

func TestPatternSizeWithinBound(t *testing.T) {
	for p := 0; p < NumPatternFeatures; p++ {
		if PatternSize[p] == 0 || PatternSize[p] > MaxPatternSquares {
			t.Fatalf("pattern %d has size %d, want 1..%d", p, PatternSize[p], MaxPatternSquares)
		}
	}
}

// TestUpdateMatchesRecompute plays a short game and checks that the
// incrementally updated indices always agree with a from-scratch Compute.
func TestUpdateMatchesRecompute(t *testing.T) {
	g := board.NewGameState()
	selfIdx, otherIdx := Compute(g.Board)

	moves := []board.Square{board.D3, board.C3, board.C4, board.E3, board.F4}
	for _, sq := range moves {
		flipped := board.FlipDiscs(sq, g.Board.Player, g.Board.Opponent)
		selfIdx, otherIdx = Update(selfIdx, otherIdx, sq, flipped)

		g = g.Play(sq)
		wantSelf, wantOther := Compute(g.Board)
		if selfIdx != wantSelf {
			t.Fatalf("after %s: incremental self indices %v != recomputed %v", sq, selfIdx, wantSelf)
		}
		if otherIdx != wantOther {
			t.Fatalf("after %s: incremental other indices %v != recomputed %v", sq, otherIdx, wantOther)
		}
	}
}
