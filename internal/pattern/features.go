package pattern

import "github.com/natsutteatsuiyone/neural-reversi-sub002/internal/board"

// Indices holds, for one perspective (the player to move, or its opponent),
// the raw ternary index of each pattern: a base-3 number whose digit at
// position k is 0 (empty), 1 (this perspective's disc) or 2 (the other
// perspective's disc) for PatternSquares[p][k]. Adding FeatureOffsets[p]
// turns Indices[p] into the flat input-feature index the network consumes.
type Indices [NumPatternFeatures]uint32

// Compute builds both perspectives' pattern indices from scratch. It is used
// once per search root (and by tests); during search, perspectives are
// carried forward incrementally via Update instead.
func Compute(b board.Board) (self, other Indices) {
	for p := 0; p < NumPatternFeatures; p++ {
		var selfIdx, otherIdx uint32
		for k, sq := range PatternSquares[p] {
			pw := pow3[k]
			switch {
			case b.Player.IsSet(sq):
				selfIdx += pw
				otherIdx += 2 * pw
			case b.Opponent.IsSet(sq):
				selfIdx += 2 * pw
				otherIdx += pw
			}
		}
		self[p] = selfIdx
		other[p] = otherIdx
	}
	return self, other
}

// Update advances both perspectives' pattern indices across a single move:
// sq is the square just played by the mover, and flipped is the bitboard of
// discs that changed color as a result (as returned by board.FlipDiscs).
// selfIdx/otherIdx are the mover's own indices and its opponent's indices
// immediately before the move; the two return values are, respectively,
// the new position's indices from the perspective of the side now on move
// (the mover's former opponent) and from the perspective of the side that
// just moved.
//
// This follows directly from how a disc's digit changes under each
// perspective: the newly played square goes from empty to "mine" under the
// mover's own perspective (digit 0->1) and from empty to "theirs" under the
// opponent's perspective (digit 0->2); every flipped square goes from
// "theirs" to "mine" under the mover's perspective (2->1) and from "mine" to
// "theirs" under the opponent's perspective (1->2).
func Update(selfIdx, otherIdx Indices, sq board.Square, flipped board.Bitboard) (newPlayerIdx, newOpponentIdx Indices) {
	newOpponentIdx = selfIdx
	newPlayerIdx = otherIdx

	for p := 0; p < NumPatternFeatures; p++ {
		if patternPos[p][sq] >= 0 {
			pw := pow3[patternPos[p][sq]]
			newOpponentIdx[p] += pw     // empty(0) -> mine(1)
			newPlayerIdx[p] += 2 * pw   // empty(0) -> theirs(2)
		}

		for fb := flipped & PatternMask[p]; fb != 0; {
			fsq := fb.PopLSB()
			pw := pow3[patternPos[p][fsq]]
			newOpponentIdx[p] -= pw // theirs(2) -> mine(1)
			newPlayerIdx[p] += pw   // mine(1) -> theirs(2)
		}
	}

	return newPlayerIdx, newOpponentIdx
}

// FlatIndices writes the flat input-feature index (pattern index plus
// FeatureOffsets) for every pattern into out, which must have length
// NumPatternFeatures. This is the slice the network's input transformer
// uses to gather weight rows.
func (idx Indices) FlatIndices(out []uint32) {
	for p := 0; p < NumPatternFeatures; p++ {
		out[p] = FeatureOffsets[p] + idx[p]
	}
}
