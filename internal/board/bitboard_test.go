package board

import "testing"

func TestCountLastFlipMatchesFlipDiscs(t *testing.T) {
	g := NewGameState()
	next := g.Play(D3)

	want := FlipDiscs(C5, next.Board.Player, next.Board.Opponent).PopCount()
	got := CountLastFlip(C5, next.Board.Player, next.Board.Opponent)
	if got != want {
		t.Errorf("CountLastFlip = %d, want %d", got, want)
	}
}

func TestCornerStabilityCountsOnlyCorners(t *testing.T) {
	b := A1.Bitboard() | H8.Bitboard() | D4.Bitboard()
	if got := b.CornerStability(); got != 2 {
		t.Errorf("CornerStability() = %d, want 2", got)
	}
}

func TestCornerWeightedCountWeighsCorners(t *testing.T) {
	noCorners := D4.Bitboard() | E5.Bitboard()
	if got := noCorners.CornerWeightedCount(); got != 2 {
		t.Errorf("CornerWeightedCount() with no corners = %d, want 2", got)
	}

	oneCorner := D4.Bitboard() | A1.Bitboard()
	if got := oneCorner.CornerWeightedCount(); got != 4 {
		t.Errorf("CornerWeightedCount() with one corner = %d, want 4", got)
	}
}

func TestGetPotentialMovesExcludesOccupiedSquares(t *testing.T) {
	g := NewGameState()
	potential := GetPotentialMoves(g.Board.Player, g.Board.Opponent)

	if potential&(g.Board.Player|g.Board.Opponent) != 0 {
		t.Errorf("GetPotentialMoves overlaps occupied squares")
	}
	if potential.PopCount() == 0 {
		t.Errorf("expected at least one potential move adjacent to the starting position")
	}
}

func TestGetMovesAndPotentialMatchesIndividualCalls(t *testing.T) {
	g := NewGameState()
	moves, potential := GetMovesAndPotential(g.Board.Player, g.Board.Opponent)

	if moves != GetMoves(g.Board.Player, g.Board.Opponent) {
		t.Errorf("GetMovesAndPotential's moves diverged from GetMoves")
	}
	if potential != GetPotentialMoves(g.Board.Player, g.Board.Opponent) {
		t.Errorf("GetMovesAndPotential's potential diverged from GetPotentialMoves")
	}
}
