package board

import "testing"

// Known perft node counts from the standard Reversi starting position.
// https://www.aartbik.com/strategy.php (and widely reproduced elsewhere).
func TestPerft(t *testing.T) {
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 4},
		{2, 12},
		{3, 56},
		{4, 244},
		{5, 1396},
		{6, 8200},
		{7, 55092},
		{8, 390216},
		{9, 3005320},
	}

	g := NewGameState()
	for _, c := range cases {
		got := Perft(g, c.depth)
		if got != c.want {
			t.Errorf("Perft(depth=%d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestStartingPosition(t *testing.T) {
	g := NewGameState()
	if g.Board.PlayerDiscCount() != 2 || g.Board.OpponentDiscCount() != 2 {
		t.Fatalf("expected 2 discs per side, got player=%d opponent=%d",
			g.Board.PlayerDiscCount(), g.Board.OpponentDiscCount())
	}
	if g.Board.EmptyCount() != 60 {
		t.Fatalf("expected 60 empty squares, got %d", g.Board.EmptyCount())
	}

	moves := g.Board.GetMoves()
	if moves.PopCount() != 4 {
		t.Fatalf("expected 4 opening moves, got %d", moves.PopCount())
	}
	for _, sq := range []Square{D3, C4, F5, E6} {
		if !moves.IsSet(sq) {
			t.Errorf("expected %s to be a legal opening move", sq)
		}
	}
}

func TestMakeMoveFlipsDiscs(t *testing.T) {
	g := NewGameState()
	next := g.Play(D3)

	// D3 captures D4, so Black should have 4 discs and White 1.
	if next.SideToMove != DiscWhite {
		t.Fatalf("expected White to move, got %v", next.SideToMove)
	}
	blackCount := 0
	for _, sq := range []Square{D3, D4, D5, E4} {
		if next.DiscAt(sq) == DiscBlack {
			blackCount++
		}
	}
	if blackCount != 4 {
		t.Fatalf("expected 4 black discs among the opening four squares, got %d", blackCount)
	}
	if next.DiscAt(E5) != DiscWhite {
		t.Fatalf("expected E5 to remain white")
	}
}

func TestHashMatchesRecomputation(t *testing.T) {
	g := NewGameState()
	for _, sq := range []Square{D3, C3, C4, E3} {
		g = g.Play(sq)
		want := g.Board.computeHash(g.SideToMove)
		if g.Board.Hash != want {
			t.Fatalf("incremental hash %x does not match recomputed hash %x after playing %s",
				g.Board.Hash, want, sq)
		}
	}
}

func TestFromStringRoundTrip(t *testing.T) {
	g := NewGameState()
	g = g.Play(D3).Play(C3)

	s := ""
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			s += g.DiscAt(NewSquare(file, rank)).String()
		}
	}

	parsed, err := FromString(s, g.SideToMove)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if parsed.Board.Player != g.Board.Player || parsed.Board.Opponent != g.Board.Opponent {
		t.Fatalf("round-tripped board does not match original")
	}
}

func TestEmptyListRemoveRestore(t *testing.T) {
	g := NewGameState()
	el := NewEmptyList(g.Board)

	before := countEmptyList(el)
	if before != 60 {
		t.Fatalf("expected 60 empty squares in list, got %d", before)
	}

	sq := el.First()
	el.Remove(sq)
	if countEmptyList(el) != before-1 {
		t.Fatalf("expected list to shrink by one after Remove")
	}

	el.Restore(sq)
	if countEmptyList(el) != before {
		t.Fatalf("expected list to be restored to original size")
	}
}

func countEmptyList(el *EmptyList) int {
	n := 0
	for sq := el.First(); sq != NoSquare; sq = el.Next(sq) {
		n++
	}
	return n
}
