package board

// Perft counts the number of leaf positions reachable from g after exactly
// depth plies, passing when a side has no legal move, and stopping the
// recursion when both sides are blocked (matching how the rest of the
// engine treats a finished game). It is used purely to validate move
// generation and make/unmake correctness against known node counts.
func Perft(g GameState, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := g.Board.GetMoves()
	if moves == 0 {
		if g.Board.PassMove().GetMoves() == 0 {
			return 1 // game over, counts as one terminal leaf
		}
		return Perft(g.Play(NoSquare), depth)
	}

	var nodes uint64
	for m := moves; m != 0; {
		sq := m.PopLSB()
		nodes += Perft(g.Play(sq), depth-1)
	}
	return nodes
}
