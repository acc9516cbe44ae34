package board

// EmptyList is a doubly linked list over the empty squares of a position,
// represented as two parallel prev/next arrays indexed by square plus one
// sentinel slot (index 64, NoSquare). It lets the endgame solver remove a
// played square and restore it again in O(1), without touching the other
// entries, which is the dominant cost once only a handful of empty squares
// remain and move generation gives way to direct iteration over this list.
type EmptyList struct {
	prev [65]Square
	next [65]Square
}

// NewEmptyList builds an EmptyList from the empty squares of b, ordered by
// square index with the sentinel at NoSquare. Callers that want parity-based
// move ordering should build the list via NewEmptyListOrdered instead.
func NewEmptyList(b Board) *EmptyList {
	empty := ^(b.Player | b.Opponent)
	return newEmptyListFromBitboard(empty)
}

func newEmptyListFromBitboard(empty Bitboard) *EmptyList {
	el := &EmptyList{}
	last := NoSquare
	for bb := empty; bb != 0; {
		sq := bb.PopLSB()
		el.next[last] = sq
		el.prev[sq] = last
		last = sq
	}
	el.next[last] = NoSquare
	return el
}

// NewEmptyListOrdered builds an EmptyList whose iteration order is a
// caller-supplied permutation of the empty squares (used to apply parity
// move ordering: odd-region squares visited before even-region ones, since
// playing into an odd region leaves the opponent an even one).
func NewEmptyListOrdered(squares []Square) *EmptyList {
	el := &EmptyList{}
	last := NoSquare
	for _, sq := range squares {
		el.next[last] = sq
		el.prev[sq] = last
		last = sq
	}
	el.next[last] = NoSquare
	return el
}

// First returns the first square in the list, or NoSquare if empty.
func (el *EmptyList) First() Square {
	return el.next[NoSquare]
}

// Next returns the square following sq in the list, or NoSquare at the end.
func (el *EmptyList) Next(sq Square) Square {
	return el.next[sq]
}

// Remove unlinks sq from the list in O(1). Remove/Restore calls must be
// strictly nested (last removed, first restored), matching the natural
// make/unmake recursion of the endgame solver.
func (el *EmptyList) Remove(sq Square) {
	p, n := el.prev[sq], el.next[sq]
	el.next[p] = n
	el.prev[n] = p
}

// Restore re-links sq into the list, undoing the most recent Remove(sq).
func (el *EmptyList) Restore(sq Square) {
	p, n := el.prev[sq], el.next[sq]
	el.next[p] = sq
	el.prev[n] = sq
}
