package board

// Move is a single legal move: the square played and the bitboard of
// opponent discs it flips. Value and Reduction are move-ordering annotations
// filled in by the search's move orderer; neither is part of move identity.
// Reduction is the number of plies a late-move-reduced search should shave
// off this move's search depth.
type Move struct {
	Sq        Square
	Flipped   Bitboard
	Value     int32
	Reduction int8
}

// MaxMoves is the true upper bound on legal moves in any Reversi position
// (one per empty square).
const MaxMoves = 64

// MoveList is a fixed-capacity move buffer. Using a plain array instead of a
// slice keeps move generation allocation-free on the search hot path.
type MoveList struct {
	moves [MaxMoves]Move
	count int
}

// Len returns the number of moves currently in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Add appends a move to the list.
func (ml *MoveList) Add(sq Square, flipped Bitboard) {
	ml.moves[ml.count] = Move{Sq: sq, Flipped: flipped}
	ml.count++
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Set overwrites the move at index i, used by the move orderer to annotate
// Value in place.
func (ml *MoveList) Set(i int, m Move) {
	ml.moves[i] = m
}

// Reset empties the list for reuse without reallocating.
func (ml *MoveList) Reset() {
	ml.count = 0
}

// Swap exchanges the moves at indices i and j.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// PickBest moves the highest-Value move among [from, ml.count) into index
// from and returns it, implementing the lazy partial-selection-sort used by
// move ordering: later moves are only sorted once they are actually visited.
func (ml *MoveList) PickBest(from int) Move {
	best := from
	for i := from + 1; i < ml.count; i++ {
		if ml.moves[i].Value > ml.moves[best].Value {
			best = i
		}
	}
	ml.Swap(from, best)
	return ml.moves[from]
}

// GenerateMoves fills ml with every legal move for the player on move in b.
func GenerateMoves(b Board) MoveList {
	var ml MoveList
	moves := b.GetMoves()
	for moves != 0 {
		sq := moves.PopLSB()
		flipped := FlipDiscs(sq, b.Player, b.Opponent)
		ml.Add(sq, flipped)
	}
	return ml
}
