package board

import "fmt"

// Board is a Reversi position represented as a pair of bitboards: the discs
// belonging to the player on move, and the discs belonging to the opponent.
// This "player/opponent" framing (rather than Black/White) lets move
// generation, evaluation and search stay side-to-move relative, mirroring
// the way a Position is conventionally kept relative to the side to move.
type Board struct {
	Player   Bitboard
	Opponent Bitboard
	Hash     uint64
}

// NewBoard returns the standard Reversi starting position with Black to move.
func NewBoard() Board {
	b := Board{
		Player:   SquareBB(D5) | SquareBB(E4),
		Opponent: SquareBB(D4) | SquareBB(E5),
	}
	b.Hash = b.computeHash(DiscBlack)
	return b
}

// computeHash recomputes the Zobrist hash from scratch given which color the
// Player bitboard currently represents. Used for initial setup and for tests
// that verify the incrementally maintained Hash field never drifts.
func (b Board) computeHash(sideToMove Disc) uint64 {
	other := sideToMove.Opposite()
	var h uint64
	for bb := b.Player; bb != 0; {
		sq := bb.PopLSB()
		h ^= ZobristDisc(sideToMove, sq)
	}
	for bb := b.Opponent; bb != 0; {
		sq := bb.PopLSB()
		h ^= ZobristDisc(other, sq)
	}
	if sideToMove == DiscWhite {
		h ^= ZobristSideToMove()
	}
	return h
}

// GetMoves returns the bitboard of legal move squares for the player on move.
func (b Board) GetMoves() Bitboard {
	return GetMoves(b.Player, b.Opponent)
}

// HasMoves reports whether the player on move has at least one legal move.
func (b Board) HasMoves() bool {
	return b.GetMoves() != 0
}

// IsGameOver reports whether neither side has a legal move, i.e. the board
// is either full or both sides are blocked.
func (b Board) IsGameOver() bool {
	if b.HasMoves() {
		return false
	}
	passed := Board{Player: b.Opponent, Opponent: b.Player}
	return !passed.HasMoves()
}

// EmptyCount returns the number of empty squares remaining.
func (b Board) EmptyCount() int {
	return 64 - (b.Player | b.Opponent).PopCount()
}

// PlayerDiscCount returns the number of discs belonging to the player on move.
func (b Board) PlayerDiscCount() int {
	return b.Player.PopCount()
}

// OpponentDiscCount returns the number of discs belonging to the opponent.
func (b Board) OpponentDiscCount() int {
	return b.Opponent.PopCount()
}

// MakeMove plays sq for the player on move, flipping the given bitboard of
// opponent discs (as computed by FlipDiscs), and returns the resulting
// position with the side to move switched. sideToMove identifies which color
// Player currently represents, needed to maintain the Zobrist hash
// incrementally; the returned side-to-move color is sideToMove.Opposite().
func (b Board) MakeMove(sq Square, flipped Bitboard, sideToMove Disc) Board {
	other := sideToMove.Opposite()
	newPlayer := b.Opponent ^ flipped
	newOpponent := b.Player ^ flipped ^ sq.Bitboard()

	h := b.Hash
	h ^= ZobristDisc(sideToMove, sq)
	for bb := flipped; bb != 0; {
		fsq := bb.PopLSB()
		h ^= ZobristDisc(sideToMove, fsq) ^ ZobristDisc(other, fsq)
	}
	h ^= ZobristSideToMove()

	return Board{Player: newPlayer, Opponent: newOpponent, Hash: h}
}

// PassMove returns the position with sides swapped and no disc changes,
// used when the player on move has no legal moves.
func (b Board) PassMove() Board {
	return Board{
		Player:   b.Opponent,
		Opponent: b.Player,
		Hash:     b.Hash ^ ZobristSideToMove(),
	}
}

// At returns the disc occupying sq from the player-on-move's perspective:
// DiscBlack means "the player on move", DiscWhite means "the opponent",
// matching the absolute color only once sideToMove is known. Callers that
// need absolute Black/White discs should use DiscAt on a side-to-move-tagged
// board via (*GameState).DiscAt.
func (b Board) At(sq Square) Disc {
	if b.Player.IsSet(sq) {
		return DiscBlack
	}
	if b.Opponent.IsSet(sq) {
		return DiscWhite
	}
	return DiscEmpty
}

// String renders the board with the player's discs as 'X' and the
// opponent's discs as 'O', for debugging.
func (b Board) String() string {
	s := ""
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d ", rank+1)
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			s += b.At(sq).String() + " "
		}
		s += "\n"
	}
	s += "  a b c d e f g h\n"
	return s
}

// GameState pairs a Board with the absolute color to move, which is the unit
// the rest of the engine (search, evaluation, UI) actually operates on.
type GameState struct {
	Board      Board
	SideToMove Disc
}

// NewGameState returns the standard starting position with Black to move.
func NewGameState() GameState {
	return GameState{Board: NewBoard(), SideToMove: DiscBlack}
}

// DiscAt returns the absolute disc color occupying sq.
func (g GameState) DiscAt(sq Square) Disc {
	switch g.Board.At(sq) {
	case DiscBlack:
		return g.SideToMove
	case DiscWhite:
		return g.SideToMove.Opposite()
	default:
		return DiscEmpty
	}
}

// Play applies a move (or a pass if sq == NoSquare) and returns the resulting
// game state. It panics if sq is not a legal move for the side to move.
func (g GameState) Play(sq Square) GameState {
	if sq == NoSquare {
		return GameState{Board: g.Board.PassMove(), SideToMove: g.SideToMove.Opposite()}
	}
	if !g.Board.GetMoves().IsSet(sq) {
		panic(fmt.Sprintf("board: illegal move %v", sq))
	}
	flipped := FlipDiscs(sq, g.Board.Player, g.Board.Opponent)
	return GameState{
		Board:      g.Board.MakeMove(sq, flipped, g.SideToMove),
		SideToMove: g.SideToMove.Opposite(),
	}
}

// String renders the board using absolute disc colors.
func (g GameState) String() string {
	s := ""
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d ", rank+1)
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			s += g.DiscAt(sq).String() + " "
		}
		s += "\n"
	}
	s += "  a b c d e f g h\n"
	return s
}

// FromString parses a 64-character board string (as used by FFO test
// positions: 'X' black, 'O' white, '-' empty, read rank by rank from rank 8
// down to rank 1, a to h within each rank) together with the side to move.
func FromString(s string, sideToMove Disc) (GameState, error) {
	if len(s) != 64 {
		return GameState{}, fmt.Errorf("board string must be 64 characters, got %d", len(s))
	}

	var black, white Bitboard
	for i := 0; i < 64; i++ {
		rank := 7 - i/8
		file := i % 8
		sq := NewSquare(file, rank)
		switch ParseDisc(s[i]) {
		case DiscBlack:
			black = black.Set(sq)
		case DiscWhite:
			white = white.Set(sq)
		}
	}

	var b Board
	if sideToMove == DiscBlack {
		b.Player, b.Opponent = black, white
	} else {
		b.Player, b.Opponent = white, black
	}
	b.Hash = b.computeHash(sideToMove)

	return GameState{Board: b, SideToMove: sideToMove}, nil
}
