package engine

import (
	"sync/atomic"

	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/board"
	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/evalcache"
	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/nnue"
)

// pvLine stores the principal variation found at one ply, grounded on
// PVTable (per-ply move array plus a length), generalized from a
// 2D [ply][ply] matrix to a per-ply slice since Reversi's maximum game
// length is already tightly bounded by MaxSearchPly.
type pvLine struct {
	length int
	moves  [MaxSearchPly]board.Square
}

// SearchContext is the per-worker mutable state threaded through one
// negamax/endgame tree walk: its own copy of the game state, its own NNUE
// accumulator stack, its own move orderer, and shared read/write access to
// the engine-wide transposition and eval caches. Grounded on
// Searcher/Worker structs (pos/tt/orderer/pv/undoStack), adapted from a
// single make/unmake position to value-copy board.GameState snapshots per
// node (see internal/board's DESIGN.md entry for why Reversi can afford
// that).
type SearchContext struct {
	game board.GameState

	tt        *TranspositionTable
	evalCache *evalcache.EvalCache
	eval      *nnue.Evaluator
	orderer   *MoveOrderer

	nodes    uint64
	stopFlag *atomic.Bool

	pv [MaxSearchPly]pvLine

	// undoStack holds, at index d, the GameState to restore when the d-th
	// makeMove/makePass on the current path is undone. A full-value snapshot
	// rather than a diff-based board.UndoInfo, since a Reversi
	// GameState is two bitboards, a hash and a side to move: cheap enough to
	// copy wholesale instead of reconstructing it from a move delta.
	undoStack  [MaxSearchPly]board.GameState
	undoDepth  int

	gamePly int // discs played since the opening four, for NNUE layer selection
}

// NewSearchContext builds a worker-local context sharing tt/evalCache
// (both internally synchronized) and owning a fresh evaluator/orderer.
func NewSearchContext(tt *TranspositionTable, ec *evalcache.EvalCache, eval *nnue.Evaluator, stopFlag *atomic.Bool) *SearchContext {
	return &SearchContext{
		tt:        tt,
		evalCache: ec,
		eval:      eval,
		orderer:   NewMoveOrderer(),
		stopFlag:  stopFlag,
	}
}

// SetRoot positions the context at g and resets per-search counters.
func (sc *SearchContext) SetRoot(g board.GameState) {
	sc.game = g
	sc.nodes = 0
	sc.undoDepth = 0
	sc.orderer.Clear()
	sc.gamePly = 60 - g.Board.EmptyCount()
	sc.eval.Reset()
	sc.eval.Refresh(g.Board)
}

// Nodes returns the number of nodes visited since SetRoot.
func (sc *SearchContext) Nodes() uint64 {
	return sc.nodes
}

// stopped reports whether the search has been asked to halt, checked
// periodically rather than every node to keep the atomic load off the hot
// path.
func (sc *SearchContext) stopped() bool {
	return sc.nodes&2047 == 0 && sc.stopFlag.Load()
}

// makeMove plays sq at ply, pushing a new board/accumulator/game-ply frame.
func (sc *SearchContext) makeMove(sq board.Square, flipped board.Bitboard) {
	sc.undoStack[sc.undoDepth] = sc.game
	sc.undoDepth++

	sc.eval.Push()
	sc.game.Board = sc.game.Board.MakeMove(sq, flipped, sc.game.SideToMove)
	sc.game.SideToMove = sc.game.SideToMove.Opposite()
	sc.eval.Update(sq, flipped)
	sc.gamePly++
}

// makePass plays a pass, pushing a new frame without touching the board.
func (sc *SearchContext) makePass() {
	sc.undoStack[sc.undoDepth] = sc.game
	sc.undoDepth++

	sc.eval.Push()
	sc.game.Board = sc.game.Board.PassMove()
	sc.game.SideToMove = sc.game.SideToMove.Opposite()
}

// unmakeMove restores the parent frame pushed by makeMove/makePass.
func (sc *SearchContext) unmakeMove(passed bool) {
	sc.eval.Pop()
	sc.undoDepth--
	sc.game = sc.undoStack[sc.undoDepth]
	if !passed {
		sc.gamePly--
	}
}

// evaluate scores the current position via the NNUE evaluator at the
// context's tracked game ply, consulting the shared eval cache first since
// leaf evaluations recur often across transpositions and across workers.
func (sc *SearchContext) evaluate() Score {
	b := sc.game.Board
	if score, ok := sc.evalCache.Probe(b.Hash); ok {
		return Score(score)
	}

	ply := sc.gamePly
	if ply < 0 {
		ply = 0
	}
	score := Score(sc.eval.Evaluate(b, ply))
	sc.evalCache.Store(b.Hash, int32(score))
	return score
}

// PV returns the principal variation discovered at the root of the last
// search, as a slice of played squares.
func (sc *SearchContext) PV() []board.Square {
	line := sc.pv[0]
	out := make([]board.Square, line.length)
	copy(out, line.moves[:line.length])
	return out
}
