package engine

import (
	"math"

	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/board"
)

// Move ordering priorities, grounded on
// internal/engine/ordering.go's priority bands (TTMoveScore/KillerScore1/2)
// and on original_source/crates/web/src/move_list.rs's WIPEOUT_VALUE/
// TT_MOVE_VALUE bands, with MVV-LVA and capture/counter-move bands dropped
// since a Reversi move has no piece type or victim to rank by. A wipeout
// (a move that flips every opponent disc) outranks even the TT move, since
// it ends the game outright; below that, killer and history heuristics
// fall back to a fast corner-stability/mobility estimate and finally the
// static square table.
const (
	wipeoutScore int32 = 1 << 30
	ttMoveScore  int32 = 10_000_000
	killerScore1 int32 = 900_000
	killerScore2 int32 = 800_000
)

// Weights for the fast move-ordering heuristic, grounded on move_list.rs's
// evaluate_moves_fast: corner stability and potential mobility of the
// position the move leads to, plus how much legal mobility it leaves the
// opponent, combined into a single score without running a full search.
const (
	cornerStabilityWeight  int32 = 1 << 12
	potentialMobilityWeight int32 = 1 << 10
	mobilityWeight         int32 = 1 << 14
)

// fastOrderingDepth bounds the fast heuristic to shallow nodes: deeper in
// the tree the extra board.Board.MakeMove/GetMovesAndPotential work per
// candidate move costs more than the ordering gain is worth, since deeper
// nodes are visited far less often than shallow ones.
const fastOrderingDepth = 3

// squareWeight is a static positional bias added to quiet moves, favoring
// corners and penalizing the squares adjacent to an empty corner (the
// classic Reversi "X-square"/"C-square" weakness).
var squareWeight = [64]int32{
	120, -20, 20, 5, 5, 20, -20, 120,
	-20, -40, -5, -5, -5, -5, -40, -20,
	20, -5, 15, 3, 3, 15, -5, 20,
	5, -5, 3, 3, 3, 3, -5, 5,
	5, -5, 3, 3, 3, 3, -5, 5,
	20, -5, 15, 3, 3, 15, -5, 20,
	-20, -40, -5, -5, -5, -5, -40, -20,
	120, -20, 20, 5, 5, 20, -20, 120,
}

// MoveOrderer tracks killer moves and a history table across one search,
// mirroring MoveOrderer's shape minus the capture-specific tables it has
// no Reversi analogue for.
type MoveOrderer struct {
	killers [MaxSearchPly][2]board.Square
	history [64]int32
}

// NewMoveOrderer returns a zeroed orderer.
func NewMoveOrderer() *MoveOrderer {
	return &MoveOrderer{}
}

// Clear resets killers and ages the history table for a new search.
func (mo *MoveOrderer) Clear() {
	for i := range mo.killers {
		mo.killers[i][0] = board.NoSquare
		mo.killers[i][1] = board.NoSquare
	}
	for i := range mo.history {
		mo.history[i] /= 2
	}
}

// ScoreMoves assigns an ordering score to every move in ml, in place, via
// Move.Value, given the parent position b (needed to detect wipeouts and to
// run the fast heuristic), the ply's killers, history, the remaining depth
// (the fast heuristic only pays for itself near the leaves) and (if any) a
// transposition table move to search first.
func (mo *MoveOrderer) ScoreMoves(ml *board.MoveList, b board.Board, ply, depth int, ttMove board.Square) {
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		ml.Set(i, mo.scoreMove(m, b, ply, depth, ttMove))
	}
}

func (mo *MoveOrderer) scoreMove(m board.Move, b board.Board, ply, depth int, ttMove board.Square) board.Move {
	switch {
	case m.Flipped == b.Opponent:
		// A wipeout: every opponent disc flips, ending the game on the spot.
		// Nothing, not even a TT move, is worth searching first instead.
		m.Value = wipeoutScore
	case m.Sq == ttMove:
		m.Value = ttMoveScore
	case m.Sq == mo.killers[ply][0]:
		m.Value = killerScore1
	case m.Sq == mo.killers[ply][1]:
		m.Value = killerScore2
	case depth <= fastOrderingDepth:
		m.Value = fastMoveHeuristic(m, b)
	default:
		m.Value = mo.history[m.Sq] + squareWeight[m.Sq]
	}
	return m
}

// fastMoveHeuristic scores a move by the position it leads to, without a
// search: corner stability gained, potential mobility denied and legal
// mobility denied to the opponent. Grounded on original_source/crates/web/
// src/move_list.rs's evaluate_moves_fast, which runs this same combination
// only once the position is shallow enough (<=18 empties there; gated here
// on remaining search depth instead, the information this side of the tree
// actually has on hand).
func fastMoveHeuristic(m board.Move, b board.Board) int32 {
	next := b.MakeMove(m.Sq, m.Flipped, board.DiscBlack)
	moves, potential := board.GetMovesAndPotential(next.Player, next.Opponent)

	cornerStability := int32(next.Opponent.CornerStability())
	potentialMobility := int32(potential.CornerWeightedCount())
	weightedMobility := int32(moves.CornerWeightedCount())

	value := cornerStability * cornerStabilityWeight
	value += (36 - potentialMobility) * potentialMobilityWeight
	value += (36 - weightedMobility) * mobilityWeight
	return value
}

// lmrMinDepth/lmrMinMoveIndex gate late-move reduction to deep enough,
// late enough moves that the shallower search stays trustworthy: reducing
// the first few candidate moves at shallow depth throws away too much
// accuracy for too little time saved.
const (
	lmrMinDepth     = 3
	lmrMinMoveIndex = 3
)

// lmrReductions is a precomputed logarithmic reduction table, grounded on
// internal/engine/worker.go's lmrReductions[64][64] (itself the classic
// Stockfish `21.46*ln(depth)*ln(moveIndex)/1024` formula), stripped of its
// further statScore/cut-node/aspiration-window adjustments that have no
// Reversi analogue (no quiescence stat history, no aspiration
// windows in this search) and rescaled: chess's formula is calibrated
// against full-width searches dozens of plies deep with well over a hundred
// candidate moves at the root, while a Reversi search rarely exceeds depth
// 26 (level.go's ladder) or 32 legal moves, so the raw chess coefficient
// would make the table round to zero almost everywhere it is consulted.
var lmrReductions [board.MaxMoves][board.MaxMoves]int8

func init() {
	for d := 1; d < board.MaxMoves; d++ {
		for mi := 1; mi < board.MaxMoves; mi++ {
			r := 0.9 * math.Log(float64(d)) * math.Log(float64(mi))
			lmrReductions[d][mi] = int8(r)
		}
	}
}

// reductionFor returns the number of plies a quiet move at moveIndex (0 =
// searched first) should be reduced by under depth: zero for the TT move,
// killers, and moves too early/too shallow to safely reduce; otherwise the
// precomputed logarithmic table value, capped so depth never goes negative.
func reductionFor(m board.Move, moveIndex int, depth int, ttMove board.Square, killers [2]board.Square) int8 {
	if depth < lmrMinDepth || moveIndex < lmrMinMoveIndex {
		return 0
	}
	if m.Sq == ttMove || m.Sq == killers[0] || m.Sq == killers[1] {
		return 0
	}

	d := depth
	if d >= board.MaxMoves {
		d = board.MaxMoves - 1
	}
	mi := moveIndex
	if mi >= board.MaxMoves {
		mi = board.MaxMoves - 1
	}

	r := lmrReductions[d][mi]
	if int(r) > depth-1 {
		r = int8(depth - 1)
	}
	if r < 0 {
		r = 0
	}
	return r
}

// UpdateKillers records a quiet move that produced a beta cutoff at ply.
func (mo *MoveOrderer) UpdateKillers(sq board.Square, ply int) {
	if ply >= MaxSearchPly || mo.killers[ply][0] == sq {
		return
	}
	mo.killers[ply][1] = mo.killers[ply][0]
	mo.killers[ply][0] = sq
}

// UpdateHistory rewards or penalizes a quiet move's destination square,
// scaled by the remaining depth the way UpdateHistory does.
func (mo *MoveOrderer) UpdateHistory(sq board.Square, depth int, good bool) {
	bonus := int32(depth * depth)
	if good {
		mo.history[sq] += bonus
		if mo.history[sq] > 400_000 {
			for i := range mo.history {
				mo.history[i] /= 2
			}
		}
	} else {
		mo.history[sq] -= bonus
		if mo.history[sq] < -400_000 {
			mo.history[sq] = -400_000
		}
	}
}
