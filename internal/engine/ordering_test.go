package engine

import (
	"testing"

	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/board"
)

func TestMoveOrdererTTMoveRanksFirst(t *testing.T) {
	mo := NewMoveOrderer()
	ml := board.MoveList{}
	ml.Add(board.Square(10), 0)
	ml.Add(board.Square(20), 0)

	noWipeout := board.Board{Opponent: board.Bitboard(0xFF)}
	mo.ScoreMoves(&ml, noWipeout, 0, 10, board.Square(20))

	best := ml.PickBest(0)
	if best.Sq != board.Square(20) {
		t.Errorf("expected the TT move to be picked first, got square %d", best.Sq)
	}
}

func TestMoveOrdererWipeoutOutranksTTMove(t *testing.T) {
	mo := NewMoveOrderer()
	b := board.Board{Opponent: board.Bitboard(0xFF)}

	ml := board.MoveList{}
	ml.Add(board.Square(10), 0)          // a quiet move, flips nothing
	ml.Add(board.Square(20), b.Opponent) // flips every opponent disc

	mo.ScoreMoves(&ml, b, 0, 10, board.Square(10))

	best := ml.PickBest(0)
	if best.Sq != board.Square(20) {
		t.Errorf("expected the wipeout move to outrank the TT move, got square %d", best.Sq)
	}
}

func TestMoveOrdererKillerOutranksHistory(t *testing.T) {
	mo := NewMoveOrderer()
	mo.UpdateKillers(board.Square(5), 2)
	mo.UpdateHistory(board.Square(6), 8, true)

	ml := board.MoveList{}
	ml.Add(board.Square(6), 0)
	ml.Add(board.Square(5), 0)

	noWipeout := board.Board{Opponent: board.Bitboard(0xFF)}
	mo.ScoreMoves(&ml, noWipeout, 2, 10, board.NoSquare)

	best := ml.PickBest(0)
	if best.Sq != board.Square(5) {
		t.Errorf("expected the killer move to outrank history, got square %d", best.Sq)
	}
}

func TestMoveOrdererClearResetsKillers(t *testing.T) {
	mo := NewMoveOrderer()
	mo.UpdateKillers(board.Square(1), 0)
	mo.Clear()

	if mo.killers[0][0] != board.NoSquare {
		t.Errorf("expected Clear to reset killer slots")
	}
}

func TestReductionForSkipsTTMoveAndKillers(t *testing.T) {
	killers := [2]board.Square{board.Square(3), board.Square(4)}
	ttMove := board.Square(7)

	if r := reductionFor(board.Move{Sq: ttMove}, 6, 10, ttMove, killers); r != 0 {
		t.Errorf("expected no reduction for the TT move, got %d", r)
	}
	if r := reductionFor(board.Move{Sq: killers[0]}, 6, 10, ttMove, killers); r != 0 {
		t.Errorf("expected no reduction for a killer move, got %d", r)
	}
}

func TestReductionForSkipsEarlyOrShallowMoves(t *testing.T) {
	if r := reductionFor(board.Move{Sq: 1}, 1, 10, board.NoSquare, [2]board.Square{board.NoSquare, board.NoSquare}); r != 0 {
		t.Errorf("expected no reduction for an early move index, got %d", r)
	}
	if r := reductionFor(board.Move{Sq: 1}, 6, 2, board.NoSquare, [2]board.Square{board.NoSquare, board.NoSquare}); r != 0 {
		t.Errorf("expected no reduction below the minimum depth, got %d", r)
	}
}

func TestReductionForGrowsWithDepthAndMoveIndex(t *testing.T) {
	noKillers := [2]board.Square{board.NoSquare, board.NoSquare}
	shallow := reductionFor(board.Move{Sq: 1}, 5, 5, board.NoSquare, noKillers)
	deep := reductionFor(board.Move{Sq: 1}, 20, 20, board.NoSquare, noKillers)
	if deep <= shallow {
		t.Errorf("expected a deeper, later move to reduce more: shallow=%d deep=%d", shallow, deep)
	}
	if int(deep) > 19 {
		t.Errorf("expected reduction to be at most depth-1, got %d", deep)
	}
}

func TestMoveOrdererHistoryDecaysOnClear(t *testing.T) {
	mo := NewMoveOrderer()
	mo.UpdateHistory(board.Square(3), 10, true)
	before := mo.history[3]
	mo.Clear()
	if mo.history[3] != before/2 {
		t.Errorf("expected Clear to halve history scores, got %d want %d", mo.history[3], before/2)
	}
}
