package engine

import (
	"testing"

	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/board"
)

func TestSearchFromStartingPositionReturnsLegalMove(t *testing.T) {
	sc := newTestSearchContext()
	g := board.NewGameState()
	sc.SetRoot(g)

	_, move := Search(sc, 3, NoSelectivity)
	if move == board.NoSquare {
		t.Fatalf("expected a legal opening move")
	}

	legal := board.GenerateMoves(g.Board)
	found := false
	for i := 0; i < legal.Len(); i++ {
		if legal.Get(i).Sq == move {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("search returned %v, which is not among the starting position's legal moves", move)
	}
}

func TestSearchNodesIncreaseWithDepth(t *testing.T) {
	sc := newTestSearchContext()
	g := board.NewGameState()

	sc.SetRoot(g)
	Search(sc, 1, NoSelectivity)
	shallowNodes := sc.Nodes()

	sc.SetRoot(g)
	Search(sc, 4, NoSelectivity)
	deepNodes := sc.Nodes()

	if deepNodes <= shallowNodes {
		t.Errorf("expected deeper search to visit more nodes: depth1=%d depth4=%d", shallowNodes, deepNodes)
	}
}

func TestRootBestMoveEmptyPVReturnsNoSquare(t *testing.T) {
	sc := newTestSearchContext()
	if got := sc.rootBestMove(); got != board.NoSquare {
		t.Errorf("expected NoSquare for an unsearched context, got %v", got)
	}
}
