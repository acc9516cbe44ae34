package nnue

import (
	"testing"

	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/board"
	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/pattern"
)

func TestClippedReLU(t *testing.T) {
	in := []int32{-64, 0, 64, 8192, 8128}
	out := make([]uint8, len(in))
	clippedReLU(in, out)

	want := []uint8{0, 0, 1, 127, 127}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("clippedReLU(%d) = %d, want %d", in[i], out[i], want[i])
		}
	}
}

func TestLinearLayerForward(t *testing.T) {
	l := NewLinearLayer(2, 2)
	l.biases[0] = 1
	l.biases[1] = -1
	// weights row-major: out0 = [2, 3], out1 = [-1, 1]
	l.weights[0], l.weights[1] = 2, 3
	l.weights[2], l.weights[3] = -1, 1

	out := make([]int32, 2)
	l.Forward([]uint8{5, 10}, out)

	if out[0] != 1+2*5+3*10 {
		t.Fatalf("out[0] = %d, want %d", out[0], 1+2*5+3*10)
	}
	if out[1] != -1+(-1)*5+1*10 {
		t.Fatalf("out[1] = %d, want %d", out[1], -1+(-1)*5+1*10)
	}
}

func TestNetworkSmallEvaluateStartingPosition(t *testing.T) {
	n := NewNetworkSmall()
	g := board.NewGameState()
	self, _ := pattern.Compute(g.Board)

	score := n.Evaluate(self, 4, 0)
	if score <= MidScoreMin || score >= MidScoreMax {
		t.Fatalf("score %d out of clamp range (%d, %d)", score, MidScoreMin, MidScoreMax)
	}
}

func TestNetworkEvaluateStartingPosition(t *testing.T) {
	n := NewNetwork()
	g := board.NewGameState()
	self, _ := pattern.Compute(g.Board)

	score := n.Evaluate(self, 4, 0)
	if score <= MidScoreMin || score >= MidScoreMax {
		t.Fatalf("score %d out of clamp range (%d, %d)", score, MidScoreMin, MidScoreMax)
	}
}

func TestEvaluatorDispatchesOnMainNetworkPlyThreshold(t *testing.T) {
	e := &Evaluator{netMain: NewNetwork(), netSmall: NewNetworkSmall(), stack: NewAccumulatorStack()}
	g := board.NewGameState()
	e.Refresh(g.Board)

	if score := e.Evaluate(g.Board, MainNetworkPlyThreshold-1); score <= MidScoreMin || score >= MidScoreMax {
		t.Fatalf("main-network score %d out of clamp range", score)
	}
	if score := e.Evaluate(g.Board, MainNetworkPlyThreshold); score <= MidScoreMin || score >= MidScoreMax {
		t.Fatalf("small-network score %d out of clamp range", score)
	}
}

func TestEvaluatorIncrementalMatchesRefresh(t *testing.T) {
	e := &Evaluator{netMain: NewNetwork(), netSmall: NewNetworkSmall(), stack: NewAccumulatorStack()}
	g := board.NewGameState()
	e.Refresh(g.Board)

	moves := board.GenerateMoves(g.Board)
	if moves.Len() == 0 {
		t.Fatal("starting position should have legal moves")
	}
	mv := moves.Get(0)

	e.Push()
	g.Board = g.Board.MakeMove(mv.Sq, mv.Flipped, g.SideToMove)
	e.Update(mv.Sq, mv.Flipped)

	wantSelf, wantOther := pattern.Compute(g.Board)
	got := e.stack.entries[e.stack.depth]
	if got.self != wantSelf || got.other != wantOther {
		t.Fatalf("incremental update diverged from recomputation:\n got  self=%v other=%v\n want self=%v other=%v",
			got.self, got.other, wantSelf, wantOther)
	}

	e.Pop()
	if e.stack.depth != 0 {
		t.Fatalf("depth after Pop = %d, want 0", e.stack.depth)
	}
}
