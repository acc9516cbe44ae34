package engine

import (
	"testing"
	"time"

	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/board"
)

func newTestEngine(t *testing.T, threads int) *Engine {
	t.Helper()
	opts := Options{
		TTSizeMB:      1,
		EvalCacheLog2: 10,
		NumThreads:    threads,
	}
	e, err := NewEngine(opts)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestEngineSearchReturnsLegalMove(t *testing.T) {
	e := newTestEngine(t, 2)
	g := board.NewGameState()

	run := RunOptions{Constraint: LevelConstraint(GetLevel(2))}
	result := e.Search(g, run)

	if result.BestMove == board.NoSquare {
		t.Fatalf("expected a legal opening move")
	}
	if len(result.PVLine) == 0 {
		t.Errorf("expected a non-empty principal variation")
	}
}

func TestEngineSearchRespectsMoveTime(t *testing.T) {
	e := newTestEngine(t, 2)
	g := board.NewGameState()

	run := RunOptions{Constraint: TimeConstraint(50 * time.Millisecond)}
	start := time.Now()
	result := e.Search(g, run)
	elapsed := time.Since(start)

	if result.BestMove == board.NoSquare {
		t.Fatalf("expected a legal opening move")
	}
	if elapsed > 2*time.Second {
		t.Errorf("expected the time constraint to bound search duration, took %v", elapsed)
	}
}

func TestEngineStopHaltsSearch(t *testing.T) {
	e := newTestEngine(t, 2)
	g := board.NewGameState()

	go func() {
		time.Sleep(10 * time.Millisecond)
		e.Stop()
	}()

	run := RunOptions{Constraint: LevelConstraint(GetLevel(MaxLevel))}
	result := e.Search(g, run)
	if result.BestMove == board.NoSquare {
		t.Fatalf("expected at least depth 1 to complete before the stop signal landed")
	}
}

func TestEngineClear(t *testing.T) {
	e := newTestEngine(t, 1)
	g := board.NewGameState()
	e.Search(g, RunOptions{Constraint: LevelConstraint(GetLevel(1))})
	e.Clear()
}
