package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/storage"
)

func newTestStorage(t *testing.T) *storage.Storage {
	t.Helper()
	dbDir := filepath.Join(t.TempDir(), "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		t.Fatalf("mkdir db dir: %v", err)
	}
	s, err := storage.OpenAt(dbDir)
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	return s
}

func TestNewEngineSeedsOptionsFromPersistedSettings(t *testing.T) {
	s := newTestStorage(t)
	defer s.Close()

	if err := s.SaveSettings(&storage.EngineSettings{
		TTSizeMB:      2,
		EvalCacheLog2: 11,
		NumThreads:    3,
	}); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	e, err := NewEngine(Options{Store: s})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if len(e.contexts) != 3 {
		t.Errorf("expected NumThreads seeded to 3, got %d workers", len(e.contexts))
	}

	reloaded, err := s.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if reloaded.TTSizeMB != 2 || reloaded.EvalCacheLog2 != 11 || reloaded.NumThreads != 3 {
		t.Errorf("expected NewEngine to persist the effective settings back, got %+v", reloaded)
	}
}

func TestNewEngineExplicitOptionsOverridePersistedSettings(t *testing.T) {
	s := newTestStorage(t)
	defer s.Close()

	if err := s.SaveSettings(&storage.EngineSettings{TTSizeMB: 2, EvalCacheLog2: 11, NumThreads: 3}); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	e, err := NewEngine(Options{Store: s, NumThreads: 1, TTSizeMB: 1, EvalCacheLog2: 10})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if len(e.contexts) != 1 {
		t.Errorf("expected an explicit NumThreads to win over the persisted value, got %d workers", len(e.contexts))
	}
}

// TestEngineSearchPersistsExactEndgameResult drives a full, exact solve on
// a nearly-full board (cheap: only the four center squares are empty) and
// checks the resulting score lands in the position store, keyed by the
// root's hash.
func TestEngineSearchPersistsExactEndgameResult(t *testing.T) {
	s := newTestStorage(t)
	defer s.Close()

	e, err := NewEngine(Options{TTSizeMB: 1, EvalCacheLog2: 10, NumThreads: 1, Store: s})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	g := nearlyFullBoardAllBlack(t)
	result := e.Search(g, RunOptions{Constraint: LevelConstraint(GetLevel(MaxLevel)), Selectivity: NoSelectivity})

	rec, found, err := s.LoadPosition(g.Board.Hash)
	if err != nil {
		t.Fatalf("LoadPosition: %v", err)
	}
	if !found {
		t.Fatalf("expected an exact full solve to persist a position record")
	}
	if rec.Score != result.Score {
		t.Errorf("persisted score %d, want %d", rec.Score, result.Score)
	}
	if rec.Selectivity != NoSelectivity {
		t.Errorf("persisted selectivity %d, want exact (%d)", rec.Selectivity, NoSelectivity)
	}
}

// TestEngineSearchWarmStartsFromPersistedPosition lets a first engine's
// exact solve persist a record for the root position, then checks that a
// second engine (sharing nothing but the store), which loads that record
// before searching, returns the same score and best move.
func TestEngineSearchWarmStartsFromPersistedPosition(t *testing.T) {
	s := newTestStorage(t)
	defer s.Close()

	g := nearlyFullBoardAllBlack(t)

	warm, err := NewEngine(Options{TTSizeMB: 1, EvalCacheLog2: 10, NumThreads: 1, Store: s})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	want := warm.Search(g, RunOptions{Constraint: LevelConstraint(GetLevel(MaxLevel)), Selectivity: NoSelectivity})

	cold, err := NewEngine(Options{TTSizeMB: 1, EvalCacheLog2: 10, NumThreads: 1, Store: s})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	got := cold.Search(g, RunOptions{Constraint: LevelConstraint(GetLevel(MaxLevel)), Selectivity: NoSelectivity})

	if got.Score != want.Score {
		t.Errorf("warm-started score %d, want %d", got.Score, want.Score)
	}
	if got.BestMove != want.BestMove {
		t.Errorf("warm-started best move %v, want %v", got.BestMove, want.BestMove)
	}
}
