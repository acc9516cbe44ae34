package engine

import (
	"testing"

	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/board"
)

func TestTranspositionTableStoreProbe(t *testing.T) {
	tt := NewTranspositionTable(1)

	const hash = uint64(0x1122334455667788)
	tt.Store(hash, 12, NoSelectivity, 256, BoundExact, board.Square(19))

	entry, ok := tt.Probe(hash, NoSelectivity)
	if !ok {
		t.Fatalf("expected a hit after Store")
	}
	if entry.bound != BoundExact || entry.score != 256 || entry.bestMove != board.Square(19) {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestTranspositionTableMiss(t *testing.T) {
	tt := NewTranspositionTable(1)
	if _, ok := tt.Probe(0xDEAD, NoSelectivity); ok {
		t.Errorf("expected a miss on an empty table")
	}
}

func TestTranspositionTableShallowerDepthStillReported(t *testing.T) {
	tt := NewTranspositionTable(1)
	const hash = uint64(42)

	tt.Store(hash, 4, NoSelectivity, 100, BoundExact, board.Square(10))
	entry, ok := tt.Probe(hash, NoSelectivity)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if int(entry.depth) != 4 {
		t.Errorf("expected depth 4 recorded, got %d", entry.depth)
	}
}

func TestTranspositionTableMinSelectivityFilter(t *testing.T) {
	tt := NewTranspositionTable(1)
	const hash = uint64(7)

	tt.Store(hash, 10, 2, 50, BoundExact, board.Square(5))
	if _, ok := tt.Probe(hash, 4); ok {
		t.Errorf("expected a stored low-selectivity entry to be filtered out by a stricter minimum")
	}
	if _, ok := tt.Probe(hash, 2); !ok {
		t.Errorf("expected the entry to be visible at its own selectivity")
	}
}

func TestTranspositionTableNewSearchAgesEntries(t *testing.T) {
	tt := NewTranspositionTable(1)
	tt.Store(1, 10, NoSelectivity, 1, BoundExact, board.Square(0))
	tt.NewSearch()
	tt.Store(2, 10, NoSelectivity, 2, BoundExact, board.Square(1))

	if _, ok := tt.Probe(1, NoSelectivity); !ok {
		t.Errorf("expected the older entry to still be retrievable (same bucket collision aside)")
	}
}

func TestTranspositionTableHashFullReflectsStores(t *testing.T) {
	tt := NewTranspositionTable(1)
	if full := tt.HashFull(); full != 0 {
		t.Errorf("expected an empty table to report 0 permille full, got %d", full)
	}

	for i := uint64(0); i < 100; i++ {
		tt.Store(i, 8, NoSelectivity, 1, BoundExact, board.Square(0))
	}
	if full := tt.HashFull(); full == 0 {
		t.Errorf("expected HashFull to report non-zero after stores")
	}
}

func TestTranspositionTableHashFullResetsAfterClear(t *testing.T) {
	tt := NewTranspositionTable(1)
	tt.Store(1, 8, NoSelectivity, 1, BoundExact, board.Square(0))
	tt.Clear()
	if full := tt.HashFull(); full != 0 {
		t.Errorf("expected HashFull to be 0 right after Clear, got %d", full)
	}
}

func TestTranspositionTableClear(t *testing.T) {
	tt := NewTranspositionTable(1)
	tt.Store(99, 10, NoSelectivity, 1, BoundExact, board.Square(0))
	tt.Clear()
	if _, ok := tt.Probe(99, NoSelectivity); ok {
		t.Errorf("expected Clear to remove all entries")
	}
}
