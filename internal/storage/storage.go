// Package storage provides persistent storage for engine settings and
// search results, backed by an embedded BadgerDB key-value store.
package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keySettings    = "engine_settings"
	keyFirstLaunch = "first_launch"
	positionPrefix = "pos:"
)

// EngineSettings persists the knobs an Engine is configured with across
// process restarts, the direct analogue of UserPreferences: table sizes,
// worker count, default selectivity, and the last weight file a caller
// pointed the evaluator at.
type EngineSettings struct {
	TTSizeMB       int       `json:"tt_size_mb"`
	EvalCacheLog2  uint      `json:"eval_cache_log2"`
	NumThreads     int       `json:"num_threads"`
	Selectivity    int       `json:"selectivity"`
	EvalWeightPath string    `json:"eval_weight_path"`
	LastUsed       time.Time `json:"last_used"`
}

// DefaultEngineSettings returns conservative defaults suitable for a fresh
// install: a 64MB table, a 2^20 entry eval cache, exact search, no weight
// file configured yet.
func DefaultEngineSettings() *EngineSettings {
	return &EngineSettings{
		TTSizeMB:      64,
		EvalCacheLog2: 20,
		NumThreads:    1,
		Selectivity:   6,
		LastUsed:      time.Now(),
	}
}

// PositionRecord is one persisted search result, keyed by a position's
// Zobrist hash: the Reversi analogue of cross-run GameStats, letting a
// long-running match or self-play data-generation process warm
// start from prior search results instead of recomputing them from scratch
// every run. This store is never consulted on the in-memory search hot
// path; that stays in the in-memory TranspositionTable/EvalCache.
type PositionRecord struct {
	Hash        uint64 `json:"hash"`
	Score       int32  `json:"score"`
	Depth       uint8  `json:"depth"`
	Selectivity uint8  `json:"selectivity"`
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// NewStorage opens (creating if necessary) the database under the
// platform's data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, fmt.Errorf("resolve database dir: %w", err)
	}
	return OpenAt(dbDir)
}

// OpenAt opens the database at an explicit directory, letting callers (and
// tests, in this package or others) point it at a temp dir instead of the
// platform data dir NewStorage resolves.
func OpenAt(dbDir string) (*Storage, error) {
	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsFirstLaunch returns true if this is the first time the application has
// opened this database.
func (s *Storage) IsFirstLaunch() (bool, error) {
	firstLaunch := true

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})

	return firstLaunch, err
}

// MarkFirstLaunchComplete marks that first-launch setup is complete.
func (s *Storage) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SaveSettings persists eng's engine settings.
func (s *Storage) SaveSettings(eng *EngineSettings) error {
	eng.LastUsed = time.Now()

	data, err := json.Marshal(eng)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keySettings), data)
	})
}

// LoadSettings loads engine settings, returning defaults if none have been
// saved yet.
func (s *Storage) LoadSettings() (*EngineSettings, error) {
	eng := DefaultEngineSettings()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keySettings))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, eng)
		})
	})

	return eng, err
}

func positionKey(hash uint64) []byte {
	key := make([]byte, len(positionPrefix)+8)
	copy(key, positionPrefix)
	binary.BigEndian.PutUint64(key[len(positionPrefix):], hash)
	return key
}

// SavePosition persists rec under its hash.
func (s *Storage) SavePosition(rec PositionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(positionKey(rec.Hash), data)
	})
}

// LoadPosition returns the persisted record for hash, if any.
func (s *Storage) LoadPosition(hash uint64) (PositionRecord, bool, error) {
	var rec PositionRecord
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(positionKey(hash))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return PositionRecord{}, false, err
	}
	return rec, found, nil
}

// PositionCount returns the number of persisted position records, for
// diagnostics and corpus-size reporting.
func (s *Storage) PositionCount() (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(positionPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}
