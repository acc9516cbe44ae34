package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultEngineSettings(t *testing.T) {
	eng := DefaultEngineSettings()
	if eng.TTSizeMB != 64 {
		t.Errorf("expected 64MB default TT size, got %d", eng.TTSizeMB)
	}
	if eng.EvalCacheLog2 != 20 {
		t.Errorf("expected eval cache log2 20, got %d", eng.EvalCacheLog2)
	}
	if eng.Selectivity != 6 {
		t.Errorf("expected exact default selectivity, got %d", eng.Selectivity)
	}
}

func TestStorageSettingsRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	defer s.Close()

	eng := DefaultEngineSettings()
	eng.NumThreads = 4
	eng.EvalWeightPath = "/tmp/weights.bin"
	if err := s.SaveSettings(eng); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	loaded, err := s.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if loaded.NumThreads != 4 {
		t.Errorf("expected 4 threads, got %d", loaded.NumThreads)
	}
	if loaded.EvalWeightPath != "/tmp/weights.bin" {
		t.Errorf("expected weight path round-trip, got %q", loaded.EvalWeightPath)
	}
}

func TestStorageLoadSettingsDefaultsWhenEmpty(t *testing.T) {
	s := newTestStorage(t)
	defer s.Close()

	loaded, err := s.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if loaded.TTSizeMB != DefaultEngineSettings().TTSizeMB {
		t.Errorf("expected default settings when nothing saved")
	}
}

func TestStoragePositionRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	defer s.Close()

	rec := PositionRecord{Hash: 0xDEADBEEF, Score: 128, Depth: 20, Selectivity: 5}
	if err := s.SavePosition(rec); err != nil {
		t.Fatalf("SavePosition: %v", err)
	}

	loaded, found, err := s.LoadPosition(rec.Hash)
	if err != nil {
		t.Fatalf("LoadPosition: %v", err)
	}
	if !found {
		t.Fatalf("expected position to be found")
	}
	if loaded != rec {
		t.Errorf("expected %+v, got %+v", rec, loaded)
	}

	if _, found, err := s.LoadPosition(0x1234); err != nil {
		t.Fatalf("LoadPosition miss: %v", err)
	} else if found {
		t.Errorf("expected miss for unknown hash")
	}
}

func TestStoragePositionCount(t *testing.T) {
	s := newTestStorage(t)
	defer s.Close()

	for i := uint64(0); i < 5; i++ {
		if err := s.SavePosition(PositionRecord{Hash: i + 1, Score: int32(i)}); err != nil {
			t.Fatalf("SavePosition: %v", err)
		}
	}

	count, err := s.PositionCount()
	if err != nil {
		t.Fatalf("PositionCount: %v", err)
	}
	if count != 5 {
		t.Errorf("expected 5 positions, got %d", count)
	}
}

func TestFirstLaunch(t *testing.T) {
	s := newTestStorage(t)
	defer s.Close()

	first, err := s.IsFirstLaunch()
	if err != nil {
		t.Fatalf("IsFirstLaunch: %v", err)
	}
	if !first {
		t.Errorf("expected first launch to be true on a fresh database")
	}

	if err := s.MarkFirstLaunchComplete(); err != nil {
		t.Fatalf("MarkFirstLaunchComplete: %v", err)
	}

	first, err = s.IsFirstLaunch()
	if err != nil {
		t.Fatalf("IsFirstLaunch: %v", err)
	}
	if first {
		t.Errorf("expected first launch to be false after marking complete")
	}
}

func TestDataPaths(t *testing.T) {
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("data directory was not created: %s", dataDir)
	}
}

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	tmpDir := t.TempDir()
	dbDir := filepath.Join(tmpDir, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		t.Fatalf("mkdir db dir: %v", err)
	}

	s, err := OpenAt(dbDir)
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	return s
}
