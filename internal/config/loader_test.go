package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadG2048Defaults(t *testing.T) {
	cfg, err := LoadG2048("")
	if err != nil {
		t.Fatalf("LoadG2048() failed: %v", err)
	}

	if cfg.Spawn.FourProb != 0.1 {
		t.Errorf("FourProb = %v, want 0.1", cfg.Spawn.FourProb)
	}
	if cfg.History.Limit != 0 {
		t.Errorf("History.Limit = %d, want 0", cfg.History.Limit)
	}
}

func TestLoadG2048CustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g2048.yaml")
	data := []byte("spawn:\n  four_prob: 0.25\nhistory:\n  limit: 8\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadG2048(path)
	if err != nil {
		t.Fatalf("LoadG2048(%s) failed: %v", path, err)
	}

	if cfg.Spawn.FourProb != 0.25 {
		t.Errorf("FourProb = %v, want 0.25", cfg.Spawn.FourProb)
	}
	if cfg.History.Limit != 8 {
		t.Errorf("History.Limit = %d, want 8", cfg.History.Limit)
	}
}

func TestLoadG2048MissingCustomPath(t *testing.T) {
	_, err := LoadG2048(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing explicit config path")
	}
}

func TestLoadTicTacToeDefaults(t *testing.T) {
	cfg, err := LoadTicTacToe("")
	if err != nil {
		t.Fatalf("LoadTicTacToe() failed: %v", err)
	}

	if cfg.AIMark != "O" {
		t.Errorf("AIMark = %q, want O", cfg.AIMark)
	}
	if !cfg.HumanStarts {
		t.Error("HumanStarts = false, want true")
	}
}

func TestLoadRPSDefaults(t *testing.T) {
	cfg, err := LoadRPS("")
	if err != nil {
		t.Fatalf("LoadRPS() failed: %v", err)
	}

	if cfg.Rounds != 5 {
		t.Errorf("Rounds = %d, want 5", cfg.Rounds)
	}
}
