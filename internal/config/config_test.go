package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Game.MaxGuesses != nil || cfg.Game.Lang != nil {
		t.Fatalf("expected empty config, got %+v", cfg.Game)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[game]\nlang = \"de\"\nmax-guesses = 9\nvowel-hints = 2\ndebug = true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("HANGTUI_MAX_GUESSES", "4")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Game.Lang == nil || *cfg.Game.Lang != "de" {
		t.Fatalf("expected lang from file, got %v", cfg.Game.Lang)
	}
	if cfg.Game.MaxGuesses == nil || *cfg.Game.MaxGuesses != 4 {
		t.Fatalf("expected env override for max guesses, got %v", cfg.Game.MaxGuesses)
	}
	if cfg.Game.MaxVowelHints == nil || *cfg.Game.MaxVowelHints != 2 {
		t.Fatalf("expected vowel hints from file, got %v", cfg.Game.MaxVowelHints)
	}
	if cfg.Game.Debug == nil || !*cfg.Game.Debug {
		t.Fatalf("expected debug from file")
	}
}

func TestLoadConfigBadEnv(t *testing.T) {
	t.Setenv("HANGTUI_MAX_GUESSES", "many")
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "failed to parse env") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadConfigBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[game\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "cfg"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))

	if got := DefaultConfigPath(); got != filepath.Join(dir, "cfg", "hangtui", "config.toml") {
		t.Fatalf("unexpected config path %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join(dir, "data", "hangtui", "corpus.db") {
		t.Fatalf("unexpected db path %s", got)
	}
	if got := DefaultLogPath(); got != filepath.Join(dir, "state", "hangtui", "hangtui.log") {
		t.Fatalf("unexpected log path %s", got)
	}
	if got := DefaultWordfreqCacheDir(); got != filepath.Join(dir, "data", "hangtui", "wordfreq") {
		t.Fatalf("unexpected wordfreq cache dir %s", got)
	}
}
