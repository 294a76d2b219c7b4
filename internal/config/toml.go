// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game GameConfig `toml:"game"`
}

// GameConfig maps game-related settings. Environment variables override
// values read from the file.
type GameConfig struct {
	Lang          *string `toml:"lang" env:"HANGTUI_LANG"`
	MaxGuesses    *int    `toml:"max-guesses" env:"HANGTUI_MAX_GUESSES"`
	MaxVowelHints *int    `toml:"vowel-hints" env:"HANGTUI_VOWEL_HINTS"`
	WordList      *string `toml:"wordlist" env:"HANGTUI_WORDLIST"`
	Debug         *bool   `toml:"debug" env:"HANGTUI_DEBUG"`
	LogLevel      *string `toml:"log-level" env:"HANGTUI_LOG_LEVEL"`
}

// LoadConfig reads a TOML config from the given path and applies environment
// overrides. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	var cfg FileConfig
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
		}
	} else if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := env.Parse(&cfg.Game); err != nil {
		return FileConfig{}, fmt.Errorf("failed to parse env: %w", err)
	}
	return cfg, nil
}
