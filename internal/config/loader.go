package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadG2048 loads the 2048 configuration.
// Search order: customPath -> ~/.gamebox/configs/g2048.yaml -> ./configs/g2048.yaml -> embedded default
func LoadG2048(customPath string) (G2048Config, error) {
	var cfg G2048Config
	if done, err := loadInto(customPath, "g2048.yaml", defaultG2048YAML, &cfg); done {
		return cfg, err
	}
	return DefaultG2048Config(), nil
}

// LoadTicTacToe loads the Tic-Tac-Toe configuration.
// Search order: customPath -> ~/.gamebox/configs/tictactoe.yaml -> ./configs/tictactoe.yaml -> embedded default
func LoadTicTacToe(customPath string) (TicTacToeConfig, error) {
	var cfg TicTacToeConfig
	if done, err := loadInto(customPath, "tictactoe.yaml", defaultTicTacToeYAML, &cfg); done {
		return cfg, err
	}
	return DefaultTicTacToeConfig(), nil
}

// LoadRPS loads the Rock-Paper-Scissors configuration.
// Search order: customPath -> ~/.gamebox/configs/rps.yaml -> ./configs/rps.yaml -> embedded default
func LoadRPS(customPath string) (RPSConfig, error) {
	var cfg RPSConfig
	if done, err := loadInto(customPath, "rps.yaml", defaultRPSYAML, &cfg); done {
		return cfg, err
	}
	return DefaultRPSConfig(), nil
}

// loadInto resolves a config through the standard search order.
// The bool result reports whether cfg was populated (possibly with an
// error for an explicit custom path); false means the caller should fall
// back to the hardcoded defaults.
func loadInto(customPath, filename string, embedded []byte, cfg any) (bool, error) {
	// An explicitly requested path must exist and parse.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return true, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return true, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return true, nil
	}

	// User config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, cfg); err == nil {
				return true, nil
			}
		}
	}

	// Local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, cfg); err == nil {
			return true, nil
		}
	}

	// Embedded default
	if err := yaml.Unmarshal(embedded, cfg); err == nil {
		return true, nil
	}

	return false, nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gamebox", "configs", filename)
}
