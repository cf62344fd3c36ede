// Package config provides YAML-based game configuration loading for the
// gamebox platform.
package config

// G2048Config contains all configuration for the 2048 game.
type G2048Config struct {
	Spawn   G2048Spawn   `yaml:"spawn"`
	History G2048History `yaml:"history"`
}

// G2048Spawn defines tile spawning parameters.
type G2048Spawn struct {
	// FourProb is the probability a new tile is a 4 instead of a 2.
	FourProb float64 `yaml:"four_prob"`
}

// G2048History defines undo history parameters.
type G2048History struct {
	// Limit caps the undo stack; 0 keeps the full history.
	Limit int `yaml:"limit"`
}

// TicTacToeConfig contains all configuration for the Tic-Tac-Toe game.
type TicTacToeConfig struct {
	// AIMark is the mark the computer plays: "X" or "O".
	AIMark string `yaml:"ai_mark"`
	// HumanStarts determines who takes the first turn.
	HumanStarts bool `yaml:"human_starts"`
}

// RPSConfig contains all configuration for the Rock-Paper-Scissors game.
type RPSConfig struct {
	// Rounds is the match length (best-of-N, odd numbers recommended).
	Rounds int `yaml:"rounds"`
}
