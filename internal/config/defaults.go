package config

import (
	_ "embed"
)

//go:embed defaults/g2048.yaml
var defaultG2048YAML []byte

//go:embed defaults/tictactoe.yaml
var defaultTicTacToeYAML []byte

//go:embed defaults/rps.yaml
var defaultRPSYAML []byte

// DefaultG2048Config returns the default 2048 configuration.
func DefaultG2048Config() G2048Config {
	return G2048Config{
		Spawn: G2048Spawn{
			FourProb: 0.1,
		},
		History: G2048History{
			Limit: 0, // unbounded undo
		},
	}
}

// DefaultTicTacToeConfig returns the default Tic-Tac-Toe configuration.
func DefaultTicTacToeConfig() TicTacToeConfig {
	return TicTacToeConfig{
		AIMark:      "O",
		HumanStarts: true,
	}
}

// DefaultRPSConfig returns the default Rock-Paper-Scissors configuration.
func DefaultRPSConfig() RPSConfig {
	return RPSConfig{
		Rounds: 5,
	}
}
