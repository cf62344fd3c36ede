// Package rps implements Rock-Paper-Scissors: the shape rules, a
// best-of-N match against a random computer opponent, and a TUI adapter.
package rps

// Shape is one of the three throwable hands.
type Shape int

const (
	Rock Shape = iota
	Paper
	Scissors
)

// shapeCount is the number of distinct shapes.
const shapeCount = 3

// String returns the display name of the shape.
func (s Shape) String() string {
	switch s {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return "?"
	}
}

// Valid reports whether the shape is one of the three hands.
func (s Shape) Valid() bool {
	return s >= Rock && s <= Scissors
}

// beats maps each shape to the shape it defeats.
var beats = map[Shape]Shape{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

// Outcome is the result of a single round from the first player's view.
type Outcome int

const (
	Tie Outcome = iota
	FirstWins
	SecondWins
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case Tie:
		return "tie"
	case FirstWins:
		return "first wins"
	case SecondWins:
		return "second wins"
	default:
		return "unknown"
	}
}

// Play resolves a single round between two shapes.
func Play(first, second Shape) Outcome {
	if first == second {
		return Tie
	}
	if beats[first] == second {
		return FirstWins
	}
	return SecondWins
}
