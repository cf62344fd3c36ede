package rps

import (
	"errors"
	"math/rand"
)

// ErrMatchFinished is returned when a round is played after the match
// already has a winner.
var ErrMatchFinished = errors.New("rps: match already finished")

// DefaultRounds is the default match length.
const DefaultRounds = 5

// Round records one resolved round.
type Round struct {
	Player  Shape
	CPU     Shape
	Outcome Outcome
}

// Match is a best-of-N series against a random computer opponent.
// The first side to win a majority of rounds takes the match; ties do
// not count toward either side.
type Match struct {
	rounds  int
	target  int
	player  int
	cpu     int
	history []Round
	rng     *rand.Rand
}

// NewMatch creates a best-of-rounds match. Non-positive counts fall back
// to DefaultRounds; even counts are bumped to the next odd number so a
// majority always exists.
func NewMatch(rounds int, rng *rand.Rand) *Match {
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	if rounds%2 == 0 {
		rounds++
	}
	return &Match{
		rounds: rounds,
		target: rounds/2 + 1,
		rng:    rng,
	}
}

// Rounds returns the configured match length.
func (m *Match) Rounds() int {
	return m.rounds
}

// Score returns the player and CPU round wins.
func (m *Match) Score() (player, cpu int) {
	return m.player, m.cpu
}

// History returns the resolved rounds in play order.
func (m *Match) History() []Round {
	return m.history
}

// Finished reports whether either side reached the winning majority.
func (m *Match) Finished() bool {
	return m.player >= m.target || m.cpu >= m.target
}

// PlayerWon reports whether the player took the match. Only meaningful
// once Finished returns true.
func (m *Match) PlayerWon() bool {
	return m.player >= m.target
}

// PlayRound throws the player's shape against a random CPU shape and
// scores the result. Invalid shapes are normalized to Rock.
func (m *Match) PlayRound(player Shape) (Round, error) {
	if m.Finished() {
		return Round{}, ErrMatchFinished
	}
	if !player.Valid() {
		player = Rock
	}

	cpu := Shape(m.rng.Intn(shapeCount))
	outcome := Play(player, cpu)

	switch outcome {
	case FirstWins:
		m.player++
	case SecondWins:
		m.cpu++
	}

	round := Round{Player: player, CPU: cpu, Outcome: outcome}
	m.history = append(m.history, round)
	return round, nil
}
