package g2048

import "math/rand"

// DefaultSpawnFourProb is the standard probability of spawning a 4
// instead of a 2.
const DefaultSpawnFourProb = 0.1

// AddRandomTiles places up to count new tiles on empty cells of the grid.
// Cells are chosen uniformly at random without replacement; each tile is a
// 2 with probability 1-fourProb and a 4 otherwise. If fewer empty cells
// exist than requested, only as many tiles as fit are placed. The input
// grid is not mutated; the rng is injected so tests can be deterministic.
func AddRandomTiles(g Grid, count int, fourProb float64, rng *rand.Rand) Grid {
	empty := EmptyCells(g)
	if count > len(empty) {
		count = len(empty)
	}
	if count <= 0 {
		return g
	}

	rng.Shuffle(len(empty), func(i, j int) {
		empty[i], empty[j] = empty[j], empty[i]
	})

	for i := 0; i < count; i++ {
		value := 2
		if rng.Float64() < fourProb {
			value = 4
		}
		g[empty[i].Row][empty[i].Col] = value
	}

	return g
}
