package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// DefaultRandomizer is the randomizer used when none is configured.
const DefaultRandomizer = "uniform"

func init() {
	registry.Register("uniform", "every piece equally likely on each draw", func(rng *rand.Rand, n int) registry.Randomizer {
		return &uniform{rng: rng, n: n}
	})
	registry.Register("bag", "shuffled bags holding each piece once", func(rng *rand.Rand, n int) registry.Randomizer {
		return &bag{rng: rng, n: n}
	})
}

type uniform struct {
	rng *rand.Rand
	n   int
}

func (u *uniform) Next() int {
	return u.rng.Intn(u.n)
}

// bag deals a random permutation of the catalog before reshuffling,
// which bounds droughts of any one piece.
type bag struct {
	rng   *rand.Rand
	n     int
	queue []int
}

func (b *bag) Next() int {
	if len(b.queue) == 0 {
		b.queue = b.rng.Perm(b.n)
	}
	next := b.queue[0]
	b.queue = b.queue[1:]
	return next
}
