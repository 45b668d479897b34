package piece

import (
	"math/rand"
	"time"
)

// Generator hands out fresh pieces.
type Generator interface {
	Draw() Piece
}

// RandomGenerator picks uniformly among the seven kinds. Back-to-back
// repeats are possible; there is no bag.
type RandomGenerator struct {
	rng *rand.Rand
}

// NewRandomGenerator seeds a generator. A zero seed uses the clock.
func NewRandomGenerator(seed int64) *RandomGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomGenerator{rng: rand.New(rand.NewSource(seed))}
}

func (g *RandomGenerator) Draw() Piece {
	return Base(Kinds[g.rng.Intn(len(Kinds))])
}

// SequenceGenerator replays a fixed list of kinds in a loop.
// Useful for tests and scripted demos.
type SequenceGenerator struct {
	kinds []Kind
	next  int
}

func NewSequenceGenerator(kinds ...Kind) *SequenceGenerator {
	if len(kinds) == 0 {
		kinds = []Kind{O}
	}
	return &SequenceGenerator{kinds: kinds}
}

func (g *SequenceGenerator) Draw() Piece {
	k := g.kinds[g.next%len(g.kinds)]
	g.next++
	return Base(k)
}
