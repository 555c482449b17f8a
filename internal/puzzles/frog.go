package puzzles

import (
	"fmt"
	"iter"
	"math/rand"
)

// Stones is a river crossing: Stones[i] reports whether position i holds a
// stone. It is read-only once a search starts.
type Stones []bool

// RandomStones returns n positions where every inner position holds a stone
// with probability p. The first and last positions always do.
func RandomStones(n int, p float64, rng *rand.Rand) Stones {
	s := make(Stones, max(n, 2))
	for i := range s {
		s[i] = i == 0 || i == len(s)-1 || rng.Float64() < p
	}

	return s
}

// Frog is the frog state. Two frogs are equal when their position and
// speed are; the stone layout is shared context.
type Frog struct {
	Position int
	Speed    int
	stones   *Stones
}

// NewFrog places the frog on the first stone with speed 1.
func NewFrog(stones *Stones) Frog { return Frog{Position: 0, Speed: 1, stones: stones} }

// Outgoing yields the landings of the faster, slower and same-speed jumps,
// in that order, keeping only those that hit a stone.
func (f Frog) Outgoing() iter.Seq[Frog] {
	return func(yield func(Frog) bool) {
		for _, speed := range [...]int{f.Speed + 1, f.Speed - 1, f.Speed} {
			if speed <= 0 {
				continue
			}
			next := Frog{Position: f.Position + speed, Speed: speed, stones: f.stones}
			if !f.onStone(next.Position) {
				continue
			}
			if !yield(next) {
				return
			}
		}
	}
}

func (f Frog) onStone(pos int) bool {
	return f.stones != nil && pos < len(*f.stones) && (*f.stones)[pos]
}

// AtEnd reports whether the frog stands on the last position.
func (f Frog) AtEnd() bool {
	return f.stones != nil && f.Position == len(*f.stones)-1
}

func (f Frog) String() string { return fmt.Sprintf("frog(position=%d, speed=%d)", f.Position, f.Speed) }
