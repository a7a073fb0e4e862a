package mines

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
)

type GameParams struct {
	Width, Height, BombCount int
}

func (p GameParams) Unpack() (w int, h int, bc int) {
	return p.Width, p.Height, p.BombCount
}

// Clamp returns the params a game is actually built with: at least one
// row and one column, and at least one tile left free of bombs.
func (p GameParams) Clamp() GameParams {
	w := max(1, p.Width)
	h := max(1, p.Height)
	bc := min(max(0, p.BombCount), w*h-1)
	return GameParams{Width: w, Height: h, BombCount: bc}
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.BombCount)
}

/*
Seed selects how bomb placement is randomised. A fixed seed, zero
included, always reproduces the same layout for the same params;
RandomSeed draws a fresh seed per game.
*/
type Seed struct {
	value uint64
	fixed bool
}

func FixedSeed(v uint64) Seed { return Seed{value: v, fixed: true} }

func RandomSeed() Seed { return Seed{} }

func (s Seed) Value() (v uint64, fixed bool) {
	return s.value, s.fixed
}

func (s Seed) resolve() uint64 {
	if s.fixed {
		return s.value
	}
	return new(maphash.Hash).Sum64()
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// placeBombs marks bombCount distinct tiles as bombs with a partial
// Fisher-Yates shuffle over the tile indices.
func (b *Board) placeBombs(bombCount int, r *rand.Rand) {
	n := len(b.tiles)
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	for i := range bombCount {
		j := i + r.IntN(n-i)
		indices[i], indices[j] = indices[j], indices[i]
		b.tiles[indices[i]].IsBomb = true
	}
}

func (b *Board) computeAdjacency() {
	for y := range b.height {
		for x := range b.width {
			t := &b.tiles[b.index(x, y)]
			if !t.IsBomb {
				t.Adjacent = b.countAdjacent(x, y)
			}
		}
	}
}
