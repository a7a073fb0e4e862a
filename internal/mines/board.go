package mines

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

type Tile struct {
	IsBomb   bool `json:"is_bomb"`
	Revealed bool `json:"revealed"`
	Adjacent int  `json:"adjacent"` // bomb neighbours, zero for bombs
}

func (t Tile) String() string {
	switch {
	case !t.Revealed:
		return "-"
	case t.IsBomb:
		return "*"
	case t.Adjacent == 0:
		return "."
	default:
		return strconv.Itoa(t.Adjacent)
	}
}

/*
Board is a width*height grid of tiles stored row-major: the tile at
(x, y) lives at index y*width+x.
*/
type Board struct {
	width, height int
	tiles         []Tile
}

func newBoard(width, height int) Board {
	return Board{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) IsValid(x, y int) bool {
	return 0 <= x && x < b.width && 0 <= y && y < b.height
}

// Get returns a copy of the tile at (x, y), or the zero Tile when the
// point is outside the board.
func (b *Board) Get(x, y int) Tile {
	if !b.IsValid(x, y) {
		return Tile{}
	}
	return b.tiles[y*b.width+x]
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

func (b *Board) point(i int) (x, y int) {
	return i % b.width, i / b.width
}

// neighbours yields the in-bounds 8-neighbourhood of (x, y) as tile
// indices. The board does not wrap.
func (b *Board) neighbours(x, y int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				xx, yy := x+dx, y+dy
				if !b.IsValid(xx, yy) {
					continue
				}
				if !yield(b.index(xx, yy)) {
					return
				}
			}
		}
	}
}

func (b *Board) countAdjacent(x, y int) (n int) {
	for j := range b.neighbours(x, y) {
		if b.tiles[j].IsBomb {
			n++
		}
	}
	return
}

func (b *Board) Bombs() (count int) {
	for _, t := range b.tiles {
		if t.IsBomb {
			count++
		}
	}
	return
}

func (b *Board) Revealed() (count int) {
	for _, t := range b.tiles {
		if t.Revealed {
			count++
		}
	}
	return
}

// String draws the board as the player sees it, one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.height {
		for x := range b.width {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, b.tiles[b.index(x, y)])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
