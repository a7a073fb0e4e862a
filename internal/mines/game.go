package mines

import "log/slog"

var Log *slog.Logger = slog.Default()

/*
Game owns one board and the game-over flag. It has no internal locking:
callers that share a Game between goroutines must serialise NewGame,
Click and every read themselves.
*/
type Game struct {
	board    Board
	gameOver bool
	params   GameParams /* effective, after clamping */
	seed     uint64
}

func New(params GameParams, seed Seed) *Game {
	g := &Game{}
	g.NewGame(params, seed)
	return g
}

// NewGame discards the current board and deals a fresh one. Out of range
// params are clamped, see [GameParams.Clamp].
func (g *Game) NewGame(params GameParams, seed Seed) {
	p := params.Clamp()
	s := seed.resolve()

	board := newBoard(p.Width, p.Height)
	board.placeBombs(p.BombCount, newRand(s))
	board.computeAdjacency()

	g.board = board
	g.gameOver = false
	g.params = p
	g.seed = s

	Log.Debug("new game",
		slog.String("params", p.String()),
		slog.Uint64("seed", s),
		slog.Bool("fixedSeed", seed.fixed),
	)
}

func (g *Game) Click(x, y int) (hitBomb, changed bool) {
	if g.gameOver || !g.board.IsValid(x, y) {
		return false, false
	}

	i := g.board.index(x, y)
	t := &g.board.tiles[i]
	if t.Revealed {
		return false, false
	}

	if t.IsBomb {
		g.gameOver = true
		for j := range g.board.tiles {
			if g.board.tiles[j].IsBomb {
				g.board.tiles[j].Revealed = true
			}
		}
		return true, true
	}

	t.Revealed = true
	if t.Adjacent == 0 {
		g.board.floodFill(i)
	}
	return false, true
}

/*
floodFill reveals the connected region of zero tiles around start, which
must already be revealed, together with the numbered tiles bordering it.
Bombs are never revealed here.
*/
func (b *Board) floodFill(start int) {
	todo := newTileTodo(len(b.tiles))
	todo.add(start)
	for {
		i, ok := todo.pop()
		if !ok {
			break
		}
		x, y := b.point(i)
		for j := range b.neighbours(x, y) {
			n := &b.tiles[j]
			if n.Revealed || n.IsBomb {
				continue
			}
			n.Revealed = true
			if n.Adjacent == 0 {
				todo.add(j)
			}
		}
	}
}

func (g *Game) IsValid(x, y int) bool { return g.board.IsValid(x, y) }

func (g *Game) IsGameOver() bool { return g.gameOver }

func (g *Game) Get(x, y int) Tile { return g.board.Get(x, y) }

func (g *Game) Width() int  { return g.board.width }
func (g *Game) Height() int { return g.board.height }

func (g *Game) Params() GameParams { return g.params }

// Seed returns the seed the current board was dealt with; passing it to
// [FixedSeed] replays the same layout.
func (g *Game) Seed() uint64 { return g.seed }

// Board exposes the board for read-only inspection.
func (g *Game) Board() *Board { return &g.board }

// Won reports whether every safe tile has been revealed without hitting
// a bomb. The engine does not stop the game on a win; it is up to the
// caller to act on it.
func (g *Game) Won() bool {
	if g.gameOver {
		return false
	}
	for _, t := range g.board.tiles {
		if !t.IsBomb && !t.Revealed {
			return false
		}
	}
	return true
}
