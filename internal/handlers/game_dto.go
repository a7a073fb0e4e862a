package handlers

import (
	"strconv"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}

type CreateNewGameDTO struct {
	Width     int     `schema:"width"`
	Height    int     `schema:"height"`
	BombCount int     `schema:"bomb_count"`
	Seed      *uint64 `schema:"seed"`
}

// ParseCreateNewGameDTO fills in the default board for any missing
// dimension.
func ParseCreateNewGameDTO(src map[string][]string) (CreateNewGameDTO, error) {
	dto := CreateNewGameDTO{
		Width:     config.DefaultGameParams.Width,
		Height:    config.DefaultGameParams.Height,
		BombCount: config.DefaultGameParams.BombCount,
	}
	err := decoder.Decode(&dto, src)
	return dto, err
}

func (dto CreateNewGameDTO) Params() mines.GameParams {
	return mines.GameParams{
		Width:     dto.Width,
		Height:    dto.Height,
		BombCount: dto.BombCount,
	}
}

func (dto CreateNewGameDTO) SeedOption() mines.Seed {
	if dto.Seed == nil {
		return mines.RandomSeed()
	}
	return mines.FixedSeed(*dto.Seed)
}

type PositionDTO struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func ParsePosition(src map[string][]string) (PositionDTO, error) {
	var pos PositionDTO
	err := decoder.Decode(&pos, src)
	return pos, err
}

type CellStatus int8

const (
	Unknown      CellStatus = -2
	Mine         CellStatus = 64
	ExplodedMine CellStatus = 65
	// 0-8 for a revealed safe tile with that many bomb neighbours
)

func (s CellStatus) String() string {
	switch {
	case s == Unknown:
		return " "
	case s == Mine:
		return "*"
	case s == ExplodedMine:
		return "X"
	case 0 <= s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// NewGrid encodes what the player may see. Hidden tiles are Unknown
// whatever lies underneath.
func NewGrid(g *mines.Game, lastHit int) []CellStatus {
	w, h := g.Width(), g.Height()
	grid := make([]CellStatus, w*h)
	for y := range h {
		for x := range w {
			i := y*w + x
			t := g.Get(x, y)
			switch {
			case !t.Revealed:
				grid[i] = Unknown
			case t.IsBomb && i == lastHit:
				grid[i] = ExplodedMine
			case t.IsBomb:
				grid[i] = Mine
			default:
				grid[i] = CellStatus(t.Adjacent)
			}
		}
	}
	return grid
}

type GameSessionDTO struct {
	GameSessionId string       `json:"game_session_id"`
	Grid          []CellStatus `json:"grid"`
	Width         int          `json:"width"`
	Height        int          `json:"height"`
	BombCount     int          `json:"bomb_count"`
	Seed          string       `json:"seed"`
	GameOver      bool         `json:"game_over"`
	Won           bool         `json:"won"`
	StartedAt     int64        `json:"started_at"`
	EndedAt       *int64       `json:"ended_at,omitempty"`
}

func NewGameSessionDTO(id string, g *mines.Game, v session.View) *GameSessionDTO {
	var endedAt *int64
	if v.EndedAt != nil {
		e := v.EndedAt.UnixMilli()
		endedAt = &e
	}
	return &GameSessionDTO{
		GameSessionId: id,
		Grid:          NewGrid(g, v.LastHit),
		Width:         g.Width(),
		Height:        g.Height(),
		BombCount:     g.Params().BombCount,
		Seed:          strconv.FormatUint(g.Seed(), 10),
		GameOver:      g.IsGameOver(),
		Won:           g.Won(),
		StartedAt:     v.StartedAt.UnixMilli(),
		EndedAt:       endedAt,
	}
}

func readSession(s *session.Session) (dto *GameSessionDTO) {
	s.Read(func(g *mines.Game, v session.View) {
		dto = NewGameSessionDTO(s.ID, g, v)
	})
	return
}

type NewGameResponseDTO struct {
	Token   string          `json:"token,omitempty"`
	Warning string          `json:"warning,omitempty"`
	Session *GameSessionDTO `json:"session"`
}

type ClickResponseDTO struct {
	HitBomb bool            `json:"hit_bomb"`
	Changed bool            `json:"changed"`
	Session *GameSessionDTO `json:"session"`
}
