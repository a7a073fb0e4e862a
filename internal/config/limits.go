package config

import (
	"errors"
	"fmt"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var (
	ErrTooWide      = errors.New("width exceeds the column limit")
	ErrTooTall      = errors.New("height exceeds the row limit")
	ErrTooManyBombs = errors.New("too many bombs for this grid")
)

var DefaultGameParams = mines.GameParams{Width: 10, Height: 10, BombCount: 10}

/*
Limits is the host-side policy applied before a board reaches the
engine. The engine clamps whatever it is given; Limits is what turns an
unreasonable request into an error the player sees.
*/
type Limits struct {
	MaxWidth  int
	MaxHeight int
	WarnRatio float64 // bombs/tiles above this get a warning
	MaxRatio  float64 // bombs/tiles at or above this are rejected
}

func NewLimits() (*Limits, error) {
	maxWidth, err := lookupInt("GAME_MAX_WIDTH", 64)
	if err != nil {
		return nil, err
	}

	maxHeight, err := lookupInt("GAME_MAX_HEIGHT", 64)
	if err != nil {
		return nil, err
	}

	warnRatio, err := lookupFloat("GAME_BOMB_WARN_RATIO", 0.2)
	if err != nil {
		return nil, err
	}

	maxRatio, err := lookupFloat("GAME_BOMB_MAX_RATIO", 0.5)
	if err != nil {
		return nil, err
	}

	if maxWidth < 1 || maxHeight < 1 {
		return nil, fmt.Errorf("GAME_MAX_WIDTH and GAME_MAX_HEIGHT must be positive")
	}
	if maxRatio <= 0 || maxRatio > 1 || warnRatio < 0 || warnRatio > maxRatio {
		return nil, fmt.Errorf(
			"invalid bomb ratios (warn = %v, max = %v)", warnRatio, maxRatio,
		)
	}

	limits := &Limits{
		MaxWidth:  maxWidth,
		MaxHeight: maxHeight,
		WarnRatio: warnRatio,
		MaxRatio:  maxRatio,
	}

	return limits, nil
}

// Check validates requested params. Non-positive sizes and bomb counts
// pass through untouched and are clamped by the engine.
func (l Limits) Check(p mines.GameParams) (warning string, err error) {
	if p.Width > l.MaxWidth {
		return "", fmt.Errorf("%w (%d > %d)", ErrTooWide, p.Width, l.MaxWidth)
	}
	if p.Height > l.MaxHeight {
		return "", fmt.Errorf("%w (%d > %d)", ErrTooTall, p.Height, l.MaxHeight)
	}

	tiles := float64(max(1, p.Width) * max(1, p.Height))
	bombs := float64(p.BombCount)
	if bombs >= tiles*l.MaxRatio {
		return "", fmt.Errorf(
			"%w: bombs cannot be %.0f%% or more of the grid",
			ErrTooManyBombs, l.MaxRatio*100,
		)
	}
	if bombs > tiles*l.WarnRatio {
		return fmt.Sprintf("high bomb ratio (>%.0f%%)", l.WarnRatio*100), nil
	}
	return "", nil
}
