package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

func TestLimitsCheck(t *testing.T) {
	t.Parallel()

	limits := Limits{MaxWidth: 30, MaxHeight: 20, WarnRatio: 0.2, MaxRatio: 0.5}

	tests := []struct {
		name    string
		params  mines.GameParams
		warning bool
		err     error
	}{
		{"default", DefaultGameParams, false, nil},
		{"at warn ratio", mines.GameParams{Width: 10, Height: 10, BombCount: 20}, false, nil},
		{"above warn ratio", mines.GameParams{Width: 10, Height: 10, BombCount: 21}, true, nil},
		{"just below max ratio", mines.GameParams{Width: 10, Height: 10, BombCount: 49}, true, nil},
		{"at max ratio", mines.GameParams{Width: 10, Height: 10, BombCount: 50}, false, ErrTooManyBombs},
		{"too wide", mines.GameParams{Width: 31, Height: 10, BombCount: 1}, false, ErrTooWide},
		{"too tall", mines.GameParams{Width: 10, Height: 21, BombCount: 1}, false, ErrTooTall},
		{"non-positive size is left to the engine", mines.GameParams{Width: 0, Height: -4, BombCount: 0}, false, nil},
		{"negative bombs", mines.GameParams{Width: 5, Height: 5, BombCount: -3}, false, nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			warning, err := limits.Check(test.params)
			if test.err != nil {
				assert.ErrorIs(t, err, test.err)
				assert.Empty(t, warning)
				return
			}
			require.NoError(t, err)
			if test.warning {
				assert.Equal(t, "high bomb ratio (>20%)", warning)
			} else {
				assert.Empty(t, warning)
			}
		})
	}
}

func TestNewLimits(t *testing.T) {
	limits, err := NewLimits()
	require.NoError(t, err)
	assert.Equal(t, &Limits{MaxWidth: 64, MaxHeight: 64, WarnRatio: 0.2, MaxRatio: 0.5}, limits)

	t.Setenv("GAME_MAX_WIDTH", "120")
	t.Setenv("GAME_BOMB_WARN_RATIO", "0.3")
	limits, err = NewLimits()
	require.NoError(t, err)
	assert.Equal(t, 120, limits.MaxWidth)
	assert.Equal(t, 0.3, limits.WarnRatio)

	t.Setenv("GAME_BOMB_WARN_RATIO", "0.9")
	_, err = NewLimits()
	assert.Error(t, err)

	t.Setenv("GAME_BOMB_WARN_RATIO", "0.2")
	t.Setenv("GAME_MAX_HEIGHT", "tall")
	_, err = NewLimits()
	assert.Error(t, err)
}
