package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stringer string

func (s stringer) String() string { return string(s) }

func TestWrapMoveError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
		isNil    bool
	}{
		{
			name:  "nil error returns nil",
			err:   nil,
			isNil: true,
		},
		{
			name:     "not owned",
			err:      ErrNotOwned,
			expected: "TopPlayer: (0,0)->(1,0): tile not owned by player",
		},
		{
			name:     "illegal move",
			err:      ErrIllegalMove,
			expected: "TopPlayer: (0,0)->(1,0): move is not legal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := WrapMoveError(stringer("TopPlayer"), stringer("(0,0)->(1,0)"), tt.err)
			if tt.isNil {
				assert.Nil(t, wrapped)
				return
			}
			require.NotNil(t, wrapped)
			assert.Equal(t, tt.expected, wrapped.Error())
			assert.True(t, errors.Is(wrapped, tt.err))
		})
	}
}

func TestWrapGameStateError(t *testing.T) {
	assert.Nil(t, WrapGameStateError(3, "running", nil))

	wrapped := WrapGameStateError(12, "running", ErrGameOver)
	require.NotNil(t, wrapped)
	assert.Equal(t, "game turn 12 [running]: game is over", wrapped.Error())
	assert.True(t, errors.Is(wrapped, ErrGameOver))
}

func TestGameError(t *testing.T) {
	t.Run("with player", func(t *testing.T) {
		err := NewGameError(15, "BottomPlayer", "next move", ErrIllegalMove)
		assert.Equal(t, "turn 15: BottomPlayer next move: move is not legal", err.Error())
		assert.True(t, errors.Is(err, ErrIllegalMove))
	})

	t.Run("without player", func(t *testing.T) {
		err := NewGameError(20, "", "result check", ErrGameOver)
		assert.Equal(t, "turn 20: result check: game is over", err.Error())
	})

	t.Run("errors.As functionality", func(t *testing.T) {
		gameErr := NewGameError(5, "TopPlayer", "pull", fmt.Errorf("bag exhausted"))

		var extracted *GameError
		require.True(t, errors.As(gameErr, &extracted))
		assert.Equal(t, 5, extracted.Turn)
		assert.Equal(t, "TopPlayer", extracted.Player)
		assert.Equal(t, "pull", extracted.Operation)
	})
}

func TestAssertf(t *testing.T) {
	assert.NotPanics(t, func() { Assertf(true, "never") })
	assert.PanicsWithValue(t, "assertion failed: bad (1,2)", func() {
		Assertf(false, "bad %s", NewCoordinate(1, 2))
	})
}
