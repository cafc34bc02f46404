package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/tile"
	"github.com/mitchelldurbincs/DukeEngine/internal/testutil"
)

type fakePosition struct {
	tie     bool
	current tile.Owner
	movable map[tile.Owner]bool
}

func (f fakePosition) IsTie() bool                           { return f.tie }
func (f fakePosition) CurrentPlayerTurn() tile.Owner         { return f.current }
func (f fakePosition) HasAnyValidMove(owner tile.Owner) bool { return f.movable[owner] }

func TestWinConditionChecker_Result(t *testing.T) {
	checker := NewWinConditionChecker(testutil.NopLogger())

	tests := []struct {
		name     string
		position fakePosition
		expected GameResult
	}{
		{
			name:     "both players can move",
			position: fakePosition{current: tile.TopPlayer, movable: map[tile.Owner]bool{tile.TopPlayer: true, tile.BottomPlayer: true}},
			expected: OngoingResult,
		},
		{
			name:     "player to move is stuck",
			position: fakePosition{current: tile.TopPlayer, movable: map[tile.Owner]bool{tile.BottomPlayer: true}},
			expected: WonBy(tile.BottomPlayer),
		},
		{
			name:     "only the waiting player is stuck",
			position: fakePosition{current: tile.BottomPlayer, movable: map[tile.Owner]bool{tile.BottomPlayer: true}},
			expected: OngoingResult,
		},
		{
			name:     "tie wins over a stuck player",
			position: fakePosition{tie: true, current: tile.TopPlayer},
			expected: TieResult,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, checker.Result(tt.position))
		})
	}
}

func TestGameResult_String(t *testing.T) {
	assert.Equal(t, "Won(TopPlayer)", WonBy(tile.TopPlayer).String())
	assert.Equal(t, "Tie", TieResult.String())
	assert.Equal(t, "Ongoing", OngoingResult.String())
	assert.True(t, TieResult.IsOver())
	assert.False(t, OngoingResult.IsOver())
}

func TestProgressCounter_TieAfterThreshold(t *testing.T) {
	p := NewProgressCounter(DefaultTieThreshold)
	for i := 0; i < DefaultTieThreshold-1; i++ {
		p.Increment()
		assert.False(t, p.IsTie())
	}
	p.Increment()
	assert.True(t, p.IsTie())
	assert.Equal(t, DefaultTieThreshold, p.Current())
}

func TestProgressCounter_PushResetsAndUndoRestores(t *testing.T) {
	p := NewProgressCounter(3)
	p.Increment()
	p.Increment()
	before := p.Clone()

	p.Push()
	assert.Equal(t, 0, p.Current())
	p.Increment()
	p.Undo(false)
	p.Undo(true)

	assert.True(t, p.Equal(before))
	assert.Equal(t, 2, p.Current())
}

func TestProgressCounter_UndoUnderflowPanics(t *testing.T) {
	p := NewProgressCounter(3)
	testutil.AssertPanicContains(t, "underflow", func() { p.Undo(false) })
	testutil.AssertPanicContains(t, "no progress frame", func() { p.Undo(true) })
	testutil.AssertPanic(t, func() { NewProgressCounter(0) })
}
