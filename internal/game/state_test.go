package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/board"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/core"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/events"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/rules"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/tile"
	"github.com/mitchelldurbincs/DukeEngine/internal/testutil"
)

var c = testutil.C

func standardBag(t *testing.T) []*tile.Tile {
	t.Helper()
	tiles, err := tile.BagFromNames(tile.DefaultStartingBagNames)
	require.NoError(t, err)
	return tiles
}

func newStandardState(t *testing.T, opts ...Option) *GameState {
	t.Helper()
	opts = append([]Option{WithLogger(testutil.NopLogger())}, opts...)
	return NewGameState(standardBag(t), board.DefaultSetup, board.DefaultSetup, opts...)
}

func fromBoard(b *board.GameBoard, current tile.Owner, opts ...Option) *GameState {
	return FromBoard(b, current, append([]Option{WithLogger(testutil.NopLogger())}, opts...)...)
}

func TestNewGameState_StandardSetup(t *testing.T) {
	gs := newStandardState(t)

	assert.Equal(t, tile.TopPlayer, gs.CurrentPlayerTurn())
	assert.Zero(t, gs.Turn())
	assert.Len(t, gs.Board().Tiles(), 6)
	for _, owner := range tile.Owners {
		assert.Equal(t, len(tile.DefaultStartingBagNames), gs.Bag(owner).Len())
		assert.Zero(t, gs.Discard(owner).Len())
	}
	_, pulled := gs.PulledTile()
	assert.False(t, pulled)
	assert.Equal(t, rules.OngoingResult, gs.GameResult())
	assert.Equal(t, PullOK, gs.CanPullTileFromBag())
	assert.True(t, gs.CanPullTileFromBagBool())
}

func TestNewGameState_BagsAreIndependent(t *testing.T) {
	gs := newStandardState(t)
	rng := testutil.NewTestRNG(1)

	gs.PullTileFromBag(rng)

	assert.Equal(t, len(tile.DefaultStartingBagNames)-1, gs.Bag(tile.TopPlayer).Len())
	assert.Equal(t, len(tile.DefaultStartingBagNames), gs.Bag(tile.BottomPlayer).Len())
}

func TestGameState_GetLegalMoves(t *testing.T) {
	gs := fromBoard(testutil.BoardWith(testutil.Bottom(tile.Footman(), 2, 4)), tile.BottomPlayer)

	moves := gs.GetLegalMoves(c(2, 4))
	dsts := make([]core.Coordinate, 0, len(moves))
	for _, m := range moves {
		assert.Equal(t, tile.Move, m.Action)
		dsts = append(dsts, m.Dst)
	}
	assert.ElementsMatch(t, []core.Coordinate{c(3, 4), c(2, 5), c(1, 4), c(2, 3)}, dsts)

	assert.Empty(t, gs.GetLegalMoves(c(0, 0)), "empty cell")
	assert.Empty(t, gs.GetLegalMoves(c(9, 9)), "off the board")
}

func TestGameState_PullThenPlace(t *testing.T) {
	gs := newStandardState(t)
	rng := testutil.NewTestRNG(7)

	pulled := gs.PullTileFromBag(rng)
	require.NotNil(t, pulled)

	got, ok := gs.PulledTile()
	require.True(t, ok)
	assert.Same(t, pulled, got)
	assert.Equal(t, tile.TopPlayer, gs.CurrentPlayerTurn(), "drawing does not end the turn")
	assert.False(t, gs.CanMakeAMove(ApplyNonCommandTileAction{Src: c(4, 0), Dst: c(4, 1)}))
	assert.False(t, gs.CanMakeAMove(PullAndPlay{Offset: board.DukeBottom}))
	assert.False(t, gs.CanPullTileFromBagBool())

	require.True(t, gs.CanMakeAMove(PlaceNewTile{Offset: board.DukeBottom}))
	gs.MakeAMove(PlaceNewTile{Offset: board.DukeBottom}, rng)

	placed, ok := gs.Board().Get(c(3, 1))
	require.True(t, ok)
	assert.Same(t, pulled, placed.Tile)
	assert.Equal(t, tile.TopPlayer, placed.Owner)
	assert.Equal(t, tile.Initial, placed.Side)
	assert.Equal(t, tile.BottomPlayer, gs.CurrentPlayerTurn())
	assert.Equal(t, 1, gs.Turn())
	_, ok = gs.PulledTile()
	assert.False(t, ok)
}

func TestGameState_CaptureGoesToVictimDiscard(t *testing.T) {
	b := testutil.BoardWith(
		testutil.Top(tile.Duke(), 0, 0),
		testutil.Bottom(tile.Duke(), 5, 5),
		testutil.Top(tile.Footman(), 2, 2),
		testutil.Bottom(tile.Footman(), 2, 3),
	)
	gs := fromBoard(b, tile.TopPlayer)
	before := gs.Clone()

	var capture PossibleMove
	for _, m := range gs.AllValidGameMovesForCurrentPlayer() {
		if am, ok := m.(TileActionMove); ok && am.Src == c(2, 2) && am.Dst == c(2, 3) {
			capture = am
		}
	}
	require.NotNil(t, capture)
	require.True(t, capture.(TileActionMove).IsCapture())

	gs.MakeAMove(capture.ToGameMove(), testutil.NewTestRNG(1))

	require.Equal(t, 1, gs.Discard(tile.BottomPlayer).Len())
	assert.Equal(t, "Footman", gs.Discard(tile.BottomPlayer).Existing()[0].Name())
	assert.Zero(t, gs.Discard(tile.TopPlayer).Len())
	assert.Zero(t, gs.MovesWithoutProgress())
	mover, ok := gs.Board().Get(c(2, 3))
	require.True(t, ok)
	assert.Equal(t, tile.TopPlayer, mover.Owner)
	assert.Equal(t, tile.Flipped, mover.Side)

	gs.Undo(capture)
	assert.True(t, gs.Equal(before))
}

func TestGameState_GameEndWhenPlayerIsStuck(t *testing.T) {
	b := testutil.BoardWith(
		testutil.Top(tile.Duke(), 0, 0),
		testutil.Top(tile.Footman(), 1, 0),
		testutil.Bottom(tile.Duke(), 5, 5),
		testutil.Bottom(tile.Footman(), 4, 4),
	)
	gs := fromBoard(b, tile.BottomPlayer)
	require.Equal(t, rules.OngoingResult, gs.GameResult())

	gs.MakeAMove(ApplyNonCommandTileAction{Src: c(5, 5), Dst: c(0, 5)}, testutil.NewTestRNG(1))

	assert.True(t, gs.IsGuard(tile.TopPlayer))
	assert.Empty(t, gs.AllValidGameMovesFor(tile.TopPlayer))
	assert.False(t, gs.HasAnyValidMove(tile.TopPlayer))
	assert.Equal(t, rules.WonBy(tile.BottomPlayer), gs.GameResult())
	assert.True(t, gs.IsOver())
}

// dukeShuffle returns both dukes to their starting cells and sides every
// eight moves without any capture or placement
var dukeShuffle = []ApplyNonCommandTileAction{
	{Src: c(0, 0), Dst: c(1, 0)},
	{Src: c(5, 5), Dst: c(4, 5)},
	{Src: c(1, 0), Dst: c(1, 1)},
	{Src: c(4, 5), Dst: c(4, 4)},
	{Src: c(1, 1), Dst: c(0, 1)},
	{Src: c(4, 4), Dst: c(5, 4)},
	{Src: c(0, 1), Dst: c(0, 0)},
	{Src: c(5, 4), Dst: c(5, 5)},
}

func TestGameState_TieAfterRepeatedCycle(t *testing.T) {
	gs := fromBoard(testutil.BoardWith(
		testutil.Top(tile.Duke(), 0, 0),
		testutil.Bottom(tile.Duke(), 5, 5),
	), tile.TopPlayer)
	rng := testutil.NewTestRNG(1)
	start := gs.Board().Clone()

	for i := 0; i < rules.DefaultTieThreshold; i++ {
		require.Equal(t, rules.OngoingResult, gs.GameResult(), "move %d", i)
		move := dukeShuffle[i%len(dukeShuffle)]
		require.True(t, gs.CanMakeAMove(move), "move %d: %s", i, move)
		gs.MakeAMove(move, rng)
		if i == len(dukeShuffle)-1 {
			assert.True(t, gs.Board().Equal(start), "the cycle restores the board")
		}
	}

	assert.Equal(t, rules.DefaultTieThreshold, gs.MovesWithoutProgress())
	assert.True(t, gs.IsTie())
	assert.Equal(t, rules.TieResult, gs.GameResult())
}

func TestGameState_TieThresholdOption(t *testing.T) {
	gs := fromBoard(testutil.BoardWith(
		testutil.Top(tile.Duke(), 0, 0),
		testutil.Bottom(tile.Duke(), 5, 5),
	), tile.TopPlayer, WithTieThreshold(3))
	rng := testutil.NewTestRNG(1)

	for i := 0; i < 3; i++ {
		gs.MakeAMove(dukeShuffle[i], rng)
	}
	assert.Equal(t, rules.TieResult, gs.GameResult())

	gs.Undo(TileActionMove{Src: dukeShuffle[2].Src, Dst: dukeShuffle[2].Dst})
	assert.Equal(t, rules.OngoingResult, gs.GameResult())
	assert.Equal(t, 3, gs.TieThreshold())
	assert.Equal(t, 2, gs.MovesWithoutProgress())
}

func TestGameState_CanPullTileFromBag(t *testing.T) {
	pikeman := []*tile.Tile{tile.Pikeman()}

	tests := []struct {
		name     string
		pieces   []testutil.Piece
		opts     []Option
		expected CanPullNewTileResult
	}{
		{
			name:     "empty bag",
			pieces:   []testutil.Piece{testutil.Top(tile.Duke(), 2, 2), testutil.Bottom(tile.Duke(), 5, 5)},
			expected: PullEmptyBag,
		},
		{
			name: "no space near duke",
			pieces: []testutil.Piece{
				testutil.Top(tile.Duke(), 0, 0),
				testutil.Top(tile.Footman(), 1, 0),
				testutil.Top(tile.Footman(), 0, 1),
				testutil.Bottom(tile.Duke(), 5, 5),
			},
			opts:     []Option{WithBag(pikeman)},
			expected: PullNoSpaceNearDuke,
		},
		{
			name: "duke always in guard",
			pieces: []testutil.Piece{
				testutil.Top(tile.Duke(), 0, 0),
				testutil.Bottom(tile.Footman(), 1, 1).Flip(),
				testutil.Bottom(tile.Duke(), 5, 5),
			},
			opts:     []Option{WithBag(pikeman)},
			expected: PullDukeAlwaysInGuard,
		},
		{
			name:     "ok",
			pieces:   []testutil.Piece{testutil.Top(tile.Duke(), 2, 2), testutil.Bottom(tile.Duke(), 5, 5)},
			opts:     []Option{WithBag(pikeman)},
			expected: PullOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := fromBoard(testutil.BoardWith(tt.pieces...), tile.TopPlayer, tt.opts...)
			assert.Equal(t, tt.expected, gs.CanPullTileFromBag())
			assert.Equal(t, tt.expected == PullOK, gs.CanPullTileFromBagBool())
		})
	}
}

func TestGameState_TryMakeAMoveErrors(t *testing.T) {
	newState := func() *GameState {
		return fromBoard(testutil.BoardWith(
			testutil.Top(tile.Duke(), 2, 0),
			testutil.Top(tile.Footman(), 2, 1),
			testutil.Bottom(tile.Duke(), 2, 5),
			testutil.Bottom(tile.Footman(), 3, 5),
		), tile.TopPlayer, WithBag([]*tile.Tile{tile.Pikeman()}))
	}

	tests := []struct {
		name    string
		setup   func(gs *GameState)
		move    GameMove
		wantErr error
	}{
		{"out of bounds", nil, ApplyNonCommandTileAction{Src: c(2, 1), Dst: c(2, -1)}, core.ErrOutOfBounds},
		{"empty source", nil, ApplyNonCommandTileAction{Src: c(0, 0), Dst: c(0, 1)}, core.ErrEmptySource},
		{"not owned", nil, ApplyNonCommandTileAction{Src: c(3, 5), Dst: c(3, 4)}, core.ErrNotOwned},
		{"illegal destination", nil, ApplyNonCommandTileAction{Src: c(2, 1), Dst: c(4, 4)}, core.ErrIllegalMove},
		{"place without pull", nil, PlaceNewTile{Offset: board.DukeLeft}, core.ErrNoPulledTile},
		{"occupied placement", nil, PullAndPlay{Offset: board.DukeBottom}, core.ErrInvalidPlacement},
		{
			name:    "act while awaiting placement",
			setup:   func(gs *GameState) { gs.PullTileFromBag(testutil.NewTestRNG(1)) },
			move:    ApplyNonCommandTileAction{Src: c(2, 1), Dst: c(3, 1)},
			wantErr: core.ErrAwaitingPlacement,
		},
		{
			name: "empty bag",
			setup: func(gs *GameState) {
				gs.MakeAMove(PullAndPlay{Offset: board.DukeLeft}, testutil.NewTestRNG(1))
				gs.MakeAMove(ApplyNonCommandTileAction{Src: c(3, 5), Dst: c(4, 5)}, testutil.NewTestRNG(1))
			},
			move:    PullAndPlay{Offset: board.DukeRight},
			wantErr: core.ErrCannotPull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := newState()
			if tt.setup != nil {
				tt.setup(gs)
			}
			before := gs.Clone()

			err := gs.TryMakeAMove(tt.move, testutil.NewTestRNG(1))
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.move.String())
			assert.True(t, gs.Equal(before), "a rejected move leaves the state untouched")
			assert.False(t, gs.CanMakeAMove(tt.move))
		})
	}
}

func TestGameState_TryMakeAMoveAfterGameOver(t *testing.T) {
	gs := fromBoard(testutil.BoardWith(
		testutil.Top(tile.Duke(), 0, 0),
		testutil.Bottom(tile.Duke(), 5, 5),
	), tile.TopPlayer, WithTieThreshold(1))
	rng := testutil.NewTestRNG(1)

	require.NoError(t, gs.TryMakeAMove(dukeShuffle[0], rng))
	err := gs.TryMakeAMove(dukeShuffle[1], rng)
	assert.ErrorIs(t, err, core.ErrGameOver)
}

func TestGameState_MakeAMovePanicsOnContractViolation(t *testing.T) {
	gs := newStandardState(t)
	rng := testutil.NewTestRNG(1)

	testutil.AssertPanicContains(t, "does not own", func() {
		gs.MakeAMove(ApplyNonCommandTileAction{Src: c(1, 5), Dst: c(1, 4)}, rng)
	})
	testutil.AssertPanicContains(t, "no pulled tile", func() {
		gs.MakeAMove(PlaceNewTile{Offset: board.DukeBottom}, rng)
	})
	testutil.AssertPanicContains(t, "illegal move", func() {
		gs.MakeAMove(ApplyNonCommandTileAction{Src: c(4, 0), Dst: c(4, 3)}, rng)
	})
}

func TestGameState_UndoRoundTrip(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		gs := newStandardState(t)
		rng := testutil.NewTestRNG(seed)

		for ply := 0; ply < 24 && !gs.IsOver(); ply++ {
			mover := gs.CurrentPlayerTurn()
			moves := gs.AllValidGameMovesForCurrentPlayer()
			require.NotEmpty(t, moves)

			for _, m := range moves {
				before := gs.Clone()
				gs.MakeAMove(m.ToGameMove(), rng)

				assert.False(t, gs.IsGuard(mover), "seed %d ply %d: %s leaves %s in guard", seed, ply, m, mover)
				assert.Equal(t, mover.NextPlayer(), gs.CurrentPlayerTurn(), "seed %d ply %d: %s", seed, ply, m)

				gs.Undo(m)
				require.True(t, gs.Equal(before), "seed %d ply %d: undo of %s\nbefore:\n%s\nafter:\n%s", seed, ply, m, before, gs)
			}

			gs.MakeAMove(moves[rng.Intn(len(moves))].ToGameMove(), rng)
			assert.Equal(t, ply+1, gs.Turn())
		}
	}
}

func TestGameState_CloneIsIndependent(t *testing.T) {
	gs := newStandardState(t)
	clone := gs.Clone()
	require.True(t, gs.Equal(clone))

	clone.MakeAMove(PullAndPlay{Offset: board.DukeBottom}, testutil.NewTestRNG(3))

	assert.False(t, gs.Equal(clone))
	assert.Equal(t, tile.TopPlayer, gs.CurrentPlayerTurn())
	assert.Len(t, gs.Board().Tiles(), 6)
	assert.Equal(t, len(tile.DefaultStartingBagNames), gs.Bag(tile.TopPlayer).Len())
}

func TestGameState_PublishesEvents(t *testing.T) {
	bus := events.NewEventBusWithLogger(testutil.NopLogger())
	var received []string
	for _, typ := range []string{
		events.TypeTilePulled, events.TypeTilePlaced, events.TypeTileMoved,
		events.TypeTileCaptured, events.TypeMoveUndone,
	} {
		bus.SubscribeFunc(typ, func(e events.Event) {
			assert.Equal(t, "match-1", e.GameID())
			received = append(received, e.Type())
		})
	}

	b := testutil.BoardWith(
		testutil.Top(tile.Duke(), 0, 0),
		testutil.Bottom(tile.Duke(), 5, 5),
		testutil.Top(tile.Footman(), 2, 2),
		testutil.Bottom(tile.Footman(), 2, 3),
	)
	gs := fromBoard(b, tile.TopPlayer, WithEventBus(bus), WithGameID("match-1"), WithBag([]*tile.Tile{tile.Wizard()}))
	rng := testutil.NewTestRNG(1)

	gs.MakeAMove(PullAndPlay{Offset: board.DukeBottom}, rng)

	victim, ok := gs.Board().Get(c(2, 2))
	require.True(t, ok)
	capture := TileActionMove{Src: c(2, 3), Dst: c(2, 2), Capturing: &victim}
	gs.MakeAMove(capture.ToGameMove(), rng)
	gs.Undo(capture)

	assert.Equal(t, []string{
		events.TypeTilePulled, events.TypeTilePlaced,
		events.TypeTileMoved, events.TypeTileCaptured,
		events.TypeMoveUndone,
	}, received)

	clone := gs.Clone()
	clone.MakeAMove(PullAndPlay{Offset: board.DukeLeft}, rng)
	assert.Len(t, received, 5, "clones do not publish")
}
