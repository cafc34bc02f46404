package game

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/opening"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/rules"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/tile"
	"github.com/mitchelldurbincs/DukeEngine/internal/testutil"
)

func randomFactory(int) (Player, Player, error) {
	return randomMovePlayer{name: "alpha"}, randomMovePlayer{name: "beta"}, nil
}

func tournamentConfig(t *testing.T) TournamentConfig {
	return TournamentConfig{
		Games:        6,
		Parallelism:  3,
		Seed:         100,
		MaxTurns:     60,
		TieThreshold: rules.DefaultTieThreshold,
		StartingBag:  standardBag(t),
		Logger:       testutil.NopLogger(),
	}
}

func TestRunTournament_IsDeterministic(t *testing.T) {
	cfg := tournamentConfig(t)

	_, first, err := RunTournament(context.Background(), cfg, randomFactory)
	require.NoError(t, err)
	_, second, err := RunTournament(context.Background(), cfg, randomFactory)
	require.NoError(t, err)

	require.Len(t, first, cfg.Games)
	require.Len(t, second, cfg.Games)
	for i := range first {
		assert.Equal(t, cfg.Seed+int64(i), first[i].Seed)
		assert.Equal(t, first[i].Result, second[i].Result, "game %d", i)
		assert.Equal(t, first[i].Turns, second[i].Turns, "game %d", i)
		assert.NotEqual(t, first[i].GameID, second[i].GameID, "every match gets a fresh ID")
	}
}

func TestRunTournament_Stats(t *testing.T) {
	stats, results, err := RunTournament(context.Background(), tournamentConfig(t), randomFactory)
	require.NoError(t, err)

	assert.Equal(t, len(results), stats.Games)
	assert.Equal(t, stats.Games, stats.TopWins+stats.BottomWins+stats.Ties+stats.Unfinished)
	assert.Equal(t, stats.Games, stats.GamesByPlayer["alpha"])
	assert.Equal(t, stats.Games, stats.GamesByPlayer["beta"])
	assert.Equal(t, stats.TopWins, stats.WinsByPlayer["alpha"])
	assert.Equal(t, stats.BottomWins, stats.WinsByPlayer["beta"])

	total := 0
	for _, r := range results {
		total += r.Turns
	}
	assert.Equal(t, total, stats.TotalTurns)
}

func TestRunTournament_MoreWorkersThanGames(t *testing.T) {
	cfg := tournamentConfig(t)
	cfg.Games = 2
	cfg.Parallelism = 16

	stats, results, err := RunTournament(context.Background(), cfg, randomFactory)
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, 2, stats.Games)
}

func TestRunTournament_SwapSides(t *testing.T) {
	cfg := tournamentConfig(t)
	cfg.SwapSides = true

	_, results, err := RunTournament(context.Background(), cfg, randomFactory)
	require.NoError(t, err)

	for i, r := range results {
		if i%2 == 0 {
			assert.Equal(t, "alpha", r.TopPlayer)
		} else {
			assert.Equal(t, "beta", r.TopPlayer)
		}
	}
}

func TestRunTournament_RandomOpenings(t *testing.T) {
	cfg := tournamentConfig(t)
	cfg.Openings = &opening.Config{Mirrored: true}

	_, first, err := RunTournament(context.Background(), cfg, randomFactory)
	require.NoError(t, err)
	_, second, err := RunTournament(context.Background(), cfg, randomFactory)
	require.NoError(t, err)

	for i := range first {
		assert.Equal(t, first[i].Result, second[i].Result, "game %d", i)
		assert.Equal(t, first[i].Turns, second[i].Turns, "game %d", i)
	}
}

func TestRunTournament_Errors(t *testing.T) {
	t.Run("no games", func(t *testing.T) {
		cfg := tournamentConfig(t)
		cfg.Games = 0
		_, _, err := RunTournament(context.Background(), cfg, randomFactory)
		assert.Error(t, err)
	})

	t.Run("factory failure", func(t *testing.T) {
		boom := errors.New("boom")
		factory := func(game int) (Player, Player, error) {
			if game == 2 {
				return nil, nil, boom
			}
			return randomFactory(game)
		}
		_, _, err := RunTournament(context.Background(), tournamentConfig(t), factory)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err := RunTournament(ctx, tournamentConfig(t), randomFactory)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestStats_Record(t *testing.T) {
	s := NewStats()
	assert.Zero(t, s.AverageTurns())
	assert.Zero(t, s.WinRate("a"))

	s.Record(MatchResult{TopPlayer: "a", BottomPlayer: "b", Result: rules.WonBy(tile.TopPlayer), Turns: 10})
	s.Record(MatchResult{TopPlayer: "b", BottomPlayer: "a", Result: rules.WonBy(tile.TopPlayer), Turns: 20})
	s.Record(MatchResult{TopPlayer: "a", BottomPlayer: "b", Result: rules.TieResult, Turns: 30})
	s.Record(MatchResult{TopPlayer: "a", BottomPlayer: "b", Result: rules.OngoingResult, Turns: 40, TurnLimitReached: true})

	assert.Equal(t, 4, s.Games)
	assert.Equal(t, 2, s.TopWins)
	assert.Zero(t, s.BottomWins)
	assert.Equal(t, 1, s.Ties)
	assert.Equal(t, 1, s.Unfinished)
	assert.InDelta(t, 25.0, s.AverageTurns(), 1e-9)
	assert.InDelta(t, 0.25, s.WinRate("a"), 1e-9)
	assert.InDelta(t, 0.25, s.WinRate("b"), 1e-9)
}
