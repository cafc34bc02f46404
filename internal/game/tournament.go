package game

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mitchelldurbincs/DukeEngine/internal/common"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/board"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/events"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/opening"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/tile"
)

// TournamentConfig describes a batch of independent matches
type TournamentConfig struct {
	Games       int
	Parallelism int
	// Seed is the base seed. Match i is seeded with Seed+i.
	Seed         int64
	MaxTurns     int
	TieThreshold int
	TopSetup     board.PlayerSetup
	BottomSetup  board.PlayerSetup
	StartingBag  []*tile.Tile
	// SwapSides seats the factory's players the other way round in odd matches
	SwapSides bool
	// Openings, when set, replaces TopSetup and BottomSetup with formations
	// drawn from the match's own RNG
	Openings *opening.Config
	Logger   zerolog.Logger
	// EventBus is shared by all matches. Subscribers must be safe for concurrent use.
	EventBus *events.EventBus
}

// PlayerFactory builds the two players for match number game. Players are
// never shared between matches.
type PlayerFactory func(game int) (top, bottom Player, err error)

// RunTournament plays cfg.Games matches, at most cfg.Parallelism at a time.
// Results are returned in match order. The first failing match cancels the rest.
func RunTournament(ctx context.Context, cfg TournamentConfig, factory PlayerFactory) (*Stats, []MatchResult, error) {
	if cfg.Games <= 0 {
		return nil, nil, fmt.Errorf("tournament needs at least one game, got %d", cfg.Games)
	}
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = 1
	}
	// Resolve configured defaults once, before any match goroutine reads them
	if cfg.TieThreshold == 0 {
		cfg.TieThreshold = TieThreshold()
	}
	if cfg.MaxTurns == 0 {
		cfg.MaxTurns = MaxTurns()
	}
	if cfg.StartingBag == nil {
		tiles, err := StartingBag()
		if err != nil {
			return nil, nil, fmt.Errorf("starting bag: %w", err)
		}
		cfg.StartingBag = tiles
	}
	logger := cfg.Logger.With().Str("component", "Tournament").Logger()

	results := make([]MatchResult, cfg.Games)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(common.Min(cfg.Parallelism, cfg.Games))

	for i := 0; i < cfg.Games; i++ {
		i := i // per-iteration copy (go.mod targets go 1.21 loop semantics)
		g.Go(func() error {
			top, bottom, err := factory(i)
			if err != nil {
				return fmt.Errorf("game %d: creating players: %w", i, err)
			}
			if cfg.SwapSides && i%2 == 1 {
				top, bottom = bottom, top
			}

			seed := cfg.Seed + int64(i)
			rng := rand.New(rand.NewSource(seed))
			setups := opening.Opening{Top: cfg.TopSetup, Bottom: cfg.BottomSetup}
			if cfg.Openings != nil {
				setups = opening.NewGenerator(*cfg.Openings, rng).GenerateOpening()
			}
			match, err := NewMatchInitializer(MatchConfig{
				Top:          top,
				Bottom:       bottom,
				TopSetup:     setups.Top,
				BottomSetup:  setups.Bottom,
				StartingBag:  cfg.StartingBag,
				TieThreshold: cfg.TieThreshold,
				MaxTurns:     cfg.MaxTurns,
				Rng:          rng,
				Seed:         seed,
				Logger:       cfg.Logger,
				EventBus:     cfg.EventBus,
			}).Initialize(gctx)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}

			res, err := match.Run(gctx)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			results[i] = res
			logger.Debug().
				Int("game", i).
				Str("game_id", res.GameID).
				Stringer("result", res.Result).
				Int("turns", res.Turns).
				Msg("Match finished")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	stats := NewStats()
	for _, r := range results {
		stats.Record(r)
	}
	logger.Info().EmbedObject(stats).Msg("Tournament finished")
	return stats, results, nil
}
