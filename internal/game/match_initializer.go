package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/board"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/events"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/states"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/tile"
)

// MatchConfig describes a match to set up
type MatchConfig struct {
	GameID      string
	Top         Player
	Bottom      Player
	TopSetup    board.PlayerSetup
	BottomSetup board.PlayerSetup
	// StartingBag defaults to the configured bag when nil
	StartingBag  []*tile.Tile
	TieThreshold int
	MaxTurns     int
	// Rng drives both bag draws and player decisions. When nil it is
	// seeded from Seed, or from the clock if Seed is zero.
	Rng      *rand.Rand
	Seed     int64
	Logger   zerolog.Logger
	EventBus *events.EventBus
	// State starts the match from a prepared position instead of the standard setup
	State *GameState
}

// MatchInitializer handles setting up a match
type MatchInitializer struct {
	config MatchConfig
	logger zerolog.Logger
}

// NewMatchInitializer creates a new match initializer
func NewMatchInitializer(cfg MatchConfig) *MatchInitializer {
	logger := cfg.Logger.With().Str("component", "Match").Logger()
	return &MatchInitializer{
		config: cfg,
		logger: logger,
	}
}

// Initialize builds the match and moves it to PhaseRunning
func (mi *MatchInitializer) Initialize(ctx context.Context) (*Match, error) {
	select {
	case <-ctx.Done():
		mi.logger.Error().Err(ctx.Err()).Msg("Match creation cancelled before setup")
		return nil, ctx.Err()
	default:
	}

	if mi.config.Top == nil || mi.config.Bottom == nil {
		return nil, fmt.Errorf("match needs two players")
	}

	if err := mi.setupDefaults(); err != nil {
		return nil, err
	}

	match := mi.createMatch()

	if err := mi.initializeStateMachine(match); err != nil {
		return nil, fmt.Errorf("state machine initialization failed: %w", err)
	}

	match.eventBus.Publish(events.NewMatchStartedEvent(
		match.gameID,
		mi.config.Top.Name(),
		mi.config.Bottom.Name(),
		mi.config.Seed,
	))

	// A prepared position may already be decided
	match.checkGameOver()

	return match, nil
}

// setupDefaults fills in missing configuration
func (mi *MatchInitializer) setupDefaults() error {
	if mi.config.GameID == "" {
		mi.config.GameID = uuid.NewString()
	}
	mi.logger = mi.logger.With().Str("game_id", mi.config.GameID).Logger()

	if mi.config.Rng == nil {
		if mi.config.Seed == 0 {
			mi.config.Seed = time.Now().UnixNano()
		}
		mi.logger.Debug().Int64("seed", mi.config.Seed).Msg("No RNG provided, creating seeded RNG")
		mi.config.Rng = rand.New(rand.NewSource(mi.config.Seed))
	}

	if mi.config.TieThreshold == 0 {
		mi.config.TieThreshold = TieThreshold()
	}
	if mi.config.MaxTurns == 0 {
		mi.config.MaxTurns = MaxTurns()
	}
	if mi.config.StartingBag == nil && mi.config.State == nil {
		tiles, err := StartingBag()
		if err != nil {
			return fmt.Errorf("starting bag: %w", err)
		}
		mi.config.StartingBag = tiles
	}
	if mi.config.EventBus == nil {
		mi.config.EventBus = events.NewEventBusWithLogger(mi.logger)
	}
	return nil
}

// createMatch wires the game state, state machine and turn processor together
func (mi *MatchInitializer) createMatch() *Match {
	gs := mi.config.State
	if gs == nil {
		gs = NewGameState(mi.config.StartingBag, mi.config.TopSetup, mi.config.BottomSetup,
			WithTieThreshold(mi.config.TieThreshold),
			WithLogger(mi.logger),
			WithEventBus(mi.config.EventBus),
			WithGameID(mi.config.GameID),
		)
	}

	matchContext := states.NewMatchContext(mi.config.GameID, mi.logger)
	matchContext.TopPlayer = mi.config.Top.Name()
	matchContext.BottomPlayer = mi.config.Bottom.Name()

	match := &Match{
		gameID:       mi.config.GameID,
		gs:           gs,
		players:      [2]Player{tile.TopPlayer: mi.config.Top, tile.BottomPlayer: mi.config.Bottom},
		rng:          mi.config.Rng,
		seed:         mi.config.Seed,
		maxTurns:     mi.config.MaxTurns,
		logger:       mi.logger,
		eventBus:     mi.config.EventBus,
		stateMachine: states.NewStateMachine(matchContext, mi.config.EventBus),
	}
	match.turnProcessor = NewTurnProcessor(match)
	return match
}

func (mi *MatchInitializer) initializeStateMachine(match *Match) error {
	if err := match.stateMachine.TransitionTo(states.PhaseRunning, "players seated"); err != nil {
		mi.logger.Error().Err(err).Msg("Failed to transition to Running state")
		return err
	}
	return nil
}
