package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/DukeEngine/internal/ai"
	"github.com/mitchelldurbincs/DukeEngine/internal/config"
	"github.com/mitchelldurbincs/DukeEngine/internal/game"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/events"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/opening"
	"github.com/mitchelldurbincs/DukeEngine/internal/monitoring"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	games := flag.Int("games", -1, "Number of matches to play (-1 to use config default)")
	parallelism := flag.Int("parallelism", -1, "Matches played at once (-1 to use config default)")
	seed := flag.Int64("seed", 0, "Base seed, match i uses seed+i (0 to use config default)")
	logLevel := flag.String("log-level", "", "Log level (trace, debug, info, warn, error) (empty to use config default)")
	swapSides := flag.Bool("swap-sides", false, "Swap the configured players between top and bottom every other match")
	rounds := flag.Int("rounds", 1, "Number of tournaments to play, config changes are picked up between rounds")
	watch := flag.Bool("watch", false, "Reload the config file when it changes")
	logEvents := flag.Bool("log-events", false, "Log every game event at debug level")
	progressEvery := flag.Duration("progress", 10*time.Second, "Interval between progress log lines (0 disables them)")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}
	setupLogging(*logLevel, cfg.Logging.Format)

	if *watch {
		config.WatchConfig(func() {
			log.Info().Str("file", config.ConfigFilePath()).Msg("Configuration reloaded")
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := events.NewEventBusWithLogger(log.Logger)
	if *logEvents {
		bus.Subscribe(subscribers.NewLoggerSubscriber("simulate", log.Logger, zerolog.DebugLevel))
	}

	if *progressEvery > 0 {
		monitor := monitoring.NewProgressMonitor(*progressEvery, log.Logger)
		bus.Subscribe(monitor)
		monitor.Start(ctx)
	}

	for round := 1; round <= *rounds; round++ {
		// Re-read every round so a watched file can retune the players
		cfg = config.Get()
		tcfg, err := tournamentConfig(cfg, *games, *parallelism, *seed, *swapSides, bus)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid game setup")
		}

		var tracer ai.Tracer = ai.NopTracer{}
		if cfg.Development.TraceTimings {
			tracer = ai.NewTimingTracer(log.Logger)
		}
		factory := ai.Factory(cfg.AI, ai.WithTracer(tracer), ai.WithLogger(log.Logger))

		log.Info().
			Int("round", round).
			Int("games", tcfg.Games).
			Int("parallelism", tcfg.Parallelism).
			Int64("seed", tcfg.Seed).
			Str("top", cfg.AI.Top.Kind).
			Str("bottom", cfg.AI.Bottom.Kind).
			Int("max_depth", cfg.AI.MaxDepth).
			Msg("Starting tournament")

		start := time.Now()
		stats, results, err := game.RunTournament(ctx, tcfg, factory)
		if err != nil {
			log.Fatal().Err(err).Int("round", round).Msg("Tournament failed")
		}

		for i, r := range results {
			log.Info().
				Int("game", i).
				Str("top", r.TopPlayer).
				Str("bottom", r.BottomPlayer).
				Stringer("result", r.Result).
				Str("winner", r.WinnerName()).
				Int("turns", r.Turns).
				Bool("turn_limit", r.TurnLimitReached).
				Dur("duration", r.Duration).
				Msg("Match result")
		}
		for name := range stats.GamesByPlayer {
			log.Info().
				Str("player", name).
				Float64("win_rate", stats.WinRate(name)).
				Msg("Player summary")
		}
		log.Info().
			Int("round", round).
			EmbedObject(stats).
			Dur("elapsed", time.Since(start)).
			Msg("Round finished")
		tracer.Report()
	}
}

// tournamentConfig merges flag overrides into the configured simulation settings
func tournamentConfig(cfg *config.Config, games, parallelism int, seed int64, swap bool, bus *events.EventBus) (game.TournamentConfig, error) {
	top, err := cfg.Game.Top.Parse()
	if err != nil {
		return game.TournamentConfig{}, err
	}
	bottom, err := cfg.Game.Bottom.Parse()
	if err != nil {
		return game.TournamentConfig{}, err
	}
	bag, err := game.StartingBag()
	if err != nil {
		return game.TournamentConfig{}, err
	}

	tcfg := game.TournamentConfig{
		Games:        cfg.Simulation.Games,
		Parallelism:  cfg.Simulation.Parallelism,
		Seed:         cfg.Simulation.Seed,
		MaxTurns:     cfg.Simulation.MaxTurns,
		TieThreshold: cfg.Game.TieThreshold,
		TopSetup:     top,
		BottomSetup:  bottom,
		StartingBag:  bag,
		SwapSides:    swap,
		Logger:       log.Logger,
		EventBus:     bus,
	}
	if cfg.Simulation.RandomOpenings {
		openings := opening.DefaultConfig()
		tcfg.Openings = &openings
	}
	if games != -1 {
		tcfg.Games = games
	}
	if parallelism != -1 {
		tcfg.Parallelism = parallelism
	}
	if seed != 0 {
		tcfg.Seed = seed
	}
	return tcfg, nil
}

func setupLogging(level, format string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if format == "json" || os.Getenv("APP_ENV") == "production" {
		// JSON output for production
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		// Pretty console output for development
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}
}
