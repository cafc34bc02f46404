package config

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/board"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/tile"
)

// AI player kinds accepted by ai.top.kind and ai.bottom.kind
const (
	AIKindRandom    = "random"
	AIKindGreedy    = "greedy"
	AIKindAlphaBeta = "alpha_beta"
)

// Config holds all configuration for the application
type Config struct {
	Game        GameConfig        `mapstructure:"game"`
	AI          AIConfig          `mapstructure:"ai"`
	Simulation  SimulationConfig  `mapstructure:"simulation"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// GameConfig holds game rule configuration
type GameConfig struct {
	TieThreshold int               `mapstructure:"tie_threshold"`
	Top          PlayerSetupConfig `mapstructure:"top"`
	Bottom       PlayerSetupConfig `mapstructure:"bottom"`
	StartingBag  []string          `mapstructure:"starting_bag"`
}

// PlayerSetupConfig is one player's opening formation
type PlayerSetupConfig struct {
	DukeLocation string `mapstructure:"duke_location"`
	FootmenSetup string `mapstructure:"footmen_setup"`
}

// Parse converts the configured names into a board.PlayerSetup
func (p PlayerSetupConfig) Parse() (board.PlayerSetup, error) {
	duke, err := board.ParseDukeInitialLocation(p.DukeLocation)
	if err != nil {
		return board.PlayerSetup{}, err
	}
	footmen, err := board.ParseFootmenSetup(p.FootmenSetup)
	if err != nil {
		return board.PlayerSetup{}, err
	}
	return board.PlayerSetup{Duke: duke, Footmen: footmen}, nil
}

// AIConfig holds the computer players' settings
type AIConfig struct {
	Top      PlayerAIConfig `mapstructure:"top"`
	Bottom   PlayerAIConfig `mapstructure:"bottom"`
	MaxDepth int            `mapstructure:"max_depth"`
	Weights  WeightsConfig  `mapstructure:"weights"`
}

// PlayerAIConfig selects the strategy for one seat
type PlayerAIConfig struct {
	Kind string `mapstructure:"kind"`
}

// WeightsConfig holds the heuristic weights used by greedy and alpha-beta players
type WeightsConfig struct {
	DukeMobility  float64 `mapstructure:"duke_mobility"`
	TilesOnBoard  float64 `mapstructure:"tiles_on_board"`
	TotalMobility float64 `mapstructure:"total_mobility"`
	Discarded     float64 `mapstructure:"discarded"`
}

// SimulationConfig holds batch simulation settings
type SimulationConfig struct {
	Games          int   `mapstructure:"games"`
	Parallelism    int   `mapstructure:"parallelism"`
	MaxTurns       int   `mapstructure:"max_turns"`
	Seed           int64 `mapstructure:"seed"`
	RandomOpenings bool  `mapstructure:"random_openings"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	TraceTimings bool `mapstructure:"trace_timings"`
}

var (
	// Global config instance, swapped whole on reload
	current atomic.Pointer[Config]
	v       *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Game defaults
	v.SetDefault("game.tie_threshold", 10)
	v.SetDefault("game.top.duke_location", "left")
	v.SetDefault("game.top.footmen_setup", "sides")
	v.SetDefault("game.bottom.duke_location", "left")
	v.SetDefault("game.bottom.footmen_setup", "sides")
	v.SetDefault("game.starting_bag", tile.DefaultStartingBagNames)

	// AI defaults
	v.SetDefault("ai.top.kind", AIKindAlphaBeta)
	v.SetDefault("ai.bottom.kind", AIKindGreedy)
	v.SetDefault("ai.max_depth", 2)
	v.SetDefault("ai.weights.duke_mobility", 1.0)
	v.SetDefault("ai.weights.tiles_on_board", 10.0)
	v.SetDefault("ai.weights.total_mobility", 1.0)
	v.SetDefault("ai.weights.discarded", -5.0)

	// Simulation defaults
	v.SetDefault("simulation.games", 10)
	v.SetDefault("simulation.parallelism", 4)
	v.SetDefault("simulation.max_turns", 200)
	v.SetDefault("simulation.seed", 1)
	v.SetDefault("simulation.random_openings", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("development.trace_timings", false)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/duke-engine")
	}

	v.SetEnvPrefix("DUKE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing explicit file falls back to defaults. For the search
		// path only ConfigFileNotFoundError is tolerated.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath == "" {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	next := &Config{}
	if err := v.Unmarshal(next); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(next); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	current.Store(next)
	return nil
}

// Get returns the global config instance
func Get() *Config {
	if c := current.Load(); c != nil {
		return c
	}
	// Initialize with defaults if not already initialized
	if err := Init(""); err != nil {
		panic("failed to initialize config with defaults: " + err.Error())
	}
	return current.Load()
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	// Re-unmarshal into a copy so readers never see a half-updated struct
	next := *Get()
	if err := v.Unmarshal(&next); err == nil {
		current.Store(&next)
	}
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. Changes that fail
// validation are ignored and the previous config is kept.
func WatchConfig(onChange func()) {
	watched := v
	watched.WatchConfig()
	watched.OnConfigChange(func(e fsnotify.Event) {
		next := &Config{}
		if err := watched.Unmarshal(next); err != nil {
			return
		}
		if err := Validate(next); err != nil {
			return
		}
		current.Store(next)
		if onChange != nil {
			onChange()
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Game.TieThreshold <= 0 {
		return fmt.Errorf("game.tie_threshold must be positive")
	}
	if _, err := c.Game.Top.Parse(); err != nil {
		return fmt.Errorf("game.top: %w", err)
	}
	if _, err := c.Game.Bottom.Parse(); err != nil {
		return fmt.Errorf("game.bottom: %w", err)
	}
	if _, err := tile.BagFromNames(c.Game.StartingBag); err != nil {
		return fmt.Errorf("game.starting_bag: %w", err)
	}

	for seat, kind := range map[string]string{"ai.top.kind": c.AI.Top.Kind, "ai.bottom.kind": c.AI.Bottom.Kind} {
		switch kind {
		case AIKindRandom, AIKindGreedy, AIKindAlphaBeta:
		default:
			return fmt.Errorf("%s must be one of %s, %s, %s: got %q", seat, AIKindRandom, AIKindGreedy, AIKindAlphaBeta, kind)
		}
	}
	if c.AI.MaxDepth <= 0 {
		return fmt.Errorf("ai.max_depth must be positive")
	}

	if c.Simulation.Games <= 0 {
		return fmt.Errorf("simulation.games must be positive")
	}
	if c.Simulation.Parallelism <= 0 {
		return fmt.Errorf("simulation.parallelism must be positive")
	}
	if c.Simulation.MaxTurns <= 0 {
		return fmt.Errorf("simulation.max_turns must be positive")
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json: got %q", c.Logging.Format)
	}

	return nil
}
