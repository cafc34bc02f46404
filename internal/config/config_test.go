package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/board"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/tile"
)

func resetGlobals() {
	current.Store(nil)
	v = nil
}

func TestInit(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
game:
  tie_threshold: 14
  top:
    duke_location: right
    footmen_setup: left
  starting_bag: [Pikeman, Wizard]
ai:
  top:
    kind: random
  max_depth: 3
simulation:
  games: 50
`
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0644))

	resetGlobals()
	require.NoError(t, Init(configFile))

	c := Get()
	assert.Equal(t, 14, c.Game.TieThreshold)
	assert.Equal(t, "right", c.Game.Top.DukeLocation)
	assert.Equal(t, "left", c.Game.Top.FootmenSetup)
	assert.Equal(t, "left", c.Game.Bottom.DukeLocation, "unset keys keep defaults")
	assert.Equal(t, []string{"Pikeman", "Wizard"}, c.Game.StartingBag)
	assert.Equal(t, AIKindRandom, c.AI.Top.Kind)
	assert.Equal(t, AIKindGreedy, c.AI.Bottom.Kind)
	assert.Equal(t, 3, c.AI.MaxDepth)
	assert.Equal(t, 50, c.Simulation.Games)
	assert.Equal(t, configFile, ConfigFilePath())

	setup, err := c.Game.Top.Parse()
	require.NoError(t, err)
	assert.Equal(t, board.PlayerSetup{Duke: board.DukeOnRight, Footmen: board.FootmenLeft}, setup)
}

func TestInitWithDefaults(t *testing.T) {
	resetGlobals()

	err := Init("/non/existent/path/config.yaml")
	require.NoError(t, err)

	c := Get()
	assert.Equal(t, 10, c.Game.TieThreshold)
	assert.Equal(t, tile.DefaultStartingBagNames, c.Game.StartingBag)
	assert.Equal(t, AIKindAlphaBeta, c.AI.Top.Kind)
	assert.Equal(t, 2, c.AI.MaxDepth)
	assert.Equal(t, WeightsConfig{DukeMobility: 1, TilesOnBoard: 10, TotalMobility: 1, Discarded: -5}, c.AI.Weights)
	assert.Equal(t, 200, c.Simulation.MaxTurns)
	assert.Equal(t, int64(1), c.Simulation.Seed)
	assert.Equal(t, "info", c.Logging.Level)
	assert.False(t, c.Development.TraceTimings)
}

func TestEnvironmentVariables(t *testing.T) {
	resetGlobals()

	t.Setenv("DUKE_GAME_TIE_THRESHOLD", "20")
	t.Setenv("DUKE_AI_BOTTOM_KIND", "random")
	t.Setenv("DUKE_SIMULATION_SEED", "99")

	require.NoError(t, Init(""))

	c := Get()
	assert.Equal(t, 20, c.Game.TieThreshold)
	assert.Equal(t, AIKindRandom, c.AI.Bottom.Kind)
	assert.Equal(t, int64(99), c.Simulation.Seed)
}

func TestSet(t *testing.T) {
	resetGlobals()
	require.NoError(t, Init(""))

	Set("game.tie_threshold", 6)
	Set("ai.weights.discarded", -2.5)

	c := Get()
	assert.Equal(t, 6, c.Game.TieThreshold)
	assert.Equal(t, -2.5, c.AI.Weights.Discarded)
	assert.Equal(t, 6, GetViper().GetInt("game.tie_threshold"))
}

func TestValidate(t *testing.T) {
	valid := func(t *testing.T) *Config {
		t.Helper()
		resetGlobals()
		require.NoError(t, Init(""))
		c := *Get()
		return &c
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"zero tie threshold", func(c *Config) { c.Game.TieThreshold = 0 }, "game.tie_threshold"},
		{"unknown duke location", func(c *Config) { c.Game.Top.DukeLocation = "center" }, "game.top"},
		{"unknown footmen setup", func(c *Config) { c.Game.Bottom.FootmenSetup = "front" }, "game.bottom"},
		{"unknown unit", func(c *Config) { c.Game.StartingBag = []string{"Dragon"} }, `unknown unit "Dragon"`},
		{"unknown ai kind", func(c *Config) { c.AI.Top.Kind = "mcts" }, "ai.top.kind"},
		{"zero depth", func(c *Config) { c.AI.MaxDepth = 0 }, "ai.max_depth"},
		{"zero games", func(c *Config) { c.Simulation.Games = 0 }, "simulation.games"},
		{"zero parallelism", func(c *Config) { c.Simulation.Parallelism = 0 }, "simulation.parallelism"},
		{"zero max turns", func(c *Config) { c.Simulation.MaxTurns = 0 }, "simulation.max_turns"},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid(t)
			tt.mutate(c)
			err := Validate(c)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInit_InvalidFileFailsValidation(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("ai:\n  max_depth: -1\n"), 0644))

	resetGlobals()
	err := Init(configFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestWatchConfig_ReloadsValidChanges(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("ai:\n  max_depth: 2\n"), 0644))

	resetGlobals()
	require.NoError(t, Init(configFile))

	var reloads atomic.Int32
	WatchConfig(func() { reloads.Add(1) })

	require.NoError(t, os.WriteFile(configFile, []byte("ai:\n  max_depth: 0\n"), 0644))
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, 2, Get().AI.MaxDepth, "an invalid file keeps the previous config")

	require.NoError(t, os.WriteFile(configFile, []byte("ai:\n  max_depth: 4\n"), 0644))
	assert.Eventually(t, func() bool { return Get().AI.MaxDepth == 4 }, 5*time.Second, 50*time.Millisecond)
	assert.Positive(t, reloads.Load())
}
