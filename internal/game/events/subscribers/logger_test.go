package subscribers_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/core"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/events"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/tile"
)

func TestLoggerSubscriber_InterestedInEverythingByDefault(t *testing.T) {
	logSub := subscribers.NewLoggerSubscriber("test-logger", zerolog.Nop(), zerolog.InfoLevel)

	assert.Equal(t, "test-logger", logSub.ID())
	assert.True(t, logSub.InterestedIn(events.TypeMatchStarted))
	assert.True(t, logSub.InterestedIn("any.event.type"))

	logSub.SetEventFilter([]string{events.TypeMatchEnded})
	assert.False(t, logSub.InterestedIn(events.TypeMatchStarted))
	assert.True(t, logSub.InterestedIn(events.TypeMatchEnded))

	logSub.SetEventFilter(nil)
	assert.True(t, logSub.InterestedIn(events.TypeMatchStarted))
}

func TestLoggerSubscriber_EventFields(t *testing.T) {
	testCases := []struct {
		name  string
		event events.Event
		check func(t *testing.T, logLine map[string]interface{})
	}{
		{
			name:  "MatchStartedEvent",
			event: events.NewMatchStartedEvent("m1", "alpha_beta", "random", 9),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "alpha_beta", logLine["top_player"])
				assert.Equal(t, "random", logLine["bottom_player"])
				assert.Equal(t, float64(9), logLine["seed"])
			},
		},
		{
			name:  "MatchEndedEvent",
			event: events.NewMatchEndedEvent("m1", "Won(TopPlayer)", time.Second, 31),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "Won(TopPlayer)", logLine["result"])
				assert.Equal(t, float64(31), logLine["final_turn"])
			},
		},
		{
			name:  "TileMovedEvent",
			event: events.NewTileMovedEvent("m1", tile.BottomPlayer, 4, "Bowman", core.NewCoordinate(2, 4), core.NewCoordinate(2, 2), true),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "BottomPlayer", logLine["player"])
				assert.Equal(t, float64(2), logLine["to_y"])
				assert.Equal(t, true, logLine["strike"])
			},
		},
		{
			name:  "TileCapturedEvent",
			event: events.NewTileCapturedEvent("m1", tile.BottomPlayer, 4, "Footman", tile.TopPlayer, core.NewCoordinate(2, 2)),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "TopPlayer", logLine["victim"])
				assert.Equal(t, "Footman", logLine["tile"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logSub := subscribers.NewLoggerSubscriber("event-logger", zerolog.New(&buf), zerolog.InfoLevel)

			logSub.HandleEvent(tc.event)

			var logLine map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))
			assert.Equal(t, "Game event", logLine["message"])
			assert.Equal(t, "info", logLine["level"])
			assert.Equal(t, "m1", logLine["game_id"])
			assert.Equal(t, tc.event.Type(), logLine["event_type"])
			tc.check(t, logLine)
		})
	}
}

func TestLoggerSubscriber_DevModeAddsEventData(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("dev", zerolog.New(&buf), zerolog.DebugLevel)
	logSub.SetDevMode(true)

	logSub.HandleEvent(events.NewTilePulledEvent("m2", tile.TopPlayer, 1, "Wizard"))

	var logLine map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))
	assert.Equal(t, "debug", logLine["level"])
	data, ok := logLine["event_data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Wizard", data["Tile"])
}

func TestLoggerSubscriber_RespectsLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.WarnLevel)
	logSub := subscribers.NewLoggerSubscriber("quiet", logger, zerolog.InfoLevel)

	logSub.HandleEvent(events.NewMatchStartedEvent("m3", "a", "b", 1))
	assert.Empty(t, buf.String())
}
