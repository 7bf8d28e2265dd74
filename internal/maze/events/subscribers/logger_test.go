package subscribers_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/MazeBeasts/internal/maze/core"
	"github.com/mitchelldurbincs/MazeBeasts/internal/maze/events"
	"github.com/mitchelldurbincs/MazeBeasts/internal/maze/events/subscribers"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var lines []map[string]interface{}
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}
	return lines
}

func TestLoggerSubscriber(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("test-logger", zerolog.New(&buf), zerolog.InfoLevel)

	assert.Equal(t, "test-logger", logSub.ID())
	assert.True(t, logSub.InterestedIn(events.TypeAgentMoved))
	assert.True(t, logSub.InterestedIn("any.event.type"))
}

func TestLoggerSubscriberEventLogging(t *testing.T) {
	testCases := []struct {
		name  string
		event events.Event
		check func(t *testing.T, line map[string]interface{})
	}{
		{
			name:  "SimulationStartedEvent",
			event: events.NewSimulationStartedEvent("run-1", 5, 3, 2),
			check: func(t *testing.T, line map[string]interface{}) {
				assert.Equal(t, events.TypeSimulationStarted, line["event_type"])
				assert.Equal(t, "run-1", line["run_id"])
				assert.Equal(t, float64(5), line["width"])
				assert.Equal(t, float64(3), line["height"])
				assert.Equal(t, float64(2), line["agents"])
			},
		},
		{
			name:  "AgentMovedEvent",
			event: events.NewAgentMovedEvent("run-1", 4, 0, core.Coordinate{X: 2, Y: 1}, core.Coordinate{X: 3, Y: 1}, core.Right),
			check: func(t *testing.T, line map[string]interface{}) {
				assert.Equal(t, float64(4), line["tick"])
				assert.Equal(t, float64(0), line["agent_id"])
				assert.Equal(t, float64(2), line["from_x"])
				assert.Equal(t, float64(3), line["to_x"])
				assert.Equal(t, "RIGHT", line["orientation"])
			},
		},
		{
			name:  "AgentTurnedEvent",
			event: events.NewAgentTurnedEvent("run-1", 2, 1, core.Coordinate{X: 3, Y: 1}, core.Right, core.Up, false),
			check: func(t *testing.T, line map[string]interface{}) {
				assert.Equal(t, "RIGHT", line["from"])
				assert.Equal(t, "UP", line["to"])
				assert.Equal(t, false, line["right"])
			},
		},
		{
			name:  "TickEndedEvent",
			event: events.NewTickEndedEvent("run-1", 7, 3, 1),
			check: func(t *testing.T, line map[string]interface{}) {
				assert.Equal(t, float64(7), line["tick"])
				assert.Equal(t, float64(3), line["moves"])
				assert.Equal(t, float64(1), line["turns"])
			},
		},
		{
			name:  "SimulationEndedEvent",
			event: events.NewSimulationEndedEvent("run-1", 20, time.Second),
			check: func(t *testing.T, line map[string]interface{}) {
				assert.Equal(t, float64(20), line["final_tick"])
				assert.Contains(t, line, "duration")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logSub := subscribers.NewLoggerSubscriber("event-logger", zerolog.New(&buf), zerolog.InfoLevel)
			logSub.HandleEvent(tc.event)

			lines := decodeLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, "Simulation event", lines[0]["message"])
			assert.Equal(t, "info", lines[0]["level"])
			assert.Equal(t, "event_logger", lines[0]["subscriber"])
			tc.check(t, lines[0])
		})
	}
}

func TestLoggerSubscriberFilter(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("filtered", zerolog.New(&buf), zerolog.DebugLevel)
	logSub.SetEventFilter([]string{events.TypeTickEnded})

	assert.True(t, logSub.InterestedIn(events.TypeTickEnded))
	assert.False(t, logSub.InterestedIn(events.TypeAgentMoved))

	logSub.SetEventFilter(nil)
	assert.True(t, logSub.InterestedIn(events.TypeAgentMoved))
}

func TestLoggerSubscriberThroughBus(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("bus-logger", zerolog.New(&buf), zerolog.DebugLevel)
	logSub.SetEventFilter([]string{events.TypeTickEnded})

	bus := events.NewEventBus()
	bus.Subscribe(logSub)
	bus.Publish(events.NewAgentMovedEvent("r", 1, 0, core.Coordinate{}, core.Coordinate{X: 1}, core.Right))
	bus.Publish(events.NewTickEndedEvent("r", 1, 1, 0))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "debug", lines[0]["level"])
	assert.Equal(t, events.TypeTickEnded, lines[0]["event_type"])
}

func TestLoggerSubscriberDevMode(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("dev", zerolog.New(&buf), zerolog.InfoLevel)
	logSub.SetDevMode(true)

	logSub.HandleEvent(events.NewTickEndedEvent("run-dev", 1, 0, 2))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	data, ok := lines[0]["event_data"].(map[string]interface{})
	require.True(t, ok, "event_data should be embedded JSON")
	assert.Equal(t, "run-dev", data["run_id"])
	assert.Equal(t, float64(2), data["Turns"])
}
