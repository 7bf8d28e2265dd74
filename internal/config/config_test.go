package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetGlobals() {
	cfg = nil
	v = nil
}

func TestInit(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
simulation:
  ticks: 35
  tick_interval_ms: 250
render:
  color: true
logging:
  level: debug
  format: json
events:
  log_agent_moves: true
`
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0644))

	resetGlobals()
	require.NoError(t, Init(configFile))

	c := Get()
	assert.Equal(t, 35, c.Simulation.Ticks)
	assert.Equal(t, 250, c.Simulation.TickIntervalMs)
	assert.True(t, c.Render.Color)
	assert.True(t, c.Render.ShowTickHeader, "unset keys keep defaults")
	assert.Equal(t, "debug", c.Logging.Level)
	assert.Equal(t, "json", c.Logging.Format)
	assert.True(t, c.Events.LogAgentMoves)
	assert.Equal(t, configFile, ConfigFilePath())
}

func TestInitWithDefaults(t *testing.T) {
	resetGlobals()

	require.NoError(t, Init("/non/existent/path/config.yaml"))

	c := Get()
	require.NotNil(t, c)
	assert.Equal(t, 20, c.Simulation.Ticks)
	assert.Equal(t, 0, c.Simulation.TickIntervalMs)
	assert.False(t, c.Render.Color)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, "console", c.Logging.Format)
	assert.Equal(t, "debug", c.Events.LogLevel)
}

func TestEnvironmentVariables(t *testing.T) {
	resetGlobals()

	t.Setenv("BEASTS_SIMULATION_TICKS", "7")
	t.Setenv("BEASTS_LOGGING_LEVEL", "warn")

	require.NoError(t, Init("/non/existent/path/config.yaml"))

	c := Get()
	assert.Equal(t, 7, c.Simulation.Ticks)
	assert.Equal(t, "warn", c.Logging.Level)
}

func TestInitRejectsInvalidFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("simulation:\n  ticks: -1\n"), 0644))

	resetGlobals()
	err := Init(configFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulation.ticks")
}

func TestSet(t *testing.T) {
	resetGlobals()
	require.NoError(t, Init("/non/existent/path/config.yaml"))

	Set("simulation.ticks", 3)
	assert.Equal(t, 3, Get().Simulation.Ticks)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Simulation: SimulationConfig{Ticks: 20},
			Logging:    LoggingConfig{Level: "info", Format: "console"},
			Events:     EventsConfig{LogLevel: "debug"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"zero ticks allowed", func(c *Config) { c.Simulation.Ticks = 0 }, ""},
		{"negative ticks", func(c *Config) { c.Simulation.Ticks = -1 }, "simulation.ticks"},
		{"negative interval", func(c *Config) { c.Simulation.TickIntervalMs = -5 }, "simulation.tick_interval_ms"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"bad event level", func(c *Config) { c.Events.LogLevel = "" }, "events.log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := Validate(c)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
