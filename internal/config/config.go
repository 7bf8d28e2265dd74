package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Render     RenderConfig     `mapstructure:"render"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Events     EventsConfig     `mapstructure:"events"`
}

// SimulationConfig holds run length and pacing
type SimulationConfig struct {
	Ticks          int `mapstructure:"ticks"`
	TickIntervalMs int `mapstructure:"tick_interval_ms"`
}

// RenderConfig holds frame output settings
type RenderConfig struct {
	Color          bool `mapstructure:"color"`
	ShowTickHeader bool `mapstructure:"show_tick_header"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// EventsConfig controls the simulation event logger
type EventsConfig struct {
	LogAgentMoves bool   `mapstructure:"log_agent_moves"`
	LogLevel      string `mapstructure:"log_level"`
	DevMode       bool   `mapstructure:"dev_mode"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

var validLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true,
}

func setViperDefaults(v *viper.Viper) {
	v.SetDefault("simulation.ticks", 20)
	v.SetDefault("simulation.tick_interval_ms", 0)

	v.SetDefault("render.color", false)
	v.SetDefault("render.show_tick_header", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("events.log_agent_moves", false)
	v.SetDefault("events.log_level", "debug")
	v.SetDefault("events.dev_mode", false)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/beasts")
	}

	v.SetEnvPrefix("BEASTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing explicit file falls back to defaults; for the default
		// locations only ConfigFileNotFoundError is tolerated.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath == "" {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	v.Unmarshal(cfg)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file. Invalid edits are
// reported through onError and leave the previous values in place.
func WatchConfig(onChange func(*Config), onError func(error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		next := &Config{}
		err := v.Unmarshal(next)
		if err == nil {
			err = Validate(next)
		}
		if err != nil {
			if onError != nil {
				onError(fmt.Errorf("reloading %s: %w", e.Name, err))
			}
			return
		}
		*cfg = *next
		if onChange != nil {
			onChange(cfg)
		}
	})
	v.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Simulation.Ticks < 0 {
		return fmt.Errorf("simulation.ticks must be non-negative")
	}
	if c.Simulation.TickIntervalMs < 0 {
		return fmt.Errorf("simulation.tick_interval_ms must be non-negative")
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level %q is not one of trace, debug, info, warn, error", c.Logging.Level)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be console or json")
	}
	if !validLevels[c.Events.LogLevel] {
		return fmt.Errorf("events.log_level %q is not one of trace, debug, info, warn, error", c.Events.LogLevel)
	}
	return nil
}
