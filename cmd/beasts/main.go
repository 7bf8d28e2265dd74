package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/MazeBeasts/internal/config"
	"github.com/mitchelldurbincs/MazeBeasts/internal/input"
	"github.com/mitchelldurbincs/MazeBeasts/internal/maze"
	"github.com/mitchelldurbincs/MazeBeasts/internal/maze/events"
	"github.com/mitchelldurbincs/MazeBeasts/internal/maze/events/subscribers"
)

// options are the resolved settings for one run
type options struct {
	ticks          int
	interval       time.Duration
	color          bool
	showTickHeader bool
	logAgentMoves  bool
	eventLogLevel  zerolog.Level
	eventDevMode   bool
	prompt         bool
}

func main() {
	configPath := flag.String("config", "", "Path to config file")
	inputPath := flag.String("input", "", "Read the maze from this file instead of stdin")
	ticks := flag.Int("ticks", -1, "Number of ticks to simulate (-1 to use config default)")
	logLevel := flag.String("log-level", "", "Log level (trace, debug, info, warn, error) (empty to use config default)")
	color := flag.Bool("color", false, "Colorize frames with ANSI escapes")
	intervalMs := flag.Int("interval", -1, "Pause between frames in milliseconds (-1 to use config default)")
	watch := flag.Bool("watch", false, "Reload log level and frame interval when the config file changes")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	if *ticks == -1 {
		*ticks = cfg.Simulation.Ticks
	}
	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}
	if *intervalMs == -1 {
		*intervalMs = cfg.Simulation.TickIntervalMs
	}
	if !*color {
		*color = cfg.Render.Color && isatty.IsTerminal(os.Stdout.Fd())
	}

	setupLogging(*logLevel, cfg.Logging.Format)

	in := io.Reader(os.Stdin)
	prompt := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *inputPath).Msg("Failed to open maze file")
		}
		defer f.Close()
		in = f
		prompt = false
	}

	opts := options{
		ticks:          *ticks,
		interval:       time.Duration(*intervalMs) * time.Millisecond,
		color:          *color,
		showTickHeader: cfg.Render.ShowTickHeader,
		logAgentMoves:  cfg.Events.LogAgentMoves,
		eventLogLevel:  parseLevel(cfg.Events.LogLevel),
		eventDevMode:   cfg.Events.DevMode,
		prompt:         prompt,
	}

	var interval atomic.Int64
	interval.Store(int64(opts.interval))
	if *watch {
		config.WatchConfig(func(c *config.Config) {
			zerolog.SetGlobalLevel(parseLevel(c.Logging.Level))
			interval.Store(int64(time.Duration(c.Simulation.TickIntervalMs) * time.Millisecond))
			log.Info().
				Str("log_level", c.Logging.Level).
				Int("tick_interval_ms", c.Simulation.TickIntervalMs).
				Msg("Config reloaded")
		}, func(err error) {
			log.Warn().Err(err).Msg("Ignoring invalid config change")
		})
		log.Info().Str("path", config.ConfigFilePath()).Msg("Watching config for changes")
	}

	if err := run(opts, in, os.Stdout, &interval); err != nil {
		log.Fatal().Err(err).Msg("Simulation aborted")
	}
}

// run reads the maze, prints the starting frame and one frame per tick
func run(opts options, in io.Reader, out io.Writer, interval *atomic.Int64) error {
	var promptOut io.Writer
	if opts.prompt {
		promptOut = out
	}
	m, err := input.Read(in, promptOut)
	if err != nil {
		return fmt.Errorf("invalid maze input: %w", err)
	}

	bus := events.NewEventBus()
	eventLogger := subscribers.NewLoggerSubscriber("cli-event-logger", log.Logger, opts.eventLogLevel)
	eventLogger.SetDevMode(opts.eventDevMode)
	if !opts.logAgentMoves {
		eventLogger.SetEventFilter([]string{
			events.TypeSimulationStarted,
			events.TypeTickEnded,
			events.TypeSimulationEnded,
		})
	}
	bus.Subscribe(eventLogger)
	stats := subscribers.NewStatsSubscriber("cli-stats")
	bus.Subscribe(stats)

	sim, err := maze.NewSimulation(maze.SimulationConfig{
		Width:    m.Width,
		Height:   m.Height,
		Rows:     m.Rows,
		Logger:   log.Logger,
		EventBus: bus,
	})
	if err != nil {
		return err
	}

	render := sim.Render
	if opts.color {
		render = sim.RenderColor
	}

	sim.Run(opts.ticks, func(tick int, _ string) {
		if tick > 0 {
			if d := time.Duration(interval.Load()); d > 0 {
				time.Sleep(d)
			}
		}
		writeFrame(out, opts.showTickHeader, tick, render())
	})

	for _, st := range stats.Snapshot() {
		log.Debug().
			Str("run_id", sim.RunID()).
			Int("agent_id", st.AgentID).
			Int("moves", st.Moves).
			Int("right_turns", st.RightTurns).
			Int("left_turns", st.LeftTurns).
			Int("cells_visited", st.CellsVisited).
			Msg("Agent summary")
	}
	return nil
}

func writeFrame(out io.Writer, header bool, tick int, frame string) {
	if header {
		if tick == 0 {
			fmt.Fprintln(out, "Starting conditions:")
		} else {
			fmt.Fprintf(out, "Step %d:\n", tick)
		}
	}
	fmt.Fprintln(out, frame)
	fmt.Fprintln(out)
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func setupLogging(level, format string) {
	zerolog.SetGlobalLevel(parseLevel(level))

	// Frames own stdout; logs go to stderr
	if format == "json" || os.Getenv("APP_ENV") == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
			NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		})
	}
}
