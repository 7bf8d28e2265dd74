package maze

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/MazeBeasts/internal/maze/core"
	"github.com/mitchelldurbincs/MazeBeasts/internal/maze/events"
)

// DefaultTicks is how many ticks the reference driver runs
const DefaultTicks = 20

// SimulationConfig holds everything needed to build a simulation
type SimulationConfig struct {
	Width  int
	Height int
	Rows   []string

	RunID    string
	Logger   zerolog.Logger
	EventBus *events.EventBus
}

// Simulation owns the grid and the beasts walking it. Agents step strictly
// one after another; an agent sees every move made earlier in the same tick.
type Simulation struct {
	runID    string
	grid     *core.Grid
	agents   []*Agent
	tick     int
	eventBus *events.EventBus
	logger   zerolog.Logger
}

// NewSimulation parses the grid and creates one agent per directional glyph,
// in row-major order.
func NewSimulation(cfg SimulationConfig) (*Simulation, error) {
	grid, err := core.NewGrid(cfg.Width, cfg.Height, cfg.Rows)
	if err != nil {
		return nil, fmt.Errorf("building grid: %w", err)
	}

	runID := cfg.RunID
	if runID == "" {
		runID = uuid.New().String()
	}
	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewEventBus()
	}

	s := &Simulation{
		runID:    runID,
		grid:     grid,
		eventBus: bus,
		logger: cfg.Logger.With().
			Str("component", "simulation").
			Str("run_id", runID).
			Logger(),
	}

	for i, d := range grid.FindAllAgents() {
		s.agents = append(s.agents, NewAgent(i, grid, d.Position))
	}

	s.eventBus.Publish(events.NewSimulationStartedEvent(runID, grid.W, grid.H, len(s.agents)))
	s.logger.Info().
		Int("width", grid.W).
		Int("height", grid.H).
		Int("agents", len(s.agents)).
		Msg("Simulation created")

	return s, nil
}

// StepAll advances every agent exactly once, in creation order
func (s *Simulation) StepAll() {
	s.tick++
	moves, turns := 0, 0

	for _, a := range s.agents {
		from, facing := a.Position(), a.Orientation()
		result := a.Step()

		switch result {
		case Moved:
			moves++
			s.eventBus.Publish(events.NewAgentMovedEvent(s.runID, s.tick, a.ID(), from, a.Position(), facing))
		case TurnedRight, TurnedLeft:
			turns++
			s.eventBus.Publish(events.NewAgentTurnedEvent(s.runID, s.tick, a.ID(), from, facing, a.Orientation(), result == TurnedRight))
		}

		s.logger.Trace().
			Int("tick", s.tick).
			Int("agent_id", a.ID()).
			Str("result", result.String()).
			Str("agent", a.String()).
			Msg("Agent stepped")
	}

	s.eventBus.Publish(events.NewTickEndedEvent(s.runID, s.tick, moves, turns))
}

// Run renders the starting frame, then steps ticks times and renders after
// each tick. observe, when non-nil, sees every frame as it is produced.
func (s *Simulation) Run(ticks int, observe func(tick int, frame string)) []string {
	start := time.Now()
	frames := make([]string, 0, ticks+1)

	emit := func() {
		frame := s.Render()
		frames = append(frames, frame)
		if observe != nil {
			observe(s.tick, frame)
		}
	}

	emit()
	for i := 0; i < ticks; i++ {
		s.StepAll()
		emit()
	}

	duration := time.Since(start)
	s.eventBus.Publish(events.NewSimulationEndedEvent(s.runID, s.tick, duration))
	s.logger.Info().
		Int("final_tick", s.tick).
		Dur("duration", duration).
		Msg("Simulation finished")

	return frames
}

// Render returns the current grid text
func (s *Simulation) Render() string { return s.grid.Render() }

// Public accessors
func (s *Simulation) RunID() string              { return s.runID }
func (s *Simulation) Tick() int                  { return s.tick }
func (s *Simulation) Grid() *core.Grid           { return s.grid }
func (s *Simulation) EventBus() *events.EventBus { return s.eventBus }

// Agents returns the agents in step order
func (s *Simulation) Agents() []*Agent {
	out := make([]*Agent, len(s.agents))
	copy(out, s.agents)
	return out
}
