package events

import (
	"time"

	"github.com/mitchelldurbincs/MazeBeasts/internal/maze/core"
)

// Event type constants
const (
	TypeSimulationStarted = "simulation.started"
	TypeSimulationEnded   = "simulation.ended"
	TypeTickEnded         = "tick.ended"
	TypeAgentMoved        = "agent.moved"
	TypeAgentTurned       = "agent.turned"
)

// SimulationStartedEvent is published once the grid and agents are built
type SimulationStartedEvent struct {
	BaseEvent
	Width      int
	Height     int
	AgentCount int
}

func NewSimulationStartedEvent(runID string, width, height, agents int) *SimulationStartedEvent {
	return &SimulationStartedEvent{
		BaseEvent:  newBase(TypeSimulationStarted, runID),
		Width:      width,
		Height:     height,
		AgentCount: agents,
	}
}

// SimulationEndedEvent is published when Run finishes its ticks
type SimulationEndedEvent struct {
	BaseEvent
	FinalTick int
	Duration  time.Duration
}

func NewSimulationEndedEvent(runID string, finalTick int, duration time.Duration) *SimulationEndedEvent {
	return &SimulationEndedEvent{
		BaseEvent: newBase(TypeSimulationEnded, runID),
		FinalTick: finalTick,
		Duration:  duration,
	}
}

// TickEndedEvent is published after every agent has stepped once
type TickEndedEvent struct {
	BaseEvent
	Tick  int
	Moves int
	Turns int
}

func NewTickEndedEvent(runID string, tick, moves, turns int) *TickEndedEvent {
	return &TickEndedEvent{
		BaseEvent: newBase(TypeTickEnded, runID),
		Tick:      tick,
		Moves:     moves,
		Turns:     turns,
	}
}

// AgentMovedEvent is published when an agent advances one cell
type AgentMovedEvent struct {
	BaseEvent
	Tick        int
	AgentID     int
	From        core.Coordinate
	To          core.Coordinate
	Orientation core.Orientation
}

func NewAgentMovedEvent(runID string, tick, agentID int, from, to core.Coordinate, o core.Orientation) *AgentMovedEvent {
	return &AgentMovedEvent{
		BaseEvent:   newBase(TypeAgentMoved, runID),
		Tick:        tick,
		AgentID:     agentID,
		From:        from,
		To:          to,
		Orientation: o,
	}
}

// AgentTurnedEvent is published when an agent rotates in place
type AgentTurnedEvent struct {
	BaseEvent
	Tick     int
	AgentID  int
	Position core.Coordinate
	From     core.Orientation
	To       core.Orientation
	Right    bool
}

func NewAgentTurnedEvent(runID string, tick, agentID int, pos core.Coordinate, from, to core.Orientation, right bool) *AgentTurnedEvent {
	return &AgentTurnedEvent{
		BaseEvent: newBase(TypeAgentTurned, runID),
		Tick:      tick,
		AgentID:   agentID,
		Position:  pos,
		From:      from,
		To:        to,
		Right:     right,
	}
}
