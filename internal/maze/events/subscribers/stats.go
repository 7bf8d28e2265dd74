package subscribers

import (
	"sort"
	"sync"

	"github.com/mitchelldurbincs/MazeBeasts/internal/maze/core"
	"github.com/mitchelldurbincs/MazeBeasts/internal/maze/events"
)

// AgentStats counts what one agent did over a run
type AgentStats struct {
	AgentID      int
	Moves        int
	RightTurns   int
	LeftTurns    int
	CellsVisited int // distinct cells entered, start cell excluded
}

// StatsSubscriber tallies agent moves and turns from simulation events
type StatsSubscriber struct {
	id      string
	mu      sync.Mutex
	stats   map[int]*AgentStats
	visited map[int]map[core.Coordinate]struct{}
	ticks   int
}

func NewStatsSubscriber(id string) *StatsSubscriber {
	return &StatsSubscriber{
		id:      id,
		stats:   make(map[int]*AgentStats),
		visited: make(map[int]map[core.Coordinate]struct{}),
	}
}

func (s *StatsSubscriber) ID() string { return s.id }

func (s *StatsSubscriber) InterestedIn(eventType string) bool {
	switch eventType {
	case events.TypeAgentMoved, events.TypeAgentTurned, events.TypeTickEnded:
		return true
	}
	return false
}

func (s *StatsSubscriber) HandleEvent(event events.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch e := event.(type) {
	case *events.AgentMovedEvent:
		st := s.agent(e.AgentID)
		st.Moves++
		seen := s.visited[e.AgentID]
		if _, ok := seen[e.To]; !ok {
			seen[e.To] = struct{}{}
			st.CellsVisited++
		}
	case *events.AgentTurnedEvent:
		st := s.agent(e.AgentID)
		if e.Right {
			st.RightTurns++
		} else {
			st.LeftTurns++
		}
	case *events.TickEndedEvent:
		s.ticks = e.Tick
	}
}

func (s *StatsSubscriber) agent(id int) *AgentStats {
	st, ok := s.stats[id]
	if !ok {
		st = &AgentStats{AgentID: id}
		s.stats[id] = st
		s.visited[id] = make(map[core.Coordinate]struct{})
	}
	return st
}

// Ticks returns the last tick seen
func (s *StatsSubscriber) Ticks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}

// Snapshot returns a copy of the stats ordered by agent id
func (s *StatsSubscriber) Snapshot() []AgentStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]AgentStats, 0, len(s.stats))
	for _, st := range s.stats {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AgentID < out[j].AgentID })
	return out
}
