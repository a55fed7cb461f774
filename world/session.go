package world

import (
	"fmt"
	"sort"
)

const recentActionCap = 5

// Session owns everything one game run derives from observation text. One
// instance per run, constructed by the caller and threaded through the
// controller; nothing here is shared across sessions.
type Session struct {
	Graph  *Graph
	Memory *Observations

	current    string
	score      int
	moves      int
	recent     []string
	visited    map[string]bool
	failed     map[string]int
	terminated bool
}

func NewSession() *Session {
	return &Session{
		Graph:   NewGraph(),
		Memory:  NewObservations(),
		current: UnknownLocation,
		visited: make(map[string]bool),
		failed:  make(map[string]int),
	}
}

func (s *Session) CurrentLocation() string { return s.current }

// SetLocation moves the session to a location, creating its graph node and
// marking it visited.
func (s *Session) SetLocation(name string) {
	if name == "" {
		name = UnknownLocation
	}
	s.current = name
	s.visited[name] = true
	s.Graph.Visit(name)
}

// ObserveMovement folds one dispatched game action and its observation into
// the graph: a movement verb whose destination name differs from the
// pre-action location records an edge and moves the session there. Anything
// else leaves the location alone; an observation like "Taken." is not a
// place, and a rejected movement went nowhere. Rejection uses the narrow
// MovementRejected list, not LooksFailed: a successful move into a room
// whose description happens to contain "nothing" still counts.
func (s *Session) ObserveMovement(action, observation string) {
	if !IsMovement(action) || MovementRejected(observation) {
		return
	}

	destination := Location(observation)
	if destination == s.current {
		return
	}

	s.Graph.Connect(s.current, action, destination)
	s.SetLocation(destination)
}

// UpdateScore folds a score reading into the session. Scores are monotonic
// within a session, so a stale observation can never lower the value.
func (s *Session) UpdateScore(text string) {
	if n, ok := Score(text); ok && n > s.score {
		s.score = n
	}
}

func (s *Session) Score() int { return s.score }

func (s *Session) IncrementMoves() { s.moves++ }

func (s *Session) Moves() int { return s.moves }

// PushAction appends a dispatched play_action to the rolling window,
// evicting the oldest beyond the last 5.
func (s *Session) PushAction(action string) {
	s.recent = append(s.recent, action)
	if len(s.recent) > recentActionCap {
		s.recent = s.recent[len(s.recent)-recentActionCap:]
	}
}

// RecentActions returns a copy of the rolling window, oldest first.
func (s *Session) RecentActions() []string {
	out := make([]string, len(s.recent))
	copy(out, s.recent)
	return out
}

// Repeating reports whether the n most recent actions exist and are all
// identical.
func (s *Session) Repeating(n int) bool {
	if n <= 0 || len(s.recent) < n {
		return false
	}
	last := s.recent[len(s.recent)-1]
	for _, a := range s.recent[len(s.recent)-n:] {
		if a != last {
			return false
		}
	}
	return true
}

// RecordFailure counts an action the game rejected.
func (s *Session) RecordFailure(action string) {
	s.failed[action]++
}

// FailureSummaries lists actions that failed at least min times, formatted
// for the prompt, sorted for determinism.
func (s *Session) FailureSummaries(min int) []string {
	var out []string
	for action, count := range s.failed {
		if count >= min {
			out = append(out, fmt.Sprintf("'%s' (%dx)", action, count))
		}
	}
	sort.Strings(out)
	return out
}

func (s *Session) Terminate() { s.terminated = true }

func (s *Session) Terminated() bool { return s.terminated }

// VisitedLocations returns the distinct location names seen so far, sorted.
func (s *Session) VisitedLocations() []string {
	names := make([]string, 0, len(s.visited))
	for name := range s.visited {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
