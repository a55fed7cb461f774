package agent

import (
	"fmt"
	"sort"
	"strings"
)

// ToolKind enumerates the game-interaction tools a server can expose. The
// validator maps arbitrary model output onto this closed set; nothing in the
// controller dispatches by raw string.
type ToolKind string

const (
	// ToolPlayAction is the primary tool: it executes a game command.
	ToolPlayAction ToolKind = "play_action"

	// Inspection tools. They never count toward loop detection.
	ToolMemory       ToolKind = "memory"
	ToolMap          ToolKind = "get_map"
	ToolInventory    ToolKind = "inventory"
	ToolValidActions ToolKind = "get_valid_actions"
)

// IsInspection reports whether the tool only reads derived state.
func (k ToolKind) IsInspection() bool {
	return k == ToolMemory || k == ToolMap || k == ToolInventory || k == ToolValidActions
}

// ToolCall is a validated tool invocation, guaranteed by the validator to
// reference a tool the server actually advertises.
type ToolCall struct {
	Tool ToolKind
	Args map[string]any
}

// Action returns the game command carried by a play_action call, falling
// back to the canonical "look".
func (c ToolCall) Action() string {
	if v, ok := c.Args["action"]; ok {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return "look"
}

// Describe renders the call for audit history, with deterministic argument
// ordering.
func (c ToolCall) Describe() string {
	if len(c.Args) == 0 {
		return fmt.Sprintf("%s()", c.Tool)
	}

	keys := make([]string, 0, len(c.Args))
	for k := range c.Args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, c.Args[k]))
	}
	return fmt.Sprintf("%s(%s)", c.Tool, strings.Join(parts, ", "))
}

// Config holds the per-run knobs of a game session.
type Config struct {
	Game            string
	MaxSteps        int
	Seed            int
	MaxScore        int
	MaxOutputTokens int
}

const (
	DefaultMaxSteps        = 40
	DefaultSeed            = 42
	DefaultMaxScore        = 350
	DefaultMaxOutputTokens = 300
)

// HistoryEntry is one audit record handed back to the caller: what the model
// thought, what was dispatched, and a truncated view of what came back.
type HistoryEntry struct {
	Thought     string
	Call        string
	Observation string
}

// RunResult aggregates a finished session for callers and evaluators.
type RunResult struct {
	FinalScore       int
	MaxScore         int
	Moves            int
	LocationsVisited []string
	GameCompleted    bool
	Error            string
	History          []HistoryEntry
}
