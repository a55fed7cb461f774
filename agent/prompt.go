package agent

import (
	"fmt"
	"strings"

	"github.com/kardolus/adventure-agent/world"
)

const systemPrompt = `You are an expert text adventure game player. Your goal is to explore, collect treasures, and maximize your score.

AVAILABLE TOOLS:
1. play_action - Execute game commands (north, take lamp, open mailbox, etc.)
2. memory - Get current game state, score, and recent history
3. get_map - See explored locations and connections
4. inventory - Check what you're carrying
5. get_valid_actions - Get a list of valid actions at the current location

VALID GAME COMMANDS for play_action:
- Movement: north, south, east, west, up, down, enter, exit
- Short forms: n, s, e, w, u, d
- Objects: take <item>, drop <item>, open <thing>, close <thing>, examine <thing>
- Light: turn on lamp, turn off lamp
- Interaction: push <thing>, pull <thing>, move <thing>, climb <thing>
- Other: look, read <thing>, wait

FORBIDDEN (will NOT work): check, inspect, search, grab, use, help

RESPOND IN THIS EXACT FORMAT (no markdown):
THOUGHT: <brief reasoning about what to do next>
TOOL: <tool_name>
ARGS: <JSON arguments>

Examples:
THOUGHT: I need to see what's around me.
TOOL: play_action
ARGS: {"action": "look"}

THOUGHT: The mailbox might contain something useful.
TOOL: play_action
ARGS: {"action": "open mailbox"}

STRATEGY:
1. Explore systematically and track where you have been
2. Pick up useful items (lamp, torch, sword, keys, etc.)
3. Examine and interact with objects (open, push, pull, move, climb)
4. Parse game responses carefully - they contain important clues
5. Don't repeat failed actions - learn from failures

DO NOT repeat the same action multiple times in a row.`

const (
	promptRecentTurns   = 3
	promptResultWidth   = 80
	promptFailThreshold = 2
)

// buildPrompt assembles the per-step user prompt from the session's derived
// state: running score, a short window of recent turns, an explicit warning
// when the loop guard is about to fire, known-failed actions, and the latest
// raw observation.
func buildPrompt(session *world.Session, loopWarning bool) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("Current Score: %d", session.Score()))
	parts = append(parts, fmt.Sprintf("Locations explored: %d", session.Graph.Len()))

	if recent := session.Memory.Recent(promptRecentTurns); len(recent) > 0 {
		parts = append(parts, "\nRecent actions:")
		for _, turn := range recent {
			action := turn.Action
			if action == "" {
				action = turn.Tool
			}
			parts = append(parts, fmt.Sprintf("  > %s @ %s -> %s",
				action, turn.Location, truncate(turn.Observation, promptResultWidth)))
		}
	}

	if loopWarning {
		recent := session.RecentActions()
		parts = append(parts, fmt.Sprintf(
			"\n[WARNING: You've been doing '%s' repeatedly. TRY SOMETHING DIFFERENT!]",
			recent[len(recent)-1]))
	}

	if failed := session.FailureSummaries(promptFailThreshold); len(failed) > 0 {
		parts = append(parts, fmt.Sprintf("\n[AVOID: These actions have failed: %s]",
			strings.Join(failed, ", ")))
	}

	parts = append(parts, fmt.Sprintf("\nCurrent situation:\n%s", session.Memory.Latest()))
	parts = append(parts, "\nWhat do you do next?")

	return strings.Join(parts, "\n")
}

func truncate(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
