// Package world tracks the state an agent can derive from raw game text:
// where it is, what it has seen, how it is scoring, and whether the game
// ended. Everything here is best-effort line/regex heuristics over one
// observation at a time, not language understanding.
package world

import (
	"regexp"
	"strings"
)

const UnknownLocation = "Unknown"

// scorePatterns are tried in order; the first match wins even when a later
// pattern would extract a different number from the same text.
var scorePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Score:\s*(\d+)`),
	regexp.MustCompile(`(?i)score[:\s]+(\d+)`),
	regexp.MustCompile(`(?i)\[Score:\s*(\d+)`),
}

var gameOverPhrases = []string{
	"game over",
	"you have died",
	"you are dead",
	"*** you have died ***",
}

// movementVerbs is the fixed vocabulary that can create graph edges.
var movementVerbs = map[string]bool{
	"north": true, "south": true, "east": true, "west": true,
	"up": true, "down": true, "enter": true, "exit": true,
	"n": true, "s": true, "e": true, "w": true, "u": true, "d": true,
}

// Location returns the display name of an observation: its first non-empty
// line that is not a bracketed status marker.
func Location(observation string) string {
	if strings.TrimSpace(observation) == "" {
		return UnknownLocation
	}
	for _, line := range strings.Split(observation, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "[") {
			return line
		}
	}
	return UnknownLocation
}

// Score scans text for a score marker. The boolean reports whether any
// pattern matched; callers own monotonicity (see Session.UpdateScore).
func Score(text string) (int, bool) {
	for _, pattern := range scorePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return atoiDigits(m[1]), true
		}
	}
	return 0, false
}

// IsGameOver reports whether text contains a known death or ending phrase.
// Victory endings are not detected; the run simply exhausts its step budget.
func IsGameOver(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range gameOverPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// IsMovement reports whether action's verb belongs to the movement
// vocabulary and may therefore record a graph edge.
func IsMovement(action string) bool {
	verb := strings.ToLower(strings.TrimSpace(action))
	return movementVerbs[verb]
}

// ParseInventory turns an inventory observation into item names. Used for
// run logging only; the agent never reasons about the parsed list.
func ParseInventory(text string) []string {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "empty-handed") || strings.Contains(lower, "nothing") {
		return nil
	}

	idx := strings.Index(text, ":")
	if idx < 0 {
		return nil
	}

	var items []string
	for _, item := range strings.Split(text[idx+1:], ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// failurePhrases mark a play_action result as an unproductive move.
var failurePhrases = []string{
	"can't", "cannot", "don't", "not", "fail", "impossible",
	"doesn't work", "not allowed", "not know which way",
}

// LooksFailed reports whether an observation reads like the game rejecting
// the action that produced it.
func LooksFailed(observation string) bool {
	lower := strings.ToLower(observation)
	for _, phrase := range failurePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// movementRejections mark an observation as the game refusing to move.
// Deliberately narrower than failurePhrases: room descriptions routinely
// contain words like "nothing" or "note" that embed a failure substring,
// and a successful move must still update the location and the graph.
var movementRejections = []string{
	"can't go",
	"cannot go",
	"not know which way",
	"no way to go",
	"i don't understand",
}

// MovementRejected reports whether an observation reads like the game
// refusing a movement action outright.
func MovementRejected(observation string) bool {
	lower := strings.ToLower(observation)
	for _, phrase := range movementRejections {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// atoiDigits converts a digits-only string; the regexps guarantee the input.
func atoiDigits(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
