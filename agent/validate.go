package agent

import (
	"strings"
)

// toolSynonyms maps tool names models invent onto the real surface.
var toolSynonyms = map[string]ToolKind{
	"action":  ToolPlayAction,
	"do":      ToolPlayAction,
	"command": ToolPlayAction,
	"play":    ToolPlayAction,

	"map":      ToolMap,
	"location": ToolMap,

	"mem":    ToolMemory,
	"state":  ToolMemory,
	"status": ToolMemory,

	"inv":   ToolInventory,
	"items": ToolInventory,

	"valid":         ToolValidActions,
	"actions":       ToolValidActions,
	"valid_actions": ToolValidActions,
}

// verbRepairs swaps verbs the classic game parsers reject for ones they
// accept. Best effort only; the game remains the judge of validity.
var verbRepairs = map[string]string{
	"check":       "examine",
	"inspect":     "examine",
	"search":      "look",
	"grab":        "take",
	"pick":        "take",
	"use":         "examine",
	"investigate": "examine",
}

// NormalizeCall maps a possibly-invalid (tool, args) pair onto the tool
// surface the server advertised. The result always names a member of
// validTools (when that set is non-empty), and play_action arguments get
// their verb repaired and their text scrubbed.
func NormalizeCall(toolName string, args map[string]any, validTools []string) ToolCall {
	if args == nil {
		args = map[string]any{}
	}

	valid := make(map[string]bool, len(validTools))
	for _, name := range validTools {
		valid[name] = true
	}

	resolved := ToolKind(toolName)
	if !valid[toolName] {
		if mapped, ok := toolSynonyms[toolName]; ok {
			resolved = mapped
		} else {
			resolved = ToolPlayAction
		}
	}

	// A synonym can still point at a tool this server does not serve.
	if len(validTools) > 0 && !valid[string(resolved)] {
		if valid[string(ToolPlayAction)] {
			resolved = ToolPlayAction
		} else {
			resolved = ToolKind(validTools[0])
		}
	}

	call := ToolCall{Tool: resolved, Args: args}
	if resolved == ToolPlayAction {
		call.Args["action"] = repairAction(call.Action())
	}

	return call
}

// repairAction rewrites the verb when it is known-unsupported, then
// lowercases, strips markdown artifacts, and collapses whitespace.
func repairAction(action string) string {
	words := strings.Fields(strings.ToLower(action))
	if len(words) == 0 {
		return "look"
	}

	if repaired, ok := verbRepairs[words[0]]; ok {
		words[0] = repaired
	}

	return strings.Join(strings.Fields(stripMarkdown(strings.Join(words, " "))), " ")
}
