package agent

import (
	"encoding/json"
	"regexp"
	"strings"
)

// The reasoning backend is asked to answer with three labeled lines:
//
//	THOUGHT: <reasoning>
//	TOOL: <tool name>
//	ARGS: <JSON object>
//
// Models violate this constantly, so parsing is layered fallback all the
// way down and can never fail: the worst raw text still yields the default
// triple below.
const (
	defaultThought = "No reasoning provided"

	thoughtLabel = "THOUGHT:"
	toolLabel    = "TOOL:"
	argsLabel    = "ARGS:"
)

var actionFieldPattern = regexp.MustCompile(`"action"\s*:\s*"([^"]+)"`)

// ParseResponse extracts (thought, tool name, arguments) from one raw model
// completion. The tool name comes back as written (lowercased, de-marked);
// mapping it onto the real tool surface is the validator's job.
func ParseResponse(raw string) (string, string, map[string]any) {
	thought := defaultThought
	toolName := string(ToolPlayAction)
	args := map[string]any{"action": "look"}

	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)
		upper := strings.ToUpper(line)

		switch {
		case strings.HasPrefix(upper, thoughtLabel):
			if rest := strings.TrimSpace(remainder(line)); rest != "" {
				thought = rest
			}

		case strings.HasPrefix(upper, toolLabel):
			toolName = cleanToolName(remainder(line))

		case strings.HasPrefix(upper, argsLabel):
			args = parseArgs(remainder(line))
		}
	}

	return thought, toolName, args
}

// remainder returns everything after the first colon.
func remainder(line string) string {
	if idx := strings.Index(line, ":"); idx >= 0 {
		return line[idx+1:]
	}
	return ""
}

// cleanToolName lowercases, strips markdown emphasis and code markers, and
// keeps only the first whitespace-delimited token. Models like to append
// prose after the tool name.
func cleanToolName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = stripMarkdown(name)
	if fields := strings.Fields(name); len(fields) > 0 {
		return fields[0]
	}
	return string(ToolPlayAction)
}

// parseArgs attempts strict JSON after normalizing single quotes, then falls
// back to fishing an action field out of the wreckage, then to the default.
func parseArgs(raw string) map[string]any {
	raw = strings.TrimSpace(raw)
	normalized := strings.ReplaceAll(raw, "'", `"`)

	var parsed map[string]any
	if err := json.Unmarshal([]byte(normalized), &parsed); err == nil && parsed != nil {
		return parsed
	}

	if m := actionFieldPattern.FindStringSubmatch(normalized); m != nil {
		return map[string]any{"action": m[1]}
	}

	return map[string]any{"action": "look"}
}

func stripMarkdown(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "*", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
