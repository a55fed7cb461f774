package gameserver

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/kardolus/adventure-agent/agent"
	"github.com/kardolus/adventure-agent/world"
)

// toolNames is the surface every game server flavor advertises.
var toolNames = []string{
	"play_action",
	"memory",
	"get_map",
	"inventory",
	"get_valid_actions",
}

// Local drives a Game in-process behind the agent's ToolServer boundary.
// It keeps the same derived state the MCP flavor serves: an explored map
// and a short action history.
type Local struct {
	game *Game

	mu      sync.Mutex
	graph   *world.Graph
	current string
	recent  []string
}

var _ agent.ToolServer = &Local{}

func NewLocal(game *Game) *Local {
	l := &Local{
		game:  game,
		graph: world.NewGraph(),
	}
	l.current = game.RoomName()
	l.graph.Visit(l.current)
	return l
}

func (l *Local) ListTools(_ context.Context) ([]string, error) {
	out := make([]string, len(toolNames))
	copy(out, toolNames)
	return out, nil
}

func (l *Local) CallTool(_ context.Context, tool string, args map[string]any) (string, error) {
	switch tool {
	case "play_action":
		action, _ := args["action"].(string)
		if strings.TrimSpace(action) == "" {
			action = "look"
		}
		return l.playAction(action), nil

	case "memory":
		return l.memory(), nil

	case "get_map":
		l.mu.Lock()
		defer l.mu.Unlock()
		return l.graph.Render(l.current), nil

	case "inventory":
		return l.game.Execute("inventory"), nil

	case "get_valid_actions":
		return "Valid actions here:\n  " + strings.Join(l.game.ValidActions(), "\n  "), nil

	default:
		return "", fmt.Errorf("unknown tool: %s", tool)
	}
}

func (l *Local) playAction(action string) string {
	before := l.game.RoomName()
	out := l.game.Execute(action)
	after := l.game.RoomName()

	l.mu.Lock()
	defer l.mu.Unlock()

	if world.IsMovement(action) && after != before {
		l.graph.Connect(before, strings.ToLower(strings.TrimSpace(action)), after)
	}
	l.current = after

	l.recent = append(l.recent, action)
	if len(l.recent) > 5 {
		l.recent = l.recent[1:]
	}

	return out
}

func (l *Local) memory() string {
	l.mu.Lock()
	recent := strings.Join(l.recent, ", ")
	explored := l.graph.Len()
	l.mu.Unlock()

	if recent == "" {
		recent = "(none)"
	}

	return fmt.Sprintf(
		"Current Location: %s\nScore: %d | Moves: %d\nLocations explored: %d\nRecent actions: %s",
		l.game.RoomName(), l.game.Score(), l.game.Moves(), explored, recent)
}
