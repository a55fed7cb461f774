package agent

import "context"

// ToolServer is the game-interaction boundary. The controller learns the
// authoritative tool-name set once at session start via ListTools and never
// assumes a tool exists beyond what that set reports.
//
//go:generate mockgen -destination=toolservermocks_test.go -package=agent_test github.com/kardolus/adventure-agent/agent ToolServer
type ToolServer interface {
	ListTools(ctx context.Context) ([]string, error)
	CallTool(ctx context.Context, tool string, args map[string]any) (string, error)
}
