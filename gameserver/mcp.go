package gameserver

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type actionInput struct {
	Action string `json:"action" jsonschema:"Game command to execute"`
}

type emptyInput struct{}

// MCPServer exposes one Local game over MCP's streamable HTTP transport.
// The tool surface and semantics match what the Local adapter serves
// in-process.
type MCPServer struct {
	local *Local
}

func NewMCPServer(local *Local) *MCPServer {
	return &MCPServer{local: local}
}

func (s *MCPServer) handlePlayAction(ctx context.Context, _ *mcp.CallToolRequest, input *actionInput) (*mcp.CallToolResult, any, error) {
	action := "look"
	if input != nil && strings.TrimSpace(input.Action) != "" {
		action = input.Action
	}
	return s.callLocal(ctx, "play_action", map[string]any{"action": action})
}

func (s *MCPServer) handleMemory(ctx context.Context, _ *mcp.CallToolRequest, _ *emptyInput) (*mcp.CallToolResult, any, error) {
	return s.callLocal(ctx, "memory", nil)
}

func (s *MCPServer) handleMap(ctx context.Context, _ *mcp.CallToolRequest, _ *emptyInput) (*mcp.CallToolResult, any, error) {
	return s.callLocal(ctx, "get_map", nil)
}

func (s *MCPServer) handleInventory(ctx context.Context, _ *mcp.CallToolRequest, _ *emptyInput) (*mcp.CallToolResult, any, error) {
	return s.callLocal(ctx, "inventory", nil)
}

func (s *MCPServer) handleValidActions(ctx context.Context, _ *mcp.CallToolRequest, _ *emptyInput) (*mcp.CallToolResult, any, error) {
	return s.callLocal(ctx, "get_valid_actions", nil)
}

func (s *MCPServer) callLocal(ctx context.Context, tool string, args map[string]any) (*mcp.CallToolResult, any, error) {
	out, err := s.local.CallTool(ctx, tool, args)
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: out}},
	}, nil, nil
}

// RunMCPHTTP serves the game at addr+path until the listener fails.
func RunMCPHTTP(server *MCPServer, addr, path string) error {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "foglight-manor",
		Version: "v1.0.0",
	}, nil)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "play_action",
		Description: "Execute a game command (north, take lamp, open mailbox, ...) and return the game's response.",
	}, server.handlePlayAction)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "memory",
		Description: "Summarize current game state: location, score, moves, recent actions.",
	}, server.handleMemory)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "get_map",
		Description: "Render the explored locations and their connections.",
	}, server.handleMap)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "inventory",
		Description: "List what the player is carrying.",
	}, server.handleInventory)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "get_valid_actions",
		Description: "List the actions that are valid at the current location.",
	}, server.handleValidActions)

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return mcpServer
	}, &mcp.StreamableHTTPOptions{
		Logger: slog.Default(),
	})

	mux := http.NewServeMux()
	mux.Handle(path, handler)

	serverHTTP := &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	return serverHTTP.ListenAndServe()
}
