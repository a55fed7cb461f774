// Package toolserver speaks MCP (JSON-RPC 2.0 over streamable HTTP) to a
// game server and exposes it behind the agent's ToolServer boundary.
package toolserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/kardolus/adventure-agent/agent"
	"github.com/kardolus/adventure-agent/api"
	"github.com/kardolus/adventure-agent/api/http"
)

const protocolVersion = "2024-11-05"

type Client struct {
	endpoint string
	caller   http.Caller
	headers  map[string]string

	mu        sync.Mutex
	sessionID string
}

// Ensure Client implements agent.ToolServer
var _ agent.ToolServer = &Client{}

func New(endpoint string, caller http.Caller, headers map[string]string) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported mcp transport: %s", u.Scheme)
	}

	return &Client{
		endpoint: endpoint,
		caller:   caller,
		headers:  cloneHeaders(headers),
	}, nil
}

func (c *Client) ListTools(ctx context.Context) ([]string, error) {
	resp, err := c.call(ctx, api.MCPMessage{
		JSONRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  "tools/list",
	})
	if err != nil {
		return nil, err
	}

	var list api.ToolList
	if err := json.Unmarshal(resp.Message.Result, &list); err != nil {
		return nil, fmt.Errorf("failed to parse tools/list result: %w", err)
	}

	names := make([]string, 0, len(list.Tools))
	for _, tool := range list.Tools {
		names = append(names, tool.Name)
	}
	return names, nil
}

func (c *Client) CallTool(ctx context.Context, tool string, args map[string]any) (string, error) {
	if args == nil {
		args = map[string]any{}
	}

	rawParams, err := json.Marshal(map[string]any{
		"name":      tool,
		"arguments": args,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal tool params: %w", err)
	}

	resp, err := c.call(ctx, api.MCPMessage{
		JSONRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  "tools/call",
		Params:  rawParams,
	})
	if err != nil {
		return "", err
	}

	return flattenToolResult(resp.Message.Result, tool)
}

// call sends one JSON-RPC message inside an established session, creating
// the session on first use and recreating it once when the server rejects
// the cached id.
func (c *Client) call(ctx context.Context, req api.MCPMessage) (api.MCPResponse, error) {
	if err := c.ensureSession(ctx); err != nil {
		return api.MCPResponse{}, err
	}

	resp, err := c.send(ctx, req, c.currentSession())
	if err != nil && looksLikeInvalidSession(err) {
		c.setSession("")
		if err := c.ensureSession(ctx); err != nil {
			return api.MCPResponse{}, err
		}
		resp, err = c.send(ctx, req, c.currentSession())
	}
	return resp, err
}

func (c *Client) send(ctx context.Context, req api.MCPMessage, sessionID string) (api.MCPResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return api.MCPResponse{}, fmt.Errorf("failed to marshal mcp request: %w", err)
	}

	headers := buildMCPHeaders(c.headers)
	if sessionID != "" {
		headers["Mcp-Session-Id"] = sessionID
	}

	httpResp, postErr := c.caller.PostWithHeadersResponse(ctx, c.endpoint, body, headers)

	out := api.MCPResponse{
		Headers: httpResp.Headers,
		Status:  httpResp.Status,
	}

	// Even on non-2xx, parse the body if possible so session handling can
	// reason about the rejection.
	if len(httpResp.Body) > 0 {
		var msg api.MCPMessage
		if err := json.Unmarshal(httpResp.Body, &msg); err == nil {
			out.Message = msg
		} else if dataJSON, ok := extractFirstSSEDataJSON(httpResp.Body); ok {
			if err := json.Unmarshal(dataJSON, &msg); err == nil {
				out.Message = msg
			}
		}
	}

	if sid, ok := out.Header("mcp-session-id"); ok && strings.TrimSpace(sid) != "" {
		c.setSession(sid)
	}

	// Prefer the JSON-RPC error if present.
	if out.Message.Error != nil {
		return out, out.Message.Error
	}

	if postErr != nil {
		return out, postErr
	}

	return out, nil
}

func (c *Client) ensureSession(ctx context.Context) error {
	if c.currentSession() != "" {
		return nil
	}

	raw, err := json.Marshal(map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities":    map[string]any{},
		"clientInfo": map[string]any{
			"name":    "adventure-agent",
			"version": "dev",
		},
	})
	if err != nil {
		return err
	}

	resp, err := c.send(ctx, api.MCPMessage{
		JSONRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  "initialize",
		Params:  raw,
	}, "")
	if err != nil {
		return err
	}

	sid, ok := resp.Header("mcp-session-id")
	if !ok || strings.TrimSpace(sid) == "" {
		return fmt.Errorf("mcp initialize did not return session id")
	}
	c.setSession(sid)

	// Per protocol, the handshake completes with a notification; it carries
	// no ID and expects no result.
	_, err = c.send(ctx, api.MCPMessage{
		JSONRPC: "2.0",
		Method:  "notifications/initialized",
	}, sid)
	return err
}

func (c *Client) currentSession() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

func (c *Client) setSession(sid string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessionID = sid
}

/* =========================
   Helpers
   ========================= */

// flattenToolResult joins the text blocks of a tools/call result into the
// observation string the agent consumes. A result flagged isError becomes a
// Go error so the controller's dispatch boundary can translate it.
func flattenToolResult(raw json.RawMessage, tool string) (string, error) {
	if len(raw) == 0 {
		return "", fmt.Errorf("tool %s returned an empty result", tool)
	}

	var result api.ToolResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("failed to parse result of tool %s: %w", tool, err)
	}

	var parts []string
	for _, block := range result.Content {
		if strings.EqualFold(block.Type, "text") && strings.TrimSpace(block.Text) != "" {
			parts = append(parts, strings.TrimSpace(block.Text))
		}
	}

	text := strings.Join(parts, "\n\n")
	if result.IsError {
		if text == "" {
			text = "unknown tool error"
		}
		return "", fmt.Errorf("tool %s failed: %s", tool, text)
	}

	if text == "" {
		return "", fmt.Errorf("tool %s returned no text content", tool)
	}
	return text, nil
}

func looksLikeInvalidSession(err error) bool {
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "session") {
		return false
	}

	return strings.Contains(msg, "missing") ||
		strings.Contains(msg, "invalid") ||
		strings.Contains(msg, "no valid") ||
		strings.Contains(msg, "expired") ||
		strings.Contains(msg, "unknown")
}

func cloneHeaders(in map[string]string) map[string]string {
	out := map[string]string{}
	for k, v := range in {
		out[k] = v
	}
	return out
}

func buildMCPHeaders(in map[string]string) map[string]string {
	h := cloneHeaders(in)

	if _, ok := h["Content-Type"]; !ok {
		h["Content-Type"] = "application/json"
	}
	if _, ok := h["Accept"]; !ok {
		h["Accept"] = "application/json, text/event-stream"
	}

	return h
}

func extractFirstSSEDataJSON(raw []byte) ([]byte, bool) {
	lines := strings.Split(strings.ReplaceAll(string(raw), "\r\n", "\n"), "\n")
	var data []string
	for _, l := range lines {
		if strings.HasPrefix(l, "data:") {
			data = append(data, strings.TrimSpace(strings.TrimPrefix(l, "data:")))
		}
	}
	if len(data) == 0 {
		return nil, false
	}
	return []byte(strings.Join(data, "\n")), true
}
