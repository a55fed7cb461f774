package agent

import "context"

// CompletionRequest is the single call shape the controller needs from a
// reasoning backend. Temperature is always zero and the seed varies per
// step; backends that cannot plumb a seed through still get deterministic
// sampling from the temperature.
type CompletionRequest struct {
	System      string
	Prompt      string
	Seed        int
	MaxTokens   int
	Temperature float64
}

//go:generate mockgen -destination=llmmocks_test.go -package=agent_test github.com/kardolus/adventure-agent/agent LLM
type LLM interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
