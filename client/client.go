// Package client provides the reasoning backends. Each provider adapts one
// vendor SDK to the agent's LLM boundary.
package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kardolus/adventure-agent/agent"
	"github.com/kardolus/adventure-agent/config"
)

const (
	BackendCohere = "cohere"
	BackendGemini = "gemini"
)

// New builds the agent.LLM for the configured backend.
func New(ctx context.Context, cfg config.Config) (agent.LLM, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("missing environment variable: " + strings.ToUpper(cfg.Backend) + "_API_KEY")
	}

	switch cfg.Backend {
	case BackendCohere:
		return newCohereProvider(cfg)
	case BackendGemini:
		return newGeminiProvider(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported backend: %s", cfg.Backend)
	}
}
