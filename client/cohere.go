package client

import (
	"context"
	"errors"
	"strings"

	co "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"

	"github.com/kardolus/adventure-agent/agent"
	"github.com/kardolus/adventure-agent/config"
)

type CohereProvider struct {
	client *cohereclient.Client
	model  string
}

var _ agent.LLM = (*CohereProvider)(nil)

func newCohereProvider(cfg config.Config) (*CohereProvider, error) {
	client := cohereclient.NewClient(cohereclient.WithToken(cfg.APIKey))
	return &CohereProvider{
		client: client,
		model:  cfg.Model,
	}, nil
}

func (p *CohereProvider) Complete(ctx context.Context, req agent.CompletionRequest) (string, error) {
	chatReq := &co.ChatRequest{
		Message:     req.Prompt,
		Preamble:    co.String(req.System),
		Temperature: co.Float64(req.Temperature),
	}
	if p.model != "" {
		chatReq.Model = co.String(p.model)
	}
	if req.MaxTokens > 0 {
		chatReq.MaxTokens = co.Int(req.MaxTokens)
	}

	res, err := p.client.Chat(ctx, chatReq)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(res.Text)
	if text == "" {
		return "", errors.New("empty response")
	}
	return text, nil
}
