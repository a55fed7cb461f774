package agent

import (
	"fmt"
	"time"
)

// The hard step loop already bounds a run; Budget adds optional ceilings on
// top of it for callers that pay per reasoning call or run many sessions in
// batch. Zero limits mean unlimited.
//
//go:generate mockgen -destination=budgetmocks_test.go -package=agent_test github.com/kardolus/adventure-agent/agent Budget
type Budget interface {
	Start(now time.Time)
	AllowLLM(now time.Time) error
	AllowTool(now time.Time) error
	Snapshot(now time.Time) BudgetSnapshot
}

const (
	BudgetKindLLM      = "llm"
	BudgetKindTools    = "tool_calls"
	BudgetKindWallTime = "wall_time"
)

type BudgetLimits struct {
	MaxLLMCalls  int
	MaxToolCalls int
	MaxWallTime  time.Duration
}

type BudgetSnapshot struct {
	StartedAt     time.Time
	Elapsed       time.Duration
	Limits        BudgetLimits
	LLMCallsUsed  int
	ToolCallsUsed int
}

type DefaultBudget struct {
	limits BudgetLimits

	started   bool
	startedAt time.Time

	llmUsed  int
	toolUsed int
}

func NewDefaultBudget(limits BudgetLimits) *DefaultBudget {
	return &DefaultBudget{limits: limits}
}

func (b *DefaultBudget) Start(now time.Time) {
	b.started = true
	b.startedAt = now
	b.llmUsed = 0
	b.toolUsed = 0
}

func (b *DefaultBudget) Snapshot(now time.Time) BudgetSnapshot {
	b.ensureStarted(now)

	elapsed := now.Sub(b.startedAt)
	if elapsed < 0 {
		elapsed = 0
	}

	return BudgetSnapshot{
		StartedAt:     b.startedAt,
		Elapsed:       elapsed,
		Limits:        b.limits,
		LLMCallsUsed:  b.llmUsed,
		ToolCallsUsed: b.toolUsed,
	}
}

func (b *DefaultBudget) AllowLLM(now time.Time) error {
	b.ensureStarted(now)

	if err := b.checkWall(now); err != nil {
		return err
	}

	if b.limits.MaxLLMCalls > 0 && b.llmUsed+1 > b.limits.MaxLLMCalls {
		return BudgetExceededError{
			Kind:    BudgetKindLLM,
			Limit:   b.limits.MaxLLMCalls,
			Used:    b.llmUsed,
			Message: "llm call budget exceeded",
		}
	}

	b.llmUsed++
	return nil
}

func (b *DefaultBudget) AllowTool(now time.Time) error {
	b.ensureStarted(now)

	if err := b.checkWall(now); err != nil {
		return err
	}

	if b.limits.MaxToolCalls > 0 && b.toolUsed+1 > b.limits.MaxToolCalls {
		return BudgetExceededError{
			Kind:    BudgetKindTools,
			Limit:   b.limits.MaxToolCalls,
			Used:    b.toolUsed,
			Message: "tool call budget exceeded",
		}
	}

	b.toolUsed++
	return nil
}

func (b *DefaultBudget) ensureStarted(now time.Time) {
	if b.started {
		return
	}
	b.Start(now)
}

func (b *DefaultBudget) checkWall(now time.Time) error {
	if b.limits.MaxWallTime <= 0 {
		return nil
	}
	elapsed := now.Sub(b.startedAt)
	if elapsed > b.limits.MaxWallTime {
		return BudgetExceededError{
			Kind:    BudgetKindWallTime,
			LimitD:  b.limits.MaxWallTime,
			UsedD:   elapsed,
			Message: "wall time budget exceeded",
		}
	}
	return nil
}

// BudgetExceededError is typed so callers can branch on it.
type BudgetExceededError struct {
	Kind    string
	Limit   int
	Used    int
	LimitD  time.Duration
	UsedD   time.Duration
	Message string
}

func (e BudgetExceededError) Error() string {
	switch e.Kind {
	case BudgetKindWallTime:
		return fmt.Sprintf("%s: limit=%s used=%s", e.Message, e.LimitD, e.UsedD)
	default:
		return fmt.Sprintf("%s: kind=%s limit=%d used=%d", e.Message, e.Kind, e.Limit, e.Used)
	}
}
