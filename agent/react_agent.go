package agent

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kardolus/adventure-agent/world"
)

const historyObservationWidth = 100

// ReActAgent drives one game session: reason, act, observe, repeat, inside
// a hard step budget. Steps are strictly sequential; step n+1's prompt
// depends on step n's observation.
type ReActAgent struct {
	*BaseAgent
	llm    LLM
	server ToolServer
	budget Budget
	guard  *LoopGuard
}

type ReActOption func(*ReActAgent)

func WithGame(name string) ReActOption {
	return func(a *ReActAgent) { a.config.Game = name }
}

func WithMaxSteps(n int) ReActOption {
	return func(a *ReActAgent) {
		if n > 0 {
			a.config.MaxSteps = n
		}
	}
}

func WithSeed(seed int) ReActOption {
	return func(a *ReActAgent) { a.config.Seed = seed }
}

func WithMaxScore(n int) ReActOption {
	return func(a *ReActAgent) {
		if n > 0 {
			a.config.MaxScore = n
		}
	}
}

func WithHumanLogger(l *zap.SugaredLogger, sync func()) ReActOption {
	return func(a *ReActAgent) {
		if l != nil {
			a.out = l
		}
		if sync != nil {
			a.syncOut = sync
		}
	}
}

func WithDebugLogger(l *zap.SugaredLogger, sync func()) ReActOption {
	return func(a *ReActAgent) {
		if l != nil {
			a.debug = l
		}
		if sync != nil {
			a.syncDebug = sync
		}
	}
}

func NewReActAgent(llm LLM, server ToolServer, budget Budget, clock Clock, opts ...ReActOption) *ReActAgent {
	a := &ReActAgent{
		BaseAgent: NewBaseAgent(clock),
		llm:       llm,
		server:    server,
		budget:    budget,
		guard:     NewLoopGuard(),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// RunGame plays one session to completion: INIT (learn the tool surface,
// issue a look, seed the tracker), then MaxSteps reasoning/acting steps,
// stopping early only on termination or an irrecoverable backend failure.
func (a *ReActAgent) RunGame(ctx context.Context) (RunResult, error) {
	start := a.startTimer()
	defer a.finishTimer(start)

	a.logStart(a.config.Game)
	a.budget.Start(start)

	session := world.NewSession()
	var history []HistoryEntry

	out := a.out
	dbg := a.debug

	tools, err := a.server.ListTools(ctx)
	if err != nil {
		dbg.Errorf("tool listing failed: %v", err)
		return a.result(session, history, err), err
	}
	dbg.Debugf("tool surface: %v", tools)

	// Seed the session with a fresh observation before any reasoning call.
	observation, err := a.dispatch(ctx, ToolCall{Tool: ToolPlayAction, Args: map[string]any{"action": "look"}})
	if err != nil {
		return a.result(session, history, err), err
	}
	session.Memory.SetLatest(observation)
	session.SetLocation(world.Location(observation))
	session.UpdateScore(observation)
	out.Infof("%s\n", observation)

	for step := 1; step <= a.config.MaxSteps; step++ {
		now := a.clock.Now()
		if err := a.budget.AllowLLM(now); err != nil {
			dbg.Errorf("budget exceeded at step %d: %v", step, err)
			return a.result(session, history, err), err
		}

		prompt := buildPrompt(session, a.guard.Warranted(session))
		dbg.Debugf("step %d prompt_len=%d seed=%d", step, len(prompt), a.config.Seed+step)

		raw, err := a.llm.Complete(ctx, CompletionRequest{
			System:      systemPrompt,
			Prompt:      prompt,
			Seed:        a.config.Seed + step,
			MaxTokens:   a.config.MaxOutputTokens,
			Temperature: 0,
		})
		if err != nil {
			// Backend failures are not locally recoverable; record and stop.
			out.Errorf("Reasoning backend failed at step %d: %v", step, err)
			dbg.Errorf("llm error at step %d: %v", step, err)
			return a.result(session, history, err), err
		}

		thought, toolName, args := ParseResponse(raw)
		call := NormalizeCall(toolName, args, tools)
		dbg.Debugf("step %d thought=%q tool=%s", step, thought, call.Tool)
		out.Infof("[Step %d] Thought: %s", step, thought)

		if call.Tool == ToolPlayAction {
			var overrode bool
			call, overrode = a.guard.Apply(session, call)
			if overrode {
				out.Infof("[Step %d] Loop detected - overriding with 'look'", step)
				dbg.Debugf("step %d loop override, window=%v", step, session.RecentActions())
			}
			session.IncrementMoves()
		}

		out.Infof("[Step %d] Action: %s", step, call.Describe())

		observation, err := a.dispatch(ctx, call)
		if err != nil {
			dbg.Errorf("budget exceeded at step %d: %v", step, err)
			return a.result(session, history, err), err
		}
		out.Infof("[Step %d] Observation: %s", step, truncate(observation, historyObservationWidth))

		preLocation := session.CurrentLocation()
		if call.Tool == ToolPlayAction {
			session.ObserveMovement(call.Action(), observation)
			if world.LooksFailed(observation) {
				session.RecordFailure(call.Action())
			}
			if session.CurrentLocation() != preLocation {
				out.Infof("[Step %d] New location: %s", step, session.CurrentLocation())
			}
		}
		session.UpdateScore(observation)

		session.Memory.Append(world.Turn{
			Step:        step,
			Thought:     thought,
			Tool:        string(call.Tool),
			Action:      actionForRecord(call),
			Observation: truncate(observation, 200),
			Location:    session.CurrentLocation(),
			Score:       session.Score(),
		})

		history = append(history, HistoryEntry{
			Thought:     thought,
			Call:        call.Describe(),
			Observation: truncate(observation, historyObservationWidth),
		})

		if world.IsGameOver(observation) {
			session.Terminate()
			out.Infof("\n*** GAME OVER ***")
			break
		}
	}

	return a.result(session, history, nil), nil
}

// dispatch sends a validated call to the tool server. Transport and
// interpreter errors become textual observations so the run can continue;
// only budget exhaustion escapes as an error.
func (a *ReActAgent) dispatch(ctx context.Context, call ToolCall) (string, error) {
	if err := a.budget.AllowTool(a.clock.Now()); err != nil {
		return "", err
	}

	out, err := a.server.CallTool(ctx, string(call.Tool), call.Args)
	if err != nil {
		a.debug.Errorf("dispatch failed for %s: %v", call.Describe(), err)
		return fmt.Sprintf("Error: %v", err), nil
	}
	return out, nil
}

func (a *ReActAgent) result(session *world.Session, history []HistoryEntry, err error) RunResult {
	result := RunResult{
		FinalScore:       session.Score(),
		MaxScore:         a.config.MaxScore,
		Moves:            session.Moves(),
		LocationsVisited: session.VisitedLocations(),
		GameCompleted:    session.Terminated(),
		History:          history,
	}
	if err != nil {
		result.Error = err.Error()
	}
	return result
}

func actionForRecord(call ToolCall) string {
	if call.Tool == ToolPlayAction {
		return call.Action()
	}
	return ""
}
