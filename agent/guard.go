package agent

import (
	"github.com/kardolus/adventure-agent/world"
)

// repeatThreshold is how many identical consecutive actions trip the guard.
const repeatThreshold = 3

// LoopGuard breaks immediate action repetition. It watches the session's
// rolling window of dispatched game commands; when the three most recent
// are identical, the upcoming action is overridden with "look", which both
// breaks the loop and forces a fresh observation for the next reasoning
// step. Inspection tools neither count toward the window nor get overridden.
type LoopGuard struct{}

func NewLoopGuard() *LoopGuard { return &LoopGuard{} }

// Apply records the proposed call in the window and returns the call to
// actually dispatch. The boolean reports whether an override happened.
func (g *LoopGuard) Apply(session *world.Session, call ToolCall) (ToolCall, bool) {
	if call.Tool != ToolPlayAction {
		return call, false
	}

	session.PushAction(call.Action())

	if !session.Repeating(repeatThreshold) {
		return call, false
	}

	override := ToolCall{Tool: ToolPlayAction, Args: map[string]any{"action": "look"}}
	session.PushAction("look")
	return override, true
}

// Warranted reports whether the guard's precondition currently holds, so
// the prompt can carry an explicit loop warning.
func (g *LoopGuard) Warranted(session *world.Session) bool {
	return session.Repeating(repeatThreshold)
}
