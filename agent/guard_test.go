package agent_test

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"

	"github.com/kardolus/adventure-agent/agent"
	"github.com/kardolus/adventure-agent/world"
)

func TestUnitGuard(t *testing.T) {
	spec.Run(t, "Testing LoopGuard", testGuard, spec.Report(report.Terminal{}))
}

func testGuard(t *testing.T, when spec.G, it spec.S) {
	var (
		guard   *agent.LoopGuard
		session *world.Session
	)

	north := agent.ToolCall{Tool: agent.ToolPlayAction, Args: map[string]any{"action": "north"}}

	it.Before(func() {
		RegisterTestingT(t)

		guard = agent.NewLoopGuard()
		session = world.NewSession()
	})

	when("actions vary", func() {
		it("passes them through untouched", func() {
			for _, a := range []string{"north", "take lamp", "open door"} {
				call, overrode := guard.Apply(session, agent.ToolCall{
					Tool: agent.ToolPlayAction,
					Args: map[string]any{"action": a},
				})

				Expect(overrode).To(BeFalse())
				Expect(call.Action()).To(Equal(a))
			}
		})
	})

	when("the same action repeats three times", func() {
		it("overrides the third with look", func() {
			_, overrode := guard.Apply(session, north)
			Expect(overrode).To(BeFalse())

			_, overrode = guard.Apply(session, north)
			Expect(overrode).To(BeFalse())

			call, overrode := guard.Apply(session, north)
			Expect(overrode).To(BeTrue())
			Expect(call.Action()).To(Equal("look"))
		})

		it("records the override in the window so the streak is broken", func() {
			guard.Apply(session, north)
			guard.Apply(session, north)
			guard.Apply(session, north)

			recent := session.RecentActions()
			Expect(recent[len(recent)-1]).To(Equal("look"))

			// The very next repeat does not trip the guard again.
			call, overrode := guard.Apply(session, north)
			Expect(overrode).To(BeFalse())
			Expect(call.Action()).To(Equal("north"))
		})
	})

	when("inspection tools are used", func() {
		it("neither counts nor overrides them", func() {
			guard.Apply(session, north)
			guard.Apply(session, north)

			call, overrode := guard.Apply(session, agent.ToolCall{Tool: agent.ToolMap})
			Expect(overrode).To(BeFalse())
			Expect(call.Tool).To(Equal(agent.ToolMap))

			// The streak is still two, so the next north completes it.
			call, overrode = guard.Apply(session, north)
			Expect(overrode).To(BeTrue())
			Expect(call.Action()).To(Equal("look"))
		})
	})

	when("warning the prompt", func() {
		it("is warranted exactly when the window ends in a full streak", func() {
			Expect(guard.Warranted(session)).To(BeFalse())

			session.PushAction("north")
			session.PushAction("north")
			Expect(guard.Warranted(session)).To(BeFalse())

			session.PushAction("north")
			Expect(guard.Warranted(session)).To(BeTrue())
		})
	})
}
