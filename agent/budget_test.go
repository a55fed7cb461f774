package agent_test

import (
	"errors"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"

	"github.com/kardolus/adventure-agent/agent"
)

func TestUnitBudget(t *testing.T) {
	spec.Run(t, "Testing DefaultBudget", testBudget, spec.Report(report.Terminal{}))
}

func testBudget(t *testing.T, when spec.G, it spec.S) {
	var now time.Time

	it.Before(func() {
		RegisterTestingT(t)
		now = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	})

	when("no limits are set", func() {
		it("allows everything", func() {
			budget := agent.NewDefaultBudget(agent.BudgetLimits{})
			budget.Start(now)

			for i := 0; i < 100; i++ {
				Expect(budget.AllowLLM(now)).To(Succeed())
				Expect(budget.AllowTool(now)).To(Succeed())
			}
		})
	})

	when("the llm call limit is reached", func() {
		it("rejects the call past the limit with a typed error", func() {
			budget := agent.NewDefaultBudget(agent.BudgetLimits{MaxLLMCalls: 2})
			budget.Start(now)

			Expect(budget.AllowLLM(now)).To(Succeed())
			Expect(budget.AllowLLM(now)).To(Succeed())

			err := budget.AllowLLM(now)
			Expect(err).To(HaveOccurred())

			var exceeded agent.BudgetExceededError
			Expect(errors.As(err, &exceeded)).To(BeTrue())
			Expect(exceeded.Kind).To(Equal(agent.BudgetKindLLM))
			Expect(exceeded.Limit).To(Equal(2))
		})
	})

	when("the tool call limit is reached", func() {
		it("rejects tool calls but not llm calls", func() {
			budget := agent.NewDefaultBudget(agent.BudgetLimits{MaxToolCalls: 1})
			budget.Start(now)

			Expect(budget.AllowTool(now)).To(Succeed())
			Expect(budget.AllowTool(now)).To(HaveOccurred())
			Expect(budget.AllowLLM(now)).To(Succeed())
		})
	})

	when("wall time runs out", func() {
		it("rejects all further calls", func() {
			budget := agent.NewDefaultBudget(agent.BudgetLimits{MaxWallTime: time.Minute})
			budget.Start(now)

			later := now.Add(2 * time.Minute)

			var exceeded agent.BudgetExceededError
			err := budget.AllowLLM(later)
			Expect(errors.As(err, &exceeded)).To(BeTrue())
			Expect(exceeded.Kind).To(Equal(agent.BudgetKindWallTime))

			Expect(budget.AllowTool(later)).To(HaveOccurred())
		})
	})

	when("taking a snapshot", func() {
		it("reports usage and elapsed time", func() {
			budget := agent.NewDefaultBudget(agent.BudgetLimits{MaxLLMCalls: 10})
			budget.Start(now)

			Expect(budget.AllowLLM(now)).To(Succeed())
			Expect(budget.AllowTool(now)).To(Succeed())
			Expect(budget.AllowTool(now)).To(Succeed())

			snap := budget.Snapshot(now.Add(30 * time.Second))
			Expect(snap.LLMCallsUsed).To(Equal(1))
			Expect(snap.ToolCallsUsed).To(Equal(2))
			Expect(snap.Elapsed).To(Equal(30 * time.Second))
			Expect(snap.Limits.MaxLLMCalls).To(Equal(10))
		})
	})
}
