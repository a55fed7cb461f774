package world_test

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"

	"github.com/kardolus/adventure-agent/world"
)

func TestUnitGraph(t *testing.T) {
	spec.Run(t, "Testing the location graph", testGraph, spec.Report(report.Terminal{}))
}

func testGraph(t *testing.T, when spec.G, it spec.S) {
	var graph *world.Graph

	it.Before(func() {
		RegisterTestingT(t)
		graph = world.NewGraph()
	})

	when("recording movement", func() {
		it("adds a labeled edge between distinct locations", func() {
			graph.Connect("West of House", "north", "Kitchen")

			Expect(graph.Exits("West of House")).To(Equal([]string{"north -> Kitchen"}))
			Expect(graph.Locations()).To(Equal([]string{"Kitchen", "West of House"}))
		})

		it("refuses self-edges from no-op movements", func() {
			graph.Visit("West of House")
			graph.Connect("West of House", "north", "West of House")

			Expect(graph.Exits("West of House")).To(BeEmpty())
			Expect(graph.Len()).To(Equal(1))
		})

		it("overwrites the destination when an action is re-learned", func() {
			graph.Connect("Cellar", "up", "Kitchen")
			graph.Connect("Cellar", "up", "Living Room")

			Expect(graph.Exits("Cellar")).To(Equal([]string{"up -> Living Room"}))
		})
	})

	when("visiting locations", func() {
		it("creates nodes lazily and only once", func() {
			graph.Visit("Kitchen")
			graph.Visit("Kitchen")

			Expect(graph.Len()).To(Equal(1))
		})

		it("maps an empty name onto the placeholder", func() {
			graph.Visit("")

			Expect(graph.Locations()).To(Equal([]string{world.UnknownLocation}))
		})
	})

	when("rendering the map", func() {
		it("reports an unexplored world", func() {
			Expect(graph.Render("Kitchen")).To(ContainSubstring("No locations explored yet"))
		})

		it("lists locations with their exits and the current marker", func() {
			graph.Connect("West of House", "north", "Kitchen")
			graph.Connect("Kitchen", "down", "Cellar")

			rendered := graph.Render("Cellar")
			Expect(rendered).To(ContainSubstring("* West of House"))
			Expect(rendered).To(ContainSubstring("-> north -> Kitchen"))
			Expect(rendered).To(ContainSubstring("-> down -> Cellar"))
			Expect(rendered).To(ContainSubstring("[Current] Cellar"))
		})
	})
}
