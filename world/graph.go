package world

import (
	"fmt"
	"sort"
	"strings"
)

// Graph is the directed map of discovered locations. Nodes are created
// lazily the first time a location name is observed; edges are labeled with
// the movement action that connected them. Append-only for the lifetime of
// a session.
type Graph struct {
	edges map[string]map[string]string // location -> action -> destination
}

func NewGraph() *Graph {
	return &Graph{edges: make(map[string]map[string]string)}
}

// Visit ensures a node exists for the given location name.
func (g *Graph) Visit(location string) {
	if location == "" {
		location = UnknownLocation
	}
	if _, ok := g.edges[location]; !ok {
		g.edges[location] = make(map[string]string)
	}
}

// Connect records source --action--> destination. A movement that went
// nowhere (destination equals source) is dropped: bumping into a wall must
// not create a self-edge.
func (g *Graph) Connect(source, action, destination string) {
	if destination == source {
		return
	}
	g.Visit(source)
	g.Visit(destination)
	g.edges[source][action] = destination
}

// Locations returns every discovered location name, sorted.
func (g *Graph) Locations() []string {
	names := make([]string, 0, len(g.edges))
	for name := range g.edges {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (g *Graph) Len() int { return len(g.edges) }

// Exits returns the outgoing labeled edges of a location, sorted by action.
func (g *Graph) Exits(location string) []string {
	out, ok := g.edges[location]
	if !ok {
		return nil
	}
	var exits []string
	for action, dest := range out {
		exits = append(exits, fmt.Sprintf("%s -> %s", action, dest))
	}
	sort.Strings(exits)
	return exits
}

// Render draws the explored map the way the game server's get_map tool does,
// so local and remote runs log the same shape.
func (g *Graph) Render(current string) string {
	if len(g.edges) == 0 {
		return "Map: No locations explored yet. Try moving around!"
	}

	var b strings.Builder
	b.WriteString("Explored Locations and Exits:")
	for _, loc := range g.Locations() {
		fmt.Fprintf(&b, "\n\n* %s", loc)
		for _, exit := range g.Exits(loc) {
			fmt.Fprintf(&b, "\n    -> %s", exit)
		}
	}
	fmt.Fprintf(&b, "\n\n[Current] %s", current)
	return b.String()
}
