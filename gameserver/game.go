// Package gameserver bundles a small deterministic text adventure and
// serves it over MCP, so the agent can be exercised end to end without an
// external game interpreter.
package gameserver

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/ini.v1"
)

//go:embed world.ini
var worldData []byte

const (
	maxRooms = 64
	maxItems = 64

	carriedLocation = -1
)

type room struct {
	id          int
	name        string
	description string
	exits       map[string]int
	deadly      bool
}

type item struct {
	id          int
	name        string
	description string
	details     string
	location    int
	takeable    bool
	points      int
	openable    bool
	contains    int
	opened      bool
}

// Game is one playthrough of the bundled world. All mutation goes through
// Execute, which is safe for concurrent callers.
type Game struct {
	mu sync.Mutex

	name     string
	intro    string
	maxScore int

	rooms map[int]*room
	items map[int]*item

	start   int
	current int
	score   int
	moves   int
	over    bool
	won     bool
}

var directions = map[string]string{
	"north": "North", "n": "North",
	"south": "South", "s": "South",
	"east": "East", "e": "East",
	"west": "West", "w": "West",
	"up": "Up", "u": "Up",
	"down": "Down", "d": "Down",
}

func NewGame() (*Game, error) {
	cfg, err := ini.Load(worldData)
	if err != nil {
		return nil, fmt.Errorf("failed to load world: %w", err)
	}

	g := &Game{
		rooms: map[int]*room{},
		items: map[int]*item{},
		start: 1,
	}

	meta := cfg.Section("Game")
	g.name = meta.Key("Name").String()
	g.intro = meta.Key("Intro").String()
	g.maxScore = meta.Key("MaxScore").MustInt(0)

	for i := 1; i <= maxRooms; i++ {
		sectionName := fmt.Sprintf("Room%d", i)
		if !cfg.HasSection(sectionName) {
			continue
		}
		sec := cfg.Section(sectionName)

		r := &room{
			id:          i,
			name:        sec.Key("Name").String(),
			description: sec.Key("Description").String(),
			deadly:      sec.Key("Deadly").MustInt(0) == 1,
			exits:       map[string]int{},
		}
		for _, dir := range []string{"North", "South", "East", "West", "Up", "Down"} {
			if dest := sec.Key(dir).MustInt(0); dest > 0 {
				r.exits[dir] = dest
			}
		}
		g.rooms[i] = r
	}

	for i := 1; i <= maxItems; i++ {
		sectionName := fmt.Sprintf("Item%d", i)
		if !cfg.HasSection(sectionName) {
			continue
		}
		sec := cfg.Section(sectionName)

		g.items[i] = &item{
			id:          i,
			name:        strings.ToLower(sec.Key("Name").String()),
			description: sec.Key("Description").String(),
			details:     sec.Key("Details").String(),
			location:    sec.Key("Location").MustInt(0),
			takeable:    sec.Key("IsTakeable").MustInt(0) == 1,
			points:      sec.Key("Points").MustInt(0),
			openable:    sec.Key("Openable").MustInt(0) == 1,
			contains:    sec.Key("Contains").MustInt(0),
		}
	}

	if g.rooms[g.start] == nil {
		return nil, fmt.Errorf("world has no starting room")
	}
	g.current = g.start

	return g, nil
}

func (g *Game) Name() string  { return g.name }
func (g *Game) Intro() string { return g.intro }

func (g *Game) MaxScore() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.maxScore
}

func (g *Game) Score() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.score
}

func (g *Game) Moves() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.moves
}

func (g *Game) Over() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.over
}

func (g *Game) RoomName() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rooms[g.current].name
}

// Execute runs one game command and returns the interpreter output, with a
// trailing score marker line.
func (g *Game) Execute(action string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.over {
		return g.withMarker("The game has ended.")
	}

	g.moves++

	words := strings.Fields(strings.ToLower(strings.TrimSpace(action)))
	if len(words) == 0 {
		return g.withMarker(g.describeRoom())
	}

	verb := words[0]
	if verb == "go" && len(words) > 1 {
		verb = words[1]
	}

	if dir, ok := directions[verb]; ok {
		return g.withMarker(g.move(dir))
	}

	rest := strings.Join(words[1:], " ")

	switch verb {
	case "look", "l":
		return g.withMarker(g.describeRoom())
	case "take", "get":
		return g.withMarker(g.take(rest))
	case "drop":
		return g.withMarker(g.drop(rest))
	case "open":
		return g.withMarker(g.open(rest))
	case "examine", "read":
		return g.withMarker(g.examine(rest))
	case "inventory", "i":
		return g.withMarker(g.inventoryText())
	case "score":
		return g.withMarker(fmt.Sprintf("Your score is %d of a possible %d, in %d moves.", g.score, g.maxScore, g.moves))
	case "wait":
		return g.withMarker("Time passes.")
	default:
		return g.withMarker(fmt.Sprintf("I don't know the word \"%s\".", verb))
	}
}

// ValidActions lists the commands that would do something useful right now.
func (g *Game) ValidActions() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	actions := []string{"look", "inventory", "wait"}

	var dirs []string
	for dir := range g.rooms[g.current].exits {
		dirs = append(dirs, strings.ToLower(dir))
	}
	sort.Strings(dirs)
	actions = append(actions, dirs...)

	for _, it := range g.itemsInRoom(g.current) {
		actions = append(actions, "examine "+it.name)
		if it.takeable {
			actions = append(actions, "take "+it.name)
		}
		if it.openable && !it.opened {
			actions = append(actions, "open "+it.name)
		}
	}

	return actions
}

func (g *Game) move(dir string) string {
	dest, ok := g.rooms[g.current].exits[dir]
	if !ok {
		return "You can't go that way."
	}

	g.current = dest
	target := g.rooms[dest]

	if target.deadly {
		g.over = true
		return fmt.Sprintf("%s\n%s\n*** You have died ***", target.name, target.description)
	}

	out := g.describeRoom()
	if victory := g.checkVictory(); victory != "" {
		out += "\n" + victory
	}
	return out
}

func (g *Game) describeRoom() string {
	r := g.rooms[g.current]

	var sb strings.Builder
	sb.WriteString(r.name)
	sb.WriteString("\n")
	sb.WriteString(r.description)

	for _, it := range g.itemsInRoom(g.current) {
		sb.WriteString("\n")
		sb.WriteString(it.description)
	}

	return sb.String()
}

func (g *Game) take(name string) string {
	it := g.findItem(name, g.current)
	if it == nil {
		return "You can't see any such thing."
	}
	if !it.takeable {
		return fmt.Sprintf("You can't take the %s.", it.name)
	}

	it.location = carriedLocation
	out := "Taken."

	if it.points > 0 {
		g.score += it.points
		out += fmt.Sprintf("\nYour score just went up by %d points.", it.points)
		it.points = 0
	}

	if victory := g.checkVictory(); victory != "" {
		out += "\n" + victory
	}
	return out
}

func (g *Game) drop(name string) string {
	it := g.findItem(name, carriedLocation)
	if it == nil {
		return "You're not carrying that."
	}

	it.location = g.current
	return "Dropped."
}

func (g *Game) open(name string) string {
	it := g.findItem(name, g.current)
	if it == nil {
		return "You can't see any such thing."
	}
	if !it.openable {
		return fmt.Sprintf("You can't open the %s.", it.name)
	}
	if it.opened {
		return "It's already open."
	}

	it.opened = true
	if inner := g.items[it.contains]; inner != nil {
		inner.location = g.current
		return fmt.Sprintf("Opening the %s reveals a %s.", it.name, inner.name)
	}
	return fmt.Sprintf("You open the %s. It is empty.", it.name)
}

func (g *Game) examine(name string) string {
	it := g.findItem(name, g.current)
	if it == nil {
		it = g.findItem(name, carriedLocation)
	}
	if it == nil {
		return "You can't see any such thing."
	}
	if it.details == "" {
		return fmt.Sprintf("You see nothing special about the %s.", it.name)
	}
	return it.details
}

func (g *Game) inventoryText() string {
	var carried []string
	for _, it := range g.sortedItems() {
		if it.location == carriedLocation {
			carried = append(carried, "  a "+it.name)
		}
	}

	if len(carried) == 0 {
		return "You are empty-handed."
	}
	return "You are carrying:\n" + strings.Join(carried, "\n")
}

// checkVictory fires when every treasure is collected and the player is back
// at the starting room.
func (g *Game) checkVictory() string {
	if g.won || g.current != g.start || g.score != g.maxScore {
		return ""
	}

	g.won = true
	g.over = true
	return "*** You have won! The fog lifts as you leave the manor. ***"
}

func (g *Game) withMarker(out string) string {
	return fmt.Sprintf("%s\n[Score: %d | Moves: %d]", out, g.score, g.moves)
}

func (g *Game) itemsInRoom(roomID int) []*item {
	var result []*item
	for _, it := range g.sortedItems() {
		if it.location == roomID {
			result = append(result, it)
		}
	}
	return result
}

func (g *Game) sortedItems() []*item {
	result := make([]*item, 0, len(g.items))
	for _, it := range g.items {
		result = append(result, it)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].id < result[j].id })
	return result
}

// findItem matches on the full name or any word of it, so "take lantern"
// finds the brass lantern.
func (g *Game) findItem(name string, location int) *item {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	for _, it := range g.sortedItems() {
		if it.location != location {
			continue
		}
		if it.name == name {
			return it
		}
		for _, word := range strings.Fields(it.name) {
			if word == name || strings.HasSuffix(name, " "+word) {
				return it
			}
		}
	}
	return nil
}
