package world

// Turn is one completed controller iteration: what the agent thought, what
// it called, and what came back. Immutable once appended.
type Turn struct {
	Step        int
	Thought     string
	Tool        string
	Action      string
	Observation string
	Location    string
	Score       int
}

const defaultObservationCap = 10

// Observations is the agent's bounded working memory: the most recent turns
// plus the latest raw observation text. Oldest turns are evicted first.
type Observations struct {
	turns  []Turn
	latest string
	cap    int
}

func NewObservations() *Observations {
	return &Observations{cap: defaultObservationCap}
}

func NewObservationsWithCap(n int) *Observations {
	if n <= 0 {
		n = defaultObservationCap
	}
	return &Observations{cap: n}
}

// Append stores a completed turn, evicting the oldest when full, and makes
// its observation the latest.
func (o *Observations) Append(t Turn) {
	o.turns = append(o.turns, t)
	if len(o.turns) > o.cap {
		o.turns = o.turns[len(o.turns)-o.cap:]
	}
	o.latest = t.Observation
}

// SetLatest replaces the latest observation without recording a turn. Used
// for the initial look that seeds a session.
func (o *Observations) SetLatest(observation string) {
	o.latest = observation
}

func (o *Observations) Latest() string { return o.latest }

func (o *Observations) Len() int { return len(o.turns) }

// Recent returns up to n most recent turns, oldest first.
func (o *Observations) Recent(n int) []Turn {
	if n <= 0 || len(o.turns) == 0 {
		return nil
	}
	if n > len(o.turns) {
		n = len(o.turns)
	}
	out := make([]Turn, n)
	copy(out, o.turns[len(o.turns)-n:])
	return out
}
