package agent

import "time"

//go:generate mockgen -destination=clockmocks_test.go -package=agent_test github.com/kardolus/adventure-agent/agent Clock
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() *RealClock { return &RealClock{} }

func (c *RealClock) Now() time.Time { return time.Now() }
