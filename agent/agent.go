package agent

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Agent plays one game session to completion.
type Agent interface {
	RunGame(ctx context.Context) (RunResult, error)
}

// BaseAgent carries what every agent flavor needs: a clock, the run config,
// and a pair of loggers (human transcript and machine debug). Both loggers
// default to no-ops.
type BaseAgent struct {
	clock  Clock
	config Config

	out   *zap.SugaredLogger
	debug *zap.SugaredLogger

	syncOut   func()
	syncDebug func()
}

func NewBaseAgent(clock Clock) *BaseAgent {
	return &BaseAgent{
		clock: clock,
		config: Config{
			MaxSteps:        DefaultMaxSteps,
			Seed:            DefaultSeed,
			MaxScore:        DefaultMaxScore,
			MaxOutputTokens: DefaultMaxOutputTokens,
		},
		out:   zap.NewNop().Sugar(),
		debug: zap.NewNop().Sugar(),
	}
}

func (b *BaseAgent) logStart(game string) {
	b.out.Infof("Game: %s", game)
	b.out.Infof("Mode: ReAct (iterative reasoning + acting)\n")
}

func (b *BaseAgent) startTimer() time.Time {
	return b.clock.Now()
}

func (b *BaseAgent) finishTimer(start time.Time) {
	dur := b.clock.Now().Sub(start)
	b.out.Infof("Total duration: %s", dur)
	b.debug.Infof("Total duration: %s", dur)

	if b.syncOut != nil {
		b.syncOut()
	}
	if b.syncDebug != nil {
		b.syncDebug()
	}
}
