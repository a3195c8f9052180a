package sim

import (
	"context"
	"time"

	"github.com/bggd/HaniwaSlayer/components"
	"github.com/bggd/HaniwaSlayer/systems"
	"go.uber.org/zap"
)

// Scene is what the loop steps.
type Scene interface {
	Update(snap components.InputSnapshot)
	Player() systems.PlayerView
}

// TickFunc observes the player after each tick.
type TickFunc func(tick int, v systems.PlayerView)

type Loop struct {
	scene    Scene
	tickRate int // 0 runs as fast as possible
	log      *zap.Logger
}

func NewLoop(scene Scene, tickRate int, log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{
		scene:    scene,
		tickRate: tickRate,
		log:      log.Named("sim"),
	}
}

// Run plays script to the end or until ctx is done, and returns the number of
// ticks played.
func (l *Loop) Run(ctx context.Context, script Script, onTick TickFunc) (int, error) {
	var tickC <-chan time.Time
	if l.tickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
		defer ticker.Stop()
		tickC = ticker.C
	}

	l.log.Info("simulation started", zap.Int("ticks", script.Len()), zap.Int("tick_rate", l.tickRate))
	last := time.Now()
	for tick := 0; ; tick++ {
		snap, ok := script.At(tick)
		if !ok {
			l.log.Info("simulation finished", zap.Int("ticks", tick))
			return tick, nil
		}

		if tickC != nil {
			select {
			case <-ctx.Done():
				return tick, ctx.Err()
			case <-tickC:
			}
		} else if err := ctx.Err(); err != nil {
			return tick, err
		}

		now := time.Now()
		snap.Elapsed = now.Sub(last)
		last = now

		l.scene.Update(snap)
		if onTick != nil {
			onTick(tick, l.scene.Player())
		}
	}
}
