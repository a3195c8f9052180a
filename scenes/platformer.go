// Package scenes wires a level, the player and the system pipeline into
// something the app loop can step. It has no ebiten dependency.
package scenes

import (
	"github.com/bggd/HaniwaSlayer/components"
	"github.com/bggd/HaniwaSlayer/config"
	"github.com/bggd/HaniwaSlayer/geom"
	"github.com/bggd/HaniwaSlayer/leveldata"
	"github.com/bggd/HaniwaSlayer/systems"
	"github.com/bggd/HaniwaSlayer/systems/factory"
	"github.com/bggd/HaniwaSlayer/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

type Platformer struct {
	ecs    *ecs.ECS
	world  *world.World
	cfg    *config.Config
	log    *zap.Logger
	player *donburi.Entry
	walls  []*donburi.Entry
	ticks  uint64
}

// NewPlatformer builds the walls of lvl and spawns the player at the level's
// first spawn point, or at cfg.Player.Spawn when the level has none.
func NewPlatformer(cfg *config.Config, lvl *leveldata.Level, log *zap.Logger) *Platformer {
	if log == nil {
		log = zap.NewNop()
	}
	arena := donburi.NewWorld()
	ps := &Platformer{
		ecs:   ecs.NewECS(arena),
		world: world.New(world.WithArena(arena), world.WithLogger(log)),
		cfg:   cfg,
		log:   log.Named("scene"),
	}

	ps.walls = factory.CreateWalls(ps.world, lvl.Grid)
	spawn := cfg.Player.Spawn
	if len(lvl.Spawns) > 0 {
		spawn = lvl.Spawns[0]
	}
	ps.player = factory.CreatePlayer(ps.world, cfg, spawn)

	// Input is resolved before anything moves
	ps.ecs.AddSystem(func(e *ecs.ECS) {
		systems.UpdateInput(e.World, ps.cfg)
	})
	ps.ecs.AddSystem(func(e *ecs.ECS) {
		systems.UpdatePlayers(ps.world, ps.cfg)
	})

	ps.log.Info("scene ready",
		zap.String("world", ps.world.Name()),
		zap.Int("entities", ps.world.Len()),
	)
	return ps
}

// Update runs one tick with the given input.
func (ps *Platformer) Update(snap components.InputSnapshot) {
	components.Input.Get(ps.player).Snapshot = snap
	ps.ecs.Update()
	ps.ticks++
}

// ApplyTuning switches to cfg from the next tick on.
func (ps *Platformer) ApplyTuning(cfg *config.Config) {
	ps.cfg = cfg
	systems.ApplyTuning(ps.world.Arena(), cfg)
	ps.log.Info("tuning applied", zap.Uint64("tick", ps.ticks))
}

func (ps *Platformer) Player() systems.PlayerView {
	return systems.ViewPlayer(ps.player)
}

// WallAreas returns the world-space hit area of every wall.
func (ps *Platformer) WallAreas() []geom.Rect {
	out := make([]geom.Rect, 0, len(ps.walls))
	for _, e := range ps.walls {
		out = append(out, components.Body.Get(e).HitArea())
	}
	return out
}

func (ps *Platformer) Ticks() uint64 { return ps.ticks }

func (ps *Platformer) World() *world.World { return ps.world }
