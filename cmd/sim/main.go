// Command sim runs a level headless, feeding it a YAML input script and
// logging where the player ends up.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bggd/HaniwaSlayer/config"
	"github.com/bggd/HaniwaSlayer/leveldata"
	"github.com/bggd/HaniwaSlayer/logging"
	"github.com/bggd/HaniwaSlayer/scenes"
	"github.com/bggd/HaniwaSlayer/sim"
	"github.com/bggd/HaniwaSlayer/systems"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "YAML tuning file")
	levelPath := flag.String("level", "", "tile map (.tmx or .json), overrides level.path")
	scriptPath := flag.String("script", "", "YAML input script (required)")
	tickRate := flag.Int("tickrate", 0, "ticks per second, 0 runs as fast as possible")
	logLevel := flag.String("log-level", "", "debug logs every tick")
	flag.Parse()

	if *scriptPath == "" {
		log.Fatal("-script is required")
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *levelPath != "" {
		cfg.Level.Path = *levelPath
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	f, err := os.Open(*scriptPath)
	if err != nil {
		logger.Fatal("open script", zap.Error(err))
	}
	script, err := sim.LoadScript(f)
	f.Close()
	if err != nil {
		logger.Fatal("load script", zap.String("path", *scriptPath), zap.Error(err))
	}

	lvl, err := leveldata.Load(os.DirFS(filepath.Dir(cfg.Level.Path)), filepath.Base(cfg.Level.Path), cfg.Level.Layer)
	if err != nil {
		logger.Fatal("level load failed", zap.String("path", cfg.Level.Path), zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scene := scenes.NewPlatformer(cfg, lvl, logger)
	loop := sim.NewLoop(scene, *tickRate, logger)
	n, err := loop.Run(ctx, script, func(tick int, v systems.PlayerView) {
		logger.Debug("tick",
			zap.Int("tick", tick),
			zap.Stringer("state", v.State),
			zap.Float64("x", v.Position.X),
			zap.Float64("y", v.Position.Y),
			zap.Bool("ground", v.OnGround),
		)
	})
	if err != nil {
		logger.Warn("simulation interrupted", zap.Int("ticks", n), zap.Error(err))
	}

	v := scene.Player()
	logger.Info("final state",
		zap.Int("ticks", n),
		zap.Stringer("state", v.State),
		zap.Float64("x", v.Position.X),
		zap.Float64("y", v.Position.Y),
		zap.Float64("facing", v.Facing),
	)
}
