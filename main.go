package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/bggd/HaniwaSlayer/config"
	"github.com/bggd/HaniwaSlayer/leveldata"
	"github.com/bggd/HaniwaSlayer/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "YAML tuning file, watched for changes")
	levelPath := flag.String("level", "", "tile map (.tmx or .json), overrides level.path")
	logLevel := flag.String("log-level", "", "debug, info, warn or error, overrides log.level")
	logFile := flag.String("log-file", "", "rolling log file, overrides log.file")
	flag.Parse()

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
	if *logFile != "" {
		cfg.Log.File = *logFile
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	lvl, err := leveldata.Load(os.DirFS(filepath.Dir(cfg.Level.Path)), filepath.Base(cfg.Level.Path), cfg.Level.Layer)
	if err != nil {
		logger.Fatal("level load failed", zap.String("path", cfg.Level.Path), zap.Error(err))
	}

	var watcher *config.Watcher
	if *configPath != "" {
		if watcher, err = config.NewWatcher(*configPath, logger); err != nil {
			logger.Warn("config hot reload disabled", zap.Error(err))
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	if err := ebiten.RunGame(NewGame(cfg, lvl, watcher, logger)); err != nil {
		logger.Error("game exited", zap.Error(err))
	}
}
