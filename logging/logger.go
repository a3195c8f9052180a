// Package logging builds the zap logger shared by the game and its tools.
package logging

import (
	"fmt"
	"os"

	"github.com/bggd/HaniwaSlayer/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
}

// ParseLevel accepts the zap level names (debug, info, warn, error, ...).
// An empty string means info.
func ParseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(s)
	if err != nil {
		return lvl, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// New returns a console logger on stderr. When cfg.File is set a JSON copy of
// every entry also goes to a rolling file.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	return zap.New(newCore(cfg, lvl, zapcore.Lock(os.Stderr)), zap.AddCaller()), nil
}

func newCore(cfg config.LogConfig, lvl zapcore.Level, console zapcore.WriteSyncer) zapcore.Core {
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), console, lvl)
	if cfg.File == "" {
		return core
	}

	lj := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB, // MB
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays, // days
	}
	file := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(lj), lvl)
	return zapcore.NewTee(core, file)
}
