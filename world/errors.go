package world

import (
	"errors"

	"go.uber.org/zap"
)

// Invariant violations. The world panics with an error wrapping one of these;
// they signal a logic bug in the caller, not a runtime condition to handle.
var (
	ErrZeroID            = errors.New("entity id is zero")
	ErrNotRegistered     = errors.New("entity is not registered")
	ErrAlreadyRegistered = errors.New("entity is already registered")
	ErrStillRegistered   = errors.New("entity is still registered")
	ErrInvalidStep       = errors.New("move step must be positive")
	ErrInvalidDelta      = errors.New("move delta must be finite")
)

func (w *World) fatal(err error) {
	w.log.Error("invariant violated", zap.Error(err))
	panic(err)
}
