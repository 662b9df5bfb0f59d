package engine

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Engine picks moves for a position. It holds no per-search state, so one
// Engine may serve concurrent searches from many games.
type Engine struct {
	log        zerolog.Logger
	totalNodes atomic.Int64
}

func NewEngine(log zerolog.Logger) *Engine {
	return &Engine{log: log.With().Str("component", "engine").Logger()}
}

// TotalNodes returns the moves made by every search run so far.
func (e *Engine) TotalNodes() int64 { return e.totalNodes.Load() }
