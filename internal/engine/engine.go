// Package engine implements the waveform query engine: a caching trace
// loader, signal listing with pattern filtering, transition scanning,
// WAL expression execution with diagnostic remediation, and example
// synthesis. Every operation produces a textual report alongside its
// structured result; failures at this layer are coded errors that the
// MCP and CLI boundaries render as readable prose.
package engine

import (
	"github.com/ynivin/waveform-mcp/internal/logging"
	"github.com/ynivin/waveform-mcp/internal/wal"
)

// Options tunes engine behavior.
type Options struct {
	// MaxScanSteps bounds a single transition scan. Zero means unlimited.
	MaxScanSteps int
}

// Engine answers waveform queries against cached traces.
type Engine struct {
	cache        *Cache
	logger       *logging.Logger
	maxScanSteps int
}

// New creates an engine backed by the given trace loader.
func New(loader wal.Loader, logger *logging.Logger, opts Options) *Engine {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Engine{
		cache:        NewCache(loader, logger),
		logger:       logger,
		maxScanSteps: opts.MaxScanSteps,
	}
}

// Cache exposes the engine's trace cache.
func (e *Engine) Cache() *Cache {
	return e.cache
}
