package engine

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ynivin/waveform-mcp/internal/errors"
	"github.com/ynivin/waveform-mcp/internal/logging"
	"github.com/ynivin/waveform-mcp/internal/wal"
)

// Handle is a cached, loaded trace. The mutex serializes every operation
// that touches the trace's time cursor; callers that step or evaluate
// must hold it for the duration of the operation.
type Handle struct {
	ID       string
	Path     string
	Trace    *wal.Trace
	LoadedAt time.Time

	mu sync.Mutex
}

// Cache maps normalized file paths to loaded trace handles. Entries are
// never evicted; a path loads at most once on the happy path. A failed
// load leaves the cache untouched.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*Handle
	loader  wal.Loader
	logger  *logging.Logger
}

// NewCache creates an empty cache backed by the given loader.
func NewCache(loader wal.Loader, logger *logging.Logger) *Cache {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Cache{
		entries: make(map[string]*Handle),
		loader:  loader,
		logger:  logger,
	}
}

// GetOrLoad returns the cached handle for path, loading the trace on a
// miss. Loading happens outside the cache lock, so two concurrent
// first-time loads of the same path may both parse; the later store wins
// and both callers get a usable handle.
func (c *Cache) GetOrLoad(path string) (*Handle, error) {
	key := cacheKey(path)

	c.mu.Lock()
	h, ok := c.entries[key]
	c.mu.Unlock()
	if ok {
		return h, nil
	}

	trace, err := c.loader.Load(path)
	if err != nil {
		return nil, errors.NewLoadError(path, err)
	}

	h = &Handle{
		ID:       uuid.NewString(),
		Path:     path,
		Trace:    trace,
		LoadedAt: time.Now(),
	}

	c.mu.Lock()
	c.entries[key] = h
	c.mu.Unlock()

	c.logger.Info("Loaded waveform", map[string]interface{}{
		"path":    path,
		"handle":  h.ID,
		"signals": len(trace.Signals()),
		"steps":   trace.Length(),
	})
	return h, nil
}

// Len reports the number of cached traces.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Paths returns the cached trace paths as originally passed by callers.
func (c *Cache) Paths() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	paths := make([]string, 0, len(c.entries))
	for _, h := range c.entries {
		paths = append(paths, h.Path)
	}
	return paths
}

func cacheKey(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
