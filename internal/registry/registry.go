// Package registry resolves waveform aliases to file paths. Teams keep a
// small TOML file next to their testbenches so tools can refer to traces
// by short stable names instead of build-dependent paths.
package registry

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Entry is one registered waveform.
type Entry struct {
	Alias       string `toml:"alias" json:"alias"`
	Path        string `toml:"path" json:"path"`
	Description string `toml:"description,omitempty" json:"description,omitempty"`
}

// Registry maps aliases to waveform paths.
type Registry struct {
	entries map[string]Entry
	order   []string
}

type registryFile struct {
	Waveforms []Entry `toml:"waveform"`
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Load reads a registry TOML file. A missing file yields an empty
// registry so tools work without one.
func Load(path string) (*Registry, error) {
	r := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, fmt.Errorf("read registry %s: %w", path, err)
	}

	var file registryFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", path, err)
	}

	for _, e := range file.Waveforms {
		if e.Alias == "" || e.Path == "" {
			return nil, fmt.Errorf("registry %s: entry needs both alias and path", path)
		}
		if _, dup := r.entries[e.Alias]; dup {
			return nil, fmt.Errorf("registry %s: duplicate alias %q", path, e.Alias)
		}
		r.entries[e.Alias] = e
		r.order = append(r.order, e.Alias)
	}
	return r, nil
}

// Resolve maps an alias to its registered path. Anything that is not a
// known alias is treated as a literal file path and returned unchanged.
func (r *Registry) Resolve(aliasOrPath string) string {
	if e, ok := r.entries[aliasOrPath]; ok {
		return e.Path
	}
	return aliasOrPath
}

// Entries returns the registered waveforms in file order.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, len(r.order))
	for _, alias := range r.order {
		entries = append(entries, r.entries[alias])
	}
	return entries
}

// Len reports the number of registered aliases.
func (r *Registry) Len() int {
	return len(r.entries)
}
