package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path          string     `json:"path"`
	Versioning    bool       `json:"versioning"`
	ReadOnly      bool       `json:"read_only"`
	WatcherActive bool       `json:"watcher_active"`
	LastLoadCount int        `json:"last_load_count"`
	LastAppend    *time.Time `json:"last_append,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RepositoryState{
		Path:          r.Path,
		Versioning:    r.config.Versioning,
		ReadOnly:      r.config.ReadOnly,
		WatcherActive: r.watcherActive,
		LastLoadCount: r.lastLoadCount,
		LastAppend:    r.lastAppend,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "journal"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
