package platform

import (
	"context"

	"github.com/aretw0/track/pkg/adapters/fs"
	"github.com/aretw0/track/pkg/core"
)

// Init prepares the journal at path and returns the configured repository.
// An empty path selects DefaultJournalPath.
func Init(path string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.repository != nil {
		return o.repository, nil
	}

	resolved, err := ResolvePath(path)
	if err != nil {
		return nil, err
	}

	repo := fs.NewRepository(fs.Config{
		Path:         resolved,
		Versioning:   o.versioning,
		AutoInit:     o.autoInit,
		ReadOnly:     o.readOnly,
		Logger:       o.logger,
		ErrorHandler: o.errorHandler,
	})

	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}

	if o.logger != nil {
		o.logger.Debug("journal ready", "path", resolved, "versioning", o.versioning, "read_only", o.readOnly)
	}
	return repo, nil
}
