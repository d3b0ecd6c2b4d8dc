package platform

import (
	"github.com/aretw0/track/pkg/core"
)

// svc, err := platform.New("~/.track", platform.WithVersioning(true))
func New(path string, opts ...Option) (*core.Service, error) {
	repo, err := Init(path, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return core.NewService(repo,
		core.WithClock(o.clock),
		core.WithEventBuffer(o.eventBuffer),
	), nil
}
