package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/track/pkg/core"
)

// options holds the internal configuration for the track service.
type options struct {
	repository   core.Repository
	logger       *slog.Logger
	clock        func() time.Time
	eventBuffer  int
	versioning   bool
	autoInit     bool
	readOnly     bool
	errorHandler func(error)
}

// Option defines a functional option for configuring track.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		clock: time.Now,
	}
}

// WithLogger sets the logger for the repository.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. an in-memory fake).
// If provided, the journal path is ignored.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithClock replaces time.Now for entry timestamps and for "today".
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithEventBuffer sets the size of the watch event buffer.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithVersioning commits every appended entry to the Git repository that
// holds the journal.
func WithVersioning(enabled bool) Option {
	return func(o *options) {
		o.versioning = enabled
	}
}

// WithAutoInit runs 'git init' in the journal directory when versioning is
// enabled and no repository exists yet.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.autoInit = auto
	}
}

// WithReadOnly enables read-only mode.
// In this mode:
// 1. AddEntry returns core.ErrReadOnly.
// 2. The journal file is never created.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithWatcherErrorHandler registers a callback for errors raised while
// watching the journal. Without it they are only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
