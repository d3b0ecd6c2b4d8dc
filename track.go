package track

import (
	"log/slog"
	"time"

	"github.com/aretw0/track/internal/platform"
	"github.com/aretw0/track/pkg/core"
	"github.com/aretw0/track/pkg/git"
)

// Version exposes the version of the library.
// See version.go for the implementation using go:embed.

// --- Types ---

// Entry is one timestamped journal record.
type Entry = core.Entry

// Query selects the entries summarized by Summarize.
type Query = core.Query

// DaySummary is one day of an aggregation result.
type DaySummary = core.DaySummary

// --- Configuration ---

// Option defines a functional option for configuring track.
type Option = platform.Option

// WithLogger sets the logger for the journal adapter.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithVersioning commits every appended entry to Git.
func WithVersioning(enabled bool) Option {
	return platform.WithVersioning(enabled)
}

// WithAutoInit runs 'git init' next to the journal when versioning needs it.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithReadOnly rejects appends and never creates the journal.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithEventBuffer sets the size of the watch event buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// --- Factory ---

// New creates a journal service for the file at path.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init initializes a repository explicitly.
func Init(path string, opts ...Option) (core.Repository, error) {
	return platform.Init(path, opts...)
}

// ResolvePath expands "~" and falls back to DefaultJournalPath for "".
func ResolvePath(path string) (string, error) {
	return platform.ResolvePath(path)
}

// DefaultJournalPath returns the journal used when no path is given.
func DefaultJournalPath() (string, error) {
	return platform.DefaultJournalPath()
}

// --- Semantic Commits ---

const (
	CommitTypeFeat  = git.ChangeTypeFeat
	CommitTypeFix   = git.ChangeTypeFix
	CommitTypeChore = git.ChangeTypeChore
	CommitTypeDocs  = git.ChangeTypeDocs
)

// FormatChangeReason builds a Conventional Commit message.
func FormatChangeReason(ctype, scope, subject, body string) string {
	return git.FormatChangeReason(ctype, scope, subject, body)
}

// AppendFooter appends the track footer to an arbitrary message.
func AppendFooter(msg string) string {
	return git.AppendFooter(msg)
}
