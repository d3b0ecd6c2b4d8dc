package core

import "context"

// Repository defines the contract for storing and retrieving entries.
// Adhering to this interface keeps the core independent of the
// underlying storage (flat file, in-memory fake, ...).
type Repository interface {
	// Load returns every entry in storage order. A single malformed record
	// aborts the load.
	Load(ctx context.Context) ([]Entry, error)

	// Append persists one entry after the existing ones.
	Append(ctx context.Context, e Entry) error

	// Initialize ensures the underlying storage is ready (e.g., create the file).
	Initialize(ctx context.Context) error
}

// Watchable defines an interface for repositories that can report changes.
type Watchable interface {
	// Watch emits an Event each time the underlying storage changes.
	// The channel is closed when ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}

type contextKey string

// ChangeReasonKey is the context key for passing a specific change reason
// (commit message) to Append on versioned repositories.
const ChangeReasonKey contextKey = "change_reason"
