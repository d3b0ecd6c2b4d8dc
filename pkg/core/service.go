package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
)

const defaultEventBuffer = 100

// Service handles the business logic for journal entries.
type Service struct {
	repo Repository
	now  func() time.Time

	mu              sync.RWMutex
	eventBufferSize int
	appended        int
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithClock replaces time.Now as the source of entry timestamps and of
// "today" in summaries.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// WithEventBuffer sets the size of the buffer between the repository
// watcher and Watch consumers. Zero means default (100).
func WithEventBuffer(size int) ServiceOption {
	return func(s *Service) {
		if size > 0 {
			s.eventBufferSize = size
		}
	}
}

// NewService creates a new Service.
func NewService(repo Repository, opts ...ServiceOption) *Service {
	s := &Service{
		repo:            repo,
		now:             time.Now,
		eventBufferSize: defaultEventBuffer,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddEntry validates the raw fields, classifies the value and appends a new
// entry stamped with the current time. The category is stored lowercased.
// An error wrapping ErrNotCommitted comes with the stored entry.
func (s *Service) AddEntry(ctx context.Context, category, value string) (Entry, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return Entry{}, ErrEmptyCategory
	}
	if strings.ContainsAny(category, "\r\n") || strings.Contains(category, "] ") {
		return Entry{}, fmt.Errorf("%w: category %q cannot be stored on one line", ErrInvalidValue, category)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return Entry{}, ErrEmptyValue
	}
	if strings.ContainsAny(value, ":\r\n") {
		return Entry{}, fmt.Errorf("%w: value %q must not contain ':' or line breaks", ErrInvalidValue, value)
	}

	v, err := Classify(value)
	if err != nil {
		return Entry{}, err
	}

	e := Entry{
		Timestamp: s.now(),
		Category:  category,
		Value:     v,
	}
	err = s.repo.Append(ctx, e)
	if err != nil && !errors.Is(err, ErrNotCommitted) {
		return Entry{}, err
	}

	s.mu.Lock()
	s.appended++
	s.mu.Unlock()

	return e, err
}

// ListEntries returns every entry in journal order.
func (s *Service) ListEntries(ctx context.Context) ([]Entry, error) {
	return s.repo.Load(ctx)
}

// Summarize loads the journal and aggregates it relative to today.
func (s *Service) Summarize(ctx context.Context, q Query) ([]DaySummary, error) {
	if q.RangeDays < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRange, q.RangeDays)
	}
	entries, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return Aggregate(entries, q, s.now())
}

// Watch observes changes in the repository if supported.
// Events are buffered so that a slow consumer does not stall the watcher.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}

	upstream, err := w.Watch(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	out := make(chan Event, s.eventBufferSize)
	s.mu.RUnlock()

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-upstream:
				if !ok {
					return nil
				}
				select {
				case out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})

	return out, nil
}
