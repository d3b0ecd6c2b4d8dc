package amqp

import (
	"context"
	"errors"
	"strings"

	"github.com/aretw0/track/pkg/core"
)

const (
	replyOK    = "ok: "
	replyError = "error: "
)

// EntryAdder is the single integration point the bot needs from the core.
type EntryAdder interface {
	AddEntry(ctx context.Context, category, value string) (core.Entry, error)
}

// ParseMessage splits a "<category> <value>" body on its first space.
func ParseMessage(body []byte) (category, value string, err error) {
	text := strings.TrimSpace(string(body))
	category, value, _ = strings.Cut(text, " ")

	if category == "" {
		return "", "", core.ErrEmptyCategory
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", "", core.ErrEmptyValue
	}
	return category, value, nil
}

// Handler turns message bodies into journal entries.
type Handler struct {
	adder  EntryAdder
	format func(core.Entry) string
}

// NewHandler creates a handler that acknowledges with the stored line
// rendered by format.
func NewHandler(adder EntryAdder, format func(core.Entry) string) *Handler {
	return &Handler{adder: adder, format: format}
}

// Handle records the message and returns the acknowledgement text.
// The returned error is non-nil only for store failures, which the consumer
// treats as undeliverable; rejected input is answered and acknowledged.
// An entry stored without its commit is answered "ok" with a warning, so the
// sender does not retry it into a duplicate.
func (h *Handler) Handle(ctx context.Context, body []byte) (string, error) {
	category, value, err := ParseMessage(body)
	if err != nil {
		return replyError + err.Error(), nil
	}

	entry, err := h.adder.AddEntry(ctx, category, value)
	if errors.Is(err, core.ErrNotCommitted) {
		return replyOK + h.format(entry) + " (warning: " + err.Error() + ")", nil
	}
	if err != nil {
		if errors.Is(err, core.ErrStoreIO) {
			return replyError + err.Error(), err
		}
		return replyError + err.Error(), nil
	}

	return replyOK + h.format(entry), nil
}
