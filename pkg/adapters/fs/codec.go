package fs

import (
	"fmt"
	"regexp"
	"time"

	"github.com/aretw0/track/pkg/core"
)

// Codec defines how a single entry is written to and read from a journal line.
type Codec interface {
	// Format renders e as one line, without the trailing newline.
	Format(e core.Entry) string
	// Parse reads a non-blank line back into an Entry.
	Parse(line string) (core.Entry, error)
}

// TimestampLayout is the layout of the bracketed timestamp.
// Parsing accepts any RFC 3339 timestamp, with or without fractional seconds.
const TimestampLayout = time.RFC3339Nano

// entryLine is `[<timestamp>] <category>:<value>`. The category group is
// greedy, so the last colon separates category from value and categories
// may be hierarchical ("work:coding").
var entryLine = regexp.MustCompile(`^\[(.*)\] (.*):(.*)$`)

// LineCodec is the default journal format.
type LineCodec struct{}

// NewLineCodec creates the default codec.
func NewLineCodec() *LineCodec {
	return &LineCodec{}
}

// Format never fails.
func (LineCodec) Format(e core.Entry) string {
	return fmt.Sprintf("[%s] %s:%s", e.Timestamp.Format(TimestampLayout), e.Category, e.Value)
}

func (LineCodec) Parse(line string) (core.Entry, error) {
	m := entryLine.FindStringSubmatch(line)
	if m == nil {
		return core.Entry{}, core.ErrMalformedLine
	}

	ts, err := time.Parse(time.RFC3339, m[1])
	if err != nil {
		return core.Entry{}, fmt.Errorf("%w: %v", core.ErrMalformedTimestamp, err)
	}

	v, err := core.Classify(m[3])
	if err != nil {
		return core.Entry{}, err
	}

	return core.Entry{
		Timestamp: ts,
		Category:  m[2],
		Value:     v,
	}, nil
}

// FormatLine renders e with the default codec.
func FormatLine(e core.Entry) string {
	return LineCodec{}.Format(e)
}

// ParseLine parses line with the default codec.
func ParseLine(line string) (core.Entry, error) {
	return LineCodec{}.Parse(line)
}
