// Entry is the central entity of the domain.
package core

import (
	"strconv"
	"time"
)

// Entry is one timestamped (category, value) record of the journal.
// Entries are never updated or deleted once written.
type Entry struct {
	Timestamp time.Time
	Category  string
	Value     Value
}

// Value is the closed set of things an entry can hold: a Log or a Quantity.
// Consumers are expected to type-switch over both variants.
type Value interface {
	// String renders the value as it appears in the journal file.
	String() string

	isValue()
}

// Log is freeform, non-numeric text.
type Log struct {
	Text string
}

// Quantity is a numeric magnitude with an optional unit suffix.
// Unit may be empty for dimensionless values.
type Quantity struct {
	Magnitude float64
	Unit      string
}

func (Log) isValue()      {}
func (Quantity) isValue() {}

func (l Log) String() string { return l.Text }

// String renders the magnitude with the shortest representation that
// parses back to the same float64, never using exponent notation.
func (q Quantity) String() string {
	return FormatMagnitude(q.Magnitude) + q.Unit
}

// FormatMagnitude is the single formatting rule for quantity magnitudes.
func FormatMagnitude(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}

// EventType represents the type of change observed on the journal.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventWrite  EventType = "WRITE"
	EventRemove EventType = "REMOVE"
)

// Event represents a change of the journal file.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return string(e.Type) + " " + e.Path
}
