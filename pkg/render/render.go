// Package render turns aggregated journal summaries into text, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/track/pkg/core"
)

// DayLayout is the header format of a day.
const DayLayout = "2006-01-02"

// Format selects an output renderer.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or yaml)", s)
	}
}

// Write renders days to w in the given format.
func Write(w io.Writer, f Format, days []core.DaySummary) error {
	switch f {
	case FormatJSON:
		return JSON(w, days)
	case FormatYAML:
		return YAML(w, days)
	default:
		return Text(w, days)
	}
}

// Text writes an aligned table. A day is printed only on its first row and
// a category only on its first row within the day. Log texts appear with an
// "xN" suffix when repeated; quantities as "<sum><unit>".
func Text(w io.Writer, days []core.DaySummary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for _, day := range days {
		dayCol := day.Day.Format(DayLayout)
		for _, cat := range day.Categories {
			catCol := cat.Category
			for _, line := range bucketLines(cat.Bucket) {
				if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", dayCol, catCol, line); err != nil {
					return err
				}
				dayCol, catCol = "", ""
			}
		}
	}
	return tw.Flush()
}

func bucketLines(b core.Bucket) []string {
	lines := make([]string, 0, len(b.Logs)+len(b.Quantities))

	for _, text := range sortedKeys(b.Logs) {
		if n := b.Logs[text]; n > 1 {
			lines = append(lines, fmt.Sprintf("%s x%d", text, n))
		} else {
			lines = append(lines, text)
		}
	}
	for _, unit := range sortedKeys(b.Quantities) {
		lines = append(lines, b.Quantities[unit].String()+unit)
	}
	return lines
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Entries writes raw entries one per line, as stored in the journal.
func Entries(w io.Writer, entries []core.Entry, format func(core.Entry) string) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, format(e)); err != nil {
			return err
		}
	}
	return nil
}

// --- Structured output ---

type quantityDoc struct {
	Unit string `json:"unit" yaml:"unit"`
	Sum  string `json:"sum" yaml:"sum"`
}

type logDoc struct {
	Text  string `json:"text" yaml:"text"`
	Count int    `json:"count" yaml:"count"`
}

type categoryDoc struct {
	Category   string        `json:"category" yaml:"category"`
	Logs       []logDoc      `json:"logs,omitempty" yaml:"logs,omitempty"`
	Quantities []quantityDoc `json:"quantities,omitempty" yaml:"quantities,omitempty"`
}

type dayDoc struct {
	Day        string        `json:"day" yaml:"day"`
	Categories []categoryDoc `json:"categories" yaml:"categories"`
}

func documents(days []core.DaySummary) []dayDoc {
	docs := make([]dayDoc, 0, len(days))
	for _, day := range days {
		d := dayDoc{Day: day.Day.Format(DayLayout)}
		for _, cat := range day.Categories {
			c := categoryDoc{Category: cat.Category}
			for _, text := range sortedKeys(cat.Bucket.Logs) {
				c.Logs = append(c.Logs, logDoc{Text: text, Count: cat.Bucket.Logs[text]})
			}
			for _, unit := range sortedKeys(cat.Bucket.Quantities) {
				c.Quantities = append(c.Quantities, quantityDoc{Unit: unit, Sum: cat.Bucket.Quantities[unit].String()})
			}
			d.Categories = append(d.Categories, c)
		}
		docs = append(docs, d)
	}
	return docs
}

// JSON writes the summary as an indented JSON array.
func JSON(w io.Writer, days []core.DaySummary) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(documents(days))
}

// YAML writes the summary as a YAML sequence.
func YAML(w io.Writer, days []core.DaySummary) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(documents(days)); err != nil {
		return err
	}
	return encoder.Close()
}
