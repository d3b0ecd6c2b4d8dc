package render

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/track/pkg/core"
)

func sampleDays() []core.DaySummary {
	return []core.DaySummary{
		{
			Day: time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
			Categories: []core.CategorySummary{
				{
					Category: "run",
					Bucket: core.Bucket{
						Logs:       map[string]int{},
						Quantities: map[string]decimal.Decimal{"km": decimal.NewFromInt(5)},
					},
				},
				{
					Category: "work",
					Bucket: core.Bucket{
						Logs:       map[string]int{"reading": 1, "coding": 2},
						Quantities: map[string]decimal.Decimal{},
					},
				},
			},
		},
		{
			Day: time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC),
			Categories: []core.CategorySummary{
				{
					Category: "sleep",
					Bucket: core.Bucket{
						Logs:       map[string]int{},
						Quantities: map[string]decimal.Decimal{"h": decimal.RequireFromString("7.5")},
					},
				},
			},
		},
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, sampleDays()))

	want := "" +
		"2026-10-17  run    5km\n" +
		"            work   coding x2\n" +
		"                   reading\n" +
		"2026-10-16  sleep  7.5h\n"
	assert.Equal(t, want, buf.String())
}

func TestText_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sampleDays()))

	var docs []dayDoc
	require.NoError(t, json.Unmarshal(buf.Bytes(), &docs))
	require.Len(t, docs, 2)
	assert.Equal(t, "2026-10-17", docs[0].Day)
	assert.Equal(t, []logDoc{{Text: "coding", Count: 2}, {Text: "reading", Count: 1}}, docs[0].Categories[1].Logs)
	assert.Equal(t, []quantityDoc{{Unit: "h", Sum: "7.5"}}, docs[1].Categories[0].Quantities)
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, sampleDays()))

	var docs []dayDoc
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &docs))
	require.Len(t, docs, 2)
	assert.Equal(t, "run", docs[0].Categories[0].Category)
	assert.Equal(t, "5", docs[0].Categories[0].Quantities[0].Sum)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "TEXT": FormatText, "json": FormatJSON, " yaml ": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestEntries(t *testing.T) {
	entries := []core.Entry{
		{Category: "a", Value: core.Log{Text: "x"}},
		{Category: "b", Value: core.Quantity{Magnitude: 1, Unit: "u"}},
	}
	var buf bytes.Buffer
	require.NoError(t, Entries(&buf, entries, func(e core.Entry) string {
		return e.Category + "=" + e.Value.String()
	}))
	assert.Equal(t, "a=x\nb=1u\n", buf.String())
}
