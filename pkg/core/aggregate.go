package core

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/shopspring/decimal"
)

// Query selects which entries are summarized.
type Query struct {
	// Category is matched as a substring of the entry category, so "work"
	// matches "work:coding". Empty matches everything.
	Category string

	// Glob matches Category as a doublestar pattern instead, with ":" acting
	// as the path separator ("work:*", "work:**").
	Glob bool

	// RangeDays is the lookback window. Entries dated exactly RangeDays ago
	// are excluded.
	RangeDays int
}

// Bucket is the summary of one category on one day.
type Bucket struct {
	Logs       map[string]int             // log text -> occurrences
	Quantities map[string]decimal.Decimal // unit -> summed magnitude
}

// CategorySummary pairs a category with its bucket.
type CategorySummary struct {
	Category string
	Bucket   Bucket
}

// DaySummary groups the category summaries of one calendar day.
type DaySummary struct {
	Day        time.Time // local midnight
	Categories []CategorySummary
}

type dayKey struct {
	year  int
	month time.Month
	day   int
}

// Aggregate filters entries by q and groups them per day and per category.
//
// Days keep the order in which they are first met in entries. Inside a day
// categories are sorted lexicographically. Calendar days are computed in
// now's location.
func Aggregate(entries []Entry, q Query, now time.Time) ([]DaySummary, error) {
	if q.RangeDays < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRange, q.RangeDays)
	}

	match, err := categoryMatcher(q.Category, q.Glob)
	if err != nil {
		return nil, err
	}

	loc := now.Location()
	minDate := midnight(now, loc).AddDate(0, 0, -q.RangeDays)

	var order []dayKey
	byDay := make(map[dayKey][]Entry)
	for _, e := range entries {
		day := midnight(e.Timestamp, loc)
		if !day.After(minDate) || !match(e.Category) {
			continue
		}
		y, m, d := day.Date()
		k := dayKey{y, m, d}
		if _, seen := byDay[k]; !seen {
			order = append(order, k)
		}
		byDay[k] = append(byDay[k], e)
	}

	out := make([]DaySummary, 0, len(order))
	for _, k := range order {
		out = append(out, DaySummary{
			Day:        time.Date(k.year, k.month, k.day, 0, 0, 0, 0, loc),
			Categories: groupCategories(byDay[k]),
		})
	}
	return out, nil
}

// groupCategories sorts a day's entries by category and folds each run of
// equal categories into a bucket.
func groupCategories(day []Entry) []CategorySummary {
	sorted := make([]Entry, len(day))
	copy(sorted, day)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Category < sorted[j].Category
	})

	var groups []CategorySummary
	for start := 0; start < len(sorted); {
		end := start + 1
		for end < len(sorted) && sorted[end].Category == sorted[start].Category {
			end++
		}
		groups = append(groups, CategorySummary{
			Category: sorted[start].Category,
			Bucket:   NewBucket(sorted[start:end]),
		})
		start = end
	}
	return groups
}

// NewBucket tallies log texts and sums quantities per unit.
func NewBucket(entries []Entry) Bucket {
	b := Bucket{
		Logs:       make(map[string]int),
		Quantities: make(map[string]decimal.Decimal),
	}
	for _, e := range entries {
		switch v := e.Value.(type) {
		case Log:
			b.Logs[v.Text]++
		case Quantity:
			b.Quantities[v.Unit] = b.Quantities[v.Unit].Add(decimal.NewFromFloat(v.Magnitude))
		}
	}
	return b
}

func midnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func categoryMatcher(filter string, glob bool) (func(string) bool, error) {
	if !glob || filter == "" {
		return func(category string) bool {
			return strings.Contains(category, filter)
		}, nil
	}

	pattern := strings.ReplaceAll(filter, ":", "/")
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
	}
	return func(category string) bool {
		ok, _ := doublestar.Match(pattern, strings.ReplaceAll(category, ":", "/"))
		return ok
	}, nil
}
