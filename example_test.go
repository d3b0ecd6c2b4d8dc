package track_test

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/track"
	"github.com/aretw0/track/pkg/render"
)

// Example_basic records a few entries and prints the weekly summary.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "track-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	now := time.Date(2026, 10, 17, 18, 0, 0, 0, time.UTC)
	svc, err := track.New(filepath.Join(tmpDir, "journal"),
		track.WithClock(func() time.Time { return now }),
	)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	for _, e := range [][2]string{
		{"run", "3km"},
		{"work", "coding"},
		{"run", "2km"},
		{"work", "coding"},
	} {
		if _, err := svc.AddEntry(ctx, e[0], e[1]); err != nil {
			log.Fatal(err)
		}
	}

	days, err := svc.Summarize(ctx, track.Query{RangeDays: 7})
	if err != nil {
		log.Fatal(err)
	}

	if err := render.Text(os.Stdout, days); err != nil {
		log.Fatal(err)
	}
	// Output:
	// 2026-10-17  run   5km
	//             work  coding x2
}
