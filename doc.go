// Package track is the Composition Root for the track journal.
//
// It connects the core domain (entries, quantity classification and the
// aggregation engine) with the infrastructure adapters (the append-only
// journal file, optional Git versioning) using the Hexagonal Architecture
// pattern.
//
// A journal is a flat text file with one entry per line:
//
//	[2026-10-17T09:12:44+02:00] run:5km
//	[2026-10-17T13:01:09+02:00] work:coding
//
// Values that start with a number are quantities (magnitude plus unit) and
// are summed per unit; anything else is a log whose repetitions are counted.
//
// Usage:
//
//	svc, err := track.New("~/.track", track.WithLogger(logger))
//
//	_, err = svc.AddEntry(ctx, "run", "5km")
//
//	days, err := svc.Summarize(ctx, track.Query{RangeDays: 7})
package track
