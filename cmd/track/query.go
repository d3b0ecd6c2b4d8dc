package main

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/track"
	"github.com/aretw0/track/pkg/core"
	"github.com/aretw0/track/pkg/render"
)

var (
	queryRange  int
	queryFormat string
	queryGlob   bool
)

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query [category]",
	Short: "Summarize the journal per day and category",
	Long: `Summarize the last --range days (today included). Repeated logs are counted,
quantities are summed per unit. The optional category is a case-insensitive
substring filter; with --glob it is a pattern where ':' separates levels.`,
	Example: `  track query
  track query work --range 30
  track query 'work:*' --glob --format json`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, err := render.ParseFormat(queryFormat)
		if err != nil {
			fatal("Invalid format", err)
		}

		service, err := openService(cmd, track.WithReadOnly(true))
		if err != nil {
			fatal("Failed to open journal", err)
		}

		days, err := service.Summarize(context.Background(), buildQuery(cmd, args, queryRange, queryGlob))
		if err != nil {
			fatal("Failed to query journal", err)
		}

		if err := render.Write(os.Stdout, format, days); err != nil {
			fatal("Failed to render summary", err)
		}
	},
}

// buildQuery reads the optional category argument and falls back to
// TRACK_RANGE_DAYS when --range was not given. The filter is lowercased
// like the categories stored by add.
func buildQuery(cmd *cobra.Command, args []string, rangeDays int, glob bool) core.Query {
	q := core.Query{RangeDays: cfg.RangeDays, Glob: glob}
	if cmd.Flags().Changed("range") {
		q.RangeDays = rangeDays
	}
	if len(args) > 0 {
		q.Category = strings.ToLower(strings.TrimSpace(args[0]))
	}
	return q
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().IntVarP(&queryRange, "range", "r", 7, "Number of days to include, today counting as one")
	queryCmd.Flags().BoolVar(&queryGlob, "glob", false, "Match the category as a glob pattern (work:*, work:**)")
	queryCmd.Flags().StringVar(&queryFormat, "format", string(render.FormatText), "Output format: text, json or yaml")
}
