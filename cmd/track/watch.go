package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/track/pkg/core"
	"github.com/aretw0/track/pkg/render"
)

var (
	watchRange int
	watchGlob  bool
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [category]",
	Short: "Re-print the summary whenever the journal changes",
	Long: `Print the summary like 'query' and print it again every time the journal
file is written, for example by 'track add' from another terminal or by the bot.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, err := openService(cmd)
		if err != nil {
			fatal("Failed to open journal", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		q := buildQuery(cmd, args, watchRange, watchGlob)
		if err := printSummary(ctx, service, q); err != nil {
			fatal("Failed to query journal", err)
		}

		events, err := service.Watch(ctx)
		if err != nil {
			fatal("Failed to watch journal", err)
		}

		for event := range events {
			slog.Debug("journal changed", "event", event.String())
			if event.Type == core.EventRemove {
				fmt.Fprintln(os.Stderr, "journal removed:", event.Path)
				continue
			}
			if err := printSummary(ctx, service, q); err != nil {
				// The file may be mid-write or hand-edited; keep watching.
				slog.Error("failed to refresh summary", "error", err)
			}
		}
	},
}

func printSummary(ctx context.Context, service *core.Service, q core.Query) error {
	days, err := service.Summarize(ctx, q)
	if err != nil {
		return err
	}
	fmt.Printf("--- %s\n", time.Now().Format(time.TimeOnly))
	return render.Text(os.Stdout, days)
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().IntVarP(&watchRange, "range", "r", 7, "Number of days to include, today counting as one")
	watchCmd.Flags().BoolVar(&watchGlob, "glob", false, "Match the category as a glob pattern (work:*, work:**)")
}
