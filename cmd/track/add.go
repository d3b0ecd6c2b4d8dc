package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/track"
	"github.com/aretw0/track/pkg/adapters/fs"
	"github.com/aretw0/track/pkg/core"
)

var (
	addMessage string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <category> <value>",
	Short: "Append an entry to the journal",
	Long: `Append "category: value" stamped with the current time.
Values starting with a number are stored as quantities ("5km", "-2.5", "7.5h");
everything else is a log. Remaining arguments are joined into the value.`,
	Example: `  track add run 5km
  track add work writing the report`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		service, err := openService(cmd)
		if err != nil {
			fatal("Failed to open journal", err)
		}

		ctx := context.Background()
		if addMessage != "" {
			ctx = context.WithValue(ctx, core.ChangeReasonKey, track.AppendFooter(addMessage))
		}

		entry, err := service.AddEntry(ctx, args[0], strings.Join(args[1:], " "))
		if errors.Is(err, core.ErrNotCommitted) {
			slog.Warn("entry stored without a commit", "error", err)
		} else if err != nil {
			fatal("Failed to add entry", err)
		}

		fmt.Println(fs.FormatLine(entry))
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addMessage, "message", "m", "", "Commit message when versioning is enabled")
}
