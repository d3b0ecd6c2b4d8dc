package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/track"
	"github.com/aretw0/track/pkg/adapters/fs"
	"github.com/aretw0/track/pkg/render"
)

// readCmd represents the read command
var readCmd = &cobra.Command{
	Use:     "read",
	Aliases: []string{"list"},
	Short:   "Print every entry of the journal",
	Long:    `Print the raw entries in file order. The whole journal is validated; a malformed line aborts with its line number.`,
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, err := openService(cmd, track.WithReadOnly(true))
		if err != nil {
			fatal("Failed to open journal", err)
		}

		entries, err := service.ListEntries(context.Background())
		if err != nil {
			fatal("Failed to read journal", err)
		}

		if err := render.Entries(os.Stdout, entries, fs.FormatLine); err != nil {
			fatal("Failed to print entries", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
}
