package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/track"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the journal file",
	Long: `Create the journal (and its directory) if it does not exist yet.
With --versioning the directory also becomes a Git repository.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := openService(cmd, track.WithAutoInit(true)); err != nil {
			fatal("Failed to initialize journal", err)
		}

		path, err := track.ResolvePath(journalPath())
		if err != nil {
			fatal("Failed to resolve journal path", err)
		}
		fmt.Println("Initialized track journal at", path)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
