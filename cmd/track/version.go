package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/track"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of track",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("track version %s\n", strings.TrimSpace(track.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
