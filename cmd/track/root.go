package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/track"
	"github.com/aretw0/track/internal/config"
	"github.com/aretw0/track/pkg/core"
)

var (
	verbose    bool
	journal    string
	versioning bool

	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "track",
	Short: "A plain-text journal of \"category: value\" entries",
	Long: `track appends timestamped "category: value" entries to a flat text file
and summarizes them per day: repeated logs are counted, quantities are summed per unit.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()

		level := cfg.LogLevel
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)

		if err := cfg.Validate(); err != nil {
			fatal("Invalid configuration", err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&journal, "file", "f", "", "Journal file (default $TRACK_FILE or ~/.track)")
	rootCmd.PersistentFlags().BoolVar(&versioning, "versioning", false, "Commit every entry to the Git repository holding the journal (default $TRACK_VERSIONING)")
}

// journalPath applies the precedence flag > environment > default.
func journalPath() string {
	if journal != "" {
		return journal
	}
	return cfg.JournalFile
}

// openService wires the journal the way every command needs it.
func openService(cmd *cobra.Command, opts ...track.Option) (*core.Service, error) {
	useGit := cfg.Versioning
	if cmd.Flags().Changed("versioning") {
		useGit = versioning
	}

	base := []track.Option{
		track.WithLogger(slog.Default()),
		track.WithVersioning(useGit),
	}
	return track.New(journalPath(), append(base, opts...)...)
}
