package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/track"
	"github.com/aretw0/track/pkg/adapters/fs"
)

var (
	statusDiagram bool
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of the journal and its service",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, err := openService(cmd, track.WithReadOnly(true))
		if err != nil {
			fatal("Failed to open journal", err)
		}

		// Populate the load counters.
		if _, err := service.ListEntries(cmd.Context()); err != nil {
			fatal("Failed to read journal", err)
		}

		states := map[string]any{
			service.ComponentType(): service.State(),
		}
		repo := service.Repository()
		if comp, ok := repo.(introspection.Component); ok {
			if intro, ok := repo.(introspection.Introspectable); ok {
				states[comp.ComponentType()] = intro.State()
			}
		}

		if statusDiagram {
			if state, ok := states["journal"].(fs.RepositoryState); ok {
				config := introspection.DefaultDiagramConfig()
				config.SecondaryID = "journal"
				config.SecondaryLabel = "Journal Topology"
				fmt.Println(introspection.TreeDiagram(buildStatusTree(state), config))
				return
			}
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(states); err != nil {
			fatal("Failed to encode status", err)
		}
	},
}

type statusNode struct {
	Name     string
	Status   string
	Metadata map[string]string
	Children []statusNode
}

// buildStatusTree maps the journal state onto introspection statuses.
func buildStatusTree(state fs.RepositoryState) statusNode {
	versioning := "stopped"
	if state.Versioning {
		versioning = "running"
	}

	return statusNode{
		Name:   "Journal",
		Status: "running",
		Metadata: map[string]string{
			"type":    "container",
			"path":    state.Path,
			"entries": fmt.Sprintf("%d", state.LastLoadCount),
		},
		Children: []statusNode{
			{
				Name:   "Git",
				Status: versioning,
				Metadata: map[string]string{
					"type": "process",
				},
			},
		},
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusDiagram, "diagram", false, "Print a Mermaid diagram instead of JSON")
}
