package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/track/internal/config"
	"github.com/aretw0/track/pkg/adapters/fs"
)

func newRangeCmd() (*cobra.Command, *int) {
	var r int
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().IntVarP(&r, "range", "r", 7, "")
	return cmd, &r
}

func TestBuildQuery(t *testing.T) {
	cfg = &config.Config{RangeDays: 30}

	t.Run("environment default", func(t *testing.T) {
		cmd, r := newRangeCmd()
		require.NoError(t, cmd.Flags().Parse(nil))

		q := buildQuery(cmd, nil, *r, false)
		assert.Equal(t, 30, q.RangeDays)
		assert.Empty(t, q.Category)
		assert.False(t, q.Glob)
	})

	t.Run("flag wins", func(t *testing.T) {
		cmd, r := newRangeCmd()
		require.NoError(t, cmd.Flags().Parse([]string{"--range", "2"}))

		q := buildQuery(cmd, []string{"work"}, *r, false)
		assert.Equal(t, 2, q.RangeDays)
		assert.Equal(t, "work", q.Category)
	})

	t.Run("filter is lowercased like stored categories", func(t *testing.T) {
		cmd, r := newRangeCmd()
		require.NoError(t, cmd.Flags().Parse(nil))

		q := buildQuery(cmd, []string{" Work:* "}, *r, true)
		assert.Equal(t, "work:*", q.Category)
		assert.True(t, q.Glob)
	})
}

func TestJournalPath(t *testing.T) {
	cfg = &config.Config{JournalFile: "/env/journal"}
	t.Cleanup(func() { journal = "" })

	journal = ""
	assert.Equal(t, "/env/journal", journalPath())

	journal = "/flag/journal"
	assert.Equal(t, "/flag/journal", journalPath())
}

func TestBuildStatusTree(t *testing.T) {
	tree := buildStatusTree(fs.RepositoryState{Path: "/j", LastLoadCount: 3, Versioning: true})

	assert.Equal(t, "Journal", tree.Name)
	assert.Equal(t, "3", tree.Metadata["entries"])
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "running", tree.Children[0].Status)
}
