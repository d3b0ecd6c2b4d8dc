package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTrackBinary builds the CLI into dir and returns its path.
func buildTrackBinary(t *testing.T, dir string) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping CLI build in short mode")
	}
	bin := filepath.Join(dir, "track.exe")
	buildCmd := exec.Command("go", "build", "-o", bin, ".")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build track: %v\n%s", err, string(out))
	}
	return bin
}

// cli runs the built binary from dir against one journal.
type cli struct {
	bin     string
	dir     string
	journal string
}

// run returns stdout, stderr and the process error.
func (c cli) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := exec.Command(c.bin, args...)
	cmd.Dir = c.dir
	cmd.Env = append(os.Environ(),
		"TRACK_FILE="+c.journal,
		"TRACK_VERSIONING=false",
		"TRACK_RANGE_DAYS=7",
		"AMQP_URL=",
	)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func (c cli) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	stdout, stderr, err := c.run(t, args...)
	require.NoError(t, err, "track %v failed:\n%s", args, stderr)
	return stdout
}

func TestCLI(t *testing.T) {
	tempDir := t.TempDir()
	journal := filepath.Join(tempDir, "data", "journal")
	track := cli{
		bin:     buildTrackBinary(t, tempDir),
		dir:     tempDir,
		journal: journal,
	}

	out := track.mustRun(t, "init")
	assert.Contains(t, out, "Initialized track journal at")
	_, err := os.Stat(journal)
	require.NoError(t, err)

	for _, args := range [][]string{
		{"add", "run", "3km"},
		{"add", "Work", "coding"},
		{"add", "run", "2km"},
		{"add", "work", "coding"},
		{"add", "work", "writing", "the", "report"},
	} {
		track.mustRun(t, args...)
	}

	t.Run("read", func(t *testing.T) {
		out := track.mustRun(t, "list")
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 5)
		assert.True(t, strings.HasSuffix(lines[1], "] work:coding"), lines[1])
		assert.True(t, strings.HasSuffix(lines[4], "] work:writing the report"), lines[4])
	})

	t.Run("query text", func(t *testing.T) {
		out := track.mustRun(t, "query")
		assert.Contains(t, out, "run   5km")
		assert.Contains(t, out, "coding x2")
		assert.Contains(t, out, "writing the report")
	})

	t.Run("query json with filter", func(t *testing.T) {
		out := track.mustRun(t, "query", "work", "--format", "json")

		var days []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &days))
		require.Len(t, days, 1)
		categories := days[0]["categories"].([]any)
		require.Len(t, categories, 1)
		assert.Equal(t, "work", categories[0].(map[string]any)["category"])
	})

	t.Run("query filter ignores case", func(t *testing.T) {
		out := track.mustRun(t, "query", "WORK")
		assert.Contains(t, out, "coding x2")
		assert.NotContains(t, out, "5km")
	})

	t.Run("query glob", func(t *testing.T) {
		out := track.mustRun(t, "query", "r*", "--glob")
		assert.Contains(t, out, "5km")
		assert.NotContains(t, out, "coding")

		out = track.mustRun(t, "query", "r*")
		assert.Empty(t, strings.TrimSpace(out))
	})

	t.Run("query yaml", func(t *testing.T) {
		out := track.mustRun(t, "query", "run", "--format", "yaml")
		assert.Contains(t, out, "category: run")
	})

	t.Run("rejected value", func(t *testing.T) {
		_, stderr, err := track.run(t, "add", "work", "a:b")
		require.Error(t, err)
		assert.Contains(t, stderr, "invalid value")
	})

	t.Run("negative range", func(t *testing.T) {
		_, stderr, err := track.run(t, "query", "--range", "-1")
		require.Error(t, err)
		assert.Contains(t, stderr, "invalid range")
	})

	t.Run("status", func(t *testing.T) {
		out := track.mustRun(t, "status")
		var states map[string]map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &states))
		assert.Equal(t, float64(5), states["journal"]["last_load_count"])
		assert.Equal(t, "journal", states["service"]["repository_type"])
	})

	t.Run("malformed journal", func(t *testing.T) {
		f, err := os.OpenFile(journal, os.O_APPEND|os.O_WRONLY, 0644)
		require.NoError(t, err)
		_, err = f.WriteString("not an entry\n")
		require.NoError(t, err)
		require.NoError(t, f.Close())

		_, stderr, err := track.run(t, "read")
		require.Error(t, err)
		assert.Contains(t, stderr, "line 6")
		assert.Contains(t, stderr, "malformed line")
	})
}
