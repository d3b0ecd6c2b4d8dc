package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Lock(t *testing.T) {
	tmpDir := t.TempDir()
	client := NewClient(tmpDir, "", nil)

	unlock, err := client.Lock()
	require.NoError(t, err)

	lockPath := filepath.Join(tmpDir, DefaultLockName)
	_, err = os.Stat(lockPath)
	assert.NoError(t, err, "lock file not created")

	unlock()

	_, err = os.Stat(lockPath)
	assert.True(t, os.IsNotExist(err), "lock file not removed after unlock")
}

func TestClient_LockTimeout(t *testing.T) {
	tmpDir := t.TempDir()
	client := NewClient(tmpDir, "custom.lock", nil)
	client.LockTimeout = 50 * time.Millisecond

	unlock, err := client.Lock()
	require.NoError(t, err)
	defer unlock()

	_, err = client.Lock()
	assert.ErrorIs(t, err, ErrLockTimeout)
}

func TestClient_Init(t *testing.T) {
	if !IsInstalled() {
		t.Skip("git not installed")
	}
	tmpDir := t.TempDir()
	client := NewClient(tmpDir, "", nil)

	require.NoError(t, client.Init())

	_, err := os.Stat(filepath.Join(tmpDir, ".git"))
	assert.NoError(t, err, ".git directory not created")
	assert.True(t, client.IsRepo())
}

func TestFormatChangeReason(t *testing.T) {
	tests := []struct {
		name    string
		ctype   string
		scope   string
		subject string
		body    string
		want    string
	}{
		{"simple", "feat", "", "log work", "", "feat: log work\n\nRecorded-by: track"},
		{"with scope", "feat", "work", "5km", "", "feat(work): 5km\n\nRecorded-by: track"},
		{"default type", "", "", "tidy", "", "chore: tidy\n\nRecorded-by: track"},
		{"with body", "docs", "", "note", " details \n", "docs: note\n\ndetails\n\nRecorded-by: track"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatChangeReason(tt.ctype, tt.scope, tt.subject, tt.body))
		})
	}
}

func TestAppendFooter(t *testing.T) {
	assert.Equal(t, "msg\n\nRecorded-by: track", AppendFooter("msg\n"))
	already := "msg\n\nRecorded-by: track"
	assert.Equal(t, already, AppendFooter(already))
}
