package git

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// DefaultLockName is the lock file created next to the journal while a
// versioned append is in progress.
const DefaultLockName = ".track.lock"

// ErrLockTimeout is returned when the lock could not be acquired in time.
var ErrLockTimeout = errors.New("timed out waiting for lock")

// Client wraps git command execution with a file-based lock for process safety.
type Client struct {
	WorkDir     string
	Logger      *slog.Logger
	LockTimeout time.Duration
	lockPath    string
}

// NewClient creates a new git client for the given working directory.
// An empty lockName falls back to DefaultLockName.
func NewClient(workDir, lockName string, logger *slog.Logger) *Client {
	if lockName == "" {
		lockName = DefaultLockName
	}
	return &Client{
		WorkDir:     workDir,
		Logger:      logger,
		LockTimeout: 10 * time.Second,
		lockPath:    lockName,
	}
}

// IsInstalled reports whether a git binary is on PATH.
func IsInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// IsRepo reports whether WorkDir is inside a git work tree.
func (c *Client) IsRepo() bool {
	out, err := c.Run("rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// Lock acquires the file-based lock, retrying until LockTimeout elapses.
func (c *Client) Lock() (func(), error) {
	fullLockPath := filepath.Join(c.WorkDir, c.lockPath)
	deadline := time.Now().Add(c.LockTimeout)

	for {
		f, err := os.OpenFile(fullLockPath, os.O_CREATE|os.O_EXCL, 0666)
		if err == nil {
			f.Close()
			return func() {
				os.Remove(fullLockPath)
			}, nil
		}

		if !os.IsExist(err) {
			return nil, fmt.Errorf("failed to acquire lock: %w", err)
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: %s", ErrLockTimeout, fullLockPath)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// Run executes a raw git command in the working directory.
// NOTE: It does NOT acquire the lock. The caller must hold Client.Lock() for writes.
func (c *Client) Run(args ...string) (string, error) {
	if c.Logger != nil {
		c.Logger.Debug("executing git", "args", args, "dir", c.WorkDir)
	}

	cmd := exec.Command("git", args...)
	cmd.Dir = c.WorkDir

	out, err := cmd.CombinedOutput()
	output := string(out)

	if err != nil {
		return output, fmt.Errorf("git %s failed: %w\nOutput: %s", args[0], err, output)
	}

	return strings.TrimSpace(output), nil
}

// Init initializes a new git repository. Re-running it is harmless.
func (c *Client) Init() error {
	_, err := c.Run("init")
	return err
}

// Add adds files to the stage.
func (c *Client) Add(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	args := append([]string{"add"}, files...)
	_, err := c.Run(args...)
	return err
}

// Commit records staged changes.
func (c *Client) Commit(msg string) error {
	_, err := c.Run("commit", "-m", msg)
	return err
}

// Status returns the porcelain status of the repo.
func (c *Client) Status() (string, error) {
	return c.Run("status", "--porcelain")
}
