package fs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/track/pkg/core"
	"github.com/aretw0/track/pkg/git"
)

// maxLineSize bounds a single journal line when scanning.
const maxLineSize = 1 << 20

// Repository implements core.Repository on top of one append-only text file,
// optionally versioned with Git.
type Repository struct {
	Path   string
	git    *git.Client
	codec  Codec
	config Config

	mu            sync.RWMutex
	watcherActive bool
	lastAppend    *time.Time
	lastLoadCount int
}

var (
	_ core.Repository = (*Repository)(nil)
	_ core.Watchable  = (*Repository)(nil)
)

// Config holds the configuration for the file repository.
type Config struct {
	Path         string       // journal file
	Versioning   bool         // commit every append to the Git repo holding Path
	AutoInit     bool         // git init the journal directory when it is not a repo yet
	ReadOnly     bool         // reject appends and never create files
	Logger       *slog.Logger // optional
	Codec        Codec        // defaults to LineCodec
	ErrorHandler func(error)  // receives watcher errors; falls back to Logger
}

// NewRepository creates a new file-backed repository.
func NewRepository(config Config) *Repository {
	if config.Codec == nil {
		config.Codec = NewLineCodec()
	}
	return &Repository{
		Path:   config.Path,
		git:    git.NewClient(filepath.Dir(config.Path), git.DefaultLockName, config.Logger),
		codec:  config.Codec,
		config: config,
	}
}

// Initialize creates the journal directory and an empty journal if absent,
// and prepares Git when versioning is enabled.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.ReadOnly {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(r.Path), 0755); err != nil {
		return fmt.Errorf("%w: failed to create journal directory: %v", core.ErrStoreIO, err)
	}
	if err := r.ensureFile(); err != nil {
		return err
	}

	if !r.config.Versioning {
		return nil
	}

	if !git.IsInstalled() {
		return fmt.Errorf("git is not installed")
	}
	if r.git.IsRepo() {
		return nil
	}
	if !r.config.AutoInit {
		return fmt.Errorf("journal directory is not a git repository: %s", filepath.Dir(r.Path))
	}
	if err := r.git.Init(); err != nil {
		return fmt.Errorf("failed to git init: %w", err)
	}
	r.debug("initialized git repository", "dir", filepath.Dir(r.Path))
	return nil
}

func (r *Repository) ensureFile() error {
	f, err := os.OpenFile(r.Path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrStoreIO, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", core.ErrStoreIO, err)
	}
	return nil
}

// Load reads every entry in file order. Blank lines are skipped; the first
// malformed line aborts the load with a *core.LineError.
func (r *Repository) Load(ctx context.Context) ([]core.Entry, error) {
	f, err := os.Open(r.Path)
	if errors.Is(err, os.ErrNotExist) {
		if r.config.ReadOnly {
			return nil, nil
		}
		if err := r.ensureFile(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrStoreIO, err)
	}
	defer f.Close()

	var entries []core.Entry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo%1024 == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}

		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		e, err := r.codec.Parse(line)
		if err != nil {
			return nil, &core.LineError{Line: lineNo, Text: line, Err: err}
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrStoreIO, err)
	}

	r.mu.Lock()
	r.lastLoadCount = len(entries)
	r.mu.Unlock()

	r.debug("journal loaded", "path", r.Path, "entries", len(entries))
	return entries, nil
}

// Append writes e as a new line at the end of the journal.
//
// Workflow:
//  1. (If versioning) acquire the lock file next to the journal.
//  2. Open in append mode, write the line and its newline, close.
//  3. (If versioning) 'git add' and 'git commit' with the context change reason.
//     Failures here wrap core.ErrNotCommitted: the line is already stored.
func (r *Repository) Append(ctx context.Context, e core.Entry) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}

	if r.config.Versioning {
		unlock, err := r.git.Lock()
		if err != nil {
			return fmt.Errorf("failed to acquire git lock: %w", err)
		}
		defer unlock()
	}

	line := r.codec.Format(e) + "\n"
	if err := r.appendLine(line); err != nil {
		return err
	}

	now := time.Now()
	r.mu.Lock()
	r.lastAppend = &now
	r.mu.Unlock()
	r.debug("entry appended", "path", r.Path, "category", e.Category)

	if !r.config.Versioning {
		return nil
	}

	if err := r.git.Add(filepath.Base(r.Path)); err != nil {
		return fmt.Errorf("%w: git add: %v", core.ErrNotCommitted, err)
	}

	msg := git.FormatChangeReason(git.ChangeTypeFeat, e.Category, e.Value.String(), "")
	if val, ok := ctx.Value(core.ChangeReasonKey).(string); ok && val != "" {
		msg = git.AppendFooter(val)
	}
	if err := r.git.Commit(msg); err != nil {
		return fmt.Errorf("%w: git commit: %v", core.ErrNotCommitted, err)
	}
	return nil
}

func (r *Repository) appendLine(line string) error {
	f, err := os.OpenFile(r.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrStoreIO, err)
	}
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", core.ErrStoreIO, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", core.ErrStoreIO, err)
	}
	return nil
}

func (r *Repository) debug(msg string, args ...any) {
	if r.config.Logger != nil {
		r.config.Logger.Debug(msg, args...)
	}
}
