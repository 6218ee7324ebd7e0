// ABOUTME: Command surface composing the word and activity stores
// ABOUTME: Open loads both JSON files before any command is served
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/harper/wordbook/internal/store"
)

// Options configures an App.
type Options struct {
	// DataDir is the application-local data directory.
	DataDir string
	Logger  *zap.Logger
	// Now supplies the clock used for today's activity date.
	Now func() time.Time
}

// App owns the process state: both stores and the files they mirror to.
type App struct {
	files    *store.Files
	words    *store.Words
	activity *store.Activity
	logger   *zap.Logger
	now      func() time.Time
}

// Open builds the stores under opts.DataDir and loads their files.
func Open(ctx context.Context, opts Options) (*App, error) {
	if opts.DataDir == "" {
		return nil, fmt.Errorf("%w: data directory required", store.ErrInvalidArgument)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	files := store.NewFiles(opts.DataDir)
	a := &App{
		files:    files,
		words:    store.NewWords(files, logger.Named("words")),
		activity: store.NewActivity(files, logger.Named("dates")),
		logger:   logger,
		now:      now,
	}

	if err := a.Reload(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// Reload replaces both collections with the contents of their files.
func (a *App) Reload(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := a.words.Load(); err != nil {
		return fmt.Errorf("failed to load words: %w", err)
	}
	if err := a.activity.Load(); err != nil {
		return fmt.Errorf("failed to load dates: %w", err)
	}
	return nil
}

// DataDir returns the directory holding the JSON files.
func (a *App) DataDir() string {
	return a.files.DataDir()
}

// Files exposes the file store for backup and restore.
func (a *App) Files() *store.Files {
	return a.files
}

// Today returns the current date in the activity date layout.
func (a *App) Today() string {
	return a.now().Format(store.DateLayout)
}
