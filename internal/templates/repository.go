package templates

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Repository resolves ordered template lists from JSON files on disk.
// Parsed files are cached; Watch invalidates the cache on filesystem changes
// so templates can be edited without restarting the process.
type Repository struct {
	dir string

	mu    sync.RWMutex
	cache map[string][]Message

	log *slog.Logger
}

func NewRepository(dir string, log *slog.Logger) (*Repository, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat templates dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("templates path %q is not a directory", dir)
	}

	return &Repository{
		dir:   dir,
		cache: make(map[string][]Message),
		log:   log.With("component", "templates"),
	}, nil
}

// Resolve returns the ordered template list for the given level. Bot-specific
// overrides take precedence over language/event defaults. A missing resolution
// is a hard error wrapping ErrNoTemplates.
func (r *Repository) Resolve(level int, language string, isEvent bool, botID string) ([]Message, error) {
	for _, path := range candidatePaths(r.dir, level, language, isEvent, botID) {
		messages, ok, err := r.load(path)
		if err != nil {
			return nil, err
		}
		if ok {
			return messages, nil
		}
	}

	return nil, fmt.Errorf("level=%d language=%q event=%t bot=%s: %w",
		level, language, isEvent, botID, ErrNoTemplates)
}

func (r *Repository) load(path string) ([]Message, bool, error) {
	r.mu.RLock()
	cached, ok := r.cache[path]
	r.mu.RUnlock()
	if ok {
		return cached, true, nil
	}

	messages, err := loadLevelFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}

	r.mu.Lock()
	r.cache[path] = messages
	r.mu.Unlock()

	return messages, true, nil
}

// Watch invalidates the cache whenever anything under the templates dir changes.
// It returns after the watcher is installed and runs until ctx is cancelled.
func (r *Repository) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	err = filepath.WalkDir(r.dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return fmt.Errorf("watch templates dir: %w", err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				r.log.Info("Templates changed, invalidating cache", "path", event.Name, "op", event.Op.String())
				r.invalidate()
				// new subdirectories (e.g. a fresh bot override) must be watched too
				if event.Op.Has(fsnotify.Create) {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						if err := watcher.Add(event.Name); err != nil {
							r.log.Warn("Failed to watch new templates dir", "path", event.Name, "error", err)
						}
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				r.log.Warn("Templates watcher error", "error", err)
			}
		}
	}()

	return nil
}

func (r *Repository) invalidate() {
	r.mu.Lock()
	r.cache = make(map[string][]Message)
	r.mu.Unlock()
}
