// Package watch provides file-watching with debounced rebuild callbacks.
//
// It monitors one directory for changes to files matching glob patterns and
// invokes a callback after a quiet period, so the multiple events editors
// emit for a single save coalesce into one rebuild.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is the quiet period after the last filesystem event before
// the callback fires.
const defaultDebounce = 250 * time.Millisecond

// Config holds the parameters for a Watcher.
type Config struct {
	// Dir is the directory to watch (non-recursive).
	Dir string

	// Patterns select which files trigger the callback, as doublestar globs
	// matched against base names (e.g. "*.md"). Empty means all files.
	Patterns []string

	// Debounce overrides the default quiet period when positive.
	Debounce time.Duration

	// OnChange runs after the debounce window closes with the deduplicated
	// base names of changed files. Returning an error stops the watcher.
	OnChange func(ctx context.Context, changed []string) error

	// Errf receives non-fatal watcher diagnostics. Nil is a no-op.
	Errf func(format string, args ...any)
}

// Watcher monitors a directory and fires a debounced callback when matching
// files change.
type Watcher struct {
	cfg      Config
	fsw      *fsnotify.Watcher
	debounce time.Duration
}

// New creates a Watcher for cfg.Dir. Patterns are validated eagerly so an
// invalid glob fails at construction time rather than silently never
// matching.
func New(cfg Config) (*Watcher, error) {
	for _, pat := range cfg.Patterns {
		if _, err := doublestar.Match(pat, ""); err != nil {
			return nil, fmt.Errorf("watch: invalid pattern %q: %w", pat, err)
		}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(cfg.Dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch: add directory %q: %w", cfg.Dir, err)
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	return &Watcher{cfg: cfg, fsw: fsw, debounce: debounce}, nil
}

// Run blocks until ctx is cancelled or the OnChange callback returns an
// error, dispatching debounced callbacks for matching write and create
// events.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	var (
		mu      sync.Mutex
		pending = make(map[string]struct{})
		timer   *time.Timer
	)
	fired := make(chan []string)

	fire := func() {
		mu.Lock()
		if len(pending) == 0 {
			mu.Unlock()
			return
		}
		changed := make([]string, 0, len(pending))
		for name := range pending {
			changed = append(changed, name)
		}
		clear(pending)
		mu.Unlock()

		select {
		case fired <- changed:
		case <-ctx.Done():
		}
	}

	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case changed := <-fired:
			if w.cfg.OnChange != nil {
				if err := w.cfg.OnChange(ctx, changed); err != nil {
					return err
				}
			}

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watch: event channel closed unexpectedly")
			}
			if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Base(evt.Name)
			if !w.matches(name) {
				continue
			}

			mu.Lock()
			pending[name] = struct{}{}
			if timer == nil {
				timer = time.AfterFunc(w.debounce, fire)
			} else {
				timer.Reset(w.debounce)
			}
			mu.Unlock()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watch: error channel closed unexpectedly")
			}
			w.errf("watch: fsnotify error: %v", err)
		}
	}
}

func (w *Watcher) matches(name string) bool {
	if len(w.cfg.Patterns) == 0 {
		return true
	}
	for _, pat := range w.cfg.Patterns {
		if ok, err := doublestar.Match(pat, name); err == nil && ok {
			return true
		}
	}
	return false
}

func (w *Watcher) errf(format string, args ...any) {
	if w.cfg.Errf != nil {
		w.cfg.Errf(format, args...)
	}
}
