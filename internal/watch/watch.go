// Package watch rebuilds the navigation whenever the docs tree or the project
// configuration changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docnav/internal/build"
	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/render"
	"git.home.luguber.info/inful/docnav/internal/util/sets"
)

// DefaultDebounce collapses bursts of editor writes into one rebuild.
const DefaultDebounce = 300 * time.Millisecond

// Options configures a Watcher.
type Options struct {
	ConfigPath string
	Format     render.Format
	Output     string
	Debounce   time.Duration

	// OnBuild, when set, is called after every build attempt, skipped ones included.
	OnBuild func(*build.BuildResult, error)
}

// Watcher runs full rebuilds on change. Builds run one at a time on the
// watcher's own loop; events arriving during a build coalesce into the next.
type Watcher struct {
	svc  build.BuildService
	opts Options

	configPath string
	docsPath   string
	lastSig    string
	watched    sets.Set[string]
}

// New creates a Watcher using svc for every build.
func New(svc build.BuildService, opts Options) *Watcher {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	return &Watcher{svc: svc, opts: opts, watched: sets.New[string]()}
}

// Run performs an initial build, then watches until ctx is done. Build
// failures are logged and do not stop the watcher; only setup errors are
// returned.
func (w *Watcher) Run(ctx context.Context) error {
	abs, err := filepath.Abs(w.opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}
	w.configPath = abs

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() {
		if err := fw.Close(); err != nil {
			slog.Warn("Error closing file watcher", logfields.Error(err))
		}
	}()

	// Watch the directory containing the config file (more reliable than
	// watching the file directly across editor renames).
	if err := fw.Add(filepath.Dir(w.configPath)); err != nil {
		return fmt.Errorf("failed to watch config directory: %w", err)
	}

	w.rebuild(ctx, fw)
	slog.Info("Watching for changes", logfields.Config(w.configPath), logfields.DocsDir(w.docsPath))

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Stopping watcher")
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					w.addDirsRecursive(fw, ev.Name)
				}
			}
			slog.Debug("File change detected", logfields.Path(ev.Name), logfields.Event(ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.opts.Debounce)
			} else {
				timer.Reset(w.opts.Debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.rebuild(ctx, fw)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		}
	}
}

// rebuild reloads the configuration and runs a build, skipping it when
// neither the docs nor the configuration changed since the last success.
func (w *Watcher) rebuild(ctx context.Context, fw *fsnotify.Watcher) {
	cfg, err := config.Load(w.configPath)
	if err != nil {
		slog.Error("Failed to load configuration", logfields.Config(w.configPath), logfields.Error(err))
		w.report(nil, err)
		return
	}

	if docsPath := cfg.DocsPath(); docsPath != w.docsPath {
		w.docsPath = docsPath
		w.addDirsRecursive(fw, docsPath)
	}

	result, err := w.svc.Run(ctx, build.BuildRequest{
		Config: cfg,
		Format: w.opts.Format,
		Output: w.opts.Output,
		Options: build.BuildOptions{
			SkipIfUnchanged:   true,
			PreviousSignature: w.lastSig,
		},
	})
	if err != nil {
		slog.Warn("Rebuild failed", logfields.Error(err))
	} else if !result.Skipped {
		w.lastSig = result.Signature
	}
	w.report(result, err)
}

func (w *Watcher) report(result *build.BuildResult, err error) {
	if w.opts.OnBuild != nil {
		w.opts.OnBuild(result, err)
	}
}

// relevant filters events down to the config file, .env files next to it and
// anything below the docs directory.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if shouldIgnoreEvent(ev.Name) && !isEnvFile(ev.Name) {
		return false
	}
	if ev.Name == w.configPath {
		return true
	}
	if filepath.Dir(ev.Name) == filepath.Dir(w.configPath) && isEnvFile(ev.Name) {
		return true
	}
	if w.docsPath == "" {
		return false
	}
	if w.output() != "" && ev.Name == w.output() {
		return false
	}
	return ev.Name == w.docsPath || strings.HasPrefix(ev.Name, w.docsPath+string(filepath.Separator))
}

func (w *Watcher) output() string {
	if w.opts.Output == "" {
		return ""
	}
	abs, err := filepath.Abs(w.opts.Output)
	if err != nil {
		return w.opts.Output
	}
	return abs
}

func isEnvFile(path string) bool {
	base := filepath.Base(path)
	return base == ".env" || base == ".env.local"
}

// addDirsRecursive watches root and every non-hidden directory below it.
// fsnotify drops watches of removed directories on its own, so a directory
// that is deleted and recreated is re-added through its Create event.
func (w *Watcher) addDirsRecursive(fw *fsnotify.Watcher, root string) {
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := fw.Add(path); err != nil {
			slog.Warn("Watch add failed", logfields.Path(path), logfields.Error(err))
			return nil
		}
		if w.watched.Add(path) {
			slog.Debug("Watching directory", logfields.Path(path))
		}
		return nil
	})
}

// shouldIgnoreEvent returns true for filesystem events that should not trigger rebuilds.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)

	if strings.HasPrefix(base, ".") {
		return true
	}

	// Editor temp/swap files
	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#") {
		return true
	}

	return base == "Thumbs.db"
}
