package pause

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"logsurrogate/internal/config"
	"logsurrogate/internal/system"
)

const (
	// Level is the log level used for pause status lines.
	Level          = "SYSTEM"
	PausedMessage  = "Process is paused by GUI. Waiting for resume..."
	ResumedMessage = "Process resumed."

	// DefaultInterval is how long the gate sleeps between checks of the flag.
	DefaultInterval = time.Second
)

// Logger receives the gate's status lines.
type Logger interface {
	Log(level, message string)
}

// Gate blocks while the GUI holds the pause flag in the data directory.
// It only ever observes the flag; creating and removing it is the GUI's job.
type Gate struct {
	dir      string
	flag     string
	interval time.Duration
	out      Logger
	watch    bool

	watcher    *fsnotify.Watcher
	watchTried bool
}

// Option configures a Gate.
type Option func(*Gate)

// WithInterval overrides the poll interval.
func WithInterval(d time.Duration) Option {
	return func(g *Gate) {
		if d > 0 {
			g.interval = d
		}
	}
}

// WithoutWatcher disables fsnotify wake-ups; the gate then only polls.
func WithoutWatcher() Option {
	return func(g *Gate) { g.watch = false }
}

// New returns a gate for the data directory dir.
func New(dir string, out Logger, opts ...Option) *Gate {
	g := &Gate{
		dir:      dir,
		flag:     filepath.Join(dir, config.PauseFlagName),
		interval: DefaultInterval,
		out:      out,
		watch:    true,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Wait returns immediately unless the pause flag is present. While it is,
// Wait logs the paused line once and re-checks every interval. A missing
// data directory means no GUI is coordinating and is never a pause.
func (g *Gate) Wait(ctx context.Context) error {
	if !exists(g.dir) {
		return nil
	}
	paused := false
	for exists(g.flag) {
		if !paused {
			// watch before announcing so a resume right after the
			// paused line is never missed
			g.startWatcher()
			g.out.Log(Level, PausedMessage)
			paused = true
		}
		if err := g.sleep(ctx); err != nil {
			return err
		}
	}
	if paused {
		g.out.Log(Level, ResumedMessage)
	}
	return nil
}

// Close releases the watcher, if one was started.
func (g *Gate) Close() error {
	if g.watcher == nil {
		return nil
	}
	err := g.watcher.Close()
	g.watcher = nil
	return err
}

// startWatcher is best-effort: on failure the gate keeps polling.
func (g *Gate) startWatcher() {
	if !g.watch || g.watchTried {
		return
	}
	g.watchTried = true
	w, err := fsnotify.NewWatcher()
	if err != nil {
		system.Logger.Debug("pause watcher unavailable, polling only", "err", err)
		return
	}
	if err := w.Add(g.dir); err != nil {
		system.Logger.Debug("cannot watch data dir, polling only", "dir", g.dir, "err", err)
		_ = w.Close()
		return
	}
	g.watcher = w
}

// sleep waits one interval, or less when the flag is removed or renamed.
func (g *Gate) sleep(ctx context.Context) error {
	timer := time.NewTimer(g.interval)
	defer timer.Stop()

	var events <-chan fsnotify.Event
	var errs <-chan error
	if g.watcher != nil {
		events = g.watcher.Events
		errs = g.watcher.Errors
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if filepath.Clean(ev.Name) == g.flag && ev.Has(fsnotify.Remove|fsnotify.Rename) {
				return nil
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			system.Logger.Debug("pause watcher error", "err", err)
		}
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
