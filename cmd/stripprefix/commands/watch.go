package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	ferrors "github.com/vexyart/stripprefix/internal/foundation/errors"
	"github.com/vexyart/stripprefix/internal/logfields"
	"github.com/vexyart/stripprefix/internal/metrics"
	"github.com/vexyart/stripprefix/internal/site"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Debounce    time.Duration `default:"300ms" help:"Quiet period after the last change before re-running"`
	NoStrict    bool          `name:"no-strict" help:"Warn about collisions instead of failing"`
	MetricsAddr string        `name:"metrics-addr" help:"Serve Prometheus metrics on this address, e.g. :9108"`
}

func (wc *WatchCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g)
	if err != nil {
		return err
	}
	h, err := newHost(cfg, g.Logger, overrides{NoStrict: wc.NoStrict})
	if err != nil {
		return err
	}
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return wc.watch(ctx, g.Stdout, h)
}

// watch prints a plan now and again after every burst of changes under the
// docs directory, until ctx is done. Failed passes are logged, not fatal.
func (wc *WatchCmd) watch(ctx context.Context, w io.Writer, h *host) error {
	docsDir := h.cfg.DocsPath()
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to create file watcher").Build()
	}
	defer func() { _ = watcher.Close() }()
	if err := addDirsRecursive(watcher, docsDir, h.logger); err != nil {
		return classifySiteError(err)
	}

	if wc.MetricsAddr != "" {
		srv := &http.Server{Addr: wc.MetricsAddr, Handler: metrics.HTTPHandler(h.registry), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				h.logger.Error("Metrics server failed", logfields.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		h.logger.Info("Serving metrics", slog.String("addr", wc.MetricsAddr))
	}

	planner := &PlanCmd{Format: "text"}
	replan := func() {
		fmt.Fprintf(w, "== %s\n", time.Now().Format(time.TimeOnly))
		if err := planner.plan(ctx, w, h); err != nil && ctx.Err() == nil {
			h.logger.Warn("Plan failed", logfields.Error(err))
		}
	}

	rebuildReq, trigger, stop := newDebouncer(wc.Debounce)
	defer stop()

	h.logger.Info("Watching for changes", logfields.Path(docsDir))
	replan()
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("Stopped watching")
			return nil
		case <-rebuildReq:
			replan()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ignoreEvent(ev.Name) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					_ = addDirsRecursive(watcher, ev.Name, h.logger)
				}
			}
			h.logger.Debug("File change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
			trigger()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			h.logger.Warn("Watcher error", logfields.Error(err))
		}
	}
}

// newDebouncer returns a channel that receives once per burst of trigger
// calls, after d has passed without another call.
func newDebouncer(d time.Duration) (<-chan struct{}, func(), func()) {
	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	req := make(chan struct{}, 1)

	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(d, func() {
			select {
			case req <- struct{}{}:
			default:
			}
		})
	}
	stop := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
	}
	return req, trigger, stop
}

// addDirsRecursive watches root and every directory below it. fsnotify
// watches are not recursive.
func addDirsRecursive(w *fsnotify.Watcher, root string, logger *slog.Logger) error {
	if _, err := os.Stat(root); err != nil {
		return fmt.Errorf("%w: %s", site.ErrDocsDirNotFound, root)
	}
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.Add(path); err != nil {
			logger.Warn("Failed to watch directory", logfields.Path(path), logfields.Error(err))
		}
		return nil
	})
}

// ignoreEvent reports editor and hidden files that never affect the build.
func ignoreEvent(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") ||
		strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".tmp")
}
