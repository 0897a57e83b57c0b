// Package serve runs the local preview server: it serves the generated
// site over HTTP and rebuilds it when the docs directory or the
// configuration file changes.
package serve

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docsite/internal/build"
	"git.home.luguber.info/inful/docsite/internal/config"
)

// buildStatus tracks the current build state for error display.
type buildStatus struct {
	mu           sync.RWMutex
	lastError    error
	hasGoodBuild bool
}

func (bs *buildStatus) setError(err error) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.lastError = err
}

func (bs *buildStatus) setSuccess() {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.lastError = nil
	bs.hasGoodBuild = true
}

func (bs *buildStatus) get() (lastError error, hasGoodBuild bool) {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	return bs.lastError, bs.hasGoodBuild
}

// Server watches the docs tree and serves the rendered site.
type Server struct {
	configPath string
	cfg        *config.Config
	opts       build.Options
	addr       string

	// docsDir is snapshotted at construction: the watch loop reads it
	// concurrently with config reloads.
	docsDir string

	status       buildStatus
	rebuildChan  chan struct{}
	debounceTime time.Duration
}

// New creates a preview server for the given loaded configuration.
// addr overrides the configured dev_addr when non-empty.
func New(configPath string, cfg *config.Config, opts build.Options, addr string) *Server {
	if addr == "" {
		addr = cfg.DevAddr
	}
	return &Server{
		configPath:   configPath,
		cfg:          cfg,
		opts:         opts,
		addr:         addr,
		docsDir:      cfg.DocsDir,
		rebuildChan:  make(chan struct{}, 1),
		debounceTime: 500 * time.Millisecond,
	}
}

// Run performs an initial build, then serves and rebuilds until the
// context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	site, err := build.Run(s.cfg, s.opts)
	if err != nil {
		return err
	}
	s.status.setSuccess()
	slog.Info("Initial build complete", "pages", len(site.Pages()))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() {
		_ = watcher.Close()
	}()
	if err := s.addWatches(watcher); err != nil {
		return err
	}

	go s.watchLoop(ctx, watcher)
	go s.rebuildLoop(ctx)

	outputDir := s.opts.OutputDir
	if outputDir == "" {
		outputDir = s.cfg.SiteDir
	}
	server := &http.Server{
		Addr:              s.addr,
		Handler:           s.withBuildStatus(http.FileServer(http.Dir(outputDir))),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	slog.Info("Serving documentation", "addr", "http://"+s.addr, "dir", outputDir)
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// withBuildStatus surfaces build failures to the browser instead of
// silently serving the last good site without comment.
func (s *Server) withBuildStatus(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if lastErr, hasGoodBuild := s.status.get(); lastErr != nil && !hasGoodBuild {
			http.Error(w, "Build failed:\n\n"+lastErr.Error(), http.StatusInternalServerError)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// addWatches registers the docs tree (recursively) and the directory
// holding the config file.
func (s *Server) addWatches(watcher *fsnotify.Watcher) error {
	err := filepath.WalkDir(s.docsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	configDir := filepath.Dir(s.configPath)
	if err := watcher.Add(configDir); err != nil {
		return err
	}
	return nil
}

func (s *Server) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !s.relevant(event) {
				continue
			}
			slog.Debug("Change detected", "path", event.Name, "op", event.Op.String())
			// New directories must be watched too.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}
			select {
			case s.rebuildChan <- struct{}{}:
			default: // rebuild already pending
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("Watcher error", "error", err)
		}
	}
}

// relevant filters watcher noise: only the config file itself counts from
// the config directory, and chmod-only events never trigger a rebuild.
func (s *Server) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	inDocs, err := filepath.Rel(s.docsDir, event.Name)
	if err == nil && fs.ValidPath(filepath.ToSlash(inDocs)) {
		return true
	}
	absConfig, err := filepath.Abs(s.configPath)
	if err != nil {
		return false
	}
	absEvent, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return absEvent == absConfig
}

func (s *Server) rebuildLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.rebuildChan:
			// Debounce rapid bursts of file changes.
			timer := time.NewTimer(s.debounceTime)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
			s.rebuild()
		}
	}
}

// rebuild reloads the configuration and rebuilds the site. Failures are
// logged and the last good site stays served.
func (s *Server) rebuild() {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		s.status.setError(err)
		slog.Error("Config reload failed, keeping previous site", "error", err)
		return
	}
	s.cfg = cfg

	site, err := build.Run(s.cfg, s.opts)
	if err != nil {
		s.status.setError(err)
		slog.Error("Rebuild failed, keeping previous site", "error", err)
		return
	}
	s.status.setSuccess()
	slog.Info("Rebuilt site", "pages", len(site.Pages()))
}
