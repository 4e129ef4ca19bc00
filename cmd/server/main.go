package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/inamate/motion/internal/auth"
	"github.com/inamate/motion/internal/config"
	"github.com/inamate/motion/internal/document"
	mw "github.com/inamate/motion/internal/middleware"
	"github.com/inamate/motion/internal/preview"
)

func main() {
	issueFor := flag.String("issue-token", "", "print a signed upload token for `subject` and exit")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "lifetime of a token printed by -issue-token")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))
	document.DefaultFPS = cfg.DefaultFPS

	store := preview.NewStore()
	if summary, _, err := store.Put(document.NewSampleDocument()); err != nil {
		slog.Error("store sample scene", "error", err)
	} else {
		slog.Info("sample scene ready", "scene", summary.ID)
	}
	loadScenes(store, cfg.ScenesDir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := preview.NewHub(store)
	go hub.Run(ctx)

	authService := auth.NewService(cfg.JWTSecret)
	if *issueFor != "" {
		if err := issueToken(os.Stdout, authService, *issueFor, *tokenTTL); err != nil {
			slog.Error("issue token", "error", err)
			os.Exit(1)
		}
		return
	}
	if !authService.Enabled() {
		slog.Warn("JWT_SECRET not set, scene uploads are unauthenticated")
	}

	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(cfg.Origins()))

	preview.NewHandler(store, hub, cfg.OriginHosts()).Routes(r, authService.Middleware)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")

		// Stop the hub first so preview sessions close
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

// issueToken writes a signed token for subject to w, one per line.
func issueToken(w io.Writer, svc *auth.Service, subject string, ttl time.Duration) error {
	token, err := svc.IssueToken(subject, ttl)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, token)
	return err
}

// loadScenes stores every JSON and YAML document in dir. Broken files are
// logged and skipped.
func loadScenes(store *preview.Store, dir string) {
	var paths []string
	for _, pattern := range []string{"*.json", "*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			slog.Error("scan scenes dir", "dir", dir, "error", err)
			return
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
			slog.Debug("scenes dir missing", "dir", dir)
		}
		return
	}

	for _, path := range paths {
		doc, err := document.Load(path)
		if err != nil {
			slog.Error("load scene", "path", path, "error", err)
			continue
		}
		summary, _, err := store.Put(doc)
		if err != nil {
			slog.Error("store scene", "path", path, "error", err)
			continue
		}
		slog.Info("scene loaded", "path", path, "scene", summary.ID, "name", summary.Name)
	}
}
