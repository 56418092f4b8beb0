package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/paperbase/paperbase/internal/config"
	"github.com/paperbase/paperbase/internal/domain/activity"
	"github.com/paperbase/paperbase/internal/domain/compound"
	"github.com/paperbase/paperbase/internal/domain/paper"
	"github.com/paperbase/paperbase/internal/domain/project"
	"github.com/paperbase/paperbase/internal/session"
	"github.com/paperbase/paperbase/internal/sqlite"
	"github.com/paperbase/paperbase/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDirs(cfg); err != nil {
		logger.Error("failed to prepare data directories", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.Catalog.Path)
	if err != nil {
		logger.Error("failed to open catalog database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	catalogRepo := sqlite.NewProjectRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)

	sessions := session.NewManager(catalogRepo, logger)
	defer sessions.Invalidate()

	activitySvc := activity.NewService(activityRepo, logger)
	projectSvc := project.NewService(catalogRepo, sqlite.NewProvisioner(), sessions, activitySvc, cfg.Catalog.DataDir, logger)
	paperSvc := paper.NewService(sessions, activitySvc, logger)
	compoundSvc := compound.NewService(sessions, projectSvc, activitySvc, logger)

	router := transport.NewServer(projectSvc, paperSvc, compoundSvc, activitySvc, cfg.Upload.MaxBytes, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func ensureDirs(cfg config.Config) error {
	if dir := filepath.Dir(cfg.Catalog.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.MkdirAll(cfg.Catalog.DataDir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
