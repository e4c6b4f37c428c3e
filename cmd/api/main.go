package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookcatalog/db"
	"bookcatalog/internal/book"
	"bookcatalog/internal/config"
	"bookcatalog/internal/platform/logging"
	"bookcatalog/internal/platform/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	repo, ready, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	m := metrics.New()
	svc := book.NewService(repo)
	m.RegisterCatalogSize(func() (int, error) {
		countCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return svc.Count(countCtx)
	})

	handler, err := newRouter(ctx, routerDeps{
		cfg:     cfg,
		logger:  logger,
		service: svc,
		metrics: m,
		ready:   ready,
	})
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server ready", "addr", cfg.Addr, "graphql_path", cfg.GraphQLPath, "store", cfg.StoreDriver)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// openStore returns the configured repository, a readiness probe and a
// release function.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (book.Repository, func(context.Context) error, func(), error) {
	if cfg.StoreDriver != config.StorePostgres {
		logger.Info("using in-memory store", "seed_books", len(book.Seed()))
		repo := book.NewMemoryRepo(book.Seed()...)
		return repo, nil, func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create db pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, nil, nil, fmt.Errorf("ping database (%s): %w", cfg.RedactedDSN(), err)
	}
	logger.Info("database connection OK", "dsn", cfg.RedactedDSN())

	if cfg.DBAutoMigrate {
		if err := db.Up(ctx, stdlib.OpenDBFromPool(pool)); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
		logger.Info("migrations applied")
	}

	repo := book.NewPostgresRepo(pool, cfg.DBTimeout)
	return repo, repo.Ping, pool.Close, nil
}
