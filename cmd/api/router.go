package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"bookcatalog/internal/book"
	"bookcatalog/internal/config"
	"bookcatalog/internal/graph"
	"bookcatalog/internal/httpx"
	"bookcatalog/internal/platform/metrics"
)

type routerDeps struct {
	cfg     config.Config
	logger  *slog.Logger
	service *book.Service
	metrics *metrics.Metrics
	// ready is nil when the store has no external dependency.
	ready func(context.Context) error
}

// newRouter wires every route and the middleware chain. ctx bounds the
// lifetime of background middleware state.
func newRouter(ctx context.Context, d routerDeps) (http.Handler, error) {
	schema, err := graph.NewSchema(d.service, graph.Options{
		MaxDepth:       d.cfg.MaxQueryDepth,
		MaxParallelism: d.cfg.MaxParallelism,
		Logger:         d.logger,
		OnBookAdded: func(b book.Book) {
			d.metrics.RecordBookAdded()
			d.logger.Info("book added", "id", b.ID, "title", b.Title)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("parse graphql schema: %w", err)
	}

	router := http.NewServeMux()

	router.Handle(d.cfg.GraphQLPath, d.metrics.Instrument("graphql", graph.NewHandler(schema)))
	if d.cfg.EnablePlayground {
		router.Handle("GET /{$}", graph.Playground(d.cfg.GraphQLPath))
	}

	book.NewHTTPHandler(d.service).Register(router, d.metrics.Instrument)

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if d.ready != nil {
			readyCtx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
			defer cancel()
			if err := d.ready(readyCtx); err != nil {
				http.Error(w, "db not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	router.Handle("GET /metrics", d.metrics.Handler())

	middleware := []func(http.Handler) http.Handler{
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(d.logger),
		httpx.RecoveryMiddleware(d.logger),
		httpx.SecurityHeadersMiddleware(d.cfg.EnableHSTS),
		httpx.CORSMiddleware(d.cfg.CORSOrigins),
	}
	if d.cfg.RateLimitRPS > 0 {
		rl := httpx.NewRateLimitMiddleware(ctx, d.cfg.RateLimitRPS, d.cfg.RateLimitBurst, d.cfg.TrustProxyHeaders)
		middleware = append(middleware, rl.Middleware)
	}
	middleware = append(middleware, httpx.RequestSizeLimitMiddleware(d.cfg.MaxBodyBytes))

	return httpx.Chain(router, middleware...), nil
}
