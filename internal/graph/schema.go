// Package graph exposes the book catalog over GraphQL.
package graph

import (
	"context"
	_ "embed"
	"log/slog"

	"bookcatalog/internal/book"
	"bookcatalog/internal/httpx"

	"github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphql
var SchemaSDL string

// Options tunes schema execution.
type Options struct {
	MaxDepth       int
	MaxParallelism int
	Logger         *slog.Logger
	// OnBookAdded is called after addBook stores a record.
	OnBookAdded func(book.Book)
}

// NewSchema parses the catalog schema and binds it to svc.
func NewSchema(svc *book.Service, opts Options) (*graphql.Schema, error) {
	var schemaOpts []graphql.SchemaOpt
	if opts.MaxDepth > 0 {
		schemaOpts = append(schemaOpts, graphql.MaxDepth(opts.MaxDepth))
	}
	if opts.MaxParallelism > 0 {
		schemaOpts = append(schemaOpts, graphql.MaxParallelism(opts.MaxParallelism))
	}
	if opts.Logger != nil {
		schemaOpts = append(schemaOpts, graphql.Logger(panicLogger{opts.Logger}))
	}
	return graphql.ParseSchema(SchemaSDL, NewResolver(svc, opts.OnBookAdded), schemaOpts...)
}

type panicLogger struct {
	logger *slog.Logger
}

func (l panicLogger) LogPanic(ctx context.Context, value interface{}) {
	l.logger.ErrorContext(ctx, "graphql resolver panic",
		"request_id", httpx.RequestIDFromContext(ctx),
		"error", value,
	)
}
