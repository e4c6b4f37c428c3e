package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"bookcatalog/internal/book"
	"bookcatalog/internal/config"
	"bookcatalog/internal/platform/metrics"
	"bookcatalog/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, mutate func(*config.Config), ready func(context.Context) error) http.Handler {
	t.Helper()
	cfg := config.Default()
	cfg.RateLimitRPS = 0
	cfg.RateLimitBurst = 0
	if mutate != nil {
		mutate(&cfg)
	}
	require.NoError(t, cfg.Validate())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	h, err := newRouter(ctx, routerDeps{
		cfg:     cfg,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		service: book.NewService(book.NewMemoryRepo(book.Seed()...)),
		metrics: metrics.New(),
		ready:   ready,
	})
	require.NoError(t, err)
	return h
}

func postGraphQL(t *testing.T, h http.Handler, query string) map[string]any {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, testutil.NewGraphQLRequest("/graphql", query, nil))
	require.Equal(t, http.StatusOK, w.Code)

	resp, err := testutil.DecodeGraphQL(w)
	require.NoError(t, err)
	require.Empty(t, resp.Errors)
	return resp.Data
}

func TestRouter_GraphQLScenario(t *testing.T) {
	h := newTestRouter(t, nil, nil)

	data := postGraphQL(t, h, `{ getBooksCount }`)
	assert.Equal(t, float64(2), data["getBooksCount"])

	data = postGraphQL(t, h, `mutation { addBook(title: "Dune", publisher: "Ace", genre: FANTASY, authorName: "Frank Herbert") { id title author { name nationality } } }`)
	created := data["addBook"].(map[string]any)
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, map[string]any{"name": "Frank Herbert", "nationality": nil}, created["author"])

	data = postGraphQL(t, h, `{ getBooksCount }`)
	assert.Equal(t, float64(3), data["getBooksCount"])

	data = postGraphQL(t, h, `{ getBook(id: "nonexistent-id") { id } }`)
	assert.Nil(t, data["getBook"])

	// The REST view reads the same catalog.
	w := httptest.NewRecorder()
	h.ServeHTTP(w, testutil.NewRequest(http.MethodGet, "/books/"+created["id"].(string), nil))
	rec := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, rec.Body["success"])
	assert.Equal(t, "Dune", rec.Body["data"].(map[string]interface{})["title"])
}

func TestRouter_GraphQLOverGet(t *testing.T) {
	h := newTestRouter(t, nil, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/graphql?query="+url.QueryEscape("{ getBooksCount }"), nil))

	require.Equal(t, http.StatusOK, w.Code)
	resp, err := testutil.DecodeGraphQL(w)
	require.NoError(t, err)
	require.Empty(t, resp.Errors)
	assert.Equal(t, float64(2), resp.Data["getBooksCount"])
}

func TestRouter_Routes(t *testing.T) {
	h := newTestRouter(t, nil, nil)

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{name: "healthz", method: http.MethodGet, path: "/healthz", want: http.StatusOK},
		{name: "readyz memory store", method: http.MethodGet, path: "/readyz", want: http.StatusOK},
		{name: "playground", method: http.MethodGet, path: "/", want: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", want: http.StatusOK},
		{name: "books", method: http.MethodGet, path: "/books", want: http.StatusOK},
		{name: "books by author", method: http.MethodGet, path: "/books?author=Kate+Chopin", want: http.StatusOK},
		{name: "book count", method: http.MethodGet, path: "/books/count", want: http.StatusOK},
		{name: "unknown book", method: http.MethodGet, path: "/books/nonexistent-id", want: http.StatusNotFound},
		{name: "unknown route", method: http.MethodGet, path: "/nope", want: http.StatusNotFound},
		{name: "books is read only", method: http.MethodPost, path: "/books", want: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
		})
	}
}

func TestRouter_PlaygroundDisabled(t *testing.T) {
	h := newTestRouter(t, func(c *config.Config) { c.EnablePlayground = false }, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_ReadyzReportsStoreFailure(t *testing.T) {
	h := newTestRouter(t, nil, func(context.Context) error { return errors.New("db down") })

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouter_RateLimit(t *testing.T) {
	h := newTestRouter(t, func(c *config.Config) {
		c.RateLimitRPS = 0.001
		c.RateLimitBurst = 1
	}, nil)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRouter_MetricsCountBooksAdded(t *testing.T) {
	h := newTestRouter(t, nil, nil)
	postGraphQL(t, h, `mutation { addBook(title: "T", publisher: "P", genre: NONE, authorName: "A") { id } }`)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), "bookcatalog_catalog_books_added_total 1")
}
