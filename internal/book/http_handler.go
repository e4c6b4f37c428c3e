package book

import (
	"net/http"

	"bookcatalog/internal/httpx"
)

// HTTPHandler exposes a read-only JSON view of the catalog.
type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Register mounts the handler's routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux, wrap func(route string, h http.Handler) http.Handler) {
	mux.Handle("GET /books", wrap("books_list", http.HandlerFunc(h.List)))
	mux.Handle("GET /books/count", wrap("books_count", http.HandlerFunc(h.Count)))
	mux.Handle("GET /books/{id}", wrap("books_get", http.HandlerFunc(h.Get)))
}

// List handles GET /books, optionally filtered by ?author=.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		books []Book
		err   error
	)
	if author, ok := r.URL.Query()["author"]; ok {
		books, err = h.service.ListByAuthor(r.Context(), firstOrEmpty(author))
	} else {
		books, err = h.service.ListAll(r.Context())
	}
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, withAuthors(books), map[string]any{"total": len(books)})
}

// Count handles GET /books/count
func (h *HTTPHandler) Count(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.Count(r.Context())
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, map[string]int{"count": n}, nil)
}

// Get handles GET /books/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "id is required", nil)
		return
	}

	b, found, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if !found {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		return
	}
	httpx.JSONSuccess(w, r, bookView{Book: b, Author: b.Author()}, nil)
}

// bookView adds the author projection to the JSON form of a book.
type bookView struct {
	Book
	Author Author `json:"author"`
}

func withAuthors(books []Book) []bookView {
	out := make([]bookView, len(books))
	for i, b := range books {
		out[i] = bookView{Book: b, Author: b.Author()}
	}
	return out
}

func firstOrEmpty(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
