package book

import (
	"context"
	"sync"
)

// MemoryRepo keeps books in an ordered slice for the life of the process.
type MemoryRepo struct {
	mu    sync.RWMutex
	books []Book
}

// NewMemoryRepo returns a repository holding seed in order.
func NewMemoryRepo(seed ...Book) *MemoryRepo {
	r := &MemoryRepo{books: make([]Book, 0, len(seed))}
	for _, b := range seed {
		r.books = append(r.books, b.clone())
	}
	return r
}

// Count returns the number of stored books.
func (r *MemoryRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.books), nil
}

// List returns copies of every book in insertion order.
func (r *MemoryRepo) List(ctx context.Context) ([]Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Book, 0, len(r.books))
	for _, b := range r.books {
		out = append(out, b.clone())
	}
	return out, nil
}

// GetByID returns a copy of the book with id, or ErrNotFound.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.books {
		if b.ID == id {
			return b.clone(), nil
		}
	}
	return Book{}, ErrNotFound
}

// ListByAuthor returns copies of the books whose author name equals
// authorName, in insertion order. No match yields an empty, non-nil slice.
func (r *MemoryRepo) ListByAuthor(ctx context.Context, authorName string) ([]Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []Book{}
	for _, b := range r.books {
		if b.AuthorName == authorName {
			out = append(out, b.clone())
		}
	}
	return out, nil
}

// Insert appends a copy of b.
func (r *MemoryRepo) Insert(ctx context.Context, b Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.books = append(r.books, b.clone())
	return nil
}

func (b Book) clone() Book {
	b.Description = cloneString(b.Description)
	b.ISBN = cloneString(b.ISBN)
	b.PublishYear = cloneInt(b.PublishYear)
	b.AuthorNationality = cloneString(b.AuthorNationality)
	return b
}
