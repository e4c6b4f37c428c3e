package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book data storage.
// Implementations must keep insertion order and never reorder records.
type Repository interface {
	Count(ctx context.Context) (int, error)
	List(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id string) (Book, error)
	ListByAuthor(ctx context.Context, authorName string) ([]Book, error)
	Insert(ctx context.Context, b Book) error
}
