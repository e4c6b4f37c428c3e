package book

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// Service provides the catalog operations over a Repository.
type Service struct {
	repo  Repository
	newID func() string
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, newID: uuid.NewString}
}

// Count returns the number of books in the catalog.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// ListAll returns every book in insertion order.
func (s *Service) ListAll(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}

// Get looks a book up by id. A missing book is reported through found,
// not as an error.
func (s *Service) Get(ctx context.Context, id string) (Book, bool, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Book{}, false, nil
		}
		return Book{}, false, err
	}
	return b, true, nil
}

// ListByAuthor returns the books whose author name equals authorName exactly.
func (s *Service) ListByAuthor(ctx context.Context, authorName string) ([]Book, error) {
	return s.repo.ListByAuthor(ctx, authorName)
}

// Add stores a new book under a freshly generated id and returns it.
func (s *Service) Add(ctx context.Context, p AddParams) (Book, error) {
	if err := validate.Struct(p); err != nil {
		return Book{}, fmt.Errorf("%w: %s", ErrInvalidBook, describe(err))
	}

	b := NewBook(s.newID(), p)
	if err := s.repo.Insert(ctx, b); err != nil {
		return Book{}, err
	}
	return b, nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
