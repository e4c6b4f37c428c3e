package graph

import (
	"bookcatalog/internal/book"
)

type BookResolver struct {
	b book.Book
}

func (r *BookResolver) ID() string { return r.b.ID }

func (r *BookResolver) Title() string { return r.b.Title }

func (r *BookResolver) Description() *string { return r.b.Description }

func (r *BookResolver) ISBN() *string { return r.b.ISBN }

func (r *BookResolver) Publisher() string { return r.b.Publisher }

func (r *BookResolver) Genre() string { return string(r.b.Genre) }

func (r *BookResolver) PublishYear() *int32 {
	if r.b.PublishYear == nil {
		return nil
	}
	year := int32(*r.b.PublishYear)
	return &year
}

// Author is derived from the owning record on every read.
func (r *BookResolver) Author() *AuthorResolver {
	return &AuthorResolver{a: r.b.Author()}
}

type AuthorResolver struct {
	a book.Author
}

func (r *AuthorResolver) Name() *string {
	name := r.a.Name
	return &name
}

func (r *AuthorResolver) Nationality() *string { return r.a.Nationality }
