package graph

import (
	"context"

	"bookcatalog/internal/book"
)

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	svc     *book.Service
	onAdded func(book.Book)
}

func NewResolver(svc *book.Service, onAdded func(book.Book)) *Resolver {
	return &Resolver{svc: svc, onAdded: onAdded}
}

func (r *Resolver) GetBooksCount(ctx context.Context) (int32, error) {
	n, err := r.svc.Count(ctx)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}

func (r *Resolver) GetAllBooks(ctx context.Context) (*[]*BookResolver, error) {
	books, err := r.svc.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return wrapBooks(books), nil
}

func (r *Resolver) GetBook(ctx context.Context, args struct{ ID *string }) (*BookResolver, error) {
	if args.ID == nil {
		return nil, nil
	}
	b, found, err := r.svc.Get(ctx, *args.ID)
	if err != nil || !found {
		return nil, err
	}
	return &BookResolver{b: b}, nil
}

func (r *Resolver) GetAllBooksByAuthor(ctx context.Context, args struct{ AuthorName *string }) (*[]*BookResolver, error) {
	var name string
	if args.AuthorName != nil {
		name = *args.AuthorName
	}
	books, err := r.svc.ListByAuthor(ctx, name)
	if err != nil {
		return nil, err
	}
	return wrapBooks(books), nil
}

type addBookArgs struct {
	Title             string
	Description       *string
	ISBN              *string
	Publisher         string
	Genre             string
	PublishYear       *int32
	AuthorName        string
	AuthorNationality *string
}

func (r *Resolver) AddBook(ctx context.Context, args addBookArgs) (*BookResolver, error) {
	params := book.AddParams{
		Title:             args.Title,
		Description:       args.Description,
		ISBN:              args.ISBN,
		Publisher:         args.Publisher,
		Genre:             book.Genre(args.Genre),
		AuthorName:        args.AuthorName,
		AuthorNationality: args.AuthorNationality,
	}
	if args.PublishYear != nil {
		year := int(*args.PublishYear)
		params.PublishYear = &year
	}

	b, err := r.svc.Add(ctx, params)
	if err != nil {
		return nil, err
	}
	if r.onAdded != nil {
		r.onAdded(b)
	}
	return &BookResolver{b: b}, nil
}

func wrapBooks(books []book.Book) *[]*BookResolver {
	out := make([]*BookResolver, len(books))
	for i := range books {
		out[i] = &BookResolver{b: books[i]}
	}
	return &out
}
