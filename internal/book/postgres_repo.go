package book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectColumns = `id, title, description, isbn, publisher, genre, publish_year, author_name, author_nationality`

// PostgresRepo stores books in the books table. Insertion order is the
// order of the seq column.
type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

// NewPostgresRepo bounds every query on db by timeout.
func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// Count returns the number of rows in books.
func (r *PostgresRepo) Count(ctx context.Context) (int, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int
	if err := r.db.QueryRow(timeoutCtx, "SELECT COUNT(*) FROM books").Scan(&count); err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return count, nil
}

// List returns every book in insertion order.
func (r *PostgresRepo) List(ctx context.Context) ([]Book, error) {
	const query = `SELECT ` + selectColumns + ` FROM books ORDER BY seq ASC`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return collectBooks(rows)
}

// GetByID returns the book with id, or ErrNotFound when no row matches.
func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Book, error) {
	const query = `SELECT ` + selectColumns + ` FROM books WHERE id = $1 LIMIT 1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, fmt.Errorf("get book: %w", err)
	}
	return b, nil
}

// ListByAuthor returns the books whose author_name equals authorName, in
// insertion order.
func (r *PostgresRepo) ListByAuthor(ctx context.Context, authorName string) ([]Book, error) {
	const query = `SELECT ` + selectColumns + ` FROM books WHERE author_name = $1 ORDER BY seq ASC`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, authorName)
	if err != nil {
		return nil, fmt.Errorf("list books by author: %w", err)
	}
	return collectBooks(rows)
}

// Insert adds b as the newest book.
func (r *PostgresRepo) Insert(ctx context.Context, b Book) error {
	const sql = `
		INSERT INTO books (id, title, description, isbn, publisher, genre,
		                   publish_year, author_name, author_nationality, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, sql,
		b.ID, b.Title, b.Description, b.ISBN, b.Publisher, string(b.Genre),
		b.PublishYear, b.AuthorName, b.AuthorNationality,
	)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

// Ping reports whether the database answers.
func (r *PostgresRepo) Ping(ctx context.Context) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.Ping(timeoutCtx)
}

func scanBook(row pgx.Row) (Book, error) {
	var (
		b     Book
		genre string
	)
	err := row.Scan(
		&b.ID, &b.Title, &b.Description, &b.ISBN, &b.Publisher, &genre,
		&b.PublishYear, &b.AuthorName, &b.AuthorNationality,
	)
	b.Genre = Genre(genre)
	return b, err
}

func collectBooks(rows pgx.Rows) ([]Book, error) {
	defer rows.Close()

	out := []Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
