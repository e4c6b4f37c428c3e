package book

import (
	"errors"
)

// ErrNotFound is returned by repositories when a book is not found.
var ErrNotFound = errors.New("book not found")

// ErrInvalidBook is returned when add parameters fail validation.
var ErrInvalidBook = errors.New("invalid book")

// Genre is the closed set of catalog genres.
type Genre string

const (
	GenreNone    Genre = "NONE"
	GenreFiction Genre = "FICTION"
	GenreMystery Genre = "MYSTERY"
	GenreFantasy Genre = "FANTASY"
	GenreRomance Genre = "ROMANCE"
)

// Genres lists every genre in declaration order.
var Genres = []Genre{GenreNone, GenreFiction, GenreMystery, GenreFantasy, GenreRomance}

// Valid reports whether g is one of the enumerated genres.
func (g Genre) Valid() bool {
	for _, v := range Genres {
		if g == v {
			return true
		}
	}
	return false
}

// Book represents a catalog record. Author fields are stored denormalized.
type Book struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	Description       *string `json:"description,omitempty"`
	ISBN              *string `json:"isbn,omitempty"`
	Publisher         string  `json:"publisher"`
	Genre             Genre   `json:"genre"`
	PublishYear       *int    `json:"publish_year,omitempty"`
	AuthorName        string  `json:"author_name"`
	AuthorNationality *string `json:"author_nationality,omitempty"`
}

// Author is a read-only view of a book's author.
type Author struct {
	Name        string  `json:"name"`
	Nationality *string `json:"nationality"`
}

// Author projects the author fields of b.
func (b Book) Author() Author {
	return Author{Name: b.AuthorName, Nationality: b.AuthorNationality}
}

// AddParams carries every book field except the generated id.
type AddParams struct {
	Title             string
	Description       *string
	ISBN              *string
	Publisher         string
	Genre             Genre `validate:"required,oneof=NONE FICTION MYSTERY FANTASY ROMANCE"`
	PublishYear       *int
	AuthorName        string
	AuthorNationality *string
}

// NewBook builds a book from p with the given id. Optional values are copied
// so the record shares no memory with the caller.
func NewBook(id string, p AddParams) Book {
	return Book{
		ID:                id,
		Title:             p.Title,
		Description:       cloneString(p.Description),
		ISBN:              cloneString(p.ISBN),
		Publisher:         p.Publisher,
		Genre:             p.Genre,
		PublishYear:       cloneInt(p.PublishYear),
		AuthorName:        p.AuthorName,
		AuthorNationality: cloneString(p.AuthorNationality),
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}
