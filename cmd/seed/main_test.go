package main

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"bookcatalog/internal/book"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_AddsGeneratedBooks(t *testing.T) {
	repo := book.NewMemoryRepo()
	svc := book.NewService(repo)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	err := seed(context.Background(), svc, rand.New(rand.NewSource(1)), 25, logger)
	require.NoError(t, err)

	books, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 25)

	seen := map[string]bool{}
	for _, b := range books {
		assert.NotEmpty(t, b.ID)
		assert.False(t, seen[b.ID], "duplicate id %s", b.ID)
		seen[b.ID] = true
		assert.True(t, b.Genre.Valid())
		assert.NotEmpty(t, b.AuthorName)
	}
	assert.True(t, strings.HasPrefix(books[0].Title, "Book Title 1 - "))
}
