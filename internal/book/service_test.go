package book

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededService() *Service {
	return NewService(NewMemoryRepo(Seed()...))
}

func TestService_SeedState(t *testing.T) {
	ctx := context.Background()
	svc := newSeededService()

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	books, err := svc.ListByAuthor(ctx, "Kate Chopin")
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "The Awakening", books[0].Title)
	assert.Equal(t, Author{Name: "Kate Chopin", Nationality: nil}, books[0].Author())
}

func TestService_Add(t *testing.T) {
	ctx := context.Background()
	svc := newSeededService()

	before, err := svc.ListAll(ctx)
	require.NoError(t, err)

	added, err := svc.Add(ctx, AddParams{
		Title:      "Dune",
		Publisher:  "Ace",
		Genre:      GenreFantasy,
		AuthorName: "Frank Herbert",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, added.ID)
	_, err = uuid.Parse(added.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Dune", added.Title)
	assert.Equal(t, Author{Name: "Frank Herbert"}, added.Author())

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	after, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, before, after[:len(before)])
	assert.Equal(t, added, after[len(after)-1])

	got, found, err := svc.Get(ctx, added.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, added, got)
}

func TestService_AddKeepsAllFields(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepo())

	desc, isbn, nat, year := "A desert planet.", "978-0441013593", "American", 1965
	params := AddParams{
		Title:             "Dune",
		Description:       &desc,
		ISBN:              &isbn,
		Publisher:         "Ace",
		Genre:             GenreFantasy,
		PublishYear:       &year,
		AuthorName:        "Frank Herbert",
		AuthorNationality: &nat,
	}
	added, err := svc.Add(ctx, params)
	require.NoError(t, err)

	// Mutating the caller's values must not reach the stored record.
	desc, year = "changed", 2000

	got, found, err := svc.Get(ctx, added.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "A desert planet.", *got.Description)
	assert.Equal(t, "978-0441013593", *got.ISBN)
	assert.Equal(t, 1965, *got.PublishYear)
	assert.Equal(t, "American", *got.AuthorNationality)
	assert.Equal(t, added, got)
}

func TestService_AddGeneratesUniqueIDs(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepo())

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		b, err := svc.Add(ctx, AddParams{Title: "T", Publisher: "P", Genre: GenreNone, AuthorName: "A"})
		require.NoError(t, err)
		assert.False(t, seen[b.ID], "duplicate id %s", b.ID)
		seen[b.ID] = true
	}
}

func TestService_AddRejectsUnknownGenre(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	svc := NewService(mockRepo)

	tests := []struct {
		name  string
		genre Genre
	}{
		{name: "empty genre", genre: ""},
		{name: "lowercase genre", genre: "fantasy"},
		{name: "unknown genre", genre: "HORROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(context.Background(), AddParams{
				Title: "T", Publisher: "P", Genre: tt.genre, AuthorName: "A",
			})
			assert.ErrorIs(t, err, ErrInvalidBook)
		})
	}
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	svc := NewService(mockRepo)

	testBook := Seed()[1]

	t.Run("found", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), testBook.ID).Return(testBook, nil)

		got, found, err := svc.Get(context.Background(), testBook.ID)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, testBook, got)
	})

	t.Run("not found is not an error", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "nonexistent-id").Return(Book{}, ErrNotFound)

		_, found, err := svc.Get(context.Background(), "nonexistent-id")
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "x").Return(Book{}, context.DeadlineExceeded)

		_, found, err := svc.Get(context.Background(), "x")
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
		assert.False(t, found)
	})
}

func TestService_AddPropagatesInsertError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	svc := NewService(mockRepo)
	svc.newID = func() string { return "fixed-id" }

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b Book) error {
			assert.Equal(t, "fixed-id", b.ID)
			return errors.New("db down")
		})

	_, err := svc.Add(context.Background(), AddParams{Title: "T", Publisher: "P", Genre: GenreMystery, AuthorName: "A"})
	assert.EqualError(t, err, "db down")
}

func TestService_ListByAuthorIsSubsetOfListAll(t *testing.T) {
	ctx := context.Background()
	svc := newSeededService()
	for _, author := range []string{"Kate Chopin", "Paul Auster", "Kate Chopin"} {
		_, err := svc.Add(ctx, AddParams{Title: "Extra", Publisher: "P", Genre: GenreFiction, AuthorName: author})
		require.NoError(t, err)
	}

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)

	for _, name := range []string{"Kate Chopin", "Paul Auster", "kate chopin", "Nobody"} {
		var want []Book
		for _, b := range all {
			if b.AuthorName == name {
				want = append(want, b)
			}
		}

		got, err := svc.ListByAuthor(ctx, name)
		require.NoError(t, err)
		if len(want) == 0 {
			assert.NotNil(t, got)
			assert.Empty(t, got)
			continue
		}
		assert.Equal(t, want, got, name)
	}
}

func TestService_ReadsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newSeededService()
	id := Seed()[0].ID

	for i := 0; i < 3; i++ {
		count, _ := svc.Count(ctx)
		all, _ := svc.ListAll(ctx)
		got, found, _ := svc.Get(ctx, id)
		byAuthor, _ := svc.ListByAuthor(ctx, "Paul Auster")

		assert.Equal(t, 2, count)
		assert.Equal(t, Seed(), all)
		assert.True(t, found)
		assert.Equal(t, Seed()[0], got)
		assert.Equal(t, []Book{Seed()[1]}, byAuthor)
	}
}
