package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"bookcatalog/internal/book"
	"bookcatalog/internal/config"
	"bookcatalog/internal/platform/logging"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	count := flag.Int("count", 1000, "Number of books to generate")
	flag.Parse()

	config.LoadEnvFiles()
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	svc := book.NewService(book.NewPostgresRepo(pool, cfg.DBTimeout))
	if err := seed(ctx, svc, rand.New(rand.NewSource(time.Now().UnixNano())), *count, logger); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}

	total, err := svc.Count(ctx)
	if err != nil {
		logger.Error("count failed", "error", err)
		os.Exit(1)
	}
	logger.Info("seed complete", "inserted", *count, "total", total)
}

var (
	publishers    = []string{"Penguin", "HarperCollins", "Oxford", "Cambridge", "MIT Press", "Springer", "Wiley", "Ace"}
	authors       = []string{"Kate Chopin", "Paul Auster", "Frank Herbert", "Ursula K. Le Guin", "Agatha Christie", "Jane Austen"}
	nationalities = []string{"Estadounidense", "British", "Argentine", "French", ""}
	words         = []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Nature", "History", "Future", "Past", "Reality",
		"Imagination", "Wisdom", "Light", "Darkness", "World", "Time", "Space",
	}
)

// seed adds n generated books through svc so ids come from the catalog.
func seed(ctx context.Context, svc *book.Service, rng *rand.Rand, n int, logger *slog.Logger) error {
	logger.Info("generating books", "count", n)
	for i := 0; i < n; i++ {
		if _, err := svc.Add(ctx, randomParams(rng, i)); err != nil {
			return fmt.Errorf("add book %d: %w", i+1, err)
		}
		if (i+1)%1000 == 0 {
			logger.Info("progress", "inserted", i+1, "count", n)
		}
	}
	return nil
}

func randomParams(rng *rand.Rand, i int) book.AddParams {
	word := func() string { return words[rng.Intn(len(words))] }

	description := fmt.Sprintf("This is a book about %s.", word())
	year := 1950 + rng.Intn(75)
	p := book.AddParams{
		Title:       fmt.Sprintf("Book Title %d - %s", i+1, word()),
		Description: &description,
		Publisher:   publishers[rng.Intn(len(publishers))],
		Genre:       book.Genres[rng.Intn(len(book.Genres))],
		PublishYear: &year,
		AuthorName:  authors[rng.Intn(len(authors))],
	}
	if nat := nationalities[rng.Intn(len(nationalities))]; nat != "" {
		p.AuthorNationality = &nat
	}
	if rng.Intn(2) == 0 {
		isbn := fmt.Sprintf("978-%010d", i+1)
		p.ISBN = &isbn
	}
	return p
}
