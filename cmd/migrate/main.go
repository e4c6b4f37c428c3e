package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"bookcatalog/db"
	"bookcatalog/internal/platform/logging"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	loadEnvFiles()
	logger := logging.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Stderr)

	if err := run(*command, *name); err != nil {
		logger.Error("migration failed", "command", *command, "error", err)
		os.Exit(1)
	}
}

func run(command, name string) error {
	// create writes new files to disk; every other command reads the
	// migrations compiled into the binary.
	if command == "create" {
		if name == "" {
			return fmt.Errorf("name is required for 'create' command")
		}
		if err := goose.Create(nil, migrationsDir(), name, "sql"); err != nil {
			return fmt.Errorf("create migration: %w", err)
		}
		fmt.Printf("Migration created: %s\n", name)
		return nil
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, databaseDSN())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	conn := stdlib.OpenDBFromPool(pool)
	defer conn.Close()

	goose.SetBaseFS(db.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	switch command {
	case "up":
		if err := goose.UpContext(ctx, conn, db.MigrationsDir); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		fmt.Println("Migrations applied successfully")
	case "down":
		if err := goose.DownContext(ctx, conn, db.MigrationsDir); err != nil {
			return fmt.Errorf("roll back migration: %w", err)
		}
		fmt.Println("Migrations rolled back successfully")
	case "status":
		if err := goose.StatusContext(ctx, conn, db.MigrationsDir); err != nil {
			return fmt.Errorf("check migration status: %w", err)
		}
	default:
		return fmt.Errorf("unknown command: %s. Use: up, down, status, create", command)
	}
	return nil
}
