package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-parser/internal/db"
)

// withDatabase connects to the configured archive, ensures its schema and runs fn
func withDatabase(ctx context.Context, fn func(database *db.DB) error) error {
	if settings.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --database-url flag is required")
	}

	database, err := db.Connect(ctx, settings.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to prepare database schema: %w", err)
	}
	return fn(database)
}

// archiveIfConfigured stores a report when a database is configured.
// Archiving is best effort: a failure warns but never fails the command.
func archiveIfConfigured(ctx context.Context, store func(database *db.DB) (string, error)) {
	if settings.DatabaseURL == "" {
		return
	}
	err := withDatabase(ctx, func(database *db.DB) error {
		runID, err := store(database)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stderr, "Archived run %s\n", runID)
		return nil
	})
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to archive report: %v\n", err)
	}
}
