package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-parser/internal/db"
	"github.com/spf13/cobra"
)

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <run-id>",
	Short: "Delete an archived run and its report",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	historyCmd.AddCommand(historyDeleteCmd)
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	runID, err := parseRunID(args[0])
	if err != nil {
		return err
	}
	overrideDatabaseURL(cmd, historyDatabaseURL)

	err = withDatabase(ctx, func(database *db.DB) error {
		return database.DeleteRun(ctx, runID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stderr, "Deleted run %s\n", runID)
	return nil
}
