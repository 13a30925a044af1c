package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/db"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/spf13/cobra"
)

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show an archived run and its report",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.AddCommand(historyShowCmd)
}

// archivedRun is a run together with the report it produced
type archivedRun struct {
	Run     db.Run               `json:"run"`
	Profile *types.ProfileReport `json:"profile,omitempty"`
	Skills  *types.SkillsReport  `json:"skills,omitempty"`
}

// parseRunID parses a run ID argument
func parseRunID(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid run ID %q: %w", arg, err)
	}
	return id, nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	runID, err := parseRunID(args[0])
	if err != nil {
		return err
	}
	if err := overrideFormat(cmd, historyFormat); err != nil {
		return err
	}
	overrideDatabaseURL(cmd, historyDatabaseURL)

	var record archivedRun
	err = withDatabase(ctx, func(database *db.DB) error {
		return loadArchivedRun(ctx, database, runID, &record)
	})
	if err != nil {
		return fmt.Errorf("failed to show run: %w", err)
	}

	if settings.Format == config.FormatJSON {
		return printJSON(record)
	}

	r := record.Run
	_, _ = fmt.Fprintf(os.Stdout, "Run %s\n", r.ID)
	_, _ = fmt.Fprintf(os.Stdout, "  Source:  %s\n", r.Source)
	_, _ = fmt.Fprintf(os.Stdout, "  Mode:    %s\n", r.Mode)
	if r.Role != "" {
		_, _ = fmt.Fprintf(os.Stdout, "  Role:    %s\n", r.Role)
	}
	_, _ = fmt.Fprintf(os.Stdout, "  Status:  %s\n", r.Status)
	_, _ = fmt.Fprintf(os.Stdout, "  Created: %s\n", r.CreatedAt.Local().Format(time.DateTime))

	printer := observability.NewPrinter(os.Stdout)
	switch {
	case record.Profile != nil:
		printer.PrintProfile(record.Profile)
	case record.Skills != nil:
		printer.PrintSkills(record.Skills)
	default:
		_, _ = fmt.Fprintln(os.Stdout, "No report stored for this run")
	}
	return nil
}

// loadArchivedRun fetches a run and the report matching its mode
func loadArchivedRun(ctx context.Context, database *db.DB, runID uuid.UUID, record *archivedRun) error {
	run, err := database.GetRun(ctx, runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("run not found: %s", runID)
	}
	record.Run = *run

	switch run.Mode {
	case types.ModeProfile:
		record.Profile, err = database.GetProfileReport(ctx, runID)
	case types.ModeSkills:
		record.Skills, err = database.GetSkillsReport(ctx, runID)
	}
	return err
}
