package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/db"
	"github.com/jonathan/resume-parser/internal/export"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Extract a structured profile from a résumé",
	Long:  "Reads a résumé file and extracts contact details, summary, education, experience, projects and certifications.",
	RunE:  runProfile,
}

var (
	profileFile        string
	profileFormat      string
	profileOutput      string
	profileXLSX        string
	profileDatabaseURL string
)

func init() {
	profileCmd.Flags().StringVarP(&profileFile, "file", "f", "", "Path to résumé file (required)")
	profileCmd.Flags().StringVar(&profileFormat, "format", config.FormatText, "Output format: text or json")
	profileCmd.Flags().StringVarP(&profileOutput, "out", "o", "", "Path to write the ProfileReport JSON (optional)")
	profileCmd.Flags().StringVar(&profileXLSX, "xlsx", "", "Path to write an Excel workbook (optional)")
	profileCmd.Flags().StringVar(&profileDatabaseURL, "database-url", "", "PostgreSQL URL to archive the report (optional, defaults to DATABASE_URL env var)")

	if err := profileCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	if err := overrideFormat(cmd, profileFormat); err != nil {
		return err
	}
	overrideDatabaseURL(cmd, profileDatabaseURL)

	analyzer, err := newAnalyzer()
	if err != nil {
		return err
	}

	report, err := analyzer.Profile(ctx, profileFile)
	if err != nil {
		return fmt.Errorf("failed to analyze %s: %w", profileFile, err)
	}

	if profileOutput != "" {
		if err := writeJSON(profileOutput, report); err != nil {
			return err
		}
		validateOutput(profileOutput, schemas.ValidateProfileReport)
		_, _ = fmt.Fprintf(os.Stderr, "Wrote profile report to %s\n", profileOutput)
	}

	if profileXLSX != "" {
		path, err := export.WriteWorkbook(profileXLSX, report, nil)
		if err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Wrote workbook to %s\n", path)
	}

	archiveIfConfigured(ctx, func(database *db.DB) (string, error) {
		runID, err := database.ArchiveProfile(ctx, report)
		return runID.String(), err
	})

	if settings.Format == config.FormatJSON {
		return printJSON(report)
	}
	observability.NewPrinter(os.Stdout).PrintProfile(report)
	return nil
}
