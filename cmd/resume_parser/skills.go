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
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Match a résumé against the skills catalog",
	Long: `Reports which catalog skills a résumé mentions, grouped by category.

In general sub-mode every category is checked. In role sub-mode only the
categories of --role are checked and a coverage score is reported.`,
	RunE: runSkills,
}

var (
	skillsFile        string
	skillsSubMode     string
	skillsRole        string
	skillsFormat      string
	skillsOutput      string
	skillsXLSX        string
	skillsDatabaseURL string
)

func init() {
	skillsCmd.Flags().StringVarP(&skillsFile, "file", "f", "", "Path to résumé file (required)")
	skillsCmd.Flags().StringVar(&skillsSubMode, "sub-mode", types.SkillsModeGeneral, "Sub-mode: general or role")
	skillsCmd.Flags().StringVarP(&skillsRole, "role", "r", "", "Role to score against (required in role sub-mode)")
	skillsCmd.Flags().StringVar(&skillsFormat, "format", config.FormatText, "Output format: text or json")
	skillsCmd.Flags().StringVarP(&skillsOutput, "out", "o", "", "Path to write the SkillsReport JSON (optional)")
	skillsCmd.Flags().StringVar(&skillsXLSX, "xlsx", "", "Path to write an Excel workbook (optional)")
	skillsCmd.Flags().StringVar(&skillsDatabaseURL, "database-url", "", "PostgreSQL URL to archive the report (optional, defaults to DATABASE_URL env var)")

	if err := skillsCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(skillsCmd)
}

// resolveRole checks the sub-mode and returns the role to match against,
// empty for general mode
func resolveRole(subMode, role string) (string, error) {
	switch subMode {
	case types.SkillsModeGeneral:
		return "", nil
	case types.SkillsModeRole:
		if role == "" {
			return "", fmt.Errorf("--role is required in role sub-mode")
		}
		return role, nil
	default:
		return "", fmt.Errorf("invalid --sub-mode %q (want %s or %s)", subMode, types.SkillsModeGeneral, types.SkillsModeRole)
	}
}

func runSkills(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	role, err := resolveRole(skillsSubMode, skillsRole)
	if err != nil {
		return err
	}
	if err := overrideFormat(cmd, skillsFormat); err != nil {
		return err
	}
	overrideDatabaseURL(cmd, skillsDatabaseURL)

	analyzer, err := newAnalyzer()
	if err != nil {
		return err
	}

	report, err := analyzer.Skills(ctx, skillsFile, role)
	if err != nil {
		return fmt.Errorf("failed to match skills for %s: %w", skillsFile, err)
	}

	if skillsOutput != "" {
		if err := writeJSON(skillsOutput, report); err != nil {
			return err
		}
		validateOutput(skillsOutput, schemas.ValidateSkillsReport)
		_, _ = fmt.Fprintf(os.Stderr, "Wrote skills report to %s\n", skillsOutput)
	}

	if skillsXLSX != "" {
		path, err := export.WriteWorkbook(skillsXLSX, nil, report)
		if err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Wrote workbook to %s\n", path)
	}

	archiveIfConfigured(ctx, func(database *db.DB) (string, error) {
		runID, err := database.ArchiveSkills(ctx, report)
		return runID.String(), err
	})

	if settings.Format == config.FormatJSON {
		return printJSON(report)
	}
	observability.NewPrinter(os.Stdout).PrintSkills(report)
	return nil
}
