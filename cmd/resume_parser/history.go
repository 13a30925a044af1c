package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/db"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived parse runs",
	Long:  "Lists the most recent runs stored in the report archive, newest first. Use the show and delete subcommands to inspect or remove a single run.",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var (
	historyDatabaseURL string
	historyLimit       int
	historyMode        string
	historyFormat      string
)

func init() {
	historyCmd.PersistentFlags().StringVar(&historyDatabaseURL, "database-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", db.DefaultListLimit, "Maximum runs to list")
	historyCmd.Flags().StringVar(&historyMode, "mode", "", "Only list runs of this mode: profile or skills")
	historyCmd.PersistentFlags().StringVar(&historyFormat, "format", config.FormatText, "Output format: text or json")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	if err := overrideFormat(cmd, historyFormat); err != nil {
		return err
	}
	overrideDatabaseURL(cmd, historyDatabaseURL)

	var runs []db.Run
	err := withDatabase(ctx, func(database *db.DB) error {
		var err error
		runs, err = database.ListRuns(ctx, db.RunFilters{Mode: historyMode, Limit: historyLimit})
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if settings.Format == config.FormatJSON {
		return printJSON(runs)
	}
	if len(runs) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No runs archived yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tCREATED\tMODE\tROLE\tSTATUS\tSOURCE")
	for _, r := range runs {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.CreatedAt.Local().Format(time.DateTime), r.Mode, r.Role, r.Status, r.Source)
	}
	return w.Flush()
}
