package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the roles defined by the skills catalog",
	Args:  cobra.NoArgs,
	RunE:  runRoles,
}

var rolesFormat string

func init() {
	rolesCmd.Flags().StringVar(&rolesFormat, "format", config.FormatText, "Output format: text or json")
	rootCmd.AddCommand(rolesCmd)
}

func runRoles(cmd *cobra.Command, _ []string) error {
	if err := overrideFormat(cmd, rolesFormat); err != nil {
		return err
	}

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	roles := catalog.Roles()
	if settings.Format == config.FormatJSON {
		return printJSON(roles)
	}
	if len(roles) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "The catalog defines no roles")
		return nil
	}
	observability.NewPrinter(os.Stdout).PrintRoles(roles)
	return nil
}
