// Package main provides the entry point for the resume_parser CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/resume-parser/internal/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_parser",
	Short: "Rule-based résumé parser",
	Long: `resume_parser extracts contact details, education, experience, projects and
certifications from résumé files (PDF, DOCX, DOC, RTF, ODT, HTML, Markdown, text)
and matches the text against a skills catalog.

Configuration can be loaded from a JSON file using --config. Command-line flags
override environment variables, which override config file values.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

var (
	rootConfigPath  string
	rootCatalogPath string
	rootVerbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().StringVar(&rootCatalogPath, "catalog", "", "Path to skills catalog JSON (defaults to the built-in catalog)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed debug information")
}

// setup resolves the configuration and installs the logger before any command runs
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	settings = cfg
	logger.Setup(settings.Verbose, os.Stderr)
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
