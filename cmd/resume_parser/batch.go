package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-parser/internal/pipeline"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch FILES...",
	Short: "Extract profiles from many résumés concurrently",
	Long: `Extracts a profile from every file given and writes one ProfileReport JSON per
file into --out-dir. A file that cannot be read is reported and skipped; the
other files are still processed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

var (
	batchOutDir  string
	batchWorkers int
)

func init() {
	batchCmd.Flags().StringVarP(&batchOutDir, "out-dir", "o", "", "Directory for the ProfileReport JSON files (required)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Documents processed concurrently (defaults to config workers)")

	if err := batchCmd.MarkFlagRequired("out-dir"); err != nil {
		panic(fmt.Sprintf("failed to mark out-dir flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

// outputNames maps each input path to a unique JSON file name
func outputNames(paths []string) []string {
	names := make([]string, len(paths))
	used := map[string]int{}
	for i, path := range paths {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if base == "" {
			base = "resume"
		}
		name := base
		if n := used[base]; n > 0 {
			name = fmt.Sprintf("%s-%d", base, n)
		}
		used[base]++
		names[i] = name + ".json"
	}
	return names
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	workers := settings.Workers
	if cmd.Flags().Changed("workers") {
		if batchWorkers < 1 || batchWorkers > 64 {
			return fmt.Errorf("--workers must be between 1 and 64, got %d", batchWorkers)
		}
		workers = batchWorkers
	}

	analyzer, err := newAnalyzer()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(batchOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", batchOutDir, err)
	}

	results := analyzer.Batch(ctx, args, workers, func(e pipeline.ProgressEvent) {
		status := "ok"
		if e.Err != nil {
			status = "failed"
		}
		_, _ = fmt.Fprintf(os.Stderr, "[%d/%d] %s %s\n", e.Done, e.Total, e.Path, status)
	})

	names := outputNames(args)
	failed := 0
	for i, r := range results {
		if r.Err != nil {
			failed++
			_, _ = fmt.Fprintf(os.Stderr, "Error: %s: %v\n", r.Path, r.Err)
			continue
		}
		if err := writeJSON(filepath.Join(batchOutDir, names[i]), r.Report); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Parsed %d of %d documents into %s\n", len(results)-failed, len(results), batchOutDir)
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(results))
	}
	return nil
}
