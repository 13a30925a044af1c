package ingestion

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// OCREngine recognizes the text of a scanned PDF
type OCREngine interface {
	RecognizePDF(ctx context.Context, path string) (string, error)
}

// TesseractOCR rasterizes pages with pdftoppm and recognizes them with tesseract.
// Both binaries must be on PATH (poppler-utils and tesseract-ocr).
type TesseractOCR struct {
	PdftoppmPath  string
	TesseractPath string
	DPI           int
	Language      string
}

// NewTesseractOCR returns an engine using the binaries on PATH at 300 DPI
func NewTesseractOCR() *TesseractOCR {
	return &TesseractOCR{
		PdftoppmPath:  "pdftoppm",
		TesseractPath: "tesseract",
		DPI:           300,
		Language:      "eng",
	}
}

// RecognizePDF returns the recognized text of every page, in page order
func (t *TesseractOCR) RecognizePDF(ctx context.Context, path string) (string, error) {
	dir, err := os.MkdirTemp("", "resume-ocr-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	prefix := filepath.Join(dir, "page")
	cmd := exec.CommandContext(ctx, t.PdftoppmPath, "-r", strconv.Itoa(t.DPI), "-png", path, prefix)
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("pdftoppm failed (install poppler-utils): %w: %s", err, strings.TrimSpace(string(output)))
	}

	// pdftoppm zero-pads page numbers to a common width, so lexical order is page order
	pages, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return "", err
	}
	sort.Strings(pages)

	var sb strings.Builder
	for _, page := range pages {
		output, err := exec.CommandContext(ctx, t.TesseractPath, page, "stdout", "-l", t.Language).Output()
		if err != nil {
			return "", fmt.Errorf("tesseract failed on %s: %w", filepath.Base(page), err)
		}
		sb.Write(output)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
