// Package ingestion reads résumé documents from disk and returns their plain text.
package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// SupportedExtensions lists the file extensions ReadDocument accepts
var SupportedExtensions = []string{".pdf", ".docx", ".doc", ".rtf", ".odt", ".html", ".htm", ".md", ".txt"}

// IsSupported reports whether path has an extension the reader can extract
func IsSupported(path string) bool {
	return slices.Contains(SupportedExtensions, strings.ToLower(filepath.Ext(path)))
}

// Reader extracts text from résumé files. The zero value reads every
// supported format but never falls back to OCR.
type Reader struct {
	// OCR recognizes scanned PDFs that carry no text layer. Nil disables the fallback.
	OCR OCREngine
}

// NewReader creates a Reader with the tesseract OCR fallback enabled
func NewReader() *Reader {
	return &Reader{OCR: NewTesseractOCR()}
}

// ReadDocument returns the raw text of the document at path
func (r *Reader) ReadDocument(ctx context.Context, path string) (string, error) {
	text, _, err := r.Ingest(ctx, path)
	return text, err
}

// Ingest reads the document at path and returns its text with metadata.
// Unsupported extensions fail before any I/O.
func (r *Reader) Ingest(ctx context.Context, path string) (string, *Metadata, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsSupported(path) {
		return "", nil, &UnsupportedFormatError{Ext: ext}
	}
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", nil, &DocumentReadError{Path: path, Message: "cannot open file", Cause: err}
	}
	if info.IsDir() {
		return "", nil, &DocumentReadError{Path: path, Message: "path is a directory"}
	}

	var (
		text string
		ocr  bool
	)
	switch ext {
	case ".pdf":
		text, ocr, err = r.readPDF(ctx, path)
	case ".docx":
		text, err = readDOCX(path)
	case ".doc", ".rtf", ".odt":
		text, err = readConverted(path)
	case ".html", ".htm":
		text, err = readHTML(path)
	default:
		text, err = readPlain(path)
	}
	if err != nil {
		return "", nil, &DocumentReadError{Path: path, Message: fmt.Sprintf("cannot extract %s text", strings.TrimPrefix(ext, ".")), Cause: err}
	}

	text = strings.TrimSpace(text)
	metadata := NewMetadata(text, path)
	metadata.OCR = ocr

	slog.Debug("document read", "path", path, "format", metadata.Format, "chars", metadata.Chars, "ocr", ocr)
	return text, metadata, nil
}

// readPlain reads text and markdown files, dropping invalid UTF-8
func readPlain(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(content), ""), nil
}
