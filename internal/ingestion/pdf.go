package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Horizontal gaps between glyph runs, as a fraction of the font size
const (
	wordGapRatio   = 0.15
	columnGapRatio = 2.0
)

func (r *Reader) readPDF(ctx context.Context, path string) (string, bool, error) {
	text, err := extractPDFText(path)
	if err != nil {
		return "", false, err
	}
	return r.recognizeIfEmpty(ctx, path, text)
}

// recognizeIfEmpty runs OCR when the text layer of a PDF is blank
func (r *Reader) recognizeIfEmpty(ctx context.Context, path, text string) (string, bool, error) {
	if strings.TrimSpace(text) != "" || r.OCR == nil {
		return text, false, nil
	}

	slog.Info("PDF has no text layer, running OCR", "path", path)
	recognized, err := r.OCR.RecognizePDF(ctx, path)
	if err != nil {
		return "", false, fmt.Errorf("OCR fallback failed: %w", err)
	}
	return recognized, true, nil
}

// extractPDFText reads the text layer page by page, one output line per
// text row. The pdf package panics on some malformed files.
func extractPDFText(path string) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("malformed PDF: %v", rec)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("reading page %d: %w", i, err)
		}
		for _, row := range rows {
			sb.WriteString(joinRow(row.Content))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// joinRow concatenates the glyph runs of one row left to right. Small gaps
// become a space and wide gaps become two, so column layouts survive.
func joinRow(texts pdf.TextHorizontal) string {
	runs := make([]pdf.Text, len(texts))
	copy(runs, texts)
	sort.SliceStable(runs, func(i, j int) bool { return runs[i].X < runs[j].X })

	var sb strings.Builder
	for i, run := range runs {
		if i > 0 {
			prev := runs[i-1]
			gap := run.X - (prev.X + prev.W)
			switch {
			case gap > prev.FontSize*columnGapRatio:
				sb.WriteString("  ")
			case gap > prev.FontSize*wordGapRatio && !strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(run.S, " "):
				sb.WriteString(" ")
			}
		}
		sb.WriteString(run.S)
	}
	return strings.TrimRight(sb.String(), " ")
}
