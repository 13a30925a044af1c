// Package parsing extracts structured résumé content (contact details,
// sections, education and experience entries) from normalized plain text.
package parsing

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize cleans raw document text so every extractor sees the same shape:
// LF line endings, no trailing whitespace, no leading or trailing blank lines
// and at most one blank line between blocks. Normalize is idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	// 1. Compose Unicode so accented letters are single runes
	text = norm.NFC.String(text)

	// 2. Normalize line endings (CRLF, CR → LF)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	// 3. Right-trim every line and collapse blank runs
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		if line == "" {
			if len(cleaned) == 0 || blank {
				continue
			}
			blank = true
			cleaned = append(cleaned, "")
			continue
		}
		blank = false
		cleaned = append(cleaned, line)
	}

	// 4. Trim the whole result (drops a trailing blank line too)
	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// nonEmptyLines splits text into trimmed, non-empty lines.
func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// collapseSpaces squeezes runs of spaces and tabs into a single space.
func collapseSpaces(s string) string {
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t'
	}), " ")
}
