package ingestion

import (
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const htmlBlockSelector = "p, div, li, tr, h1, h2, h3, h4, h5, h6, section, article, header, footer, address, blockquote, pre"

// readHTML keeps the block structure of an HTML résumé: every block element
// ends a line and list items become bullets.
func readHTML(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	return htmlText(doc), nil
}

func htmlText(doc *goquery.Document) string {
	doc.Find("script, style, noscript, head").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("li").PrependHtml("• ")
	doc.Find(htmlBlockSelector).AppendHtml("\n")

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	lines := strings.Split(root.Text(), "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
