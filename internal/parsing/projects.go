package parsing

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/patterns"
	"github.com/jonathan/resume-parser/internal/types"
)

// ExtractSummary returns the summary/objective section, or "".
func ExtractSummary(text string) string {
	return FindSection(text, patterns.SummaryStart, patterns.SummaryEnd)
}

// ExtractProjects parses a projects section. Each blank-line separated block
// is one project: the first line names it, its first date is kept as the
// project dates, and the remaining lines go through the shared bullet rules.
func ExtractProjects(section string) []types.ProjectEntry {
	projects := []types.ProjectEntry{}
	for _, block := range blankLineSplit.Split(strings.TrimSpace(section), -1) {
		lines := nonEmptyLines(block)
		if len(lines) == 0 {
			continue
		}

		var p types.ProjectEntry
		first := lines[0]
		rest := lines[1:]
		if isBullet(first) {
			// A bulleted list without a name line: every bullet is its own project
			for _, line := range lines {
				if name := strings.TrimSpace(patterns.Bullet.ReplaceAllString(line, "")); name != "" {
					projects = append(projects, types.ProjectEntry{Name: name, Bullets: []string{}})
				}
			}
			continue
		}

		if date := patterns.DateGrammar.FindString(first); date != "" {
			p.Dates = collapseSpaces(date)
			first = strings.Replace(first, date, "", 1)
		} else if date := patterns.DateGrammar.FindString(block); date != "" {
			p.Dates = collapseSpaces(date)
		}
		p.Name = collapseSpaces(strings.Trim(first, fieldSeparators+"()"))
		p.Details, p.Bullets = classifyDetails(rest, p.Name, "")
		projects = append(projects, p)
	}
	return projects
}

// ExtractCertifications collects certifications from the certifications
// section lines, from known catalog certifications mentioned anywhere, and
// from any line that talks about being certified. Results keep first-seen
// order without duplicates.
func ExtractCertifications(text, section string, known []string) []string {
	var certs []string
	seen := map[string]bool{}
	add := func(c string) {
		c = strings.Trim(patterns.Bullet.ReplaceAllString(strings.TrimSpace(c), ""), fieldSeparators)
		key := strings.ToLower(c)
		if c == "" || seen[key] {
			return
		}
		seen[key] = true
		certs = append(certs, c)
	}

	for _, line := range nonEmptyLines(section) {
		add(line)
	}

	lower := strings.ToLower(text)
	for _, k := range known {
		if k != "" && containsPhrase(lower, strings.ToLower(k)) {
			add(k)
		}
	}

	if section == "" {
		for _, line := range nonEmptyLines(text) {
			if patterns.CertificationLine.MatchString(line) && len(strings.Fields(line)) <= 12 {
				add(line)
			}
		}
	}
	return certs
}

// containsPhrase reports whether phrase occurs in s delimited by non-word runes.
func containsPhrase(s, phrase string) bool {
	for offset := 0; ; {
		i := strings.Index(s[offset:], phrase)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(phrase)
		if (start == 0 || !isWordByte(s[start-1])) && (end == len(s) || !isWordByte(s[end])) {
			return true
		}
		offset = start + 1
	}
}

func isWordByte(b byte) bool {
	return b == '_' || b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}
