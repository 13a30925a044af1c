package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/patterns"
)

// classifyDetails sorts the lines under an entry header into bullets and
// free-text details. A bullet glyph opens a new bullet, an inline "•" splits
// a line into several bullets, and any other line continues the last bullet
// or, before the first bullet, becomes free text. Lines repeating the title
// or company, date-range lines and bare location lines are dropped.
func classifyDetails(lines []string, title, company string) (string, []string) {
	var free []string
	bullets := []string{}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if (title != "" && line == title) || (company != "" && line == company) {
			continue
		}
		if patterns.DateRange.MatchString(line) && strings.TrimSpace(patterns.DateRange.ReplaceAllString(line, "")) == "" {
			continue
		}
		if patterns.ExperienceLocation.MatchString(line) {
			continue
		}

		if loc := patterns.Bullet.FindStringIndex(line); loc != nil {
			for _, part := range strings.Split(line[loc[1]:], "•") {
				if part = strings.TrimSpace(part); part != "" {
					bullets = append(bullets, part)
				}
			}
			continue
		}
		if strings.Contains(line, "•") {
			for _, part := range strings.Split(line, "•") {
				if part = strings.TrimSpace(part); part != "" {
					bullets = append(bullets, part)
				}
			}
			continue
		}
		if len(bullets) > 0 {
			bullets[len(bullets)-1] += " " + line
			continue
		}
		free = append(free, line)
	}

	// A free-text line never duplicates a bullet
	seen := make(map[string]bool, len(bullets))
	for _, b := range bullets {
		seen[b] = true
	}
	kept := free[:0]
	for _, f := range free {
		if !seen[f] {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, "\n"), bullets
}

// isBullet reports whether a line opens with a bullet glyph.
func isBullet(line string) bool {
	return patterns.Bullet.MatchString(line)
}

// SplitDateRange splits a date range on its first separator (-, –, — or
// "to"). A single date comes back as the start with an empty end.
func SplitDateRange(s string) (start, end string) {
	s = collapseSpaces(strings.ReplaceAll(strings.TrimSpace(s), "\n", " "))
	loc := patterns.RangeSplit.FindStringIndex(s)
	if loc == nil {
		return s, ""
	}
	return strings.TrimSpace(s[:loc[0]]), strings.TrimSpace(s[loc[1]:])
}

// splitCompanyLocation separates a trailing location from a company line:
// first on a column gap, then on a trailing "City, ST", then on a trailing
// remote keyword.
func splitCompanyLocation(line string) (company, location string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}

	if parts := patterns.ColumnGap.Split(line, -1); len(parts) > 1 {
		return strings.Trim(parts[0], fieldSeparators), strings.Trim(strings.Join(parts[1:], " "), fieldSeparators)
	}
	for _, re := range []*regexp.Regexp{patterns.TrailingCityState, patterns.TrailingRemote} {
		if m := re.FindStringSubmatchIndex(line); m != nil {
			return strings.Trim(line[:m[2]], fieldSeparators), strings.TrimSpace(line[m[2]:m[3]])
		}
	}
	return strings.Trim(line, fieldSeparators), ""
}

// splitTitleCompany splits "Title @ Company", "Title at Company",
// "Title | Company" and "Title - Company". With allowComma it also splits
// "Title, Company" when the right side looks like an organization.
func splitTitleCompany(line string, allowComma bool) (title, company string, ok bool) {
	if loc := patterns.TitleCompanySeparator.FindStringIndex(line); loc != nil {
		return cleanTitleCompany(line[:loc[0]], line[loc[1]:])
	}
	for _, sep := range []string{" | ", "|", " - ", " – ", " — "} {
		if i := strings.Index(line, sep); i > 0 {
			return cleanTitleCompany(line[:i], line[i+len(sep):])
		}
	}
	if allowComma {
		if i := strings.Index(line, ","); i > 0 && patterns.OrgKeyword.MatchString(line[i+1:]) {
			return cleanTitleCompany(line[:i], line[i+1:])
		}
	}
	return "", "", false
}

func cleanTitleCompany(title, company string) (string, string, bool) {
	title = strings.Trim(title, fieldSeparators)
	company = strings.Trim(company, fieldSeparators)
	if title == "" || company == "" {
		return "", "", false
	}
	return title, company, true
}
