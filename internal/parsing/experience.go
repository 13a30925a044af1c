package parsing

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jonathan/resume-parser/internal/patterns"
	"github.com/jonathan/resume-parser/internal/types"
)

// maxHeaderLines bounds how many lines around a date are read as an entry header.
const maxHeaderLines = 2

type experienceTier struct {
	name  string
	parse func(section string) []types.ExperienceEntry
}

var experienceTiers = []experienceTier{
	{"pipe", parsePipeEntries},
	{"stacked", parseStackedEntries},
	{"date-anchored", parseDateAnchoredEntries},
	{"paragraph", parseParagraphEntries},
}

// ExtractExperience parses an experience section into entries. Grammars are
// tried from most to least structured and the first one that yields entries
// wins. Parsing never fails: unparseable input yields an empty slice.
func ExtractExperience(section string) (entries []types.ExperienceEntry) {
	section = strings.TrimSpace(section)
	entries = []types.ExperienceEntry{}
	if section == "" {
		return entries
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Warn("experience parsing failed", "error", fmt.Sprint(r))
			entries = []types.ExperienceEntry{}
		}
	}()

	for _, tier := range experienceTiers {
		if found := tier.parse(section); len(found) > 0 {
			slog.Debug("experience entries parsed", "tier", tier.name, "count", len(found))
			return found
		}
	}
	return entries
}

// parsePipeEntries handles "Title | Company | [Location |] Start - End" headers.
func parsePipeEntries(section string) []types.ExperienceEntry {
	var entries []types.ExperienceEntry
	var current *types.ExperienceEntry
	var body []string

	flush := func() {
		if current == nil {
			return
		}
		current.Details, current.Bullets = classifyDetails(body, current.JobTitle, current.Company)
		entries = append(entries, *current)
		current, body = nil, nil
	}

	for _, line := range strings.Split(section, "\n") {
		if idx := patterns.PipeHeader.FindStringSubmatchIndex(line); idx != nil {
			flush()
			current = &types.ExperienceEntry{
				JobTitle: submatch(line, idx, 1),
				Company:  submatch(line, idx, 2),
				Location: submatch(line, idx, 3),
			}
			current.StartDate, current.EndDate = SplitDateRange(line[idx[8]:idx[11]])
			continue
		}
		if current != nil {
			body = append(body, line)
		}
	}
	flush()
	return entries
}

// parseStackedEntries handles a "Title  Start - End" line followed by a
// company line (optionally carrying the location) and an optional location line.
func parseStackedEntries(section string) []types.ExperienceEntry {
	lines := strings.Split(section, "\n")

	var headers []int
	for i, line := range lines {
		if isBullet(line) {
			continue
		}
		if m := patterns.StackedHeader.FindStringSubmatch(line); m != nil && !patterns.MonthNameOnly.MatchString(strings.Trim(m[1], fieldSeparators)) {
			headers = append(headers, i)
		}
	}
	if len(headers) == 0 {
		return nil
	}

	entries := make([]types.ExperienceEntry, 0, len(headers))
	for n, h := range headers {
		stop := len(lines)
		if n+1 < len(headers) {
			stop = headers[n+1]
		}

		idx := patterns.StackedHeader.FindStringSubmatchIndex(lines[h])
		entry := types.ExperienceEntry{JobTitle: strings.Trim(submatch(lines[h], idx, 1), fieldSeparators)}
		entry.StartDate, entry.EndDate = SplitDateRange(lines[h][idx[4]:idx[7]])

		next := h + 1
		for next < stop && strings.TrimSpace(lines[next]) == "" {
			next++
		}
		if next < stop && !isBullet(lines[next]) {
			companyLine := strings.TrimSpace(lines[next])
			entry.Company, entry.Location = splitCompanyLocation(companyLine)
			next++

			// Company-first layouts put the employer on the date line
			if patterns.OrgKeyword.MatchString(entry.JobTitle) && !patterns.TitleKeyword.MatchString(entry.JobTitle) &&
				patterns.TitleKeyword.MatchString(entry.Company) && !patterns.OrgKeyword.MatchString(entry.Company) {
				entry.JobTitle, entry.Company = entry.Company, entry.JobTitle
			}
		}
		if entry.Location == "" && next < stop && patterns.ExperienceLocation.MatchString(lines[next]) {
			entry.Location = strings.TrimSpace(lines[next])
			next++
		}

		entry.Details, entry.Bullets = classifyDetails(lines[next:stop], entry.JobTitle, entry.Company)
		entries = append(entries, entry)
	}
	return entries
}

// submatch returns capture group n of a FindStringSubmatchIndex result, trimmed.
func submatch(s string, idx []int, n int) string {
	if idx[2*n] < 0 {
		return ""
	}
	return strings.TrimSpace(s[idx[2*n]:idx[2*n+1]])
}

// dateSpan is one logical date occurrence after merging adjacent fragments.
type dateSpan struct {
	start, end int
	from, to   string
}

// findDateSpans locates date anchors. Fragments separated only by whitespace,
// punctuation or a range separator are merged. A span is an anchor when it is
// a range or carries a month; a lone year is too common inside bullets.
func findDateSpans(text string) []dateSpan {
	frags := patterns.DateFragment.FindAllStringIndex(text, -1)

	var spans []dateSpan
	var group [][]int
	flush := func() {
		if len(group) == 0 {
			return
		}
		first, last := group[0], group[len(group)-1]
		span := dateSpan{start: first[0], end: last[1], from: collapseSpaces(text[first[0]:first[1]])}
		if len(group) > 1 {
			span.to = collapseSpaces(text[last[0]:last[1]])
		}
		if span.to != "" || patterns.MonthYearOnly.MatchString(span.from) {
			spans = append(spans, span)
		}
		group = nil
	}

	for _, f := range frags {
		if len(group) > 0 {
			gap := text[group[len(group)-1][1]:f[0]]
			if !patterns.FragmentGap.MatchString(gap) || (len(group) >= 2 && strings.Contains(gap, "\n")) {
				flush()
			}
		}
		group = append(group, f)
	}
	flush()
	return spans
}

// takeHeaderLines walks back from the end of the text preceding a date and
// returns up to maxHeaderLines short, non-bullet lines plus the index of the
// first line it claimed.
func takeHeaderLines(lines []string) ([]string, int) {
	var header []string
	k := len(lines)
	for j := len(lines) - 1; j >= 0 && len(header) < maxHeaderLines; j-- {
		t := strings.Trim(lines[j], fieldSeparators+"(")
		if t == "" {
			if len(header) > 0 {
				break
			}
			k = j
			continue
		}
		if isBullet(lines[j]) || !looksLikeHeader(t) {
			break
		}
		header = append([]string{t}, header...)
		k = j
	}
	return header, k
}

// looksLikeHeader rejects long lines and sentences. A trailing period is
// allowed when the last word is an organization suffix ("Acme Inc.").
func looksLikeHeader(line string) bool {
	words := strings.Fields(line)
	if len(words) > 10 {
		return false
	}
	if strings.HasSuffix(line, ".") {
		return patterns.OrgKeyword.MatchString(words[len(words)-1])
	}
	return true
}

// parseDateAnchoredEntries builds one entry per date anchor. The header is
// read from the lines just before the date and the company/title may also
// come from the first lines after it.
func parseDateAnchoredEntries(section string) []types.ExperienceEntry {
	spans := findDateSpans(section)
	if len(spans) == 0 {
		return nil
	}

	// gaps[i] is the text before spans[i]; gaps[len] is the text after the last span
	gaps := make([][]string, len(spans)+1)
	prev := 0
	for i, s := range spans {
		gaps[i] = strings.Split(section[prev:s.start], "\n")
		prev = s.end
	}
	gaps[len(spans)] = strings.Split(section[prev:], "\n")

	headers := make([][]string, len(spans))
	claimed := make([]int, len(spans)+1)
	for i := range spans {
		headers[i], claimed[i] = takeHeaderLines(gaps[i])
	}
	claimed[len(spans)] = len(gaps[len(spans)])

	entries := make([]types.ExperienceEntry, 0, len(spans))
	for i, s := range spans {
		entry := types.ExperienceEntry{StartDate: s.from, EndDate: s.to}
		body := gaps[i+1][:claimed[i+1]]
		body = assignHeaderFields(&entry, headers[i], body)
		entry.Details, entry.Bullets = classifyDetails(body, entry.JobTitle, entry.Company)
		entries = append(entries, entry)
	}
	return entries
}

// assignHeaderFields picks company, location and title from the header lines
// and the leading body lines. It returns the body without the lines it used.
func assignHeaderFields(entry *types.ExperienceEntry, header, body []string) []string {
	// Leading non-bullet body lines are candidates too
	var leading []int
	for j := 0; j < len(body) && len(leading) < maxHeaderLines; j++ {
		t := strings.Trim(body[j], fieldSeparators+"(")
		if t == "" {
			continue
		}
		if isBullet(body[j]) {
			break
		}
		leading = append(leading, j)
	}
	used := map[int]bool{}
	leadText := func(j int) string { return strings.Trim(body[j], fieldSeparators+"(") }

	// Company: organization keyword first, then a location-shaped line
	companyHeader := -1
	for j := len(header) - 1; j >= 0 && entry.Company == ""; j-- {
		if patterns.OrgKeyword.MatchString(header[j]) {
			companyHeader = j
			entry.Company, entry.Location = splitCompanyLocation(header[j])
		}
	}
	for _, j := range leading {
		if entry.Company != "" {
			break
		}
		if patterns.OrgKeyword.MatchString(leadText(j)) {
			used[j] = true
			entry.Company, entry.Location = splitCompanyLocation(leadText(j))
		}
	}
	for j := len(header) - 1; j >= 0 && entry.Company == ""; j-- {
		if c, loc := splitCompanyLocation(header[j]); loc != "" && c != "" && len(header) > 1 {
			companyHeader = j
			entry.Company, entry.Location = c, loc
		}
	}

	// A single header line may hold both title and company
	if companyHeader >= 0 && len(header) == 1 {
		if title, company, ok := splitTitleCompany(header[0], true); ok {
			entry.JobTitle = title
			entry.Company, entry.Location = splitCompanyLocation(company)
		}
	}

	// Title: the header's last line that is not the company or a location
	for j := len(header) - 1; j >= 0 && entry.JobTitle == ""; j-- {
		if j == companyHeader || patterns.ExperienceLocation.MatchString(header[j]) {
			continue
		}
		if entry.Company == "" {
			if title, company, ok := splitTitleCompany(header[j], true); ok {
				entry.JobTitle = title
				entry.Company, entry.Location = splitCompanyLocation(company)
				continue
			}
		}
		entry.JobTitle = header[j]
	}
	for _, j := range leading {
		if entry.JobTitle != "" {
			break
		}
		if !used[j] && patterns.TitleKeyword.MatchString(leadText(j)) {
			used[j] = true
			entry.JobTitle = leadText(j)
		}
	}

	// Location on its own line
	for _, j := range leading {
		if entry.Location == "" && !used[j] && patterns.ExperienceLocation.MatchString(leadText(j)) {
			used[j] = true
			entry.Location = leadText(j)
		}
	}

	rest := make([]string, 0, len(body))
	for j, line := range body {
		if !used[j] {
			rest = append(rest, line)
		}
	}
	return rest
}

// parseParagraphEntries is the last resort for sections without dates: each
// blank-line separated paragraph is one entry.
func parseParagraphEntries(section string) []types.ExperienceEntry {
	if len(findDateSpans(section)) > 0 {
		return nil
	}

	var entries []types.ExperienceEntry
	for _, para := range blankLineSplit.Split(section, -1) {
		lines := nonEmptyLines(para)
		if len(lines) == 0 || isBullet(lines[0]) {
			continue
		}

		var entry types.ExperienceEntry
		rest := lines[1:]
		if title, company, ok := splitTitleCompany(lines[0], false); ok {
			entry.JobTitle = title
			entry.Company, entry.Location = splitCompanyLocation(company)
		} else {
			entry.JobTitle = strings.Trim(lines[0], fieldSeparators)
			if len(rest) > 0 && !isBullet(rest[0]) {
				entry.Company, entry.Location = splitCompanyLocation(rest[0])
				rest = rest[1:]
			}
		}
		if entry.JobTitle == "" {
			continue
		}
		entry.Details, entry.Bullets = classifyDetails(rest, entry.JobTitle, entry.Company)
		entries = append(entries, entry)
	}
	return entries
}
