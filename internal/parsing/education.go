package parsing

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/patterns"
	"github.com/jonathan/resume-parser/internal/types"
)

const fieldSeparators = " ,;:-|–—"

var blankLineSplit = regexp.MustCompile(`\n[ \t]*\n`)

// educationBlockParser turns one degree group into an entry.
var educationBlockParser = parseEducationBlock

// eduLine is one cleaned, non-empty line of an education block. para counts
// the blank lines seen before it so sub-blocks can be followed to their end.
type eduLine struct {
	text string
	para int
}

// ExtractEducation parses an education section into entries. A section made
// of several blank-line separated groups that each name a degree yields one
// entry per group; anything else is a single entry. An empty section yields
// an empty slice.
func ExtractEducation(section string) (entries []types.EducationEntry) {
	section = strings.TrimSpace(section)
	entries = []types.EducationEntry{}
	if section == "" {
		return entries
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Warn("education parsing failed, keeping raw section", "error", fmt.Sprint(r))
			entries = []types.EducationEntry{{Institution: section}}
		}
	}()

	for _, block := range splitEducationBlocks(section) {
		entries = append(entries, educationBlockParser(block))
	}
	return entries
}

// splitEducationBlocks groups blank-line separated blocks so each group holds
// one degree. Blocks without a degree stay with the group before them.
func splitEducationBlocks(section string) []string {
	blocks := blankLineSplit.Split(section, -1)

	withDegree := 0
	for _, b := range blocks {
		if blockHasDegree(b) {
			withDegree++
		}
	}
	if withDegree < 2 {
		return []string{section}
	}

	var groups []string
	var current []string
	currentHasDegree := false
	for _, b := range blocks {
		if strings.TrimSpace(b) == "" {
			continue
		}
		hasDegree := blockHasDegree(b)
		if hasDegree && currentHasDegree {
			groups = append(groups, strings.Join(current, "\n\n"))
			current = nil
			currentHasDegree = false
		}
		current = append(current, b)
		currentHasDegree = currentHasDegree || hasDegree
	}
	if len(current) > 0 {
		groups = append(groups, strings.Join(current, "\n\n"))
	}
	return groups
}

func blockHasDegree(block string) bool {
	for _, line := range strings.Split(block, "\n") {
		if lineHasDegree(line) {
			return true
		}
	}
	return false
}

// lineHasDegree ignores a trailing location so "Boston, MA" is not read as a
// degree. Only a match that survives sanitizeLocation counts as a location.
func lineHasDegree(line string) bool {
	if m := patterns.EducationLocation.FindStringSubmatchIndex(line); m != nil && sanitizeLocation(strings.TrimSpace(line[m[2]:m[3]])) != "" {
		line = line[:m[0]]
	}
	return patterns.DegreeKeyword.MatchString(line)
}

func cleanEducationBlock(block string) []eduLine {
	block = strings.ReplaceAll(block, "•", " ")
	block = strings.ReplaceAll(block, "\t", " ")

	var lines []eduLine
	para := 0
	for _, raw := range strings.Split(block, "\n") {
		line := collapseSpaces(raw)
		if line == "" {
			para++
			continue
		}
		lines = append(lines, eduLine{text: line, para: para})
	}
	return lines
}

func parseEducationBlock(block string) types.EducationEntry {
	var entry types.EducationEntry

	lines := cleanEducationBlock(block)
	if len(lines) == 0 {
		return entry
	}
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.text
	}
	joined := strings.Join(texts, "\n")

	// 1. Graduation date
	entry.GraduationDate = strings.TrimSpace(patterns.DateGrammar.FindString(joined))

	// 2. Degree line
	degreeIdx := -1
	for i, t := range texts {
		if lineHasDegree(t) {
			degreeIdx = i
			break
		}
	}

	// 3. Location: first three lines, then the degree line
	for i := 0; i < len(texts) && i < 3 && entry.Location == ""; i++ {
		entry.Location = findEducationLocation(texts[i], entry.GraduationDate)
	}
	if entry.Location == "" && degreeIdx >= 0 {
		entry.Location = findEducationLocation(texts[degreeIdx], entry.GraduationDate)
	}

	// 4. GPA and minors
	if m := patterns.GPA.FindStringSubmatch(joined); m != nil {
		entry.GPA = strings.Replace(m[1], ",", ".", 1)
		if m[2] != "" {
			entry.GPA += "/" + strings.Replace(m[2], ",", ".", 1)
		}
	}
	if m := patterns.Minors.FindStringSubmatch(joined); m != nil {
		minors := strings.Trim(m[1], fieldSeparators)
		entry.Minors = strings.TrimSpace(strings.TrimPrefix(minors, "in "))
	}

	// 5. Institution
	instIdx := -1
	for i, t := range texts {
		if patterns.GPA.MatchString(t) || patterns.Minors.MatchString(t) || strings.Contains(strings.ToLower(t), "project") {
			continue
		}
		if stripEducationFields(t, entry) == "" {
			continue
		}
		instIdx = i
		break
	}

	// 6. Degree and emphasis
	if degreeIdx >= 0 {
		var prefix string
		entry.Degree, entry.Emphasis, prefix = splitDegreeLine(stripEducationFields(texts[degreeIdx], entry))
		if instIdx == degreeIdx {
			if prefix != "" {
				entry.Institution = prefix
			} else {
				instIdx = nextInstitutionLine(texts, degreeIdx, entry)
			}
		} else if entry.Emphasis == "" {
			entry.Emphasis = prefix
		}
	}
	if entry.Institution == "" && instIdx >= 0 {
		entry.Institution = stripEducationFields(texts[instIdx], entry)
	}

	// 7. Details: projects, then awards, then whatever is left
	consumed := map[int]bool{instIdx: true, degreeIdx: true}
	var details []string
	for _, header := range []*regexp.Regexp{patterns.ProjectsHeader, patterns.AwardsHeader} {
		if d := takeLeadBlock(lines, header, consumed); d != "" {
			details = append(details, d)
		}
	}
	for i, t := range texts {
		if consumed[i] || patterns.Minors.MatchString(t) {
			continue
		}
		if rest := stripEducationFields(t, entry); rest != "" {
			details = append(details, rest)
		}
	}
	entry.Details = strings.Join(details, "; ")

	return entry
}

// stripEducationFields removes the graduation date, location, GPA and minors
// from a line and trims separators.
func stripEducationFields(line string, entry types.EducationEntry) string {
	if entry.GraduationDate != "" {
		line = strings.Replace(line, entry.GraduationDate, "", 1)
	}
	if entry.Location != "" {
		line = strings.Replace(line, entry.Location, "", 1)
	}
	line = patterns.GPA.ReplaceAllString(line, "")
	line = patterns.Minors.ReplaceAllString(line, "")
	return collapseSpaces(strings.Trim(line, fieldSeparators))
}

// nextInstitutionLine picks the first usable line after the degree line.
func nextInstitutionLine(texts []string, degreeIdx int, entry types.EducationEntry) int {
	for i := range texts {
		if i == degreeIdx || patterns.GPA.MatchString(texts[i]) || patterns.Minors.MatchString(texts[i]) {
			continue
		}
		if strings.Contains(strings.ToLower(texts[i]), "project") || lineHasDegree(texts[i]) {
			continue
		}
		if stripEducationFields(texts[i], entry) != "" {
			return i
		}
	}
	return degreeIdx
}

// splitDegreeLine returns the degree phrase, the emphasis and any text that
// came before the degree phrase. With a colon the emphasis is what follows it;
// otherwise it is the rest of the line after the degree phrase.
func splitDegreeLine(line string) (degree, emphasis, prefix string) {
	loc := patterns.DegreePhrase.FindStringIndex(line)
	if loc == nil {
		return "", "", ""
	}
	degree = strings.Trim(line[loc[0]:loc[1]], fieldSeparators)
	prefix = strings.Trim(line[:loc[0]], fieldSeparators)
	rest := line[loc[1]:]
	if i := strings.Index(rest, ":"); i >= 0 {
		rest = rest[i+1:]
	}
	emphasis = collapseSpaces(strings.Trim(rest, fieldSeparators))
	return degree, emphasis, prefix
}

// findEducationLocation scans a line for a trailing location, rejecting
// matches that are really degree text.
func findEducationLocation(line, gradDate string) string {
	if gradDate != "" {
		line = strings.Replace(line, gradDate, "", 1)
	}
	line = strings.Trim(line, fieldSeparators)
	m := patterns.EducationLocation.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return sanitizeLocation(strings.TrimSpace(m[1]))
}

// sanitizeLocation drops locations that contain degree terms, salvaging the
// last word before the comma plus the part after it when that is clean. A
// "city" that names a degree ("MS, Computer Science") is never a location.
func sanitizeLocation(loc string) string {
	city := loc
	if comma := strings.Index(loc, ","); comma >= 0 {
		city = loc[:comma]
	}
	if patterns.DegreeKeyword.MatchString(city) {
		return ""
	}
	if !patterns.ContainsBlockedTerm(loc) {
		return loc
	}
	comma := strings.LastIndex(loc, ",")
	if comma < 0 {
		return ""
	}
	words := strings.Fields(loc[:comma])
	tail := strings.TrimSpace(loc[comma+1:])
	if len(words) == 0 || tail == "" {
		return ""
	}
	salvaged := words[len(words)-1] + ", " + tail
	if patterns.ContainsBlockedTerm(salvaged) {
		return ""
	}
	return salvaged
}

// takeLeadBlock finds the first line that opens with header and returns the
// text after the header plus the following lines of the same paragraph,
// joined with "; ". Every line it uses is marked consumed.
func takeLeadBlock(lines []eduLine, header *regexp.Regexp, consumed map[int]bool) string {
	for i, l := range lines {
		if consumed[i] {
			continue
		}
		loc := header.FindStringIndex(l.text)
		if loc == nil || loc[0] != 0 {
			continue
		}
		var parts []string
		if first := strings.TrimSpace(l.text[loc[1]:]); first != "" {
			parts = append(parts, first)
		}
		consumed[i] = true
		for j := i + 1; j < len(lines) && lines[j].para == l.para && !consumed[j]; j++ {
			consumed[j] = true
			parts = append(parts, lines[j].text)
		}
		return strings.Join(parts, "; ")
	}
	return ""
}
