package parsing

import (
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"github.com/jonathan/resume-parser/internal/patterns"
	"github.com/jonathan/resume-parser/internal/types"
)

// sectionMatcher holds the compiled regexes for one start/end vocabulary pair.
type sectionMatcher struct {
	header *regexp.Regexp // anchored start header line
	end    *regexp.Regexp // anchored end header line, nil when no end keywords
	inline *regexp.Regexp // inline "Keyword: content" fallback
}

var (
	matcherCacheMu sync.RWMutex
	matcherCache   = map[string]*sectionMatcher{}
)

func headerLinePattern(keywords []string) string {
	return `(?mi)^\s*(?:` + patterns.KeywordAlternation(keywords) + `)\s*[:\-–—]?\s*$`
}

func compileSectionMatcher(start, end []string) *sectionMatcher {
	key := strings.Join(start, "\x00") + "\x01" + strings.Join(end, "\x00")

	matcherCacheMu.RLock()
	m, ok := matcherCache[key]
	matcherCacheMu.RUnlock()
	if ok {
		return m
	}

	m = &sectionMatcher{
		header: regexp.MustCompile(headerLinePattern(start)),
		// The stop condition is a newline followed by a line that starts with a
		// capital letter and is itself newline-terminated, or end of text.
		inline: regexp.MustCompile(`(?s)\b(?i:` + patterns.KeywordAlternation(start) + `)\b\s*[:\-–—]?\s*(.*?)(?:\n[A-Z][^\n]*\n|$)`),
	}
	if patterns.KeywordAlternation(end) != "" {
		m.end = regexp.MustCompile(headerLinePattern(end))
	}

	matcherCacheMu.Lock()
	matcherCache[key] = m
	matcherCacheMu.Unlock()
	return m
}

// FindSection returns the content of the first section introduced by one of
// the start keywords, or "" when the text has no such section.
//
// An anchored header line (the keyword alone on its line, optionally followed
// by ":" or a dash) wins; the section runs to the first header line built from
// an end keyword, or to the end of the text. Without an anchored header, an
// inline "Keyword: content" occurrence is used instead. The result is always
// a trimmed, contiguous substring of text.
func FindSection(text string, start, end []string) string {
	if text == "" || len(start) == 0 {
		return ""
	}
	m := compileSectionMatcher(start, end)

	if loc := m.header.FindStringIndex(text); loc != nil {
		rest := text[loc[1]:]
		if m.end != nil {
			if endLoc := m.end.FindStringIndex(rest); endLoc != nil {
				rest = rest[:endLoc[0]]
			}
		}
		return strings.TrimSpace(rest)
	}

	if sub := m.inline.FindStringSubmatch(text); sub != nil {
		return strings.TrimSpace(sub[1])
	}

	return ""
}

// sectionVocabulary lists the start/end keyword sets for every known section.
var sectionVocabulary = []struct {
	name       types.SectionName
	start, end []string
}{
	{types.SectionSummary, patterns.SummaryStart, patterns.SummaryEnd},
	{types.SectionExperience, patterns.ExperienceStart, patterns.ExperienceEnd},
	{types.SectionEducation, patterns.EducationStart, patterns.EducationEnd},
	{types.SectionSkills, patterns.SkillsStart, patterns.SkillsEnd},
	{types.SectionProjects, patterns.ProjectsStart, patterns.ProjectsEnd},
	{types.SectionCertifications, patterns.CertificationsStart, patterns.CertificationsEnd},
}

// Sections segments normalized text into every known section. Sections that
// are absent are returned with empty content, never omitted.
func Sections(text string) []types.Section {
	sections := make([]types.Section, 0, len(sectionVocabulary))
	for _, v := range sectionVocabulary {
		content := FindSection(text, v.start, v.end)
		if content == "" {
			slog.Debug("section not found", "section", v.name)
		}
		sections = append(sections, types.Section{Name: v.name, Content: content})
	}
	return sections
}
