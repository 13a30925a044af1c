// Package pipeline wires the document reader, the section extractors and the
// skills matcher into profile and skills reports.
package pipeline

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/types"
)

// Options tunes how reports are built
type Options struct {
	// KnownCertifications are matched anywhere in the text
	KnownCertifications []string
	// MaxSectionChars caps the raw section text kept in reports (0 = unlimited)
	MaxSectionChars int
}

// AnalyzeText builds a profile report from raw résumé text
func AnalyzeText(source, text string) *types.ProfileReport {
	return AnalyzeTextWithOptions(source, text, Options{})
}

// AnalyzeTextWithOptions builds a profile report from raw résumé text.
// Missing sections yield empty content and no items, never an error.
func AnalyzeTextWithOptions(source, text string, opts Options) *types.ProfileReport {
	normalized := parsing.Normalize(text)

	sections := map[types.SectionName]string{}
	for _, s := range parsing.Sections(normalized) {
		sections[s.Name] = s.Content
	}

	education := sections[types.SectionEducation]
	experience := sections[types.SectionExperience]
	projects := sections[types.SectionProjects]
	certifications := sections[types.SectionCertifications]

	report := &types.ProfileReport{
		ID:          uuid.New(),
		Source:      source,
		SourceHash:  ingestion.ComputeHash(normalized),
		GeneratedAt: time.Now().UTC(),
		Contact:     parsing.ExtractContact(normalized),
		Summary:     parsing.ExtractSummary(normalized),
		Education: types.EducationSection{
			Section: truncate(education, opts.MaxSectionChars),
			Items:   parsing.ExtractEducation(education),
		},
		Experience: types.ExperienceSection{
			Section: truncate(experience, opts.MaxSectionChars),
			Items:   parsing.ExtractExperience(experience),
		},
		Projects: types.ProjectSection{
			Section: truncate(projects, opts.MaxSectionChars),
			Items:   parsing.ExtractProjects(projects),
		},
		Certifications: types.CertificationSection{
			Section: truncate(certifications, opts.MaxSectionChars),
			Items:   nonNil(parsing.ExtractCertifications(normalized, certifications, opts.KnownCertifications)),
		},
	}

	slog.Debug("profile analyzed",
		"source", source,
		"education", len(report.Education.Items),
		"experience", len(report.Experience.Items),
		"projects", len(report.Projects.Items),
		"certifications", len(report.Certifications.Items),
	)
	return report
}

// truncate cuts s to at most limit runes
func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
