package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/skills"
	"github.com/jonathan/resume-parser/internal/types"
)

// DocumentReader returns the raw text of a résumé file
type DocumentReader interface {
	ReadDocument(ctx context.Context, path string) (string, error)
}

// Analyzer runs profile and skills analysis on résumé files
type Analyzer struct {
	Reader  DocumentReader
	Matcher *skills.Matcher
	Options Options
}

// NewAnalyzer creates an Analyzer. Certifications known to the matcher's
// catalog are recognized anywhere in the text.
func NewAnalyzer(reader DocumentReader, matcher *skills.Matcher, opts Options) *Analyzer {
	if matcher != nil && opts.KnownCertifications == nil {
		opts.KnownCertifications = matcher.Catalog().Certifications()
	}
	return &Analyzer{Reader: reader, Matcher: matcher, Options: opts}
}

// Profile reads the document at path and builds its profile report
func (a *Analyzer) Profile(ctx context.Context, path string) (*types.ProfileReport, error) {
	text, err := a.Reader.ReadDocument(ctx, path)
	if err != nil {
		return nil, err
	}
	return AnalyzeTextWithOptions(path, text, a.Options), nil
}

// Skills reads the document at path and matches it against the catalog.
// An empty role runs general mode over every category. A role restricts
// matching to its categories and adds a score.
func (a *Analyzer) Skills(ctx context.Context, path, role string) (*types.SkillsReport, error) {
	text, err := a.Reader.ReadDocument(ctx, path)
	if err != nil {
		return nil, err
	}
	return a.SkillsText(path, text, role)
}

// SkillsText matches already extracted text against the catalog
func (a *Analyzer) SkillsText(source, text, role string) (*types.SkillsReport, error) {
	categories, err := a.Matcher.Match(parsing.Normalize(text), role)
	if err != nil {
		return nil, err
	}

	report := &types.SkillsReport{
		ID:          uuid.New(),
		Source:      source,
		GeneratedAt: time.Now().UTC(),
		Mode:        types.SkillsModeGeneral,
		Categories:  categories,
	}
	if role != "" {
		report.Mode = types.SkillsModeRole
		report.Role = role
		if score, ok := skills.Score(categories); ok {
			report.Score = &score
		}
	}
	return report, nil
}
