// Package types provides type definitions for structured data used throughout the resume-parser system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// Report modes
const (
	ModeProfile = "profile"
	ModeSkills  = "skills"
)

// ProfileReport is the full structured résumé produced in profile mode
type ProfileReport struct {
	ID             uuid.UUID            `json:"id"`
	Source         string               `json:"source"`
	SourceHash     string               `json:"source_hash,omitempty"` // SHA256 hex digest of the normalized text
	GeneratedAt    time.Time            `json:"generated_at"`
	Contact        ContactInfo          `json:"contact"`
	Summary        string               `json:"summary"`
	Education      EducationSection     `json:"education"`
	Experience     ExperienceSection    `json:"experience"`
	Projects       ProjectSection       `json:"projects"`
	Certifications CertificationSection `json:"certifications"`
}

// SkillCategoryResult holds the found/missing partition for one catalog category
type SkillCategoryResult struct {
	Category string   `json:"category"`
	Found    []string `json:"found"`
	Missing  []string `json:"missing"`
}

// Total returns the number of catalog skills in the category
func (r SkillCategoryResult) Total() int {
	return len(r.Found) + len(r.Missing)
}

// SkillsReport is the result of skills mode
type SkillsReport struct {
	ID          uuid.UUID             `json:"id"`
	Source      string                `json:"source"`
	GeneratedAt time.Time             `json:"generated_at"`
	Mode        string                `json:"mode"`           // "general" or "role"
	Role        string                `json:"role,omitempty"` // set in role mode
	Categories  []SkillCategoryResult `json:"categories"`
	Score       *float64              `json:"score,omitempty"` // percent, set in role mode when the role has skills
}
