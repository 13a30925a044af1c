// Package types provides type definitions for structured data used throughout the resume-parser system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SectionName identifies a résumé section
type SectionName string

// Known section names
const (
	SectionSummary        SectionName = "summary"
	SectionEducation      SectionName = "education"
	SectionExperience     SectionName = "experience"
	SectionSkills         SectionName = "skills"
	SectionProjects       SectionName = "projects"
	SectionCertifications SectionName = "certifications"
)

// Section is a named contiguous region of the normalized résumé text.
// Content is empty when the section was not found.
type Section struct {
	Name    SectionName `json:"name"`
	Content string      `json:"content"`
}

// EducationEntry represents one degree or school attended
type EducationEntry struct {
	Institution    string `json:"institution"`
	Location       string `json:"location"`
	GraduationDate string `json:"graduation_date"`
	Degree         string `json:"degree"`
	Emphasis       string `json:"emphasis"`
	GPA            string `json:"gpa"`    // "3.7" or "3.7/4.0"
	Minors         string `json:"minors"` // raw minors list
	Details        string `json:"details"`
}

// ExperienceEntry represents one job held
type ExperienceEntry struct {
	JobTitle  string   `json:"job_title"`
	Company   string   `json:"company"`
	Location  string   `json:"location"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"` // "Present" is kept verbatim
	Details   string   `json:"details"`  // free text that is not part of any bullet
	Bullets   []string `json:"bullets"`
}

// ProjectEntry represents one personal or academic project
type ProjectEntry struct {
	Name    string   `json:"name"`
	Dates   string   `json:"dates,omitempty"`
	Details string   `json:"details,omitempty"`
	Bullets []string `json:"bullets"`
}

// ContactInfo holds the candidate's contact details. Every field is optional.
type ContactInfo struct {
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	LinkedIn          string   `json:"linkedin"`
	GitHub            string   `json:"github"`
	AdditionalURLs    []string `json:"additional_urls"`
	WorkAuthorization string   `json:"work_authorization,omitempty"` // explicitly stated only
}

// EducationSection pairs the raw section text with its parsed entries
type EducationSection struct {
	Section string           `json:"section"`
	Items   []EducationEntry `json:"items"`
}

// ExperienceSection pairs the raw section text with its parsed entries
type ExperienceSection struct {
	Section string            `json:"section"`
	Items   []ExperienceEntry `json:"items"`
}

// ProjectSection pairs the raw section text with its parsed entries
type ProjectSection struct {
	Section string         `json:"section"`
	Items   []ProjectEntry `json:"items"`
}

// CertificationSection pairs the raw section text with the certifications found
type CertificationSection struct {
	Section string   `json:"section"`
	Items   []string `json:"items"`
}
