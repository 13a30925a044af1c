package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/resume-parser/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.ProfileReport{
		Contact: types.ContactInfo{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			LinkedIn: "linkedin.com/in/janedoe",
		},
		Summary: "Backend engineer.",
		Education: types.EducationSection{
			Section: "BYU",
			Items: []types.EducationEntry{
				{Institution: "BYU", Location: "Provo, UT", Degree: "Bachelor of Science", Emphasis: "Statistics", GPA: "3.7/4.0"},
			},
		},
		Experience: types.ExperienceSection{
			Section: "Engineer | Acme | 2020 - 2022",
			Items: []types.ExperienceEntry{
				{JobTitle: "Engineer", Company: "Acme", StartDate: "Jan 2020", EndDate: "Present", Bullets: []string{"Built APIs"}},
			},
		},
		Certifications: types.CertificationSection{Items: []string{"PMP"}},
	}

	p.PrintProfile(report)
	output := buf.String()

	assert.Contains(t, output, "CONTACT")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "Backend engineer.")
	assert.Contains(t, output, "BYU, Provo, UT")
	assert.Contains(t, output, "Bachelor of Science in Statistics")
	assert.Contains(t, output, "3.7/4.0")
	assert.Contains(t, output, "Engineer @ Acme")
	assert.Contains(t, output, "Jan 2020 - Present")
	assert.Contains(t, output, "• Built APIs")
	assert.Contains(t, output, "• PMP")

	// Projects section was not found
	assert.Contains(t, output, "PROJECTS")
	assert.Equal(t, 1, strings.Count(output, noContent))
	assert.NotContains(t, output, "Phone:")
}

func TestPrintProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProfile(nil)
	assert.Empty(t, buf.String())
}

func TestPrintProfile_ExperienceFallsBackToRawSection(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(&types.ProfileReport{
		Experience: types.ExperienceSection{Section: "Volunteered at the shelter"},
	})
	output := buf.String()

	assert.Contains(t, output, "Volunteered at the shelter")
}

func TestPrintProfile_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProfile(&types.ProfileReport{})

	// Contact, summary, education, experience, projects, certifications
	assert.Equal(t, 6, strings.Count(buf.String(), noContent))
}

func TestPrintSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	score := 60.0
	report := &types.SkillsReport{
		Mode: types.SkillsModeRole,
		Role: "data_engineer",
		Categories: []types.SkillCategoryResult{
			{Category: "languages", Found: []string{"Python", "SQL"}, Missing: []string{"Scala"}},
			{Category: "streaming", Found: []string{}, Missing: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}},
		},
		Score: &score,
	}

	p.PrintSkills(report)
	output := buf.String()

	assert.Contains(t, output, "ROLE SKILLS")
	assert.Contains(t, output, "data_engineer")
	assert.Contains(t, output, "60.00%")
	assert.Contains(t, output, "languages (2/3)")
	assert.Contains(t, output, "Python, SQL")
	assert.Contains(t, output, "Scala")
	assert.Contains(t, output, "streaming (0/10)")
	assert.Contains(t, output, "... and 2 more")
	assert.NotContains(t, output, "i, j")
}

func TestPrintSkills_GeneralWithoutScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkills(&types.SkillsReport{
		Mode:       types.SkillsModeGeneral,
		Categories: []types.SkillCategoryResult{{Category: "tools", Found: []string{"Git"}, Missing: []string{}}},
	})
	output := buf.String()

	assert.Contains(t, output, "SKILLS")
	assert.NotContains(t, output, "ROLE SKILLS")
	assert.NotContains(t, output, "Score")
	assert.Contains(t, output, "tools (1/1)")
}

func TestPrintRoles(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRoles([]string{"backend_engineer", "data_scientist"})

	output := buf.String()
	assert.Contains(t, output, "• backend_engineer")
	assert.Contains(t, output, "• data_scientist")
}

func TestJoinNonEmpty(t *testing.T) {
	assert.Equal(t, "a, c", joinNonEmpty(", ", "a", "", "c"))
	assert.Equal(t, "", joinNonEmpty(", ", "", ""))
}
