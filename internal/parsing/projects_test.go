package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSummary(t *testing.T) {
	text := "Jane Doe\n\nProfessional Summary\nBuilds data platforms.\n\nExperience\nAcme"
	assert.Equal(t, "Builds data platforms.", ExtractSummary(text))
	assert.Equal(t, "", ExtractSummary("Jane Doe\nExperience\nAcme"))
}

func TestExtractProjects(t *testing.T) {
	section := "Resume Parser (2023)\n" +
		"• Rule-based section segmentation\n" +
		"• Written in Go\n" +
		"\n" +
		"Trail Map\n" +
		"Offline maps for hikers"

	projects := ExtractProjects(section)
	require.Len(t, projects, 2)

	assert.Equal(t, "Resume Parser", projects[0].Name)
	assert.Equal(t, "2023", projects[0].Dates)
	assert.Equal(t, []string{"Rule-based section segmentation", "Written in Go"}, projects[0].Bullets)

	assert.Equal(t, "Trail Map", projects[1].Name)
	assert.Equal(t, "", projects[1].Dates)
	assert.Equal(t, "Offline maps for hikers", projects[1].Details)
}

func TestExtractProjects_BulletList(t *testing.T) {
	projects := ExtractProjects("• Chess engine\n• Ray tracer")
	require.Len(t, projects, 2)
	assert.Equal(t, "Chess engine", projects[0].Name)
	assert.Equal(t, "Ray tracer", projects[1].Name)
}

func TestExtractCertifications(t *testing.T) {
	text := "Jane Doe\nCertifications\n• AWS Certified Solutions Architect\n• CKA\nSkills\nGo"
	section := "• AWS Certified Solutions Architect\n• CKA"

	certs := ExtractCertifications(text, section, []string{"CKA", "PMP"})
	assert.Equal(t, []string{"AWS Certified Solutions Architect", "CKA"}, certs)
}

func TestExtractCertifications_WithoutSection(t *testing.T) {
	text := "Jane Doe\nPMP certified project lead\nExperience\nAcme"

	certs := ExtractCertifications(text, "", []string{"PMP", "CISSP"})
	assert.Equal(t, []string{"PMP", "PMP certified project lead"}, certs)
}
