package parsing

import (
	"testing"

	"github.com/jonathan/resume-parser/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEducation_FullEntry(t *testing.T) {
	section := "Brigham Young University, Provo, UT\n" +
		"Bachelor of Science: Statistics, Apr 2020\n" +
		"GPA: 3.7/4.0\n" +
		"Minors: Math, Economics\n" +
		"Relevant Projects: Built a thing"

	entries := ExtractEducation(section)
	require.Len(t, entries, 1)

	assert.Equal(t, types.EducationEntry{
		Institution:    "Brigham Young University",
		Location:       "Provo, UT",
		GraduationDate: "Apr 2020",
		Degree:         "Bachelor of Science",
		Emphasis:       "Statistics",
		GPA:            "3.7/4.0",
		Minors:         "Math, Economics",
		Details:        "Built a thing",
	}, entries[0])
}

func TestExtractEducation_GPA(t *testing.T) {
	tests := []struct {
		name     string
		section  string
		expected string
	}{
		{"With scale", "BYU\nGPA: 3.7/4.0", "3.7/4.0"},
		{"Without scale", "BYU\nGPA 3.5", "3.5"},
		{"Decimal comma", "BYU\nGPA: 3,8", "3.8"},
		{"Dotted abbreviation", "BYU\nG.P.A. 3.25 / 4", "3.25/4"},
		{"Missing", "BYU\nDean's List", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := ExtractEducation(tt.section)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.expected, entries[0].GPA)
		})
	}
}

func TestExtractEducation_DegreeAndEmphasis(t *testing.T) {
	tests := []struct {
		name     string
		section  string
		degree   string
		emphasis string
	}{
		{"Colon", "BYU\nBachelor of Science: Statistics", "Bachelor of Science", "Statistics"},
		{"Comma", "Westminster College\nBachelor of Arts, English\n2015 - 2019", "Bachelor of Arts", "English"},
		{"Abbreviation", "University of Utah\nB.S. Computer Science, Minor in Mathematics\nMay 2019", "B.S. Computer Science", ""},
		{"No degree", "Coding Bootcamp\nFull-stack track", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := ExtractEducation(tt.section)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.degree, entries[0].Degree)
			assert.Equal(t, tt.emphasis, entries[0].Emphasis)
		})
	}
}

func TestExtractEducation_MinorsAndDate(t *testing.T) {
	entries := ExtractEducation("University of Utah\nB.S. Computer Science, Minor in Mathematics\nMay 2019")
	require.Len(t, entries, 1)

	assert.Equal(t, "University of Utah", entries[0].Institution)
	assert.Equal(t, "Mathematics", entries[0].Minors)
	assert.Equal(t, "May 2019", entries[0].GraduationDate)
	assert.Equal(t, "", entries[0].Location, "degree text must never be reported as a location")
}

func TestExtractEducation_DateRangeIsGraduationDate(t *testing.T) {
	entries := ExtractEducation("Westminster College\nBachelor of Arts, English\n2015 - 2019")
	require.Len(t, entries, 1)
	assert.Equal(t, "2015 - 2019", entries[0].GraduationDate)
	assert.Equal(t, "Westminster College", entries[0].Institution)
	assert.Empty(t, entries[0].Details)
}

func TestExtractEducation_MultipleEntries(t *testing.T) {
	section := "Stanford University\nM.S. Computer Science, 2022\n\nBYU\nB.S. Statistics, 2020"

	entries := ExtractEducation(section)
	require.Len(t, entries, 2)

	assert.Equal(t, "Stanford University", entries[0].Institution)
	assert.Equal(t, "M.S. Computer Science", entries[0].Degree)
	assert.Equal(t, "2022", entries[0].GraduationDate)

	assert.Equal(t, "BYU", entries[1].Institution)
	assert.Equal(t, "B.S. Statistics", entries[1].Degree)
	assert.Equal(t, "2020", entries[1].GraduationDate)
}

func TestExtractEducation_MultipleEntriesWithCommaDegrees(t *testing.T) {
	entries := ExtractEducation("Stanford University\nMS, Computer Science\n\nBYU\nBS, Statistics")
	require.Len(t, entries, 2)

	assert.Equal(t, "Stanford University", entries[0].Institution)
	assert.Equal(t, "MS", entries[0].Degree)
	assert.Equal(t, "Computer Science", entries[0].Emphasis)
	assert.Empty(t, entries[0].Location)
	assert.Empty(t, entries[0].Details)

	assert.Equal(t, "BYU", entries[1].Institution)
	assert.Equal(t, "BS", entries[1].Degree)
	assert.Equal(t, "Statistics", entries[1].Emphasis)
	assert.Empty(t, entries[1].Location)
}

func TestLineHasDegree(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{"Bachelor of Arts, English", true},
		{"B.S. Computer Science, Minor in Mathematics", true},
		{"MS, Computer Science", true},
		{"BS, Statistics", true},
		{"Master of Science, Boston, MA", true},
		{"Boston, MA", false},
		{"Cambridge, MA", false},
		{"Westminster College", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.expected, lineHasDegree(tt.line))
		})
	}
}

func TestExtractEducation_TrailingBlockStaysWithEntry(t *testing.T) {
	section := "BYU\nB.S. Statistics, 2020\n\nScholarships: Heritage Scholarship\nTrustee Award"

	entries := ExtractEducation(section)
	require.Len(t, entries, 1)
	assert.Equal(t, "Heritage Scholarship; Trustee Award", entries[0].Details)
}

func TestExtractEducation_Empty(t *testing.T) {
	entries := ExtractEducation("   ")
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestSanitizeLocation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Clean", "Provo, UT", "Provo, UT"},
		{"Salvaged", "Science in Provo, UT", "Provo, UT"},
		{"Degree text", "Bachelor of Science, Computer Science", ""},
		{"No comma", "Science Park", ""},
		{"Degree as city", "MS, Computer Science", ""},
		{"Abbreviation as city", "BS, Statistics", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeLocation(tt.input))
		})
	}
}

func TestExtractEducation_PanicKeepsRawSection(t *testing.T) {
	orig := educationBlockParser
	t.Cleanup(func() { educationBlockParser = orig })
	educationBlockParser = func(string) types.EducationEntry {
		panic("index out of range")
	}

	entries := ExtractEducation("  BYU\nB.S. Statistics, 2020\n")
	assert.Equal(t, []types.EducationEntry{{Institution: "BYU\nB.S. Statistics, 2020"}}, entries)
}
