package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContact(t *testing.T) {
	text := "Jane Q. Doe\n" +
		"jane.doe@example.com | (555) 123-4567\n" +
		"https://www.linkedin.com/in/janedoe/ | github.com/janedoe\n" +
		"Portfolio: https://janedoe.dev/\n" +
		"https://www.linkedin.com/in/janedoe\n" +
		"U.S. Citizen"

	info := ExtractContact(text)

	assert.Equal(t, "Jane Q. Doe", info.Name)
	assert.Equal(t, "jane.doe@example.com", info.Email)
	assert.Equal(t, "(555) 123-4567", info.Phone)
	assert.Equal(t, "https://www.linkedin.com/in/janedoe/", info.LinkedIn)
	assert.Equal(t, "github.com/janedoe", info.GitHub)
	assert.Equal(t, []string{"https://janedoe.dev"}, info.AdditionalURLs)
	assert.Equal(t, "U.S. Citizen", info.WorkAuthorization)
}

func TestExtractContact_Name(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"Title case", "Jane Doe\nEngineer", "Jane Doe"},
		{"All caps", "JOHN SMITH\njohn@example.com", "JOHN SMITH"},
		{"Accented", "María José García", "María José García"},
		{"Particle", "Ludwig van Beethoven", "Ludwig van Beethoven"},
		{"Skips lines with digits and at-signs", "jane@example.com\n555 123 4567\nJane Doe", "Jane Doe"},
		{"Lower case is not a name", "jane doe", ""},
		{"Single token is not a name", "Jane", ""},
		{"Five tokens is not a name", "One Two Three Four Five", ""},
		{"Trailing particle is not a name", "Jane Doe de", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractContact(tt.text).Name)
		})
	}
}

func TestExtractContact_PhoneSkipsYearRanges(t *testing.T) {
	info := ExtractContact("Acme 2019-2020\n+1 555.123.4567")
	assert.Equal(t, "+1 555.123.4567", info.Phone)
}

func TestExtractContact_EmptyText(t *testing.T) {
	info := ExtractContact("")

	assert.Empty(t, info.Name)
	assert.Empty(t, info.Email)
	assert.Empty(t, info.Phone)
	assert.NotNil(t, info.AdditionalURLs)
	assert.Empty(t, info.AdditionalURLs)
}

func TestExtractContact_AdditionalURLsNeverRepeatProfiles(t *testing.T) {
	texts := []string{
		"https://github.com/jdoe/ https://GitHub.com/jdoe https://jdoe.io",
		"linkedin.com/in/jdoe\nhttps://www.linkedin.com/in/jdoe/\nwww.example.org/blog/",
		"http://LinkedIn.com/in/x https://github.com/x/repo https://github.com/x/repo/",
	}

	for _, text := range texts {
		info := ExtractContact(text)
		for _, u := range info.AdditionalURLs {
			key := strings.ToLower(strings.TrimRight(u, "/"))
			if info.LinkedIn != "" {
				assert.NotEqual(t, strings.ToLower(strings.TrimRight(info.LinkedIn, "/")), key)
			}
			if info.GitHub != "" {
				assert.NotEqual(t, strings.ToLower(strings.TrimRight(info.GitHub, "/")), key)
			}
			assert.False(t, strings.HasSuffix(u, "/"), "trailing slash should be removed from %q", u)
		}
	}
}
