package parsing

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-parser/internal/patterns"
	"github.com/jonathan/resume-parser/internal/types"
)

const (
	minNameTokens  = 2
	maxNameTokens  = 4
	minPhoneDigits = 7
)

// ExtractContact pulls contact details from the whole résumé. Each field is
// the first match in the text; fields that are not found stay empty.
func ExtractContact(text string) types.ContactInfo {
	info := types.ContactInfo{
		Name:              findName(text),
		Email:             patterns.Email.FindString(text),
		Phone:             findPhone(text),
		LinkedIn:          strings.TrimSpace(patterns.LinkedIn.FindString(text)),
		GitHub:            strings.TrimSpace(patterns.GitHub.FindString(text)),
		WorkAuthorization: strings.TrimSpace(patterns.WorkAuthorization.FindString(text)),
	}
	info.AdditionalURLs = additionalURLs(text, info.LinkedIn, info.GitHub)
	return info
}

// findName returns the first line that reads as a personal name: two to four
// capitalized or all-caps tokens, optionally joined by lowercase particles,
// with no "@" and no digits.
func findName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "@") || strings.IndexFunc(line, unicode.IsDigit) >= 0 {
			continue
		}
		if isNameLine(strings.Fields(line)) {
			return strings.Join(strings.Fields(line), " ")
		}
	}
	return ""
}

func isNameLine(tokens []string) bool {
	if len(tokens) < minNameTokens || len(tokens) > maxNameTokens {
		return false
	}
	if !patterns.NameToken.MatchString(tokens[0]) || !patterns.NameToken.MatchString(tokens[len(tokens)-1]) {
		return false
	}
	for i := 1; i < len(tokens)-1; i++ {
		if patterns.NameToken.MatchString(tokens[i]) {
			continue
		}
		// A particle must be followed by a capitalized token
		if !patterns.NameParticle.MatchString(tokens[i]) || !patterns.NameToken.MatchString(tokens[i+1]) {
			return false
		}
	}
	return true
}

// findPhone returns the first phone-shaped match with enough digits that is
// not a year range.
func findPhone(text string) string {
	for _, candidate := range patterns.Phone.FindAllString(text, -1) {
		candidate = strings.TrimSpace(candidate)
		digits := 0
		for _, r := range candidate {
			if unicode.IsDigit(r) {
				digits++
			}
		}
		if digits < minPhoneDigits || patterns.DateRange.MatchString(candidate) {
			continue
		}
		return candidate
	}
	return ""
}

// additionalURLs lists every other URL in the text, trailing slash removed,
// deduplicated, and never repeating the LinkedIn or GitHub profile.
func additionalURLs(text, linkedIn, gitHub string) []string {
	exclude := map[string]bool{}
	for _, u := range []string{linkedIn, gitHub} {
		if u != "" {
			exclude[urlKey(u)] = true
		}
	}

	urls := []string{}
	seen := map[string]bool{}
	for _, u := range patterns.URL.FindAllString(text, -1) {
		u = strings.TrimRight(u, ".,;:!?")
		u = strings.TrimRight(u, "/")
		key := urlKey(u)
		if u == "" || exclude[key] || seen[key] {
			continue
		}
		seen[key] = true
		urls = append(urls, u)
	}
	return urls
}

// urlKey compares URLs case-insensitively, ignoring scheme, "www." and a
// trailing slash.
func urlKey(u string) string {
	u = strings.ToLower(strings.TrimSpace(u))
	u = strings.TrimPrefix(u, "https://")
	u = strings.TrimPrefix(u, "http://")
	u = strings.TrimPrefix(u, "www.")
	return strings.TrimRight(u, "/")
}
