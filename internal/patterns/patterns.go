// Package patterns holds the regular expressions and keyword vocabularies
// shared by the résumé extractors. Every pattern is compiled once at package
// init and is safe for concurrent use.
package patterns

import (
	"regexp"
	"strings"
)

const (
	monthNames = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|June?|July?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`

	monthYear        = `\b` + monthNames + `\.?,?\s+(?:19|20)\d{2}\b`
	numericMonthYear = `\b(?:0?[1-9]|1[0-2])/(?:19|20)\d{2}\b`
	bareYear         = `\b(?:19|20)\d{2}\b`
	openEnded        = `\b(?:Present|Current)\b`

	// DateToken is a single date: "Jan 2020", "January, 2020", "01/2020" or "2020".
	DateToken = `(?:` + monthYear + `|` + numericMonthYear + `|` + bareYear + `)`

	// RangeSeparator separates the two ends of a date range.
	RangeSeparator = `\s*(?:[-–—]|\bto\b)\s*`

	dateRange = DateToken + RangeSeparator + `(?:` + DateToken + `|` + openEnded + `)`
)

// Dates
var (
	// MonthName matches any month name or abbreviation.
	MonthName = regexp.MustCompile(`(?i)\b` + monthNames + `\b`)

	// DateRange matches "start sep end" with capture groups for both ends.
	DateRange = regexp.MustCompile(`(?i)(` + DateToken + `)` + RangeSeparator + `(` + DateToken + `|` + openEnded + `)`)

	// DateGrammar is the shared date grammar used for graduation dates: a
	// range first, then a month-year, a numeric month-year, a bare year or Present.
	DateGrammar = regexp.MustCompile(`(?i)` + dateRange + `|` + monthYear + `|` + numericMonthYear + `|` + bareYear + `|` + openEnded)

	// DateFragment matches one date token or an open-ended marker. Adjacent
	// fragments are merged by the experience extractor into logical spans.
	DateFragment = regexp.MustCompile(`(?i)` + DateToken + `|` + openEnded)

	// FragmentGap matches text that may sit between two fragments of the same span.
	FragmentGap = regexp.MustCompile(`(?i)^[\s,/|()]*(?:[-–—]|\bto\b)?[\s,/|()]*$`)

	// RangeSplit finds the first separator of a date range.
	RangeSplit = regexp.MustCompile(`(?i)` + RangeSeparator)

	// MonthNameOnly matches text that is nothing but a month name.
	MonthNameOnly = regexp.MustCompile(`(?i)^` + monthNames + `\.?,?$`)

	// MonthYearOnly reports whether a fragment carries a month.
	MonthYearOnly = regexp.MustCompile(`(?i)^(?:` + monthYear + `|` + numericMonthYear + `)$`)
)

// Education
var (
	// GPA captures the main value and the optional scale.
	GPA = regexp.MustCompile(`(?i)\b(?:GPA|G\.P\.A\.?)\s*[:\s]?\s*([0-4](?:[.,]\d{1,2})?)(?:\s*/\s*([0-4](?:[.,]\d{1,2})?))?`)

	// DegreeKeyword detects a line that names a degree. Short acronyms are
	// case-sensitive so state codes like "MA" only match in upper case.
	DegreeKeyword = regexp.MustCompile(`\b(?i:bachelor|master|associate|doctor)|\b(?:PhD|BSc|BEng|BA|BS|MSc|MEng|MBA|MA|MS)\b|\b(?:Ph\.D|B\.S|M\.S|B\.A|M\.A)\.?`)

	// DegreePhrase captures the degree phrase up to a colon, comma or pipe.
	DegreePhrase = regexp.MustCompile(`(?:\b(?i:bachelor(?:'s)?|master(?:'s)?|associate(?:'s)?|doctor(?:ate)?)|\b(?:Ph\.?D|B\.S|M\.S|B\.A|M\.A)\.?|\b(?:BSc|BEng|BA|BS|MSc|MEng|MBA|MA|MS)\b)[^:,|\n]*`)

	// Minors captures the minors list up to a newline or pipe.
	Minors = regexp.MustCompile(`(?i)\bMinors?\b\s*[:\-–]?\s*([^\n|]+)`)

	// ProjectsHeader matches a "Projects:" lead-in inside an education block.
	ProjectsHeader = regexp.MustCompile(`(?i)\b(?:Relevant\s+)?Projects?\b\s*[:\-–]?\s*`)

	// AwardsHeader matches a "Scholarships:" or "Awards:" lead-in.
	AwardsHeader = regexp.MustCompile(`(?i)\b(?:Scholarships?|Awards?|Honors?)\b\s*[:\-–]?\s*`)

	// EducationLocation matches a trailing "City, ST" or remote keyword.
	EducationLocation = regexp.MustCompile(`(?i)\b((?:[A-Za-z][A-Za-z .'\-]+,\s*(?:[A-Z]{2}|[A-Za-z][A-Za-z .'\-]+))|Remote|Hybrid|On[- ]?site)\s*$`)

	// DegreeTermBlocklist lists words that can never appear in a location.
	DegreeTermBlocklist = []string{
		"bachelor", "bachelors", "master", "masters", "associate", "doctor", "doctorate",
		"science", "sciences", "arts", "engineering", "degree", "major", "minor", "minors",
		"concentration", "emphasis", "gpa", "university", "college", "institute", "school",
		"academy", "studies",
	}
)

// Experience
var (
	// PipeHeader matches "Title | Company | [Location |] Start - End".
	PipeHeader = regexp.MustCompile(`(?i)^\s*([^|\n]+?)\s*\|\s*([^|\n]+?)\s*\|\s*(?:([^|\n]+?)\s*\|\s*)?(` + DateToken + `)` + RangeSeparator + `(` + DateToken + `|` + openEnded + `)\s*$`)

	// StackedHeader matches "Title  Start - End" on one line.
	StackedHeader = regexp.MustCompile(`(?i)^\s*(.+?)[\s,|]+(` + DateToken + `)` + RangeSeparator + `(` + DateToken + `|` + openEnded + `)\s*$`)

	// ExperienceLocation matches a line that is nothing but a location.
	ExperienceLocation = regexp.MustCompile(`^\s*(?:` + cityState + `|(?i:remote|hybrid|on[- ]?site|work\s*from\s*home|wfh))(?:\s*[(\-–|]\s*(?i:remote|hybrid|on[- ]?site)\)?)?\s*$`)

	// TrailingCityState matches a "City, ST" suffix of a line.
	TrailingCityState = regexp.MustCompile(`(?:^|[\s,|–\-])(` + cityStateCore + `)\s*$`)

	// TrailingRemote matches a remote/hybrid suffix of a line.
	TrailingRemote = regexp.MustCompile(`(?i)(?:^|[\s,|(–\-])(remote|hybrid|on[- ]?site)\)?\s*$`)

	// OrgKeyword detects company-like names.
	OrgKeyword = regexp.MustCompile(`\b(?:Inc|LLC|Corp|Corporation|Company|Ltd|LLP|GmbH|University|College|Institute|School|Labs?|Systems|Technologies|Solutions|Group|Partners|Bank|Agency|Foundation|Studios?|Remote)\b|\bCo\.`)

	// TitleKeyword detects job-title-like text.
	TitleKeyword = regexp.MustCompile(`(?i)\b(?:Engineer|Developer|Manager|Analyst|Scientist|Intern|Consultant|Designer|Architect|Director|Lead|Specialist|Administrator|Coordinator|Assistant|Officer|Technician|Researcher|Programmer|Head|VP|President|Founder|Teacher|Instructor|Representative|Supervisor)\b`)

	// TitleCompanySeparator splits "Title @ Company" and "Title at Company".
	TitleCompanySeparator = regexp.MustCompile(`\s+(?:@|at)\s+|\s*@\s*`)

	// Bullet matches a leading bullet glyph.
	Bullet = regexp.MustCompile(`^\s*[•●▪◦‣·\-\*]\s*`)

	// ColumnGap splits a line on runs of two or more spaces or tabs.
	ColumnGap = regexp.MustCompile(`\s{2,}|\t+`)
)

const (
	cityStateCore = `[A-Z][A-Za-z.'\-]*(?:\s+[A-Z][A-Za-z.'\-]*){0,2},\s*(?:[A-Z]{2}|[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`
	cityState     = cityStateCore + `(?:,\s*(?:[A-Z]{2,3}|[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*))?`
)

// Contact
var (
	Email    = regexp.MustCompile(`(?i)[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}`)
	Phone    = regexp.MustCompile(`(?:\+?\d{1,3}[\s.\-]?)?(?:\(\d{2,4}\)|\d{2,4})[\s.\-]?\d{3,4}[\s.\-]?\d{3,6}(?:\s*(?:ext\.?|x)\s*\d{1,5})?`)
	LinkedIn = regexp.MustCompile(`(?i)(?:https?://)?(?:[a-z]{2,3}\.)?linkedin\.com/(?:in|pub|company)/[A-Za-z0-9_\-%]+/?`)
	GitHub   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_\-]+(?:/[A-Za-z0-9_.\-]+)?/?`)
	URL      = regexp.MustCompile(`(?i)\b(?:https?://|www\.)[^\s<>()\[\]"']+`)

	// NameToken matches one token of a personal name.
	NameToken = regexp.MustCompile(`^(?:\p{Lu}[\p{L}'’\-]+|\p{Lu}{2,}|\p{Lu}\.)$`)

	// NameParticle matches a lowercase particle such as "de" or "van".
	NameParticle = regexp.MustCompile(`^\p{Ll}{1,3}$`)

	// WorkAuthorization matches an explicit citizenship or work-permit statement.
	WorkAuthorization = regexp.MustCompile(`(?i)\b(?:U\.?S\.? citizen(?:ship)?|citizen of [A-Za-z ]+|green card holder|permanent resident|authorized to work in [^.;\n]+|work authori[sz]ation\s*:\s*[^.;\n]+|(?:do not|don't|will not) require (?:visa )?sponsorship|(?:require|need)s? (?:visa )?sponsorship)`)
)

// Certifications
var (
	CertificationLine = regexp.MustCompile(`(?i)\bcertif(?:ied|icate|ication)s?\b`)
)

// Section vocabularies. Multi-word phrases match any run of whitespace
// between their words.
var (
	SummaryStart = []string{"professional summary", "executive summary", "summary of qualifications", "career objective", "career summary", "summary", "objective", "about me"}
	SummaryEnd   = []string{"work experience", "professional experience", "experience", "employment history", "education", "technical skills", "skills", "projects", "certifications"}

	EducationStart = []string{"education and training", "education & training", "educational background", "academic background", "academic history", "education"}
	EducationEnd   = []string{"work experience", "professional experience", "relevant experience", "experience", "employment history", "work history", "technical skills", "skills", "projects", "certifications", "licenses & certifications", "publications", "leadership", "activities", "volunteer experience", "volunteering", "interests", "references", "summary"}

	ExperienceStart = []string{"professional experience", "work experience", "relevant experience", "employment history", "work history", "career history", "experience"}
	ExperienceEnd   = []string{"education", "educational background", "technical skills", "skills", "projects", "personal projects", "certifications", "licenses & certifications", "publications", "awards", "leadership", "activities", "volunteer", "interests", "references"}

	SkillsStart = []string{"technical skills", "core competencies", "skills & tools", "tools & technologies", "technologies", "skills"}
	SkillsEnd   = []string{"work experience", "professional experience", "experience", "education", "projects", "certifications", "interests", "references"}

	ProjectsStart = []string{"personal projects", "academic projects", "selected projects", "relevant projects", "side projects", "projects"}
	ProjectsEnd   = []string{"work experience", "professional experience", "experience", "education", "technical skills", "skills", "certifications", "awards", "publications", "interests", "references"}

	CertificationsStart = []string{"licenses & certifications", "licenses and certifications", "certifications", "certificates", "licenses"}
	CertificationsEnd   = []string{"work experience", "professional experience", "experience", "education", "technical skills", "skills", "projects", "awards", "publications", "interests", "references"}
)

// KeywordAlternation turns a keyword list into a regex alternation with
// flexible whitespace inside multi-word phrases.
func KeywordAlternation(keywords []string) string {
	parts := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		words := strings.Fields(kw)
		if len(words) == 0 {
			continue
		}
		for i, w := range words {
			words[i] = regexp.QuoteMeta(w)
		}
		parts = append(parts, strings.Join(words, `\s+`))
	}
	return strings.Join(parts, "|")
}

// ContainsBlockedTerm reports whether s contains a word from DegreeTermBlocklist.
func ContainsBlockedTerm(s string) bool {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r == '.')
	})
	for _, w := range words {
		w = strings.Trim(w, ".")
		for _, blocked := range DegreeTermBlocklist {
			if w == blocked {
				return true
			}
		}
	}
	return false
}
