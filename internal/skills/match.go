package skills

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// Names and aliases are delimited by anything that is not a letter, digit or
// underscore, so "C++", "C#" and ".NET" match like ordinary words.
const (
	boundaryBefore = `(?:^|[^\p{L}\p{N}_])`
	boundaryAfter  = `(?:$|[^\p{L}\p{N}_])`
)

type compiledSkill struct {
	name string
	re   *regexp.Regexp
}

// Matcher finds catalog skills in text. It is safe for concurrent use.
type Matcher struct {
	catalog    *Catalog
	categories map[string][]compiledSkill
}

// NewMatcher compiles one pattern per catalog skill covering its name and
// aliases. Duplicate names inside a category are merged.
func NewMatcher(c *Catalog) *Matcher {
	m := &Matcher{catalog: c, categories: make(map[string][]compiledSkill)}
	for _, category := range c.Categories() {
		var order []string
		variants := map[string][]string{}
		for _, def := range c.Skills(category) {
			if _, seen := variants[def.Name]; !seen {
				order = append(order, def.Name)
			}
			variants[def.Name] = append(variants[def.Name], def.Name)
			variants[def.Name] = append(variants[def.Name], def.Aliases...)
		}

		compiled := make([]compiledSkill, 0, len(order))
		for _, name := range order {
			compiled = append(compiled, compiledSkill{name: name, re: compileVariants(variants[name])})
		}
		m.categories[category] = compiled
	}
	return m
}

func compileVariants(variants []string) *regexp.Regexp {
	// Longest first so a longer alias wins over its own prefix
	sort.SliceStable(variants, func(i, j int) bool { return len(variants[i]) > len(variants[j]) })
	quoted := make([]string, 0, len(variants))
	for _, v := range variants {
		if v = strings.TrimSpace(v); v != "" {
			quoted = append(quoted, regexp.QuoteMeta(v))
		}
	}
	return regexp.MustCompile(`(?i)` + boundaryBefore + `(?:` + strings.Join(quoted, "|") + `)` + boundaryAfter)
}

// Catalog returns the catalog the matcher was built from.
func (m *Matcher) Catalog() *Catalog {
	return m.catalog
}

// Match partitions catalog skills into found and missing for every category,
// or only for the categories of role when role is not empty.
func (m *Matcher) Match(text, role string) ([]types.SkillCategoryResult, error) {
	categories := m.catalog.Categories()
	if role != "" {
		roleCategories, ok := m.catalog.RoleCategories(role)
		if !ok {
			return nil, &UnknownRoleError{Role: role, Known: m.catalog.Roles()}
		}
		categories = roleCategories
	}

	results := make([]types.SkillCategoryResult, 0, len(categories))
	seen := map[string]bool{}
	for _, category := range categories {
		if seen[category] {
			continue
		}
		seen[category] = true

		result := types.SkillCategoryResult{Category: category, Found: []string{}, Missing: []string{}}
		for _, skill := range m.categories[category] {
			if skill.re.MatchString(text) {
				result.Found = append(result.Found, skill.name)
			} else {
				result.Missing = append(result.Missing, skill.name)
			}
		}
		results = append(results, result)
	}
	return results, nil
}

// Score returns the percentage of catalog skills found across results,
// rounded to two decimals. ok is false when the results hold no skills.
func Score(results []types.SkillCategoryResult) (score float64, ok bool) {
	found, total := 0, 0
	for _, r := range results {
		found += len(r.Found)
		total += r.Total()
	}
	if total == 0 {
		return 0, false
	}
	return math.Round(float64(found)/float64(total)*100*100) / 100, true
}
