// Package skills loads the skills/roles catalog and matches its skills
// against résumé text.
package skills

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/types"
)

//go:embed data/skills_master.json
var defaultCatalog []byte

// Catalog is a validated, read-only skills catalog
type Catalog struct {
	data types.SkillsCatalog
}

// LoadCatalog reads a catalog from path, or the built-in catalog when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	data := defaultCatalog
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, &CatalogLoadError{Path: path, Message: "cannot read file", Cause: err}
		}
	}

	c, err := ParseCatalog(data)
	if err != nil {
		if loadErr, ok := err.(*CatalogLoadError); ok {
			loadErr.Path = path
		}
		return nil, err
	}
	return c, nil
}

// ParseCatalog validates and decodes catalog JSON. The document is checked
// against the catalog schema, then struct-validated, then every role is
// checked to reference known categories.
func ParseCatalog(data []byte) (*Catalog, error) {
	if err := schemas.ValidateCatalog(data); err != nil {
		return nil, &CatalogLoadError{Message: "schema validation failed", Cause: err}
	}

	var raw types.SkillsCatalog
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &CatalogLoadError{Message: "invalid JSON", Cause: err}
	}

	if err := validator.New().Struct(raw); err != nil {
		return nil, &CatalogLoadError{Message: "invalid catalog", Cause: err}
	}

	for role, categories := range raw.Roles {
		for _, category := range categories {
			if _, ok := raw.Skills[category]; !ok {
				return nil, &CatalogLoadError{Message: fmt.Sprintf("role %q references unknown category %q", role, category)}
			}
		}
	}

	return &Catalog{data: raw}, nil
}

// Categories returns every category name in sorted order.
func (c *Catalog) Categories() []string {
	names := make([]string, 0, len(c.data.Skills))
	for name := range c.data.Skills {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Roles returns every role name in sorted order.
func (c *Catalog) Roles() []string {
	names := make([]string, 0, len(c.data.Roles))
	for name := range c.data.Roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RoleCategories returns the categories a role draws from, in catalog order.
func (c *Catalog) RoleCategories(role string) ([]string, bool) {
	categories, ok := c.data.Roles[role]
	return categories, ok
}

// Skills returns the definitions of one category.
func (c *Catalog) Skills(category string) []types.SkillDefinition {
	return c.data.Skills[category]
}

// Certifications returns the known certification names.
func (c *Catalog) Certifications() []string {
	return c.data.Certifications
}
