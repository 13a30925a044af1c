// Package schemas embeds the JSON Schema documents that describe the
// skills catalog and the reports written by the CLI.
package schemas

import (
	"embed"
	"fmt"
)

// Schema file names
const (
	SkillsCatalogFile = "skills_catalog.schema.json"
	ProfileReportFile = "profile_report.schema.json"
	SkillsReportFile  = "skills_report.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Load returns the content of an embedded schema file.
func Load(name string) (string, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("schema %s not embedded: %w", name, err)
	}
	return string(data), nil
}

// Names lists every embedded schema file.
func Names() []string {
	return []string{SkillsCatalogFile, ProfileReportFile, SkillsReportFile}
}
