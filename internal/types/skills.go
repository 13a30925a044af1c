// Package types provides type definitions for structured data used throughout the resume-parser system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Skills sub-modes
const (
	SkillsModeGeneral = "general"
	SkillsModeRole    = "role"
)

// SkillDefinition is one catalog skill with its alternate spellings
type SkillDefinition struct {
	Name    string   `json:"name" validate:"required"`
	Aliases []string `json:"aliases,omitempty" validate:"dive,required"`
}

// SkillsCatalog is the on-disk skills/roles catalog
type SkillsCatalog struct {
	Skills         map[string][]SkillDefinition `json:"ALL_TECHNICAL_SKILLS" validate:"required,min=1,dive,keys,required,endkeys,min=1,dive"`
	Roles          map[string][]string          `json:"ROLES" validate:"dive,keys,required,endkeys,min=1,dive,required"`
	Certifications []string                     `json:"CERTIFICATIONS,omitempty" validate:"dive,required"`
}
