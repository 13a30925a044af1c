// Package schemas provides JSON Schema validation for the skills catalog and
// the report artifacts written by the CLI.
package schemas

import (
	"fmt"
	"strings"

	schemafiles "github.com/jonathan/resume-parser/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateEmbedded validates JSON bytes against one of the embedded schema files
func ValidateEmbedded(schemaFile string, data []byte) error {
	schemaContent, err := schemafiles.Load(schemaFile)
	if err != nil {
		return &SchemaLoadError{Path: schemaFile, Message: "schema not available", Cause: err}
	}

	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewBytesLoader(data)

	return validate(schemaLoader, documentLoader, schemaFile)
}

// ValidateCatalog validates a skills catalog document
func ValidateCatalog(data []byte) error {
	return ValidateEmbedded(schemafiles.SkillsCatalogFile, data)
}

// ValidateProfileReport validates a serialized profile report
func ValidateProfileReport(data []byte) error {
	return ValidateEmbedded(schemafiles.ProfileReportFile, data)
}

// ValidateSkillsReport validates a serialized skills report
func ValidateSkillsReport(data []byte) error {
	return ValidateEmbedded(schemafiles.SkillsReportFile, data)
}

func validate(schemaLoader, documentLoader gojsonschema.JSONLoader, schemaName string) error {
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		// Schema syntax problems and unreadable documents both land here
		return &SchemaLoadError{
			Path:    schemaName,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	// Build structured error
	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
