package ingestion

import "fmt"

// DocumentReadError represents a document that exists in a supported format but could not be read
type DocumentReadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *DocumentReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to read %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to read %s: %s", e.Path, e.Message)
}

func (e *DocumentReadError) Unwrap() error {
	return e.Cause
}

// UnsupportedFormatError represents a file extension the reader has no extractor for
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Ext == "" {
		return "unsupported file type: no extension"
	}
	return fmt.Sprintf("unsupported file type: %s", e.Ext)
}
