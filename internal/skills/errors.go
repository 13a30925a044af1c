package skills

import (
	"fmt"
	"strings"
)

// CatalogLoadError represents a skills catalog that is missing or malformed
type CatalogLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *CatalogLoadError) Error() string {
	path := e.Path
	if path == "" {
		path = "(embedded)"
	}
	if e.Cause != nil {
		return fmt.Sprintf("failed to load skills catalog %s: %s: %v", path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load skills catalog %s: %s", path, e.Message)
}

func (e *CatalogLoadError) Unwrap() error {
	return e.Cause
}

// UnknownRoleError represents a role that the catalog does not define
type UnknownRoleError struct {
	Role  string
	Known []string
}

func (e *UnknownRoleError) Error() string {
	return fmt.Sprintf("unknown role %q (known roles: %s)", e.Role, strings.Join(e.Known, ", "))
}
