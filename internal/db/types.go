package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents one archived parse of a résumé
type Run struct {
	ID          uuid.UUID  `json:"id"`
	Source      string     `json:"source"`
	SourceHash  string     `json:"source_hash"`
	Mode        string     `json:"mode"`
	Role        string     `json:"role,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// RunInput holds the fields needed to open a run
type RunInput struct {
	Source     string
	SourceHash string
	Mode       string
	Role       string
}

// Run statuses
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Artifact kinds stored per run
const (
	KindProfileReport = "profile_report"
	KindSkillsReport  = "skills_report"
)

// RunFilters holds optional filters for listing runs
type RunFilters struct {
	Mode   string
	Status string
	Source string
	Limit  int
}

// DefaultListLimit caps ListRuns when no limit is given
const DefaultListLimit = 50
