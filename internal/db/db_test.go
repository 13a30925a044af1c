package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListRunsQuery(t *testing.T) {
	tests := []struct {
		name     string
		filters  RunFilters
		contains []string
		args     []any
	}{
		{
			name:     "no filters uses default limit",
			filters:  RunFilters{},
			contains: []string{"ORDER BY created_at DESC LIMIT $1"},
			args:     []any{DefaultListLimit},
		},
		{
			name:     "mode and limit",
			filters:  RunFilters{Mode: "profile", Limit: 5},
			contains: []string{"AND mode = $1", "LIMIT $2"},
			args:     []any{"profile", 5},
		},
		{
			name:     "all filters",
			filters:  RunFilters{Mode: "skills", Status: StatusCompleted, Source: "jane", Limit: 10},
			contains: []string{"AND mode = $1", "AND status = $2", "AND source ILIKE $3", "LIMIT $4"},
			args:     []any{"skills", StatusCompleted, "%jane%", 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := listRunsQuery(tt.filters)
			for _, fragment := range tt.contains {
				assert.Contains(t, query, fragment)
			}
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestSchemaEmbedded(t *testing.T) {
	assert.Contains(t, schemaSQL, "CREATE TABLE IF NOT EXISTS parse_runs")
	assert.Contains(t, schemaSQL, "CREATE TABLE IF NOT EXISTS report_artifacts")
	assert.Contains(t, schemaSQL, "UNIQUE (run_id, kind)")
}

func TestRunType(t *testing.T) {
	run := Run{
		Source: "jane.pdf",
		Mode:   "profile",
		Status: StatusRunning,
	}

	assert.Equal(t, "jane.pdf", run.Source)
	assert.Equal(t, StatusRunning, run.Status)
	assert.Nil(t, run.CompletedAt)
}
