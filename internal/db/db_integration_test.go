//go:build integration
// +build integration

package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *DB {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("Skipping integration test: DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	db, err := Connect(ctx, dbURL)
	if err != nil {
		t.Skipf("Skipping integration test: failed to connect to DB: %v", err)
	}
	require.NoError(t, db.EnsureSchema(context.Background()))
	return db
}

func TestArchiveProfile_Integration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	report := &types.ProfileReport{
		ID:         uuid.New(),
		Source:     "integration-" + uuid.New().String() + ".txt",
		SourceHash: "abc123",
		Contact:    types.ContactInfo{Name: "Jane Doe"},
	}

	runID, err := db.ArchiveProfile(ctx, report)
	require.NoError(t, err)
	defer func() { _ = db.DeleteRun(ctx, runID) }()

	run, err := db.GetRun(ctx, runID)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, report.Source, run.Source)
	assert.Equal(t, "abc123", run.SourceHash)
	assert.Equal(t, types.ModeProfile, run.Mode)
	assert.Equal(t, StatusCompleted, run.Status)
	assert.NotNil(t, run.CompletedAt)

	loaded, err := db.GetProfileReport(ctx, runID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, report.ID, loaded.ID)
	assert.Equal(t, "Jane Doe", loaded.Contact.Name)

	missing, err := db.GetSkillsReport(ctx, runID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListRuns_Integration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	source := "list-" + uuid.New().String()
	first, err := db.ArchiveSkills(ctx, &types.SkillsReport{Source: source + "-a", Mode: types.SkillsModeGeneral})
	require.NoError(t, err)
	defer func() { _ = db.DeleteRun(ctx, first) }()
	second, err := db.ArchiveSkills(ctx, &types.SkillsReport{Source: source + "-b", Mode: types.SkillsModeRole, Role: "backend"})
	require.NoError(t, err)
	defer func() { _ = db.DeleteRun(ctx, second) }()

	runs, err := db.ListRuns(ctx, RunFilters{Source: source, Mode: types.ModeSkills, Limit: 10})
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second, runs[0].ID)
	assert.Equal(t, "backend", runs[0].Role)
}

func TestGetRun_NotFound_Integration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	run, err := db.GetRun(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, run)

	err = db.DeleteRun(context.Background(), uuid.New())
	assert.Error(t, err)
}
