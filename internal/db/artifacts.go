package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/resume-parser/internal/types"
)

// ArchiveProfile stores a profile report as a completed run and returns the run ID
func (db *DB) ArchiveProfile(ctx context.Context, report *types.ProfileReport) (uuid.UUID, error) {
	return db.archive(ctx, RunInput{
		Source:     report.Source,
		SourceHash: report.SourceHash,
		Mode:       types.ModeProfile,
	}, KindProfileReport, report)
}

// ArchiveSkills stores a skills report as a completed run and returns the run ID
func (db *DB) ArchiveSkills(ctx context.Context, report *types.SkillsReport) (uuid.UUID, error) {
	return db.archive(ctx, RunInput{
		Source: report.Source,
		Mode:   types.ModeSkills,
		Role:   report.Role,
	}, KindSkillsReport, report)
}

func (db *DB) archive(ctx context.Context, input RunInput, kind string, content any) (uuid.UUID, error) {
	runID, err := db.CreateRun(ctx, input)
	if err != nil {
		return uuid.Nil, err
	}

	if err := db.SaveArtifact(ctx, runID, kind, content); err != nil {
		_ = db.CompleteRun(ctx, runID, StatusFailed)
		return uuid.Nil, err
	}

	if err := db.CompleteRun(ctx, runID, StatusCompleted); err != nil {
		return uuid.Nil, err
	}
	return runID, nil
}

// GetProfileReport loads the profile report archived for a run
func (db *DB) GetProfileReport(ctx context.Context, runID uuid.UUID) (*types.ProfileReport, error) {
	content, err := db.GetArtifact(ctx, runID, KindProfileReport)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}
	return decodeProfileReport(content)
}

// GetSkillsReport loads the skills report archived for a run
func (db *DB) GetSkillsReport(ctx context.Context, runID uuid.UUID) (*types.SkillsReport, error) {
	content, err := db.GetArtifact(ctx, runID, KindSkillsReport)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}
	return decodeSkillsReport(content)
}

func decodeProfileReport(content []byte) (*types.ProfileReport, error) {
	var report types.ProfileReport
	if err := json.Unmarshal(content, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile report: %w", err)
	}
	return &report, nil
}

func decodeSkillsReport(content []byte) (*types.SkillsReport, error) {
	var report types.SkillsReport
	if err := json.Unmarshal(content, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal skills report: %w", err)
	}
	return &report, nil
}
