package journal

import (
	"context"
	"fmt"
	"time"

	"roster-hub/core/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// maxErrorLen matches the size of the error column.
const maxErrorLen = 1024

// RefreshRun is one row of the refresh_runs table.
type RefreshRun struct {
	ID                 string    `gorm:"primaryKey;size:36" json:"id"`
	Status             string    `gorm:"size:16;not null" json:"status"`
	StartedAt          time.Time `gorm:"index" json:"started_at"`
	FinishedAt         time.Time `json:"finished_at"`
	DurationMs         int64     `json:"duration_ms"`
	Error              string    `gorm:"size:1024" json:"error,omitempty"`
	Entities           int       `json:"entities"`
	MatchedUsers       int       `json:"matched_users"`
	UnmatchedPrimary   int       `json:"unmatched_primary"`
	UnmatchedSecondary int       `json:"unmatched_secondary"`
	DuplicateEmails    int       `json:"duplicate_emails"`
	Violations         int       `json:"violations"`
}

// TableName overrides the table name used by RefreshRun.
func (RefreshRun) TableName() string {
	return "refresh_runs"
}

// FromRun converts a cache refresh record into a row.
func FromRun(run reconcile.Run) RefreshRun {
	errText := run.Error
	if len(errText) > maxErrorLen {
		errText = errText[:maxErrorLen]
	}
	s := run.Summary
	return RefreshRun{
		ID:                 run.ID,
		Status:             string(run.Status),
		StartedAt:          run.StartedAt.UTC(),
		FinishedAt:         run.FinishedAt.UTC(),
		DurationMs:         run.Duration.Milliseconds(),
		Error:              errText,
		Entities:           s.Orgs + s.Users + s.Courses + s.Classes + s.Enrollments + s.AcademicSessions,
		MatchedUsers:       s.MatchedUsers,
		UnmatchedPrimary:   s.UnmatchedPrimary,
		UnmatchedSecondary: s.UnmatchedSecondary,
		DuplicateEmails:    s.DuplicateEmails,
		Violations:         run.Violations,
	}
}

// Journal persists refresh runs.
type Journal struct {
	db  *gorm.DB
	log *zap.Logger
}

// New creates a journal backed by db.
func New(db *gorm.DB, log *zap.Logger) *Journal {
	if log == nil {
		log = zap.NewNop()
	}
	return &Journal{db: db, log: log}
}

// Migrate creates or updates the refresh_runs table.
func (j *Journal) Migrate(ctx context.Context) error {
	if err := j.db.WithContext(ctx).AutoMigrate(&RefreshRun{}); err != nil {
		return fmt.Errorf("migrate refresh_runs: %w", err)
	}
	return nil
}

// Record stores one run.
func (j *Journal) Record(ctx context.Context, run reconcile.Run) error {
	row := FromRun(run)
	if err := j.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("record refresh run %s: %w", run.ID, err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]RefreshRun, error) {
	var rows []RefreshRun
	err := j.db.WithContext(ctx).
		Order("started_at desc").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load refresh runs: %w", err)
	}
	return rows, nil
}

// Observe records every refresh attempt. Failures are logged, never returned.
func (j *Journal) Observe(ctx context.Context, run reconcile.Run) {
	if err := j.Record(ctx, run); err != nil {
		j.log.Warn("Failed to journal refresh run", zap.String("run_id", run.ID), zap.Error(err))
	}
}
