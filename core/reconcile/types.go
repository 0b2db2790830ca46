package reconcile

import (
	"context"
	"time"

	"roster-hub/core/roster"
)

// Summary provides aggregate statistics for one reconciliation pass.
type Summary struct {
	// PrimaryUsers is the number of users from the primary source.
	PrimaryUsers int `json:"primary_users"`

	// SecondaryUsers is the number of users from the secondary source.
	SecondaryUsers int `json:"secondary_users"`

	// MatchedUsers counts primary users that received secondary metadata.
	MatchedUsers int `json:"matched_users"`

	// UnmatchedPrimary counts primary users without a secondary counterpart.
	UnmatchedPrimary int `json:"unmatched_primary"`

	// UnmatchedSecondary counts secondary users no primary user matched.
	UnmatchedSecondary int `json:"unmatched_secondary"`

	// DuplicateEmails counts secondary users ignored because an earlier
	// secondary user already claimed the same email.
	DuplicateEmails int `json:"duplicate_emails"`

	Orgs             int `json:"orgs"`
	Users            int `json:"users"`
	Courses          int `json:"courses"`
	Classes          int `json:"classes"`
	Enrollments      int `json:"enrollments"`
	AcademicSessions int `json:"academic_sessions"`
}

// Result is the output of Reconcile.
type Result struct {
	Entities roster.Entities `json:"entities"`
	Summary  Summary         `json:"summary"`
}

// RunStatus is the outcome of a refresh attempt.
type RunStatus string

const (
	// RunSucceeded means a new snapshot was published.
	RunSucceeded RunStatus = "succeeded"
	// RunFailed means the refresh failed and the previous snapshot was kept.
	RunFailed RunStatus = "failed"
)

// Run records one refresh attempt.
type Run struct {
	ID         string        `json:"id"`
	Status     RunStatus     `json:"status"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Error      string        `json:"error,omitempty"`
	Summary    Summary       `json:"summary"`
	Violations int           `json:"violations"`
	Duration   time.Duration `json:"-"`

	// Snapshot is the published snapshot. Nil when the run failed.
	Snapshot *roster.Snapshot `json:"-"`
}

// Observer is notified after every refresh attempt.
// Implementations must not mutate run.Snapshot.
type Observer interface {
	Observe(ctx context.Context, run Run)
}

// ObserverFunc adapts a function into an Observer.
type ObserverFunc func(ctx context.Context, run Run)

// Observe calls f(ctx, run).
func (f ObserverFunc) Observe(ctx context.Context, run Run) {
	f(ctx, run)
}

// Status describes the current state of a Cache.
type Status struct {
	// Ready is true once a snapshot has been published or seeded.
	Ready bool `json:"ready"`

	// CreatedAt is when the current snapshot was built.
	CreatedAt time.Time `json:"created_at,omitempty"`

	// AgeSeconds is the age of the current snapshot.
	AgeSeconds float64 `json:"age_seconds"`

	// TTLSeconds is the configured time-to-live.
	TTLSeconds float64 `json:"ttl_seconds"`

	// Refreshing is true while a refresh is in flight.
	Refreshing bool `json:"refreshing"`

	// Refreshes counts completed refresh attempts.
	Refreshes int64 `json:"refreshes"`

	// Failures counts failed refresh attempts.
	Failures int64 `json:"failures"`

	// LastError is the error of the most recent failed attempt, cleared on success.
	LastError string `json:"last_error,omitempty"`

	// Counts holds the entity counts of the current snapshot.
	Counts Summary `json:"counts"`
}
