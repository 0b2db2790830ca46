package oneroster

import (
	"context"

	"roster-hub/core/journal"
	"roster-hub/core/query"
	"roster-hub/core/reconcile"
	"roster-hub/core/roster"

	"go.uber.org/zap"
)

// Snapshots is the subset of *reconcile.Cache the feature depends on.
type Snapshots interface {
	query.Provider
	Refresh(ctx context.Context) (*roster.Snapshot, error)
	Status() reconcile.Status
}

// History lists recent refresh runs. *journal.Journal implements it.
type History interface {
	Recent(ctx context.Context, limit int) ([]journal.RefreshRun, error)
}

// StatusReport is the body of the status endpoint.
type StatusReport struct {
	Cache reconcile.Status `json:"cache"`
	// Runs is omitted when no journal is configured.
	Runs []journal.RefreshRun `json:"runs,omitempty"`
}

// Service glues the query engine to the cache and the refresh journal.
type Service struct {
	*query.Engine
	snapshots Snapshots
	history   History
	logger    *zap.Logger
}

// NewService creates a new service. history may be nil.
func NewService(snapshots Snapshots, history History, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		Engine:    query.NewEngine(snapshots, logger),
		snapshots: snapshots,
		history:   history,
		logger:    logger,
	}
}

// Status reports the cache state and up to runs journal entries.
func (s *Service) Status(ctx context.Context, runs int) (StatusReport, error) {
	report := StatusReport{Cache: s.snapshots.Status()}
	if s.history == nil || runs <= 0 {
		return report, nil
	}

	recent, err := s.history.Recent(ctx, runs)
	if err != nil {
		return report, err
	}
	report.Runs = recent
	return report, nil
}

// Refresh forces a rebuild and returns the resulting cache state.
func (s *Service) Refresh(ctx context.Context) (reconcile.Status, error) {
	if _, err := s.snapshots.Refresh(ctx); err != nil {
		return s.snapshots.Status(), err
	}
	return s.snapshots.Status(), nil
}

// RefreshAsync starts a forced rebuild without waiting for it. Failures are
// recorded in the cache status.
func (s *Service) RefreshAsync() {
	go func() {
		if _, err := s.snapshots.Refresh(context.Background()); err != nil {
			s.logger.Warn("Background refresh failed", zap.Error(err))
		}
	}()
}
