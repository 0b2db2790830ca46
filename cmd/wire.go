package cmd

import (
	"context"
	"fmt"

	"roster-hub/core/archive"
	"roster-hub/core/config"
	"roster-hub/core/database"
	"roster-hub/core/journal"
	"roster-hub/core/reconcile"
	"roster-hub/core/sources"
	"roster-hub/core/sources/lms"
	"roster-hub/core/sources/sis"
	"roster-hub/core/storage"

	"go.uber.org/zap"
)

// newPipeline builds the SIS (primary) and LMS (secondary) pipeline.
func newPipeline(cfg *config.Config, l *zap.Logger) *reconcile.Pipeline {
	timeout := cfg.Sources.Timeout()
	primary := sis.NewAdapter(sources.NewClient(sis.Name, cfg.Sources.SISURL, timeout))
	secondary := lms.NewAdapter(sources.NewClient(lms.Name, cfg.Sources.LMSURL, timeout))
	return reconcile.NewPipeline(sources.Bind[sis.Records](primary), sources.Bind[lms.Records](secondary), l)
}

// newArchive connects the snapshot archive. It returns nil when storage is
// disabled.
func newArchive(ctx context.Context, cfg *config.Config, l *zap.Logger) (*archive.Archive, error) {
	if !cfg.Storage.Enabled {
		return nil, nil
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
		return nil, err
	}
	return archive.New(client, cfg.Storage, l), nil
}

// newJournal connects the refresh journal and migrates its table. It returns
// nil when the database is disabled.
func newJournal(ctx context.Context, cfg *config.Config, l *zap.Logger) (*journal.Journal, error) {
	if !cfg.Database.Enabled {
		return nil, nil
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	j := journal.New(db, l)
	if err := j.Migrate(ctx); err != nil {
		return nil, err
	}
	return j, nil
}
