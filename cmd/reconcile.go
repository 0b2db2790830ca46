package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"roster-hub/core/config"
	"roster-hub/core/logger"
	"roster-hub/core/reconcile"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile command
	reconcileOut     string
	reconcileArchive bool
)

// reconcileCmd runs one fetch and reconcile pass outside the server.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Fetch both sources once and print the reconciliation summary",
	Long: `Fetches the SIS and LMS, reconciles them into one OneRoster dataset and
reports match statistics and invariant violations.

Examples:
  # Report only
  reconcile

  # Write the snapshot to a file
  reconcile --out roster.json

  # Push the snapshot to the configured archive bucket
  reconcile --archive`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileOut, "out", "", "Write the reconciled snapshot as JSON to this file")
	reconcileCmd.Flags().BoolVar(&reconcileArchive, "archive", false, "Save the snapshot to the configured storage archive")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	ctx, cancel := context.WithTimeout(ctx, cfg.Cache.Options().RefreshTimeout)
	defer cancel()

	l.Info("Starting reconciliation",
		zap.String("sis_url", cfg.Sources.SISURL),
		zap.String("lms_url", cfg.Sources.LMSURL),
	)

	started := time.Now()
	pass, err := newPipeline(cfg, l).Run(ctx, started.UTC())
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}
	printReconcileReport(l, pass)

	if reconcileOut != "" {
		if err := writeSnapshot(reconcileOut, pass); err != nil {
			return err
		}
		l.Info("Snapshot written", zap.String("path", reconcileOut))
	}

	if reconcileArchive {
		if !cfg.Storage.Enabled {
			return errors.New("--archive requires storage.enabled")
		}
		arch, err := newArchive(ctx, cfg, l)
		if err != nil {
			return err
		}
		key, err := arch.Save(ctx, pass.Snapshot)
		if err != nil {
			return err
		}
		l.Info("Snapshot archived", zap.String("key", key))
	}

	// Record the pass like a server refresh when a journal is configured
	j, err := newJournal(ctx, cfg, l)
	if err != nil {
		l.Warn("Optional refresh journal unavailable", zap.Error(err))
	} else if j != nil {
		finished := time.Now()
		run := reconcile.Run{
			ID:         uuid.NewString(),
			Status:     reconcile.RunSucceeded,
			StartedAt:  started,
			FinishedAt: finished,
			Duration:   finished.Sub(started),
			Summary:    pass.Summary,
			Violations: len(pass.Violations),
		}
		if err := j.Record(ctx, run); err != nil {
			l.Warn("Failed to record reconciliation run", zap.Error(err))
		}
	}

	return nil
}

// printReconcileReport prints the pass summary using logger.
func printReconcileReport(l *zap.Logger, pass *reconcile.Pass) {
	s := pass.Summary

	l.Info("Reconciliation report",
		zap.Int("sis_users", s.PrimaryUsers),
		zap.Int("lms_users", s.SecondaryUsers),
		zap.Int("matched_users", s.MatchedUsers),
		zap.Int("unmatched_sis", s.UnmatchedPrimary),
		zap.Int("unmatched_lms", s.UnmatchedSecondary),
		zap.Int("duplicate_emails", s.DuplicateEmails),
	)
	l.Info("Snapshot contents",
		zap.Int("orgs", s.Orgs),
		zap.Int("users", s.Users),
		zap.Int("courses", s.Courses),
		zap.Int("classes", s.Classes),
		zap.Int("enrollments", s.Enrollments),
		zap.Int("academic_sessions", s.AcademicSessions),
	)

	if len(pass.Violations) == 0 {
		return
	}

	// Show a sample of violations (max 5 for logger)
	maxShow := min(len(pass.Violations), 5)
	for _, v := range pass.Violations[:maxShow] {
		l.Warn("Violation", zap.String("detail", v.String()))
	}
	if len(pass.Violations) > maxShow {
		l.Warn("Additional violations not shown", zap.Int("count", len(pass.Violations)-maxShow))
	}
}

func writeSnapshot(path string, pass *reconcile.Pass) error {
	data, err := json.MarshalIndent(pass.Snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
