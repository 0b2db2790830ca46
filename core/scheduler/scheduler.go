package scheduler

import (
	"context"
	"fmt"
	"time"

	"roster-hub/core/roster"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Refresher rebuilds the snapshot. *reconcile.Cache implements it.
type Refresher interface {
	Refresh(ctx context.Context) (*roster.Snapshot, error)
}

// Scheduler triggers forced refreshes on a cron schedule.
type Scheduler struct {
	cron *cron.Cron
	spec string
	log  *zap.Logger
}

// New validates spec and registers the refresh job. The scheduler does not
// run until Start is called.
func New(spec string, target Refresher, log *zap.Logger) (*Scheduler, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cl := cronLogger{log.Sugar()}

	c := cron.New(
		cron.WithSeconds(),
		cron.WithLogger(cl),
		cron.WithChain(
			cron.SkipIfStillRunning(cl),
			cron.Recover(cl),
		),
	)

	_, err := c.AddFunc(spec, func() {
		if _, err := target.Refresh(context.Background()); err != nil {
			log.Warn("Scheduled refresh failed", zap.Error(err))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}

	return &Scheduler{cron: c, spec: spec, log: log}, nil
}

// Start runs the schedule in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("Refresh schedule started", zap.String("schedule", s.spec), zap.Time("next", s.Next()))
}

// Next returns the next scheduled run, or the zero time before Start.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

// Stop halts the schedule and waits for a running refresh to finish or for
// ctx to end.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cronLogger routes cron's key/value logging through zap.
type cronLogger struct {
	l *zap.SugaredLogger
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.l.Debugw(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.l.Errorw(msg, append(keysAndValues, "error", err)...)
}
