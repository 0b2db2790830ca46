package reconcile

import (
	"context"
	"fmt"
	"time"

	"roster-hub/core/roster"
	"roster-hub/core/sources"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Pass is the product of one pipeline run.
type Pass struct {
	Snapshot   *roster.Snapshot
	Summary    Summary
	Violations []roster.Violation
}

// Runner builds a snapshot. Pipeline is the production implementation.
type Runner interface {
	Run(ctx context.Context, passTime time.Time) (*Pass, error)
}

// Pipeline loads the primary and secondary sources and reconciles them.
type Pipeline struct {
	primary   sources.Adapter
	secondary sources.Adapter
	log       *zap.Logger
}

// NewPipeline creates a pipeline over the given adapters.
func NewPipeline(primary, secondary sources.Adapter, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{primary: primary, secondary: secondary, log: log}
}

// Run loads both sources concurrently, reconciles them, stamps every entity
// with passTime and validates the result. The first adapter error aborts the
// run and cancels the other load.
//
// Validation problems are logged and reported on the Pass; they do not fail
// the run.
func (p *Pipeline) Run(ctx context.Context, passTime time.Time) (*Pass, error) {
	var primary, secondary roster.Entities

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		e, err := p.primary.Load(gctx, passTime)
		if err != nil {
			return fmt.Errorf("load %s: %w", p.primary.Name(), err)
		}
		primary = e
		return nil
	})
	g.Go(func() error {
		e, err := p.secondary.Load(gctx, passTime)
		if err != nil {
			return fmt.Errorf("load %s: %w", p.secondary.Name(), err)
		}
		secondary = e
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := Reconcile(primary, secondary)
	result.Entities.Stamp(roster.NewTimestamp(passTime))

	snap := &roster.Snapshot{Entities: result.Entities, CreatedAt: passTime}
	violations := snap.Validate()
	for _, v := range violations {
		p.log.Warn("Snapshot violation",
			zap.String("entity", v.Entity),
			zap.String("sourced_id", v.SourcedID),
			zap.String("problem", v.Problem),
		)
	}

	p.log.Debug("Reconciliation pass complete",
		zap.Int("entities", snap.Count()),
		zap.Int("matched_users", result.Summary.MatchedUsers),
		zap.Int("violations", len(violations)),
	)

	return &Pass{Snapshot: snap, Summary: result.Summary, Violations: violations}, nil
}
