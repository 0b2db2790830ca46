package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"roster-hub/core/roster"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrSnapshotUnavailable is returned when no snapshot has ever been built and
// the attempt to build one failed.
var ErrSnapshotUnavailable = errors.New("roster snapshot unavailable")

// Default cache timings.
const (
	DefaultTTL            = 60 * time.Second
	DefaultRefreshTimeout = 2 * time.Minute
)

// Singleflight keys. Forced refreshes coalesce among themselves but never
// join a TTL-driven refresh, which may skip the rebuild.
const (
	refreshKey = "snapshot"
	forceKey   = "snapshot-force"
)

// CacheOptions configures a Cache.
type CacheOptions struct {
	// TTL is the maximum snapshot age before Get triggers a refresh.
	TTL time.Duration

	// RefreshTimeout bounds a single refresh. The refresh is detached from the
	// caller's context, so this is the only deadline it observes.
	RefreshTimeout time.Duration

	// Now is the clock. Defaults to time.Now.
	Now func() time.Time
}

// entry is what the cache publishes: an immutable snapshot plus its counts.
type entry struct {
	snap    *roster.Snapshot
	summary Summary
}

// Cache holds the current roster snapshot and refreshes it on demand.
// All methods are safe for concurrent use.
type Cache struct {
	runner Runner
	opts   CacheOptions
	log    *zap.Logger

	current    atomic.Pointer[entry]
	refreshing atomic.Int32
	sf         singleflight.Group
	// build serializes runner passes across both singleflight keys.
	build sync.Mutex

	mu        sync.Mutex
	observers []Observer
	refreshes int64
	failures  int64
	lastErr   string

	notify     sync.WaitGroup
	lastNotify chan struct{}
}

// NewCache creates an empty cache backed by runner.
func NewCache(runner Runner, opts CacheOptions, log *zap.Logger) *Cache {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.RefreshTimeout <= 0 {
		opts.RefreshTimeout = DefaultRefreshTimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{runner: runner, opts: opts, log: log}
}

// AddObserver registers o to be notified after every refresh attempt.
func (c *Cache) AddObserver(o Observer) {
	c.mu.Lock()
	c.observers = append(c.observers, o)
	c.mu.Unlock()
}

// Get returns a snapshot no older than the TTL when possible.
//
// A missing or expired snapshot triggers a refresh. While a refresh is in
// flight, callers receive the previous snapshot when one exists and otherwise
// wait for the refresh. A failed refresh leaves the previous snapshot in
// effect; with no previous snapshot Get returns ErrSnapshotUnavailable.
func (c *Cache) Get(ctx context.Context) (*roster.Snapshot, error) {
	// Fast path: fresh snapshot
	cur := c.current.Load()
	if cur != nil && cur.snap.Age(c.opts.Now()) < c.opts.TTL {
		return cur.snap, nil
	}

	// Stale rather than block
	if cur != nil && c.refreshing.Load() > 0 {
		return cur.snap, nil
	}

	return c.await(ctx, c.sf.DoChan(refreshKey, func() (any, error) {
		return c.refresh(ctx, false)
	}))
}

// Refresh forces a rebuild regardless of snapshot age and waits for it.
// Concurrent forced refreshes share one rebuild. A TTL-driven refresh already
// in flight is waited out, then the sources are read again.
func (c *Cache) Refresh(ctx context.Context) (*roster.Snapshot, error) {
	return c.await(ctx, c.sf.DoChan(forceKey, func() (any, error) {
		return c.refresh(ctx, true)
	}))
}

func (c *Cache) await(ctx context.Context, ch <-chan singleflight.Result) (*roster.Snapshot, error) {
	select {
	case res := <-ch:
		if res.Err == nil {
			return res.Val.(*entry).snap, nil
		}
		if cur := c.current.Load(); cur != nil {
			return cur.snap, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrSnapshotUnavailable, res.Err)
	case <-ctx.Done():
		if cur := c.current.Load(); cur != nil {
			return cur.snap, nil
		}
		return nil, ctx.Err()
	}
}

// refresh runs inside the singleflight group. It is detached from the
// triggering caller so a cancelled request never aborts a shared refresh.
func (c *Cache) refresh(parent context.Context, force bool) (*entry, error) {
	c.refreshing.Add(1)
	defer c.refreshing.Add(-1)

	c.build.Lock()
	defer c.build.Unlock()

	prev := c.current.Load()

	// Double-check after acquiring the singleflight slot
	if !force && prev != nil && prev.snap.Age(c.opts.Now()) < c.opts.TTL {
		return prev, nil
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), c.opts.RefreshTimeout)
	defer cancel()

	started := c.opts.Now()
	passTime := started.UTC()
	if prev != nil && prev.snap.CreatedAt.After(passTime) {
		passTime = prev.snap.CreatedAt
	}

	run := Run{ID: uuid.NewString(), StartedAt: started}
	c.log.Info("Refreshing roster snapshot", zap.String("run_id", run.ID))

	pass, err := c.runner.Run(ctx, passTime)
	run.FinishedAt = c.opts.Now()
	run.Duration = run.FinishedAt.Sub(started)

	if err != nil {
		run.Status = RunFailed
		run.Error = err.Error()

		c.mu.Lock()
		c.refreshes++
		c.failures++
		c.lastErr = err.Error()
		c.mu.Unlock()

		if prev != nil {
			c.log.Warn("Snapshot refresh failed, serving previous snapshot",
				zap.String("run_id", run.ID),
				zap.Time("snapshot_created_at", prev.snap.CreatedAt),
				zap.Error(err),
			)
		} else {
			c.log.Error("Snapshot refresh failed, no snapshot available",
				zap.String("run_id", run.ID),
				zap.Error(err),
			)
		}
		c.publish(ctx, run)
		return nil, err
	}

	next := &entry{snap: pass.Snapshot, summary: pass.Summary}
	c.current.Store(next)

	run.Status = RunSucceeded
	run.Summary = pass.Summary
	run.Violations = len(pass.Violations)
	run.Snapshot = pass.Snapshot

	c.mu.Lock()
	c.refreshes++
	c.lastErr = ""
	c.mu.Unlock()

	c.log.Info("Roster snapshot refreshed",
		zap.String("run_id", run.ID),
		zap.Int("entities", pass.Snapshot.Count()),
		zap.Int("matched_users", pass.Summary.MatchedUsers),
		zap.Duration("duration", run.Duration),
	)
	c.publish(ctx, run)
	return next, nil
}

// publish notifies observers in the background, one run after another in
// refresh order. Wait blocks until they are done.
func (c *Cache) publish(ctx context.Context, run Run) {
	c.mu.Lock()
	observers := append([]Observer(nil), c.observers...)
	if len(observers) == 0 {
		c.mu.Unlock()
		return
	}
	prev := c.lastNotify
	done := make(chan struct{})
	c.lastNotify = done
	c.notify.Add(1)
	c.mu.Unlock()

	octx := context.WithoutCancel(ctx)
	go func() {
		defer c.notify.Done()
		defer close(done)
		if prev != nil {
			<-prev
		}
		for _, o := range observers {
			o.Observe(octx, run)
		}
	}()
}

// Wait blocks until all pending observer notifications have completed.
func (c *Cache) Wait() {
	c.notify.Wait()
}

// Seed publishes snap as the current snapshot without running the pipeline.
// It is used to warm-start from an archived snapshot. A nil snap is ignored.
func (c *Cache) Seed(snap *roster.Snapshot) {
	if snap == nil {
		return
	}
	// A snapshot from a clock running ahead would stay fresh past the TTL.
	if now := c.opts.Now(); snap.CreatedAt.After(now) {
		c.log.Warn("Seeded snapshot is from the future, clamping its age",
			zap.Time("created_at", snap.CreatedAt),
			zap.Time("now", now),
		)
		clamped := *snap
		clamped.CreatedAt = now
		snap = &clamped
	}
	c.current.Store(&entry{snap: snap, summary: countEntities(snap.Entities)})
	c.log.Info("Roster snapshot seeded",
		zap.Time("created_at", snap.CreatedAt),
		zap.Int("entities", snap.Count()),
	)
}

// Status reports the current cache state.
func (c *Cache) Status() Status {
	c.mu.Lock()
	st := Status{
		TTLSeconds: c.opts.TTL.Seconds(),
		Refreshing: c.refreshing.Load() > 0,
		Refreshes:  c.refreshes,
		Failures:   c.failures,
		LastError:  c.lastErr,
	}
	c.mu.Unlock()

	if cur := c.current.Load(); cur != nil {
		st.Ready = true
		st.CreatedAt = cur.snap.CreatedAt
		st.AgeSeconds = cur.snap.Age(c.opts.Now()).Seconds()
		st.Counts = cur.summary
	}
	return st
}
