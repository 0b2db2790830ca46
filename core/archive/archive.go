package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"
	"time"

	"roster-hub/core/reconcile"
	"roster-hub/core/roster"
	"roster-hub/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrNoSnapshot is returned by Latest when nothing has been archived yet.
var ErrNoSnapshot = errors.New("no archived snapshot")

const (
	latestName  = "latest.json"
	keyLayout   = "20060102T150405.000000Z"
	contentType = "application/json"
)

// document is the archived form of a snapshot.
type document struct {
	CreatedAt time.Time `json:"createdAt"`
	roster.Entities
}

// Archive reads and writes snapshots in one bucket.
type Archive struct {
	client storage.Client
	bucket string
	prefix string
	retain int
	log    *zap.Logger
}

// New creates an archive using the bucket, prefix and retention from cfg.
func New(client storage.Client, cfg storage.Config, log *zap.Logger) *Archive {
	if log == nil {
		log = zap.NewNop()
	}
	return &Archive{
		client: client,
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
		retain: cfg.Retain,
		log:    log,
	}
}

func (a *Archive) key(name string) string {
	return path.Join(a.prefix, name)
}

// Key returns the timestamped object key for a snapshot created at t.
func (a *Archive) Key(t time.Time) string {
	return a.key(t.UTC().Format(keyLayout) + ".json")
}

// Save writes snap under its timestamped key and as the latest snapshot.
// It returns the timestamped key.
func (a *Archive) Save(ctx context.Context, snap *roster.Snapshot) (string, error) {
	data, err := json.Marshal(document{CreatedAt: snap.CreatedAt.UTC(), Entities: snap.Entities})
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	key := a.Key(snap.CreatedAt)
	for _, name := range []string{key, a.key(latestName)} {
		_, err := a.client.PutObject(ctx, a.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: contentType,
		})
		if err != nil {
			return "", fmt.Errorf("upload %s: %w", name, err)
		}
	}
	return key, nil
}

// Latest reads back the most recently saved snapshot.
func (a *Archive) Latest(ctx context.Context) (*roster.Snapshot, error) {
	return a.Load(ctx, a.key(latestName))
}

// Load reads the snapshot stored under key.
func (a *Archive) Load(ctx context.Context, key string) (*roster.Snapshot, error) {
	obj, err := a.client.GetObject(ctx, a.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, a.readErr(key, err)
	}
	defer obj.Close()

	var doc document
	if err := json.NewDecoder(obj).Decode(&doc); err != nil {
		return nil, a.readErr(key, err)
	}
	return &roster.Snapshot{Entities: doc.Entities, CreatedAt: doc.CreatedAt}, nil
}

func (a *Archive) readErr(key string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%w: %s", ErrNoSnapshot, key)
	}
	return fmt.Errorf("read %s: %w", key, err)
}

// List returns the timestamped snapshot keys, oldest first.
func (a *Archive) List(ctx context.Context) ([]string, error) {
	latest := a.key(latestName)
	var keys []string
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{
		Prefix:    a.prefix + "/",
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list snapshots: %w", obj.Err)
		}
		if obj.Key == latest || !strings.HasSuffix(obj.Key, ".json") {
			continue
		}
		keys = append(keys, obj.Key)
	}
	// Keys sort chronologically by construction.
	slices.Sort(keys)
	return keys, nil
}

// Prune removes timestamped snapshots beyond the retention limit and returns
// how many were removed.
func (a *Archive) Prune(ctx context.Context) (int, error) {
	if a.retain <= 0 {
		return 0, nil
	}
	keys, err := a.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(keys) <= a.retain {
		return 0, nil
	}
	stale := keys[:len(keys)-a.retain]

	objects := make(chan minio.ObjectInfo, len(stale))
	for _, k := range stale {
		objects <- minio.ObjectInfo{Key: k}
	}
	close(objects)

	var errs []error
	for rerr := range a.client.RemoveObjects(ctx, a.bucket, objects, minio.RemoveObjectsOptions{}) {
		errs = append(errs, fmt.Errorf("remove %s: %w", rerr.ObjectName, rerr.Err))
	}
	return len(stale) - len(errs), errors.Join(errs...)
}

// Observe archives the snapshot of every successful refresh.
func (a *Archive) Observe(ctx context.Context, run reconcile.Run) {
	if run.Status != reconcile.RunSucceeded || run.Snapshot == nil {
		return
	}

	key, err := a.Save(ctx, run.Snapshot)
	if err != nil {
		a.log.Warn("Failed to archive snapshot", zap.String("run_id", run.ID), zap.Error(err))
		return
	}
	a.log.Debug("Snapshot archived", zap.String("run_id", run.ID), zap.String("key", key))

	removed, err := a.Prune(ctx)
	if err != nil {
		a.log.Warn("Failed to prune archived snapshots", zap.Error(err))
	}
	if removed > 0 {
		a.log.Debug("Pruned archived snapshots", zap.Int("removed", removed))
	}
}
