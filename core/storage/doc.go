// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so the snapshot
// archive can be tested against core/storage/mocks. Both AWS S3 and
// self-hosted MinIO are supported.
//
// # Operations
//
//   - BucketExists / MakeBucket: EnsureBucket creates the archive bucket on first use.
//   - PutObject: uploads a serialized snapshot.
//   - GetObject: reads the latest snapshot back for a warm start.
//   - ListObjects / RemoveObjects: list and prune old snapshots.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
