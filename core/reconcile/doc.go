// Package reconcile merges the entities produced by the source adapters into a
// single roster snapshot and keeps that snapshot fresh.
//
// # Architecture
//
// The package consists of three main components:
//
// 1. Reconcile: a pure function that takes the primary (SIS) and secondary
// (LMS) entity sets and produces one merged set. The primary source is
// authoritative for every collection. The secondary source only contributes
// identity metadata: each primary user whose email matches a secondary user
// (case-insensitively) gets "lms_username" and "lms_sourcedId" metadata.
//
// 2. Pipeline: runs every source adapter concurrently, reconciles the results,
// stamps dateLastModified on every entity and validates the snapshot.
//
// 3. Cache: TTL-based snapshot holder with stampede protection. Refreshes are
// serialized through singleflight; callers arriving during a refresh receive
// the previous snapshot when one exists. A failed refresh keeps the previous
// snapshot in place.
//
// # Usage Example
//
//	pipeline := reconcile.NewPipeline(sisAdapter, lmsAdapter, log)
//	cache := reconcile.NewCache(pipeline, reconcile.CacheOptions{TTL: time.Minute}, log)
//
//	snap, err := cache.Get(ctx)
//
// # Observers
//
// Every refresh attempt, successful or not, is reported to the registered
// Observer implementations as a Run. The archive and journal packages use this
// to persist snapshots and refresh history.
package reconcile
