// Package archive persists roster snapshots to object storage.
//
// Each successful refresh is written twice: once under a timestamped key
// (<prefix>/<created-at>.json) and once as <prefix>/latest.json. On startup
// the latest object seeds the snapshot cache so queries can be answered
// before the sources have been reached. Timestamped objects beyond the
// configured retention are pruned after every save.
package archive
