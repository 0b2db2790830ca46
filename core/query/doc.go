// Package query answers OneRoster reads against the current roster snapshot.
//
// Every list operation shares one contract: the optional filter is applied
// first, then offset and limit. Limit must be in [1, 10000] and offset must
// be non-negative; violations fail with ErrInvalidQueryParameter before the
// snapshot is touched. Get operations fail with ErrNotFound when no entity
// has the requested sourcedId.
//
// # Filters
//
// A filter is a single "field=value" expression. Fields are resolved through
// a fixed accessor table per entity type; "metadata.<key>" reads a metadata
// entry. Unknown fields and malformed expressions do not fail the request:
// the filter is ignored and the unfiltered collection is returned. A few
// convenience fields (role, type, classType, schoolSourcedId and every
// course, enrollment and academic session field) compare case-insensitively.
package query
