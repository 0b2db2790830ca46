// Package oneroster exposes the reconciled roster over HTTP.
//
// Two route groups are registered:
//
//   - /ims/oneroster/v1p1: the OneRoster v1.1 read API. Collections accept
//     limit, offset and filter query parameters, return a JSON array and carry
//     the filtered total in the X-Total-Count header.
//   - /api/v1/oneroster: the full snapshot, the cache status with the recent
//     refresh history, and a forced refresh.
//
// Errors are returned as {"error": "..."} with 400 for bad pagination, 404 for
// unknown ids and 503 while no snapshot has ever been built.
package oneroster
