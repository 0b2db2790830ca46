// Package utils provides small conversion helpers shared by the HTTP layer and
// the query filters.
package utils
