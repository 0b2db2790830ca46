// Package sources defines the contract between the reconcile pipeline and the
// systems roster data is ingested from.
//
// Each source system (see the sis and lms subpackages) implements Source: a
// Fetch step that performs network I/O and returns the system's native raw
// records, and a pure Transform step that maps those records into the
// canonical roster model. Bind erases the raw type so the pipeline can treat
// every source uniformly.
//
// Client is the shared HTTP helper. It classifies failures into the two
// sentinel errors callers check with errors.Is:
//   - ErrSourceUnavailable: transport errors and non-2xx responses.
//   - ErrMalformedPayload: bodies that are not a JSON array of records of the
//     expected shape.
package sources
