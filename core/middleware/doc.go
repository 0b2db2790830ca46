// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - rayid: Generates a unique request id (ray id) for every incoming request,
//     stores it in the Fiber locals under logger.RayIDKey and echoes it in the
//     X-Ray-ID response header so log lines can be traced back to a request.
//
// The read API is unauthenticated; access control is expected to sit in front
// of the service.
package middleware
