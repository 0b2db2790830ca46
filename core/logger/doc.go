// Package logger builds the zap logger used across roster-hub.
//
// New reads a Config (level and json/console format) and returns a logger
// with ISO8601 timestamps. Unknown levels are rejected rather than silently
// mapped to info.
//
// # Request correlation
//
// The rayid middleware stores a per-request id in the Fiber locals under
// RayIDKey. WithRayID copies it onto a child logger so every line a handler
// writes can be tied back to the request and to the X-Ray-ID response header:
//
//	l := logger.WithRayID(log, c)
//	l.Warn("Forced refresh kept the previous snapshot", zap.String("error", msg))
//
// Background work such as cache refreshes logs with a run_id field instead.
package logger
