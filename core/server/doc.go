// Package server holds the HTTP server configuration.
//
// While cmd/start.go handles the server startup, this package defines the
// configuration structure for the listen port, the graceful shutdown deadline
// and whether the sample source endpoints are mounted.
//
// # Usage
//
// This package is embedded by core/config and read by the start command:
//
//	app.Listen(cfg.Server.Addr())
package server
