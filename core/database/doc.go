// Package database handles database connections.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections
// from the application's configuration. The only consumer is the refresh
// journal, so the connection is optional: callers log the error and carry on
// without a journal.
//
// # Drivers
//
//   - mysql: Host, Port, User, Password and Name build a DSN with timeouts.
//   - sqlite: Name is the database file path (":memory:" works for tests).
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Database unavailable, refresh journal disabled", zap.Error(err))
//	}
package database
