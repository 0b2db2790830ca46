// Package journal records refresh runs in the database.
//
// Each snapshot refresh attempt becomes one row in the refresh_runs table,
// successful or not. The status endpoint reads the most recent rows back so
// operators can see when the sources were last reached and why a refresh
// failed. The journal is optional: it is only wired when a database is
// configured.
package journal
