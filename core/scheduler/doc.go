// Package scheduler refreshes the roster snapshot on a cron schedule.
//
// Reads already refresh an expired snapshot on demand; a schedule keeps the
// snapshot warm between reads so callers rarely wait on the sources. The
// schedule accepts six-field cron expressions (with seconds) and descriptors
// such as "@every 5m" or "@hourly". Runs never overlap: a tick that fires
// while the previous refresh is still running is skipped.
package scheduler
