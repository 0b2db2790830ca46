package reconcile

import "time"

// Config holds configuration for the snapshot cache.
type Config struct {
	// TTLSeconds is the maximum snapshot age before a read triggers a refresh.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"60"`
	// RefreshTimeoutSeconds bounds a single refresh.
	RefreshTimeoutSeconds int `mapstructure:"refresh_timeout_seconds" default:"120"`
	// WarmStart seeds the cache from the archive on startup.
	WarmStart bool `mapstructure:"warm_start" default:"true"`
	// RefreshSchedule is a cron expression for background refreshes
	// (e.g. "@every 5m"). Empty disables scheduled refreshes.
	RefreshSchedule string `mapstructure:"refresh_schedule" default:""`
}

// Options converts the configuration into CacheOptions.
// Non-positive values fall back to the defaults in NewCache.
func (c Config) Options() CacheOptions {
	return CacheOptions{
		TTL:            time.Duration(c.TTLSeconds) * time.Second,
		RefreshTimeout: time.Duration(c.RefreshTimeoutSeconds) * time.Second,
	}
}
