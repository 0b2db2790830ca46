package sources

import "time"

// Config holds the base URLs of the source systems.
type Config struct {
	// SISURL is the base URL of the Student Information System.
	SISURL string `mapstructure:"sis_url" default:"http://localhost:8080/mock/sis"`
	// LMSURL is the base URL of the Learning Management System.
	LMSURL string `mapstructure:"lms_url" default:"http://localhost:8080/mock/lms"`
	// TimeoutSeconds is the per-request timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Timeout returns the per-request timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
