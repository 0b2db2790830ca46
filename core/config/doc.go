// Package config provides configuration management for roster-hub.
//
// It uses Viper to read environment variables, optionally preloaded from a
// .env file with godotenv. Defaults come from the `default` struct tags of
// each section, so every key is registered even when no variable is set.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: listen port, shutdown deadline, sample source endpoints
//   - Sources: SIS and LMS base URLs and request timeout
//   - Cache: snapshot TTL, refresh timeout, warm start
//   - Storage: S3/MinIO credentials and snapshot archive settings
//   - Log: logging level and format
//   - Database: refresh journal connection (mysql or sqlite)
//
// Environment keys are the upper-cased section and field joined by an
// underscore, e.g. SOURCES_SIS_URL or CACHE_TTL_SECONDS.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
