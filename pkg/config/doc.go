// Package config loads accessor settings from UAKIT_-prefixed environment
// variables.
//
// It wraps github.com/joho/godotenv, which fills the environment from .env
// files, and github.com/caarlos0/env/v11, which parses the environment into
// the Config struct using field tags and defaults.
//
// # Variables
//
//	UAKIT_DECOMPOSER    keyword | uasurfer | mssola (default keyword)
//	UAKIT_LOG_LEVEL     debug | info | warn | error (default info)
//	UAKIT_LOG_FORMAT    json | text (default json)
//	UAKIT_APP_ENV       development | staging | production (default development)
//	UAKIT_SERVICE_NAME  service tag on log records (default uakit)
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	log := cfg.Logger()
package config
