// Package config loads and validates the service configuration from
// defaults, an optional config.yaml, an optional .env file and CATALOG_*
// environment variables.
package config
