//go:build integration

// Package testdb provides helpers for integration tests that need a real
// PostgreSQL database. Tests using it are built with the "integration" tag
// and skip themselves when no database URL is configured.
package testdb
