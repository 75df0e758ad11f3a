// Package postgres implements the internal/store interfaces on PostgreSQL
// through database/sql and the pgx driver, and embeds the schema that the
// server applies at start-up.
package postgres
