// Package postgres implements the store interfaces on top of PostgreSQL,
// accessed through database/sql with the pgx driver. Driver-level errors are
// translated to the sentinel errors defined in internal/store.
package postgres
