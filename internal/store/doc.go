// Package store defines the persistence interfaces for the application's
// entities, the sentinel errors implementations must return, and helpers for
// running multiple statements within a single database transaction.
//
// Concrete implementations live in internal/platform/postgres.
package store
