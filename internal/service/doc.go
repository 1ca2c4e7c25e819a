// Package service implements the application's business rules on top of the
// store interfaces: uniqueness checks, credential verification, partial
// update semantics and flag toggles. Services return sentinel errors that the
// API layer translates to HTTP status codes.
package service
