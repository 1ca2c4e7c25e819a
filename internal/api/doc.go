// Package api contains the HTTP handlers, request/response models and the
// error-to-status mapping for the public REST surface. Handlers decode and
// validate payloads, delegate to the service layer and translate errors into
// sanitized responses.
package api
