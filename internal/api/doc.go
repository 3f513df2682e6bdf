// Package api implements the HTTP handlers for the academy record store.
// Handlers parse and validate requests, call into the stores or the
// coordinator, and serialize the results; no business rule lives here.
package api
