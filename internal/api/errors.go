package api

import "errors"

// Error taxonomy shared by the store layer and the HTTP boundary.
// Repos wrap their failures with one of these so handlers can map them
// to a response code with errors.Is, without inspecting driver errors.
var (
	// ErrInvalidInput marks a request missing required fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStoreUnavailable marks a failed call to the document store.
	// Callers treat it as transient and retryable.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrNotFound marks a missing update/delete target.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a rejected duplicate, e.g. an already used QR code.
	ErrConflict = errors.New("conflict")
)
