package adapter

import "errors"

// Sentinel errors returned by [ActivationAdapter] implementations.
var (
	// ErrActivationRequest wraps transport failures: refused connections,
	// DNS errors, timeouts and cancelled contexts.
	ErrActivationRequest = errors.New("activation request failed")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrGone                = errors.New("gone")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrUnexpectedStatus is returned for any other non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected status")
)
