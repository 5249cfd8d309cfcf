// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the activation service that owns user accounts.
//
// The primary abstraction is [ActivationAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPActivationAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrGone] for 410, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-confirm/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/activation_adapter_mock.go -package=mock

// ActivationAdapter defines transport-agnostic communication with the
// activation service.
type ActivationAdapter interface {
	// Activate asks the service to activate the account addressed by token.
	// The token is sent as is, as a single path segment, and the request has
	// no body. A nil error means the service answered with a 2xx status.
	Activate(ctx context.Context, token models.Token) error

	// ActivationURL returns the absolute URL Activate would call for token.
	ActivationURL(token models.Token) string
}
