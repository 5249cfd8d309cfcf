// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message strings used by the
// web shell handlers.
package app

const (
	// MsgInternalServerError is written when a view cannot be rendered.
	MsgInternalServerError = "internal server error"

	// MsgStatusOK is the status reported by the health endpoint.
	MsgStatusOK = "ok"
)
