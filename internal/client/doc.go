// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It resolves the token from the configured confirmation link and hands it
// to the terminal UI for the confirmation flow.
package client
