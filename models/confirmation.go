// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net/url"
	"strings"
)

// Token is the opaque identifier embedded in a confirmation link.
// It is forwarded verbatim to the activation service and never parsed.
type Token string

// String returns the raw token value.
func (t Token) String() string {
	return string(t)
}

// OutcomeKind tells a shell which effect to perform after a confirmation.
type OutcomeKind string

const (
	// OutcomeRedirect means the user must be navigated to [Outcome.To].
	OutcomeRedirect OutcomeKind = "redirect"
	// OutcomeNotice means a blocking notice with [Outcome.Message] must be shown.
	OutcomeNotice OutcomeKind = "notice"
)

const (
	// RootPath is the view the user lands on after a successful confirmation.
	RootPath = "/"
	// ConfirmationFailedMessage is the only notice ever shown on failure.
	ConfirmationFailedMessage = "Failed to confirm token"
)

// Outcome is the declarative result of a confirmation attempt. Exactly one of
// To and Message is meaningful, depending on Kind.
type Outcome struct {
	Kind    OutcomeKind `json:"kind"`
	To      string      `json:"to,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Redirect builds a redirect outcome.
func Redirect(to string) Outcome {
	return Outcome{Kind: OutcomeRedirect, To: to}
}

// Notice builds a notice outcome.
func Notice(message string) Outcome {
	return Outcome{Kind: OutcomeNotice, Message: message}
}

// IsRedirect reports whether the outcome asks for navigation.
func (o Outcome) IsRedirect() bool {
	return o.Kind == OutcomeRedirect
}

// TokenFromLink extracts the token from a confirmation link.
//
// Accepted forms are a full URL or path ending in "/confirm/{token}" and a
// bare token. Everything after the "confirm" segment is returned as is, so an
// empty result means the link carried no token at all.
func TokenFromLink(link string) Token {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}

	path := link
	if u, err := url.Parse(link); err == nil && (u.Scheme != "" || strings.HasPrefix(link, "/")) {
		path = u.Path
	}

	if !strings.Contains(path, "/") {
		return Token(path)
	}

	const marker = "/confirm/"
	if idx := strings.LastIndex(path, marker); idx >= 0 {
		return Token(path[idx+len(marker):])
	}

	return Token(path[strings.LastIndex(path, "/")+1:])
}
