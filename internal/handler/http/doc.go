// Package http implements the web shell of the confirmation flow.
//
// It renders the confirmation view, turns the declarative outcome of the
// confirmation service into a redirect or a blocking notice, and exposes the
// same outcome as JSON for client-side shells. Request tracing, access
// logging and response compression are applied as chi middleware.
package http
