// Package server runs the HTTP server of the confirmation web shell.
//
// It covers startup, signal handling and graceful shutdown.
package server
