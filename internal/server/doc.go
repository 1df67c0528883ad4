// Package server runs the loopback HTTP bridge.
//
// It owns the listener lifecycle: bind, serve until the context is
// cancelled, then shut down gracefully within a bounded timeout.
package server
