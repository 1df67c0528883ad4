package server

import "context"

// Server defines the lifecycle contract of the bridge server.
type Server interface {
	// RunServer serves requests until ctx is cancelled, then shuts down
	// gracefully. It returns early if the listener fails.
	RunServer(ctx context.Context) error

	// Addr is the bound listen address, valid after NewServer returns.
	Addr() string
}
