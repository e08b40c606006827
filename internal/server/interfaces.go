package server

import "context"

// Server defines the lifecycle contract of the transport server.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT arrives,
	// then shuts down gracefully.
	RunServer()

	// Run serves requests until ctx is done, then shuts down gracefully. It
	// returns early if the listener fails.
	Run(ctx context.Context) error

	// Shutdown stops accepting requests and waits for in-flight ones within
	// the configured shutdown timeout.
	Shutdown()
}
