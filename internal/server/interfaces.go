package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	// In-flight requests get until ctx expires.
	Shutdown(ctx context.Context) error
}

// BackgroundRunner is a set of background jobs tied to the server lifetime.
type BackgroundRunner interface {
	Run(ctx context.Context) error
}
