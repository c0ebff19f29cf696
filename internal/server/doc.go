// Package server wires and runs the registry's transport servers.
//
// It provides orchestration for HTTP and gRPC server lifecycles together
// with the background workers, including startup, signal handling, and
// graceful shutdown of all enabled transports.
package server
