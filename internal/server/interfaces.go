package server

// Server defines the lifecycle contract of the HTTP server.
//
// Implementations block in [RunServer] until a termination signal arrives
// or the listener fails, and release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server within the configured timeout.
	Shutdown()
}
