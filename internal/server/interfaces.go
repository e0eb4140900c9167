package server

// Server defines the lifecycle contract of the process's serving side.
type Server interface {
	// RunServer starts serving requests and blocks until shutdown completes.
	RunServer()

	// Shutdown gracefully stops accepting requests.
	Shutdown()
}
