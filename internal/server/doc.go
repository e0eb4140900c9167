// Package server wires and runs the event planner's HTTP server together with
// its background workers.
//
// It owns startup, signal handling and graceful shutdown: on SIGINT, SIGTERM
// or SIGQUIT the HTTP server stops accepting requests and the workers are
// drained before control returns to the caller, which then closes the
// database.
package server
