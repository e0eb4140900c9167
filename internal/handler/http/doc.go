// Package http implements the HTTP transport layer of the event planner.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, request tracing, access
// logging, response compression and rate limiting of the credential endpoints
// are handled in this package before requests are delegated to the service
// layer.
package http
