// Package http implements the HTTP transport layer of the service.
//
// It exposes the versioned route table, the liveness handler and the
// middleware applied to every request: request tracing, access logging and
// request metrics. Handlers delegate to the service layer and never hold
// state of their own.
package http
