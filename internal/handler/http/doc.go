// Package http implements the HTTP transport layer of the reservations
// service. It provides middleware, route handlers, and request/response
// utilities for the REST API. Authentication, logging, and tracing concerns
// are all handled at this layer before requests are forwarded to the service
// layer.
//
// Every response body is wrapped in the shared JSON envelope
// (models.Envelope) so that this service speaks the same dialect as the
// upstream microservices it consumes.
package http
