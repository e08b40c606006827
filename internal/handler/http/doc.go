// Package http implements the HTTP transport layer of the captioner.
//
// It exposes route wiring, request handlers and middleware used by the REST
// API. Request tracing, access logging, metrics, response compression and
// session binding are handled here before requests reach the service layer.
package http
