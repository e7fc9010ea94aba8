// Package server provides the HTTP surface of letterdrive.
//
// APIServer exposes the JSON API consumed by the client application:
//
//	GET  /api/auth/google/url       authorization URL for the OAuth flow
//	GET  /api/auth/google/callback  code exchange, redirects with tokens
//	POST /api/letters               create a letter
//	GET  /api/letters               list letters
//	GET  /api/letters/{id}          read a letter as plain text
//
// Every letter endpoint takes the caller's bearer token with the request;
// the server holds no sessions and stores no credentials. Client errors
// (missing fields or token) are rejected with 400 before any Google API
// call is made. Downstream failures come back as a generic 500 with the
// underlying error logged only.
//
// The package also provides Kubernetes health probes (/healthz, /readyz,
// /healthz/detailed) and a MetricsServer that serves Prometheus metrics on
// a separate port.
package server
