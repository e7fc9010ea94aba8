// Package google provides OAuth2 authentication for the Google APIs used by
// letterdrive.
//
// Unlike a typical OAuth integration, this package stores nothing: tokens are
// obtained once via Exchange and handed straight back to the client, and every
// subsequent API request supplies its own bearer token, which
// HTTPClientFromToken wraps into an authorized HTTP client for the lifetime of
// that request.
package google
