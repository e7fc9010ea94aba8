// Package logging provides structured logging utilities for the letterdrive
// application.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Consistent attribute naming across the codebase
//   - Bearer token sanitization
//
// # Security Considerations
//
// Bearer access tokens are never logged directly; use SanitizeToken to record
// a length indicator instead of any token content.
package logging
