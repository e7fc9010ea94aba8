// Package config loads letterdrive configuration from environment variables,
// optionally seeded from a .env file in the working directory.
//
// The resulting Config is an immutable value constructed once at process start
// and passed explicitly to the components that need it.
package config
