// Package cmd implements the command-line interface for letterdrive.
//
// This package provides the following commands:
//   - serve: Start the HTTP API server
//   - version: Display version information
//
// The serve command is the default command when no subcommand is specified.
package cmd
