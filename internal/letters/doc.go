// Package letters orchestrates letter operations across the Drive and Docs
// APIs. A letter is a Google Doc filed under a dedicated Drive folder; the
// folder is created on first use and looked up by name afterwards.
//
// Services are built per request from the caller's access token via a
// ClientFactory, so the package never stores credentials or documents
// itself.
package letters
