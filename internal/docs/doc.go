// Package docs provides the Google Docs operations letterdrive needs:
// creating an empty titled document, inserting letter content as a single
// text run, fetching a document, and flattening a structured document body to
// plain text.
//
// A Client is constructed per request from the caller's bearer token. Content
// insertion is a single batch update with no chunking and no compensation: a
// failure after document creation leaves an orphaned document behind, which is
// accepted behavior for this service.
package docs
