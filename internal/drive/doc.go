// Package drive provides a client for the Google Drive operations letterdrive
// needs:
//   - Locating or creating the letter storage folder by name
//   - Listing the documents inside that folder
//   - Adding the folder as a parent of a newly created document
//
// A Client is constructed per request from the caller's bearer token and holds
// no state across requests. Folder lookup uses first-match semantics: Drive
// allows duplicate folder names, and this package makes no attempt to
// deduplicate or to lock folder creation across concurrent requests.
package drive
