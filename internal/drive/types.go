package drive

import "time"

// FolderInfo identifies a Drive folder.
type FolderInfo struct {
	// ID is the unique identifier for the folder
	ID string `json:"id"`

	// Name is the name of the folder
	Name string `json:"name"`
}

// FileInfo represents the metadata returned for a document in the letter folder.
type FileInfo struct {
	// ID is the unique identifier for the file
	ID string `json:"id"`

	// Name is the name of the file
	Name string `json:"name"`

	// WebViewLink is a link for opening the file in the Google Docs editor
	WebViewLink string `json:"webViewLink,omitempty"`

	// CreatedTime is when the file was created
	CreatedTime time.Time `json:"createdTime"`
}
