package letters

import "fmt"

// Letter is the full form of a letter, returned by create and read.
type Letter struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"documentUrl,omitempty"`
}

// Summary is the metadata form of a letter, returned by list. Field names
// mirror the Drive file resource so clients can render listings directly.
type Summary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	WebViewLink string `json:"webViewLink,omitempty"`
	CreatedTime string `json:"createdTime,omitempty"`
}

// DocumentURL returns the Docs editor URL for a document id.
func DocumentURL(documentID string) string {
	return fmt.Sprintf("https://docs.google.com/document/d/%s/edit", documentID)
}
