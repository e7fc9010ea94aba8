package docs

import (
	"context"
	"fmt"
	"net/http"

	docs "google.golang.org/api/docs/v1"
	"google.golang.org/api/option"
)

// insertIndex is the fixed insertion point for letter content: index 1 is the
// position immediately after the document's implicit start marker.
const insertIndex = 1

// Client wraps the Google Docs API service. A Client is bound to the bearer
// token its HTTP client was built from and lives for a single request.
type Client struct {
	service *docs.Service
}

// NewClient creates a new Google Docs client on top of an authorized HTTP
// client (see google.HTTPClientFromToken).
func NewClient(ctx context.Context, httpClient *http.Client) (*Client, error) {
	service, err := docs.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Docs service: %w", err)
	}

	return &Client{service: service}, nil
}

// CreateDocument creates an empty document with the given title and returns
// its id. The body is populated by a separate InsertText call.
func (c *Client) CreateDocument(ctx context.Context, title string) (string, error) {
	if title == "" {
		return "", fmt.Errorf("title is required")
	}

	doc, err := c.service.Documents.Create(&docs.Document{Title: title}).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to create document: %w", err)
	}

	return doc.DocumentId, nil
}

// InsertText inserts the full text as a single run at the fixed insertion
// index. There is no chunking and no rollback: if the call fails, the document
// keeps its title and whatever body the API left behind.
func (c *Client) InsertText(ctx context.Context, documentID, text string) error {
	if documentID == "" {
		return fmt.Errorf("documentID is required")
	}
	if text == "" {
		// The API rejects empty insertions; an empty letter body is just
		// an empty document.
		return nil
	}

	req := &docs.BatchUpdateDocumentRequest{
		Requests: []*docs.Request{
			{
				InsertText: &docs.InsertTextRequest{
					Text: text,
					Location: &docs.Location{
						Index: insertIndex,
					},
				},
			},
		},
	}

	_, err := c.service.Documents.BatchUpdate(documentID, req).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to insert text into document %s: %w", documentID, err)
	}

	return nil
}

// FetchDocument retrieves a document's structured body by document ID.
func (c *Client) FetchDocument(ctx context.Context, documentID string) (*docs.Document, error) {
	if documentID == "" {
		return nil, fmt.Errorf("documentID is required")
	}

	doc, err := c.service.Documents.Get(documentID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get document %s: %w", documentID, err)
	}

	return doc, nil
}

// ReadDocument fetches a document and flattens its body to plain text.
func (c *Client) ReadDocument(ctx context.Context, documentID string) (string, string, error) {
	doc, err := c.FetchDocument(ctx, documentID)
	if err != nil {
		return "", "", err
	}

	return doc.Title, ExtractText(doc), nil
}
