package letters

import (
	"context"
	"fmt"

	"github.com/letterdrive/letterdrive/internal/docs"
	"github.com/letterdrive/letterdrive/internal/drive"
	"github.com/letterdrive/letterdrive/internal/google"
)

// DriveAPI abstracts the Drive operations the letter service needs.
// The production implementation is drive.Client.
type DriveAPI interface {
	// FindFolder returns the first non-trashed folder with the given name,
	// or nil when none exists.
	FindFolder(ctx context.Context, name string) (*drive.FolderInfo, error)

	// CreateFolder creates a new folder with the given name.
	CreateFolder(ctx context.Context, name string) (*drive.FolderInfo, error)

	// ListDocumentsInFolder lists the documents whose parent set includes folderID.
	ListDocumentsInFolder(ctx context.Context, folderID string) ([]*drive.FileInfo, error)

	// AddParent adds folderID to the parent set of the file.
	AddParent(ctx context.Context, fileID, folderID string) error
}

// DocsAPI abstracts the Docs operations the letter service needs.
// The production implementation is docs.Client.
type DocsAPI interface {
	// CreateDocument creates an empty titled document and returns its id.
	CreateDocument(ctx context.Context, title string) (string, error)

	// InsertText inserts the full text as a single run at the start of the body.
	InsertText(ctx context.Context, documentID, text string) error

	// ReadDocument fetches a document and flattens its body to plain text.
	ReadDocument(ctx context.Context, documentID string) (title, content string, err error)
}

// ClientFactory builds the per-request API clients from a bearer access token.
//
// Factories are pure: they wrap the token into authorized clients without
// validating or storing it, so calling one repeatedly is safe. An invalid
// token surfaces only as an error from the first downstream call.
type ClientFactory func(ctx context.Context, accessToken string) (DriveAPI, DocsAPI, error)

// NewGoogleClientFactory returns the production factory backed by the real
// Drive and Docs services.
func NewGoogleClientFactory() ClientFactory {
	return func(ctx context.Context, accessToken string) (DriveAPI, DocsAPI, error) {
		httpClient := google.HTTPClientFromToken(ctx, accessToken)

		driveClient, err := drive.NewClient(ctx, httpClient)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create Drive client: %w", err)
		}

		docsClient, err := docs.NewClient(ctx, httpClient)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create Docs client: %w", err)
		}

		return driveClient, docsClient, nil
	}
}
