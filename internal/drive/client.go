package drive

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const (
	// FolderMimeType is the MIME type for Google Drive folders
	FolderMimeType = "application/vnd.google-apps.folder"

	// DocumentMimeType is the MIME type for Google Docs documents
	DocumentMimeType = "application/vnd.google-apps.document"
)

// maxFolderResults caps the folder lookup; only the first match is used.
const maxFolderResults = 10

// Client wraps the Google Drive API service. A Client is bound to the bearer
// token its HTTP client was built from and lives for a single request.
type Client struct {
	service *drive.Service
}

// NewClient creates a new Google Drive client on top of an authorized HTTP
// client (see google.HTTPClientFromToken).
func NewClient(ctx context.Context, httpClient *http.Client) (*Client, error) {
	service, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}

	return &Client{service: service}, nil
}

// FindFolder looks up a non-trashed folder by exact name. It returns nil
// without error when no such folder exists.
//
// Drive does not enforce name uniqueness; when duplicates exist the first
// entry in API order wins. That tie-break is nondeterministic and accepted.
func (c *Client) FindFolder(ctx context.Context, name string) (*FolderInfo, error) {
	if name == "" {
		return nil, fmt.Errorf("folder name is required")
	}

	list, err := c.service.Files.List().
		Context(ctx).
		Q(buildFolderQuery(name)).
		PageSize(maxFolderResults).
		Fields("files(id, name)").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to find folder %q: %w", name, err)
	}

	if len(list.Files) == 0 {
		return nil, nil
	}

	f := list.Files[0]
	return &FolderInfo{ID: f.Id, Name: f.Name}, nil
}

// CreateFolder creates a new folder in the Drive root.
func (c *Client) CreateFolder(ctx context.Context, name string) (*FolderInfo, error) {
	if name == "" {
		return nil, fmt.Errorf("folder name is required")
	}

	file := &drive.File{
		Name:     name,
		MimeType: FolderMimeType,
	}

	created, err := c.service.Files.Create(file).
		Context(ctx).
		Fields("id, name").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create folder %q: %w", name, err)
	}

	return &FolderInfo{ID: created.Id, Name: created.Name}, nil
}

// ListDocumentsInFolder lists the non-trashed Google Docs documents whose
// parent set includes folderID. Result order is whatever the API returns.
func (c *Client) ListDocumentsInFolder(ctx context.Context, folderID string) ([]*FileInfo, error) {
	if folderID == "" {
		return nil, fmt.Errorf("folderID is required")
	}

	list, err := c.service.Files.List().
		Context(ctx).
		Q(buildDocumentsQuery(folderID)).
		Fields("files(id, name, webViewLink, createdTime)").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list documents in folder %s: %w", folderID, err)
	}

	files := make([]*FileInfo, len(list.Files))
	for i, f := range list.Files {
		files[i] = convertToFileInfo(f)
	}

	return files, nil
}

// AddParent adds folderID to the parent set of the file. Existing parents are
// never removed, so repeated calls with different folders accumulate parents.
func (c *Client) AddParent(ctx context.Context, fileID, folderID string) error {
	if fileID == "" {
		return fmt.Errorf("fileID is required")
	}
	if folderID == "" {
		return fmt.Errorf("folderID is required")
	}

	_, err := c.service.Files.Update(fileID, &drive.File{}).
		Context(ctx).
		AddParents(folderID).
		Fields("id, parents").
		Do()
	if err != nil {
		return fmt.Errorf("failed to add parent %s to file %s: %w", folderID, fileID, err)
	}

	return nil
}

// buildFolderQuery builds the Drive query for an exact-name folder lookup.
func buildFolderQuery(name string) string {
	return fmt.Sprintf("name='%s' and mimeType='%s' and trashed=false",
		escapeQueryTerm(name), FolderMimeType)
}

// buildDocumentsQuery builds the Drive query for documents inside a folder.
func buildDocumentsQuery(folderID string) string {
	return fmt.Sprintf("'%s' in parents and mimeType='%s' and trashed=false",
		escapeQueryTerm(folderID), DocumentMimeType)
}

// escapeQueryTerm escapes a value for inclusion in a single-quoted Drive
// query literal.
func escapeQueryTerm(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

// convertToFileInfo converts a Drive API File to our FileInfo type
func convertToFileInfo(f *drive.File) *FileInfo {
	info := &FileInfo{
		ID:          f.Id,
		Name:        f.Name,
		WebViewLink: f.WebViewLink,
	}

	if f.CreatedTime != "" {
		if t, err := time.Parse(time.RFC3339, f.CreatedTime); err == nil {
			info.CreatedTime = t
		}
	}

	return info
}
