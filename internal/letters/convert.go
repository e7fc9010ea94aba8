package letters

import (
	"time"

	"github.com/letterdrive/letterdrive/internal/drive"
)

// summaryFromFile maps a Drive file into the list representation. A zero
// created time is rendered as an empty string rather than the epoch.
func summaryFromFile(f *drive.FileInfo) *Summary {
	created := ""
	if !f.CreatedTime.IsZero() {
		created = f.CreatedTime.UTC().Format(time.RFC3339)
	}

	return &Summary{
		ID:          f.ID,
		Name:        f.Name,
		WebViewLink: f.WebViewLink,
		CreatedTime: created,
	}
}
