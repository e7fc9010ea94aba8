package letters

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/letterdrive/letterdrive/internal/drive"
	"github.com/letterdrive/letterdrive/internal/instrumentation"
)

// Google API operation names used as metric and span labels.
const (
	opFindFolder     = "find_folder"
	opCreateFolder   = "create_folder"
	opListDocuments  = "list_documents"
	opAddParent      = "add_parent"
	opCreateDocument = "create_document"
	opInsertText     = "insert_text"
	opReadDocument   = "read_document"
)

// instrumentedDrive decorates a DriveAPI so every call records a Google API
// operation metric and a client span.
type instrumentedDrive struct {
	api     DriveAPI
	metrics *instrumentation.Metrics
}

func (d *instrumentedDrive) FindFolder(ctx context.Context, name string) (*drive.FolderInfo, error) {
	ctx, span := instrumentation.StartGoogleAPISpan(ctx, instrumentation.ServiceDrive, opFindFolder)
	defer span.End()

	start := time.Now()
	folder, err := d.api.FindFolder(ctx, name)
	recordGoogleCall(ctx, d.metrics, instrumentation.ServiceDrive, opFindFolder, start, err)
	finishSpan(span, err)
	return folder, err
}

func (d *instrumentedDrive) CreateFolder(ctx context.Context, name string) (*drive.FolderInfo, error) {
	ctx, span := instrumentation.StartGoogleAPISpan(ctx, instrumentation.ServiceDrive, opCreateFolder)
	defer span.End()

	start := time.Now()
	folder, err := d.api.CreateFolder(ctx, name)
	recordGoogleCall(ctx, d.metrics, instrumentation.ServiceDrive, opCreateFolder, start, err)
	finishSpan(span, err)
	return folder, err
}

func (d *instrumentedDrive) ListDocumentsInFolder(ctx context.Context, folderID string) ([]*drive.FileInfo, error) {
	ctx, span := instrumentation.StartGoogleAPISpan(ctx, instrumentation.ServiceDrive, opListDocuments)
	defer span.End()

	start := time.Now()
	files, err := d.api.ListDocumentsInFolder(ctx, folderID)
	recordGoogleCall(ctx, d.metrics, instrumentation.ServiceDrive, opListDocuments, start, err)
	finishSpan(span, err)
	return files, err
}

func (d *instrumentedDrive) AddParent(ctx context.Context, fileID, folderID string) error {
	ctx, span := instrumentation.StartGoogleAPISpan(ctx, instrumentation.ServiceDrive, opAddParent)
	defer span.End()

	start := time.Now()
	err := d.api.AddParent(ctx, fileID, folderID)
	recordGoogleCall(ctx, d.metrics, instrumentation.ServiceDrive, opAddParent, start, err)
	finishSpan(span, err)
	return err
}

// instrumentedDocs decorates a DocsAPI the same way.
type instrumentedDocs struct {
	api     DocsAPI
	metrics *instrumentation.Metrics
}

func (d *instrumentedDocs) CreateDocument(ctx context.Context, title string) (string, error) {
	ctx, span := instrumentation.StartGoogleAPISpan(ctx, instrumentation.ServiceDocs, opCreateDocument)
	defer span.End()

	start := time.Now()
	id, err := d.api.CreateDocument(ctx, title)
	recordGoogleCall(ctx, d.metrics, instrumentation.ServiceDocs, opCreateDocument, start, err)
	finishSpan(span, err)
	return id, err
}

func (d *instrumentedDocs) InsertText(ctx context.Context, documentID, text string) error {
	ctx, span := instrumentation.StartGoogleAPISpan(ctx, instrumentation.ServiceDocs, opInsertText)
	defer span.End()

	start := time.Now()
	err := d.api.InsertText(ctx, documentID, text)
	recordGoogleCall(ctx, d.metrics, instrumentation.ServiceDocs, opInsertText, start, err)
	finishSpan(span, err)
	return err
}

func (d *instrumentedDocs) ReadDocument(ctx context.Context, documentID string) (string, string, error) {
	ctx, span := instrumentation.StartGoogleAPISpan(ctx, instrumentation.ServiceDocs, opReadDocument)
	defer span.End()

	start := time.Now()
	title, content, err := d.api.ReadDocument(ctx, documentID)
	recordGoogleCall(ctx, d.metrics, instrumentation.ServiceDocs, opReadDocument, start, err)
	finishSpan(span, err)
	return title, content, err
}

func recordGoogleCall(ctx context.Context, m *instrumentation.Metrics, service, operation string, start time.Time, err error) {
	if m == nil {
		return
	}

	status := instrumentation.StatusSuccess
	if err != nil {
		status = instrumentation.StatusError
	}
	m.RecordGoogleAPIOperation(ctx, service, operation, status, time.Since(start))
}

func finishSpan(span trace.Span, err error) {
	if err != nil {
		instrumentation.SetSpanError(span, err)
		return
	}
	instrumentation.SetSpanSuccess(span)
}
