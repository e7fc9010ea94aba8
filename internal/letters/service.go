package letters

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/letterdrive/letterdrive/internal/drive"
	"github.com/letterdrive/letterdrive/internal/instrumentation"
	"github.com/letterdrive/letterdrive/internal/logging"
)

// Pipeline step names used in logs and metrics.
const (
	stepEnsureFolder   = "ensure_folder"
	stepCreateDocument = "create_document"
	stepInsertText     = "insert_text"
	stepAddParent      = "add_parent"
)

// Service orchestrates letter operations over the Drive and Docs APIs.
//
// A Service is bound to a single caller's clients and is built per request
// via NewService; it holds no cross-request state. All persistent state
// lives in the caller's Drive.
type Service struct {
	drive      DriveAPI
	docs       DocsAPI
	folderName string
	logger     *slog.Logger
	metrics    *instrumentation.Metrics
}

// NewService creates a letter service on top of the given API clients.
// folderName is the Drive folder letters are filed under. metrics may be nil.
func NewService(driveAPI DriveAPI, docsAPI DocsAPI, folderName string, logger *slog.Logger, metrics *instrumentation.Metrics) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		drive:      &instrumentedDrive{api: driveAPI, metrics: metrics},
		docs:       &instrumentedDocs{api: docsAPI, metrics: metrics},
		folderName: folderName,
		logger:     logging.WithService(logger, "letters"),
		metrics:    metrics,
	}
}

// CreateLetter creates a Google Doc titled title, inserts content as its
// body, and files it into the letter folder.
//
// The pipeline is not atomic: a failure after document creation leaves the
// document behind, empty or outside the folder. The error is returned and
// no cleanup is attempted; the partial document stays visible in the
// caller's Drive.
func (s *Service) CreateLetter(ctx context.Context, title, content string) (*Letter, error) {
	start := time.Now()

	folder, err := s.ensureFolder(ctx)
	if err != nil {
		s.recordStep(ctx, stepEnsureFolder, err)
		return nil, fmt.Errorf("failed to ensure letter folder: %w", err)
	}
	s.recordStep(ctx, stepEnsureFolder, nil)

	documentID, err := s.docs.CreateDocument(ctx, title)
	s.recordStep(ctx, stepCreateDocument, err)
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	if err := s.docs.InsertText(ctx, documentID, content); err != nil {
		s.recordStep(ctx, stepInsertText, err)
		s.logger.WarnContext(ctx, "letter body insert failed, document left empty",
			logging.Document(documentID),
			logging.Err(err))
		return nil, fmt.Errorf("failed to insert letter content: %w", err)
	}
	s.recordStep(ctx, stepInsertText, nil)

	if err := s.drive.AddParent(ctx, documentID, folder.ID); err != nil {
		s.recordStep(ctx, stepAddParent, err)
		s.logger.WarnContext(ctx, "letter could not be filed, document left outside folder",
			logging.Document(documentID),
			logging.Folder(folder.ID),
			logging.Err(err))
		return nil, fmt.Errorf("failed to move document into letter folder: %w", err)
	}
	s.recordStep(ctx, stepAddParent, nil)

	s.logger.InfoContext(ctx, "letter created",
		logging.Operation("create_letter"),
		logging.Status(logging.StatusSuccess),
		logging.Document(documentID),
		logging.Folder(folder.ID),
		logging.Duration(time.Since(start)))

	return &Letter{
		ID:      documentID,
		Title:   title,
		Content: content,
		URL:     DocumentURL(documentID),
	}, nil
}

// ListLetters lists the documents in the letter folder, newest metadata as
// reported by Drive. When the folder does not exist yet the result is an
// empty list, not an error.
func (s *Service) ListLetters(ctx context.Context) ([]*Summary, error) {
	folder, err := s.drive.FindFolder(ctx, s.folderName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up letter folder: %w", err)
	}
	if folder == nil {
		return []*Summary{}, nil
	}

	files, err := s.drive.ListDocumentsInFolder(ctx, folder.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list letters: %w", err)
	}

	summaries := make([]*Summary, 0, len(files))
	for _, f := range files {
		summaries = append(summaries, summaryFromFile(f))
	}

	s.logger.DebugContext(ctx, "letters listed",
		logging.Operation("list_letters"),
		logging.Folder(folder.ID),
		slog.Int("count", len(summaries)))

	return summaries, nil
}

// ReadLetter fetches a single letter and flattens its body to plain text.
func (s *Service) ReadLetter(ctx context.Context, documentID string) (*Letter, error) {
	title, content, err := s.docs.ReadDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to read letter %s: %w", documentID, err)
	}

	return &Letter{
		ID:      documentID,
		Title:   title,
		Content: content,
	}, nil
}

// ensureFolder resolves the letter folder, creating it when absent. There is
// no cross-request locking, so two concurrent calls can both miss the lookup
// and create duplicate folders; later lookups settle on the first match.
func (s *Service) ensureFolder(ctx context.Context) (*drive.FolderInfo, error) {
	folder, err := s.drive.FindFolder(ctx, s.folderName)
	if err != nil {
		return nil, err
	}
	if folder != nil {
		return folder, nil
	}

	folder, err = s.drive.CreateFolder(ctx, s.folderName)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "letter folder created",
		logging.Folder(folder.ID),
		slog.String("name", s.folderName))

	return folder, nil
}

func (s *Service) recordStep(ctx context.Context, step string, err error) {
	if s.metrics == nil {
		return
	}

	status := logging.StatusSuccess
	if err != nil {
		status = logging.StatusError
	}
	s.metrics.RecordPipelineStep(ctx, step, status)
}
