package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/letterdrive/letterdrive/internal/instrumentation"
	"github.com/letterdrive/letterdrive/internal/logging"
)

// Generic client-facing error messages. Downstream error detail is logged
// only and never returned to the caller.
const (
	msgAuthFailed   = "authentication failed"
	msgCreateFailed = "failed to create letter"
	msgListFailed   = "failed to list letters"
	msgReadFailed   = "failed to read letter"
)

type createLetterRequest struct {
	Content     string `json:"content"`
	Title       string `json:"title"`
	AccessToken string `json:"accessToken"`
}

type createLetterResponse struct {
	Message     string `json:"message"`
	DocumentID  string `json:"documentId"`
	DocumentURL string `json:"documentUrl"`
}

// handleAuthURL returns the Google authorization URL the client should send
// the user to.
func (s *APIServer) handleAuthURL(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"url": s.oauth.AuthURL(),
	})
}

// handleAuthCallback exchanges the authorization code and hands the tokens
// back to the client application via redirect.
func (s *APIServer) handleAuthCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "code is required")
		return
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		s.recordAuth(r, instrumentation.OAuthResultFailure)
		s.logger.ErrorContext(ctx, "oauth code exchange failed",
			logging.Operation("auth_callback"),
			logging.Err(err))
		writeError(w, http.StatusInternalServerError, msgAuthFailed)
		return
	}
	s.recordAuth(r, instrumentation.OAuthResultSuccess)

	params := url.Values{}
	params.Set("access_token", token.AccessToken)
	if token.RefreshToken != "" {
		params.Set("refresh_token", token.RefreshToken)
	}

	http.Redirect(w, r, s.clientURL+"/auth/callback?"+params.Encode(), http.StatusFound)
}

// handleCreateLetter runs the create pipeline: ensure folder, create the
// document, insert the content, file it into the folder.
func (s *APIServer) handleCreateLetter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req createLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Validated before any downstream call is made.
	if req.Content == "" || req.Title == "" || req.AccessToken == "" {
		writeError(w, http.StatusBadRequest, "content, title and accessToken are required")
		return
	}

	svc, err := s.letterService(ctx, req.AccessToken)
	if err != nil {
		s.serverError(w, r, "create_letter", msgCreateFailed, err)
		return
	}

	letter, err := svc.CreateLetter(ctx, req.Title, req.Content)
	s.recordOperation(ctx, "create", start, err)
	if err != nil {
		s.serverError(w, r, "create_letter", msgCreateFailed, err)
		return
	}

	writeJSON(w, http.StatusCreated, createLetterResponse{
		Message:     "Letter created successfully",
		DocumentID:  letter.ID,
		DocumentURL: letter.URL,
	})
}

// handleListLetters lists the documents in the letter folder. An account
// without the folder yet gets an empty list.
func (s *APIServer) handleListLetters(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	accessToken := r.URL.Query().Get("accessToken")
	if accessToken == "" {
		writeError(w, http.StatusBadRequest, "accessToken is required")
		return
	}

	svc, err := s.letterService(ctx, accessToken)
	if err != nil {
		s.serverError(w, r, "list_letters", msgListFailed, err)
		return
	}

	summaries, err := svc.ListLetters(ctx)
	s.recordOperation(ctx, "list", start, err)
	if err != nil {
		s.serverError(w, r, "list_letters", msgListFailed, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"letters": summaries,
	})
}

// handleReadLetter fetches a single letter as plain text.
func (s *APIServer) handleReadLetter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	accessToken := r.URL.Query().Get("accessToken")
	if accessToken == "" {
		writeError(w, http.StatusBadRequest, "accessToken is required")
		return
	}

	documentID := r.PathValue("id")

	svc, err := s.letterService(ctx, accessToken)
	if err != nil {
		s.serverError(w, r, "read_letter", msgReadFailed, err)
		return
	}

	letter, err := svc.ReadLetter(ctx, documentID)
	s.recordOperation(ctx, "read", start, err)
	if err != nil {
		s.serverError(w, r, "read_letter", msgReadFailed, err)
		return
	}

	writeJSON(w, http.StatusOK, letter)
}

// serverError logs the underlying error and returns a generic 500 message.
func (s *APIServer) serverError(w http.ResponseWriter, r *http.Request, operation, message string, err error) {
	logging.WithOperation(s.logger, operation).ErrorContext(r.Context(), message,
		logging.Err(err))
	writeError(w, http.StatusInternalServerError, message)
}

func (s *APIServer) recordAuth(r *http.Request, result string) {
	if s.metrics != nil {
		s.metrics.RecordOAuthAuth(r.Context(), result)
	}
}
