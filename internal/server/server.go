// Package server exposes the claims pipeline over a small HTTP JSON API.
// Uploads are written to a temp file for the pipeline and removed after
// processing; only the resulting claim record persists.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/claimpilot/fnolagent/internal/logging"
	"github.com/claimpilot/fnolagent/internal/model"
	"github.com/claimpilot/fnolagent/internal/pipeline"
	"github.com/claimpilot/fnolagent/internal/samples"
	"github.com/claimpilot/fnolagent/internal/store"
)

// Server handles the FNOL intake API
type Server struct {
	config   *model.Config
	pipeline *pipeline.Pipeline
	store    *store.Store
	logger   *slog.Logger
}

// New creates an API server around an existing pipeline and store
func New(cfg *model.Config, p *pipeline.Pipeline, st *store.Store) *Server {
	return &Server{
		config:   cfg,
		pipeline: p,
		store:    st,
		logger:   logging.New("server"),
	}
}

// Handler returns the API route table
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/process-claim", s.handleProcessClaim)
	mux.HandleFunc("POST /api/process-sample/{name}", s.handleProcessSample)
	mux.HandleFunc("GET /api/claims", s.handleListClaims)
	mux.HandleFunc("GET /api/sample-claims", s.handleListSamples)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	return mux
}

// ListenAndServe runs the API server until the listener fails
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:         s.config.Server.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.config.Server.Timeout,
		WriteTimeout: s.config.Server.Timeout,
	}
	s.logger.Info("API server listening", "addr", s.config.Server.Addr)
	return srv.ListenAndServe()
}

// handleProcessClaim accepts a multipart document upload and runs it
// through the pipeline
func (s *Server) handleProcessClaim(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.Upload.MaxBytes)
	if err := r.ParseMultipartForm(s.config.Upload.MaxBytes); err != nil {
		s.writeError(w, http.StatusRequestEntityTooLarge, "upload too large or malformed")
		return
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "no document provided (use multipart field 'document')")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !s.allowedExt(ext) {
		s.writeError(w, http.StatusBadRequest,
			fmt.Sprintf("unsupported file type %q (allowed: %s)", ext, strings.Join(s.config.Upload.AllowedExts, ", ")))
		return
	}

	tempPath, err := s.saveUpload(file, ext)
	if err != nil {
		s.logger.Error("save upload failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "could not store upload")
		return
	}
	defer os.Remove(tempPath)

	record, err := s.pipeline.Process(r.Context(), tempPath, header.Filename)
	if err != nil {
		s.writePipelineError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, record)
}

// handleProcessSample runs one of the bundled sample documents
func (s *Server) handleProcessSample(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name != filepath.Base(name) || name == "." {
		s.writeError(w, http.StatusBadRequest, "invalid sample name")
		return
	}

	path := filepath.Join(s.config.Server.SampleDir, name)
	record, err := s.pipeline.Process(r.Context(), path, name)
	if err != nil {
		s.writePipelineError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, record)
}

// handleListClaims returns every processed claim, most recent first
func (s *Server) handleListClaims(w http.ResponseWriter, r *http.Request) {
	records := s.store.List()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"count":  len(records),
		"claims": records,
	})
}

// handleListSamples returns the available sample document names
func (s *Server) handleListSamples(w http.ResponseWriter, r *http.Request) {
	names, err := samples.List(s.config.Server.SampleDir)
	if err != nil {
		s.logger.Error("list samples failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "could not list samples")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"samples": names})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":           "ok",
		"claims_processed": s.store.Len(),
		"llm_enabled":      s.config.LLM.Provider != "",
		"time":             time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) allowedExt(ext string) bool {
	for _, allowed := range s.config.Upload.AllowedExts {
		if ext == allowed {
			return true
		}
	}
	return false
}

// saveUpload writes the upload under a random name so concurrent uploads
// of the same filename never collide
func (s *Server) saveUpload(file io.Reader, ext string) (string, error) {
	dir := s.config.Upload.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	path := filepath.Join(dir, uuid.NewString()+ext)
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write upload: %w", err)
	}
	return path, nil
}

// writePipelineError maps pipeline failures to HTTP statuses
func (s *Server) writePipelineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pipeline.ErrNotFound):
		s.writeError(w, http.StatusNotFound, "document not found")
	case errors.Is(err, pipeline.ErrUnsupportedFormat):
		s.writeError(w, http.StatusBadRequest, "unsupported document format")
	case errors.Is(err, pipeline.ErrEmptyDocument), errors.Is(err, pipeline.ErrExtractionFailed):
		s.writeError(w, http.StatusUnprocessableEntity, "no text could be extracted from document")
	default:
		s.logger.Error("pipeline failure", "error", err)
		s.writeError(w, http.StatusInternalServerError, "claim processing failed")
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
