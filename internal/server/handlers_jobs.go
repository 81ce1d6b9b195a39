package server

import (
	"net/http"

	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/keywords"
)

type saveJobDescriptionRequest struct {
	Title   string `json:"title" validate:"max=200"`
	Content string `json:"content" validate:"required"`
}

// handleSaveJobDescription stores a job posting with its extracted keywords
// so analyses can be re-run without pasting the description again.
func (s *Server) handleSaveJobDescription(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	var req saveJobDescriptionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		errorResponse(w, err)
		return
	}

	content := ingestion.CleanText(req.Content)
	id, err := s.db.SaveJobDescription(r.Context(), req.Title, content, keywords.Extract(content))
	if err != nil {
		errorResponse(w, &StorageError{Op: "save job description", Err: err})
		return
	}
	jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (s *Server) handleListJobDescriptions(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	jds, err := s.db.ListJobDescriptions(r.Context(), 0)
	if err != nil {
		errorResponse(w, &StorageError{Op: "list job descriptions", Err: err})
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{"jobDescriptions": jds})
}

func (s *Server) handleGetJobDescription(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	id, err := pathUUID(r)
	if err != nil {
		errorResponse(w, err)
		return
	}

	jd, err := s.db.GetJobDescription(r.Context(), id)
	if err != nil {
		errorResponse(w, &StorageError{Op: "get job description", Err: err})
		return
	}
	if jd == nil {
		errorResponse(w, &NotFoundError{Resource: "job description", ID: id.String()})
		return
	}
	jsonResponse(w, http.StatusOK, jd)
}
