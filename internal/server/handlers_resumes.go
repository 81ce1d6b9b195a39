package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

const maxRequestBody = 2 << 20 // 2 MB

type resumeRequest struct {
	Title    string               `json:"title" validate:"required,max=200"`
	Document types.ResumeDocument `json:"document"`
}

type resumeResponse struct {
	ID        string                `json:"id"`
	Title     string                `json:"title"`
	Document  *types.ResumeDocument `json:"document,omitempty"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

// decodeResumeRequest reads and validates a create/update body. The document
// is validated against the JSON schema before it is decoded into the typed
// struct, so malformed sectionMeta or payloads are rejected with field paths.
func decodeResumeRequest(r *http.Request) (*resumeRequest, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		return nil, &RequestError{Message: "failed to read request body"}
	}

	var raw struct {
		Title    string          `json:"title"`
		Document json.RawMessage `json:"document"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &RequestError{Message: "invalid JSON: " + err.Error()}
	}
	if len(raw.Document) == 0 {
		return nil, &RequestError{Field: "document", Message: "is required"}
	}

	if err := schemas.ValidateResumeDocument(raw.Document); err != nil {
		var valErr *schemas.ValidationError
		if errors.As(err, &valErr) {
			return nil, &RequestError{Field: "document", Message: valErr.Error()}
		}
		return nil, err
	}

	req := &resumeRequest{Title: raw.Title}
	if err := json.Unmarshal(raw.Document, &req.Document); err != nil {
		return nil, &RequestError{Field: "document", Message: err.Error()}
	}
	if err := validate.Struct(req); err != nil {
		return nil, &RequestError{Message: validationMessage(err)}
	}
	return req, nil
}

func pathUUID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, &RequestError{Field: "id", Message: "must be a valid UUID"}
	}
	return id, nil
}

func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	req, err := decodeResumeRequest(r)
	if err != nil {
		errorResponse(w, err)
		return
	}

	id, err := s.db.CreateResume(r.Context(), req.Title, &req.Document)
	if err != nil {
		errorResponse(w, &StorageError{Op: "create resume", Err: err})
		return
	}
	jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	resumes, err := s.db.ListResumes(r.Context(), 0)
	if err != nil {
		errorResponse(w, &StorageError{Op: "list resumes", Err: err})
		return
	}

	out := make([]resumeResponse, 0, len(resumes))
	for _, resume := range resumes {
		out = append(out, resumeResponse{
			ID:        resume.ID.String(),
			Title:     resume.Title,
			CreatedAt: resume.CreatedAt,
			UpdatedAt: resume.UpdatedAt,
		})
	}
	jsonResponse(w, http.StatusOK, map[string]any{"resumes": out})
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	id, err := pathUUID(r)
	if err != nil {
		errorResponse(w, err)
		return
	}

	resume, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		errorResponse(w, &StorageError{Op: "get resume", Err: err})
		return
	}
	if resume == nil {
		errorResponse(w, &NotFoundError{Resource: "resume", ID: id.String()})
		return
	}

	jsonResponse(w, http.StatusOK, resumeResponse{
		ID:        resume.ID.String(),
		Title:     resume.Title,
		Document:  &resume.Document,
		CreatedAt: resume.CreatedAt,
		UpdatedAt: resume.UpdatedAt,
	})
}

func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	id, err := pathUUID(r)
	if err != nil {
		errorResponse(w, err)
		return
	}
	req, err := decodeResumeRequest(r)
	if err != nil {
		errorResponse(w, err)
		return
	}

	found, err := s.db.UpdateResume(r.Context(), id, req.Title, &req.Document)
	if err != nil {
		errorResponse(w, &StorageError{Op: "update resume", Err: err})
		return
	}
	if !found {
		errorResponse(w, &NotFoundError{Resource: "resume", ID: id.String()})
		return
	}

	// A committed save supersedes any autosaved draft.
	if s.drafts != nil {
		if err := s.drafts.Delete(id.String()); err != nil {
			errorResponse(w, &StorageError{Op: "clear draft", Err: err})
			return
		}
	}
	jsonResponse(w, http.StatusOK, map[string]string{"id": id.String()})
}

func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	id, err := pathUUID(r)
	if err != nil {
		errorResponse(w, err)
		return
	}

	found, err := s.db.DeleteResume(r.Context(), id)
	if err != nil {
		errorResponse(w, &StorageError{Op: "delete resume", Err: err})
		return
	}
	if !found {
		errorResponse(w, &NotFoundError{Resource: "resume", ID: id.String()})
		return
	}
	if s.drafts != nil {
		_ = s.drafts.Delete(id.String())
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	if !s.requireDrafts(w) {
		return
	}
	id, err := pathUUID(r)
	if err != nil {
		errorResponse(w, err)
		return
	}

	doc, savedAt, err := s.drafts.Load(id.String())
	if err != nil {
		errorResponse(w, &StorageError{Op: "load draft", Err: err})
		return
	}
	if doc == nil {
		errorResponse(w, &NotFoundError{Resource: "draft", ID: id.String()})
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{
		"document": doc,
		"savedAt":  savedAt,
	})
}

func (s *Server) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	if !s.requireDrafts(w) {
		return
	}
	id, err := pathUUID(r)
	if err != nil {
		errorResponse(w, err)
		return
	}

	var doc types.ResumeDocument
	if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(&doc); err != nil {
		errorResponse(w, &RequestError{Message: "invalid JSON: " + err.Error()})
		return
	}
	if err := s.drafts.Save(id.String(), &doc); err != nil {
		errorResponse(w, &StorageError{Op: "save draft", Err: err})
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"id": id.String()})
}

func (s *Server) handleDeleteDraft(w http.ResponseWriter, r *http.Request) {
	if !s.requireDrafts(w) {
		return
	}
	id, err := pathUUID(r)
	if err != nil {
		errorResponse(w, err)
		return
	}
	if err := s.drafts.Delete(id.String()); err != nil {
		errorResponse(w, &StorageError{Op: "delete draft", Err: err})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
