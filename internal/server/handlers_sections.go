package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/sections"
	"github.com/jonathan/resume-builder/internal/types"
)

type createSectionRequest struct {
	DisplayName string `json:"displayName" validate:"required,max=100"`
	SectionType string `json:"sectionType" validate:"required,oneof=text itemList stringList"`
}

type patchSectionRequest struct {
	DisplayName *string `json:"displayName" validate:"omitempty,max=100"`
	IsVisible   *bool   `json:"isVisible"`
}

type moveSectionRequest struct {
	Direction string `json:"direction" validate:"omitempty,oneof=up down"`
	OverID    string `json:"overId"`
}

// applySectionPatch applies a rename and/or visibility change to a document.
// Unknown ids fall through unchanged, matching the editor's no-op semantics.
func applySectionPatch(doc *types.ResumeDocument, sectionID string, req *patchSectionRequest) {
	metas := sections.GetSectionMeta(doc)
	if req.DisplayName != nil {
		metas = sections.Rename(metas, sectionID, *req.DisplayName)
	}
	if req.IsVisible != nil {
		for i := range metas {
			if metas[i].ID == sectionID && metas[i].IsVisible != *req.IsVisible {
				metas = sections.ToggleVisibility(metas, sectionID)
				break
			}
		}
	}
	doc.SectionMeta = metas
}

// applySectionMove dispatches a move request to the step or drag operation.
func applySectionMove(doc *types.ResumeDocument, sectionID string, req *moveSectionRequest) error {
	metas := sections.GetSectionMeta(doc)
	switch {
	case req.Direction == "up":
		metas = sections.MoveUp(metas, sectionID)
	case req.Direction == "down":
		metas = sections.MoveDown(metas, sectionID)
	case req.OverID != "":
		metas = sections.Reorder(metas, sectionID, req.OverID)
	default:
		return &RequestError{Message: "either direction or overId is required"}
	}
	doc.SectionMeta = metas
	return nil
}

// loadResumeForEdit fetches a resume or writes the appropriate error.
func (s *Server) loadResumeForEdit(w http.ResponseWriter, r *http.Request) (uuid.UUID, *db.Resume, bool) {
	id, err := pathUUID(r)
	if err != nil {
		errorResponse(w, err)
		return uuid.Nil, nil, false
	}
	resume, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		errorResponse(w, &StorageError{Op: "get resume", Err: err})
		return uuid.Nil, nil, false
	}
	if resume == nil {
		errorResponse(w, &NotFoundError{Resource: "resume", ID: id.String()})
		return uuid.Nil, nil, false
	}
	return id, resume, true
}

// persistSections writes the edited document back and responds with the
// merged section list in render order.
func (s *Server) persistSections(w http.ResponseWriter, r *http.Request, id uuid.UUID, resume *db.Resume) {
	if _, err := s.db.UpdateResume(r.Context(), id, resume.Title, &resume.Document); err != nil {
		errorResponse(w, &StorageError{Op: "update resume", Err: err})
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{
		"sections": sections.GetAllSections(&resume.Document),
	})
}

func (s *Server) handleListSections(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	_, resume, ok := s.loadResumeForEdit(w, r)
	if !ok {
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{
		"sections": sections.GetAllSections(&resume.Document),
	})
}

func (s *Server) handleCreateSection(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	var req createSectionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		errorResponse(w, err)
		return
	}
	id, resume, ok := s.loadResumeForEdit(w, r)
	if !ok {
		return
	}

	meta := sections.AddCustomSection(&resume.Document, req.DisplayName, types.SectionType(req.SectionType))
	if _, err := s.db.UpdateResume(r.Context(), id, resume.Title, &resume.Document); err != nil {
		errorResponse(w, &StorageError{Op: "update resume", Err: err})
		return
	}
	jsonResponse(w, http.StatusCreated, meta)
}

func (s *Server) handlePatchSection(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	var req patchSectionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		errorResponse(w, err)
		return
	}
	id, resume, ok := s.loadResumeForEdit(w, r)
	if !ok {
		return
	}

	applySectionPatch(&resume.Document, r.PathValue("sectionID"), &req)
	s.persistSections(w, r, id, resume)
}

func (s *Server) handleDeleteSection(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	id, resume, ok := s.loadResumeForEdit(w, r)
	if !ok {
		return
	}

	sections.DeleteSection(&resume.Document, r.PathValue("sectionID"))
	s.persistSections(w, r, id, resume)
}

func (s *Server) handleMoveSection(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	var req moveSectionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		errorResponse(w, err)
		return
	}
	id, resume, ok := s.loadResumeForEdit(w, r)
	if !ok {
		return
	}

	if err := applySectionMove(&resume.Document, r.PathValue("sectionID"), &req); err != nil {
		errorResponse(w, err)
		return
	}
	s.persistSections(w, r, id, resume)
}

// decodeAndValidate decodes a JSON body into dst and runs struct validation.
func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(dst); err != nil {
		return &RequestError{Message: "invalid JSON: " + err.Error()}
	}
	if err := validate.Struct(dst); err != nil {
		return &RequestError{Message: validationMessage(err)}
	}
	return nil
}
