package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/keywords"
	"github.com/jonathan/resume-builder/internal/types"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validationMessage flattens validator errors into a single client-facing
// message.
func validationMessage(err error) string {
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(valErrs))
	for _, fe := range valErrs {
		parts = append(parts, fe.Field()+" failed "+fe.Tag()+" validation")
	}
	return strings.Join(parts, "; ")
}

type analyzeRequest struct {
	ResumeID         string                `json:"resumeId" validate:"omitempty,uuid"`
	Resume           *types.ResumeDocument `json:"resume"`
	JobDescription   string                `json:"jobDescription"`
	JobDescriptionID string                `json:"jobDescriptionId" validate:"omitempty,uuid"`
	JobKeywords      any                   `json:"jobKeywords"`
	IncludeSegments  bool                  `json:"includeSegments"`
}

type analyzeResponse struct {
	Score       types.MatchScore  `json:"score"`
	Diff        types.KeywordDiff `json:"diff"`
	Stats       types.MatchStats  `json:"stats"`
	JobKeywords []string          `json:"jobKeywords"`
	Segments    []types.Segment   `json:"segments,omitempty"`
}

// handleAnalyze scores a resume against a job description. The resume may be
// supplied inline or by id; job keywords may be given directly or extracted
// from the description text.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		errorResponse(w, err)
		return
	}

	doc, err := s.resolveResume(r, &req)
	if err != nil {
		errorResponse(w, err)
		return
	}

	jdKeywords, err := s.resolveJobKeywords(r, &req)
	if err != nil {
		errorResponse(w, err)
		return
	}

	resumeText := keywords.Flatten(doc)
	diff := keywords.Diff(keywords.Extract(resumeText), jdKeywords)
	stats := keywords.MatchStats(resumeText, jdKeywords)
	score := keywords.Score(diff, jdKeywords, keywords.SectionCompleteness(doc))

	resp := analyzeResponse{
		Score:       score,
		Diff:        diff,
		Stats:       stats,
		JobKeywords: jdKeywords,
	}
	if req.IncludeSegments {
		resp.Segments = keywords.Segment(resumeText, jdKeywords)
	}
	jsonResponse(w, http.StatusOK, resp)
}

// resolveJobKeywords picks the keyword source in priority order: explicit
// keywords, a stored job description, then extraction from the posted text.
func (s *Server) resolveJobKeywords(r *http.Request, req *analyzeRequest) ([]string, error) {
	if jdKeywords := keywords.Parse(req.JobKeywords); len(jdKeywords) > 0 {
		return jdKeywords, nil
	}

	if req.JobDescriptionID != "" {
		if s.db == nil {
			return nil, &RequestError{Field: "jobDescriptionId", Message: "storage is not configured; supply the description inline"}
		}
		id, err := uuid.Parse(req.JobDescriptionID)
		if err != nil {
			return nil, &RequestError{Field: "jobDescriptionId", Message: "must be a valid UUID"}
		}
		jd, err := s.db.GetJobDescription(r.Context(), id)
		if err != nil {
			return nil, &StorageError{Op: "get job description", Err: err}
		}
		if jd == nil {
			return nil, &NotFoundError{Resource: "job description", ID: req.JobDescriptionID}
		}
		if len(jd.Keywords) > 0 {
			return jd.Keywords, nil
		}
		return keywords.Extract(jd.Content), nil
	}

	if strings.TrimSpace(req.JobDescription) == "" {
		return nil, &RequestError{Message: "one of jobDescription, jobDescriptionId or jobKeywords is required"}
	}
	return keywords.Extract(req.JobDescription), nil
}

func (s *Server) resolveResume(r *http.Request, req *analyzeRequest) (*types.ResumeDocument, error) {
	if req.Resume != nil {
		return req.Resume, nil
	}
	if req.ResumeID == "" {
		return nil, &RequestError{Message: "either resume or resumeId is required"}
	}
	if s.db == nil {
		return nil, &RequestError{Field: "resumeId", Message: "storage is not configured; supply the resume inline"}
	}

	id, err := uuid.Parse(req.ResumeID)
	if err != nil {
		return nil, &RequestError{Field: "resumeId", Message: "must be a valid UUID"}
	}
	resume, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		return nil, &StorageError{Op: "get resume", Err: err}
	}
	if resume == nil {
		return nil, &NotFoundError{Resource: "resume", ID: req.ResumeID}
	}
	return &resume.Document, nil
}

type extractKeywordsRequest struct {
	Text string `json:"text" validate:"required"`
}

func (s *Server) handleExtractKeywords(w http.ResponseWriter, r *http.Request) {
	var req extractKeywordsRequest
	if err := decodeAndValidate(r, &req); err != nil {
		errorResponse(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{
		"keywords": keywords.Extract(req.Text),
	})
}

type parseKeywordsRequest struct {
	Raw any `json:"raw"`
}

func (s *Server) handleParseKeywords(w http.ResponseWriter, r *http.Request) {
	var req parseKeywordsRequest
	if err := decodeAndValidate(r, &req); err != nil {
		errorResponse(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{
		"keywords": keywords.Parse(req.Raw),
	})
}
