package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/sections"
	"github.com/jonathan/resume-builder/internal/types"
)

// newTestServer runs without postgres or a draft store; the analysis
// endpoints are fully functional in that mode.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	srv := New(0, nil, nil)
	t.Cleanup(srv.rateLimiter.Stop)
	return srv
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv.Handler(), "GET", "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestAnalyze_InlineResume(t *testing.T) {
	srv := newTestServer(t)

	doc := types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{Name: "Ada Lovelace", Email: "ada@example.com"},
		Summary:      "Python and React developer",
	}
	rec := doJSON(t, srv.Handler(), "POST", "/analyze", map[string]any{
		"resume":         doc,
		"jobDescription": "We need Python, React and SQL experience.",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp analyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Contains(t, resp.Diff.Present, "python")
	assert.Contains(t, resp.Diff.Present, "react")
	assert.Contains(t, resp.Diff.Missing, "sql")
	assert.Greater(t, resp.Score.FinalScore, 0)
	assert.Empty(t, resp.Segments)
}

func TestAnalyze_ExplicitKeywordsWin(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), "POST", "/analyze", map[string]any{
		"resume":         types.ResumeDocument{Summary: "go developer"},
		"jobDescription": "python only",
		"jobKeywords":    []string{"go"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp analyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"go"}, resp.JobKeywords)
	assert.Contains(t, resp.Diff.Present, "go")
	assert.NotContains(t, resp.Diff.Missing, "python")
}

func TestAnalyze_Segments(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), "POST", "/analyze", map[string]any{
		"resume":          types.ResumeDocument{Summary: "Wrote Python services"},
		"jobKeywords":     []string{"python"},
		"includeSegments": true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp analyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Segments)

	var joined string
	matched := false
	for _, seg := range resp.Segments {
		joined += seg.Text
		matched = matched || seg.IsMatch
	}
	assert.True(t, matched, "at least one segment should be a match")
	assert.Contains(t, joined, "Python")
}

func TestAnalyze_MissingInputs(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), "POST", "/analyze", map[string]any{
		"jobDescription": "anything",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, srv.Handler(), "POST", "/analyze", map[string]any{
		"resume": types.ResumeDocument{},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyze_ResumeIDWithoutStorage(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), "POST", "/analyze", map[string]any{
		"resumeId":       "0b36cdd6-20b3-4f08-9b8f-a8e1a9a1f0a1",
		"jobDescription": "python",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "storage is not configured")
}

func TestExtractKeywords(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), "POST", "/keywords/extract", map[string]any{
		"text": "Looking for C++ and Node.js engineers with strong Python skills",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Keywords []string `json:"keywords"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Keywords, "c++")
	assert.Contains(t, resp.Keywords, "node.js")
	assert.Contains(t, resp.Keywords, "python")
	assert.NotContains(t, resp.Keywords, "strong")
}

func TestExtractKeywords_RequiresText(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv.Handler(), "POST", "/keywords/extract", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParseKeywords_MalformedJSON(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), "POST", "/keywords/parse", map[string]any{
		"raw": `["python", "sql"`,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Keywords []string `json:"keywords"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"python", "sql"}, resp.Keywords)
}

func TestStorageEndpointsWithoutDB(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), "GET", "/resumes", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = doJSON(t, srv.Handler(), "GET", "/resumes/0b36cdd6-20b3-4f08-9b8f-a8e1a9a1f0a1/draft", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = doJSON(t, srv.Handler(), "POST", "/job-descriptions", map[string]any{"content": "python"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRateLimitHeaders(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), "POST", "/keywords/extract", map[string]any{"text": "python"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Remaining"))
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestApplySectionPatch(t *testing.T) {
	doc := &types.ResumeDocument{}
	name := "Profile"
	hidden := false

	applySectionPatch(doc, sections.IDSummary, &patchSectionRequest{DisplayName: &name, IsVisible: &hidden})

	var found bool
	for _, meta := range doc.SectionMeta {
		if meta.ID == sections.IDSummary {
			found = true
			assert.Equal(t, "Profile", meta.DisplayName)
			assert.False(t, meta.IsVisible)
		}
	}
	require.True(t, found)
}

func TestApplySectionPatch_PersonalInfoStaysVisible(t *testing.T) {
	doc := &types.ResumeDocument{}
	hidden := false

	applySectionPatch(doc, sections.IDPersonalInfo, &patchSectionRequest{IsVisible: &hidden})

	for _, meta := range doc.SectionMeta {
		if meta.ID == sections.IDPersonalInfo {
			assert.True(t, meta.IsVisible, "personalInfo can never be hidden")
		}
	}
}

func TestApplySectionMove(t *testing.T) {
	doc := &types.ResumeDocument{}

	err := applySectionMove(doc, sections.IDEducation, &moveSectionRequest{Direction: "up"})
	require.NoError(t, err)

	orders := map[string]int{}
	for _, meta := range doc.SectionMeta {
		orders[meta.ID] = meta.Order
	}
	assert.Equal(t, 2, orders[sections.IDEducation])
	assert.Equal(t, 3, orders[sections.IDWorkExperience])
}

func TestApplySectionMove_RequiresInput(t *testing.T) {
	doc := &types.ResumeDocument{}
	err := applySectionMove(doc, sections.IDEducation, &moveSectionRequest{})
	assert.Error(t, err)
}
