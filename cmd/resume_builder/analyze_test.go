package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validResumeJSON = `{
	"personalInfo": {"name": "Ada Lovelace", "email": "ada@example.com"},
	"summary": "Python and React developer",
	"workExperience": [],
	"education": [],
	"personalProjects": []
}`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadResumeDocument(t *testing.T) {
	path := writeTempFile(t, "resume.json", validResumeJSON)

	doc, err := loadResumeDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", doc.PersonalInfo.Name)
	assert.Equal(t, "Python and React developer", doc.Summary)
}

func TestLoadResumeDocument_MissingFile(t *testing.T) {
	_, err := loadResumeDocument("/nonexistent/resume.json")
	assert.Error(t, err)
}

func TestLoadResumeDocument_SchemaRejectsMissingName(t *testing.T) {
	path := writeTempFile(t, "resume.json", `{"personalInfo": {"email": "ada@example.com"}}`)

	_, err := loadResumeDocument(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid resume document")
}

func TestLoadResumeDocument_MalformedJSON(t *testing.T) {
	path := writeTempFile(t, "resume.json", `{"personalInfo": `)

	_, err := loadResumeDocument(path)
	assert.Error(t, err)
}
