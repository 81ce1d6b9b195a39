package main

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/sections"
	"github.com/jonathan/resume-builder/internal/types"
)

func TestEditSections_RoundTrip(t *testing.T) {
	sectionsResumePath = writeTempFile(t, "resume.json", validResumeJSON)

	err := editSections(func(doc *types.ResumeDocument) error {
		sections.AddCustomSection(doc, "Certifications", types.SectionTypeStringList)
		return nil
	})
	require.NoError(t, err)

	data, err := os.ReadFile(sectionsResumePath)
	require.NoError(t, err)

	var doc types.ResumeDocument
	require.NoError(t, json.Unmarshal(data, &doc))

	all := sections.GetAllSections(&doc)
	var names []string
	for _, meta := range all {
		names = append(names, meta.DisplayName)
	}
	assert.Contains(t, names, "Certifications")
	require.Len(t, doc.CustomSections, 1)
}

func TestEditSections_EditErrorLeavesFileUntouched(t *testing.T) {
	sectionsResumePath = writeTempFile(t, "resume.json", validResumeJSON)

	err := editSections(func(doc *types.ResumeDocument) error {
		return assert.AnError
	})
	require.Error(t, err)

	data, err := os.ReadFile(sectionsResumePath)
	require.NoError(t, err)
	assert.JSONEq(t, validResumeJSON, string(data))
}

func TestEditSections_MoveUpPersistsOrder(t *testing.T) {
	sectionsResumePath = writeTempFile(t, "resume.json", validResumeJSON)

	err := editSections(func(doc *types.ResumeDocument) error {
		doc.SectionMeta = sections.MoveUp(sections.GetSectionMeta(doc), sections.IDEducation)
		return nil
	})
	require.NoError(t, err)

	data, err := os.ReadFile(sectionsResumePath)
	require.NoError(t, err)

	var doc types.ResumeDocument
	require.NoError(t, json.Unmarshal(data, &doc))

	orders := map[string]int{}
	for _, meta := range doc.SectionMeta {
		orders[meta.ID] = meta.Order
	}
	assert.Equal(t, 2, orders[sections.IDEducation])
	assert.Equal(t, 3, orders[sections.IDWorkExperience])
}
