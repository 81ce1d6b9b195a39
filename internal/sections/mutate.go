package sections

import (
	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/types"
)

// customIDPrefix marks generated ids for user-created sections.
const customIDPrefix = "custom-"

// CreateCustomSection allocates metadata for a new user-created section.
// The id is a fresh UUID-backed key that cannot collide with any existing
// section, the order slots in after every current section, and the section
// starts visible. Callers are responsible for supplying a non-empty
// displayName and for attaching the payload (see AddCustomSection).
func CreateCustomSection(existing []types.SectionMeta, displayName string, sectionType types.SectionType) types.SectionMeta {
	id := customIDPrefix + uuid.NewString()

	maxOrder := 0
	for _, meta := range existing {
		if meta.Order > maxOrder {
			maxOrder = meta.Order
		}
	}

	return types.SectionMeta{
		ID:          id,
		Key:         id,
		DisplayName: displayName,
		SectionType: sectionType,
		IsDefault:   false,
		IsVisible:   true,
		Order:       maxOrder + 1,
	}
}

// AddCustomSection creates a custom section on the document: its metadata and
// its empty payload are attached in the same operation, so the two can never
// exist without each other. Returns the new section's metadata.
func AddCustomSection(doc *types.ResumeDocument, displayName string, sectionType types.SectionType) types.SectionMeta {
	metas := GetSectionMeta(doc)
	meta := CreateCustomSection(metas, displayName, sectionType)

	doc.SectionMeta = append(metas, meta)
	if doc.CustomSections == nil {
		doc.CustomSections = make(map[string]types.CustomSectionPayload)
	}
	doc.CustomSections[meta.Key] = EmptyPayload(sectionType)

	return meta
}

// Rename replaces the display name of the matching section. Unknown ids
// return the list unchanged.
func Rename(metas []types.SectionMeta, sectionID, newName string) []types.SectionMeta {
	renamed := make([]types.SectionMeta, len(metas))
	copy(renamed, metas)
	for i := range renamed {
		if renamed[i].ID == sectionID {
			renamed[i].DisplayName = newName
		}
	}
	return renamed
}

// ToggleVisibility flips a section's visibility. personalInfo can never be
// hidden, and unknown ids are no-ops.
func ToggleVisibility(metas []types.SectionMeta, sectionID string) []types.SectionMeta {
	if sectionID == IDPersonalInfo {
		return metas
	}
	toggled := make([]types.SectionMeta, len(metas))
	copy(toggled, metas)
	for i := range toggled {
		if toggled[i].ID == sectionID {
			toggled[i].IsVisible = !toggled[i].IsVisible
		}
	}
	return toggled
}

// DeleteSection removes a section from the document. Default sections cannot
// be structurally removed, so deleting one degrades to hiding it. Deleting a
// custom section removes its metadata and its payload together; an orphaned
// payload must never survive. Unknown ids return the list unchanged.
func DeleteSection(doc *types.ResumeDocument, sectionID string) []types.SectionMeta {
	metas := GetSectionMeta(doc)
	idx, ok := findByID(metas, sectionID)
	if !ok {
		return metas
	}

	if metas[idx].IsDefault {
		hidden := ToggleVisibility(metas, sectionID)
		doc.SectionMeta = hidden
		return hidden
	}

	key := metas[idx].Key
	remaining := make([]types.SectionMeta, 0, len(metas)-1)
	remaining = append(remaining, metas[:idx]...)
	remaining = append(remaining, metas[idx+1:]...)

	delete(doc.CustomSections, key)
	doc.SectionMeta = remaining
	return remaining
}
