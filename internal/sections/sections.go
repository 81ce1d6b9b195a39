// Package sections maintains the ordered, mixed list of default and custom
// resume sections and the mutation operators over it. All operators are pure:
// they take the current section list, return a new one, and treat unknown
// section ids as no-ops (UI races like a double-click delete are normal here,
// not errors).
package sections

import (
	"sort"

	"github.com/jonathan/resume-builder/internal/types"
)

// Canonical ids of the built-in sections. For default sections the id doubles
// as the key into the ResumeDocument field holding the data.
const (
	IDPersonalInfo     = "personalInfo"
	IDSummary          = "summary"
	IDWorkExperience   = "workExperience"
	IDEducation        = "education"
	IDPersonalProjects = "personalProjects"
	IDAdditional       = "additionalInfo"
)

// defaultSections returns the built-in sections in canonical order.
// personalInfo holds order 0 and must keep the minimum order forever.
func defaultSections() []types.SectionMeta {
	return []types.SectionMeta{
		{ID: IDPersonalInfo, Key: IDPersonalInfo, DisplayName: "Personal Info", SectionType: types.SectionTypePersonalInfo, IsDefault: true, IsVisible: true, Order: 0},
		{ID: IDSummary, Key: IDSummary, DisplayName: "Summary", SectionType: types.SectionTypeText, IsDefault: true, IsVisible: true, Order: 1},
		{ID: IDWorkExperience, Key: IDWorkExperience, DisplayName: "Work Experience", SectionType: types.SectionTypeItemList, IsDefault: true, IsVisible: true, Order: 2},
		{ID: IDEducation, Key: IDEducation, DisplayName: "Education", SectionType: types.SectionTypeItemList, IsDefault: true, IsVisible: true, Order: 3},
		{ID: IDPersonalProjects, Key: IDPersonalProjects, DisplayName: "Personal Projects", SectionType: types.SectionTypeItemList, IsDefault: true, IsVisible: true, Order: 4},
		{ID: IDAdditional, Key: IDAdditional, DisplayName: "Additional Information", SectionType: types.SectionTypeText, IsDefault: true, IsVisible: true, Order: 5},
	}
}

// GetSectionMeta merges the built-in defaults with the metadata stored on the
// document and returns one SectionMeta per live section. Stored overrides win
// for DisplayName, Order and IsVisible; identity fields (id, key, type,
// isDefault) always come from the defaults for built-in sections. Custom
// entries are carried through as stored. This is the canonical list every
// other operator reads from.
func GetSectionMeta(doc *types.ResumeDocument) []types.SectionMeta {
	defaults := defaultSections()
	if doc == nil || len(doc.SectionMeta) == 0 {
		return defaults
	}

	stored := make(map[string]types.SectionMeta, len(doc.SectionMeta))
	for _, meta := range doc.SectionMeta {
		stored[meta.ID] = meta
	}

	merged := make([]types.SectionMeta, 0, len(defaults)+len(doc.SectionMeta))
	for _, def := range defaults {
		if ov, ok := stored[def.ID]; ok {
			def.DisplayName = ov.DisplayName
			def.Order = ov.Order
			def.IsVisible = ov.IsVisible
		}
		merged = append(merged, def)
	}

	// Custom sections keep their stored metadata untouched, in stored order.
	for _, meta := range doc.SectionMeta {
		if !isDefaultID(meta.ID) {
			meta.IsDefault = false
			merged = append(merged, meta)
		}
	}

	return merged
}

// GetAllSections returns the merged section list sorted by ascending order.
// The result is not filtered by visibility: the edit form still shows hidden
// sections. The preview filters on IsVisible itself.
func GetAllSections(doc *types.ResumeDocument) []types.SectionMeta {
	return SortByOrder(GetSectionMeta(doc))
}

// SortByOrder returns a copy of the list sorted by ascending order value.
// Order values are unique among live sections, so the sort is total.
func SortByOrder(metas []types.SectionMeta) []types.SectionMeta {
	sorted := make([]types.SectionMeta, len(metas))
	copy(sorted, metas)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}

// VisibleSections returns the order-sorted sections with IsVisible set,
// which is exactly what the preview and export render.
func VisibleSections(doc *types.ResumeDocument) []types.SectionMeta {
	all := GetAllSections(doc)
	visible := make([]types.SectionMeta, 0, len(all))
	for _, meta := range all {
		if meta.IsVisible {
			visible = append(visible, meta)
		}
	}
	return visible
}

func isDefaultID(id string) bool {
	switch id {
	case IDPersonalInfo, IDSummary, IDWorkExperience, IDEducation, IDPersonalProjects, IDAdditional:
		return true
	}
	return false
}

func findByID(metas []types.SectionMeta, id string) (int, bool) {
	for i, meta := range metas {
		if meta.ID == id {
			return i, true
		}
	}
	return -1, false
}
