package sections

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestGetSectionMeta_NoStoredMeta(t *testing.T) {
	doc := &types.ResumeDocument{}
	metas := GetSectionMeta(doc)

	if len(metas) != 6 {
		t.Fatalf("expected 6 default sections, got %d", len(metas))
	}
	if metas[0].ID != IDPersonalInfo || metas[0].Order != 0 {
		t.Errorf("personalInfo must come first with order 0, got %+v", metas[0])
	}
	for _, meta := range metas {
		if !meta.IsDefault {
			t.Errorf("section %s should be default", meta.ID)
		}
		if !meta.IsVisible {
			t.Errorf("section %s should start visible", meta.ID)
		}
	}
}

func TestGetSectionMeta_NilDocument(t *testing.T) {
	metas := GetSectionMeta(nil)
	if len(metas) != 6 {
		t.Fatalf("expected defaults for nil document, got %d sections", len(metas))
	}
}

func TestGetSectionMeta_StoredOverridesWin(t *testing.T) {
	doc := &types.ResumeDocument{
		SectionMeta: []types.SectionMeta{
			{ID: IDSummary, Key: IDSummary, DisplayName: "Profile", SectionType: types.SectionTypeText, IsDefault: true, IsVisible: false, Order: 4},
			{ID: "custom-abc", Key: "custom-abc", DisplayName: "Certifications", SectionType: types.SectionTypeStringList, IsVisible: true, Order: 6},
		},
	}

	metas := GetSectionMeta(doc)
	if len(metas) != 7 {
		t.Fatalf("expected 6 defaults + 1 custom, got %d", len(metas))
	}

	byID := make(map[string]types.SectionMeta)
	for _, meta := range metas {
		byID[meta.ID] = meta
	}

	summary := byID[IDSummary]
	if summary.DisplayName != "Profile" || summary.Order != 4 || summary.IsVisible {
		t.Errorf("stored overrides should win for summary, got %+v", summary)
	}
	if !summary.IsDefault {
		t.Error("summary must stay flagged as a default section")
	}

	custom := byID["custom-abc"]
	if custom.DisplayName != "Certifications" || custom.IsDefault {
		t.Errorf("custom section carried through wrong: %+v", custom)
	}
}

func TestGetAllSections_SortedAndUnfiltered(t *testing.T) {
	doc := &types.ResumeDocument{
		SectionMeta: []types.SectionMeta{
			{ID: IDEducation, Key: IDEducation, DisplayName: "Education", SectionType: types.SectionTypeItemList, IsDefault: true, IsVisible: false, Order: 1},
			{ID: IDSummary, Key: IDSummary, DisplayName: "Summary", SectionType: types.SectionTypeText, IsDefault: true, IsVisible: true, Order: 3},
		},
	}

	all := GetAllSections(doc)
	for i := 1; i < len(all); i++ {
		if all[i-1].Order >= all[i].Order {
			t.Fatalf("sections not in ascending order at %d: %d >= %d", i, all[i-1].Order, all[i].Order)
		}
	}

	// Hidden sections stay in the list; the edit form still needs them.
	found := false
	for _, meta := range all {
		if meta.ID == IDEducation {
			found = true
			if meta.IsVisible {
				t.Error("education should remain hidden")
			}
		}
	}
	if !found {
		t.Error("hidden section missing from GetAllSections")
	}
}

func TestVisibleSections_FiltersHidden(t *testing.T) {
	doc := &types.ResumeDocument{}
	doc.SectionMeta = ToggleVisibility(GetSectionMeta(doc), IDPersonalProjects)

	visible := VisibleSections(doc)
	for _, meta := range visible {
		if meta.ID == IDPersonalProjects {
			t.Error("hidden section leaked into visible list")
		}
	}
	if len(visible) != 5 {
		t.Errorf("expected 5 visible sections, got %d", len(visible))
	}
}

// assertOrdersDense verifies the core ordering invariant: order values form a
// dense permutation with personalInfo holding the minimum.
func assertOrdersDense(t *testing.T, metas []types.SectionMeta) {
	t.Helper()

	seen := make(map[int]string, len(metas))
	minOrder := metas[0].Order
	minID := metas[0].ID
	for _, meta := range metas {
		if prev, dup := seen[meta.Order]; dup {
			t.Fatalf("duplicate order %d shared by %s and %s", meta.Order, prev, meta.ID)
		}
		seen[meta.Order] = meta.ID
		if meta.Order < minOrder {
			minOrder = meta.Order
			minID = meta.ID
		}
	}
	if minID != IDPersonalInfo {
		t.Fatalf("personalInfo must hold the minimum order, got %s at %d", minID, minOrder)
	}
	for want := minOrder; want < minOrder+len(metas); want++ {
		if _, ok := seen[want]; !ok {
			t.Fatalf("order values not dense: missing %d", want)
		}
	}
}
