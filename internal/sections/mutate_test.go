package sections

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestCreateCustomSection(t *testing.T) {
	existing := defaultSections()

	meta := CreateCustomSection(existing, "Certifications", types.SectionTypeStringList)

	if !strings.HasPrefix(meta.ID, customIDPrefix) {
		t.Errorf("custom id should carry the %q prefix, got %s", customIDPrefix, meta.ID)
	}
	if meta.ID != meta.Key {
		t.Errorf("custom sections key off their id, got id=%s key=%s", meta.ID, meta.Key)
	}
	if meta.Order != 6 {
		t.Errorf("new section should slot after every existing one, want order 6 got %d", meta.Order)
	}
	if meta.IsDefault || !meta.IsVisible {
		t.Errorf("new custom section must be non-default and visible, got %+v", meta)
	}

	for _, m := range existing {
		if m.ID == meta.ID {
			t.Fatal("generated id collides with an existing section")
		}
	}
}

func TestAddCustomSection_CreatesMetaAndPayloadTogether(t *testing.T) {
	doc := &types.ResumeDocument{}

	meta := AddCustomSection(doc, "Publications", types.SectionTypeItemList)

	if _, ok := doc.CustomSections[meta.Key]; !ok {
		t.Fatal("payload missing after AddCustomSection")
	}
	if idx, ok := findByID(doc.SectionMeta, meta.ID); !ok {
		t.Fatal("metadata missing after AddCustomSection")
	} else if doc.SectionMeta[idx].SectionType != types.SectionTypeItemList {
		t.Errorf("wrong section type stored: %s", doc.SectionMeta[idx].SectionType)
	}
	if doc.CustomSections[meta.Key].Type != types.SectionTypeItemList {
		t.Errorf("payload variant mismatch: %s", doc.CustomSections[meta.Key].Type)
	}
}

func TestRename(t *testing.T) {
	metas := defaultSections()

	renamed := Rename(metas, IDSummary, "About Me")
	if idx, _ := findByID(renamed, IDSummary); renamed[idx].DisplayName != "About Me" {
		t.Errorf("rename did not apply: %+v", renamed[idx])
	}

	// Input list must be untouched.
	if idx, _ := findByID(metas, IDSummary); metas[idx].DisplayName != "Summary" {
		t.Error("Rename mutated its input")
	}

	// Unknown id is a no-op, not an error.
	same := Rename(metas, "custom-gone", "X")
	if len(same) != len(metas) {
		t.Error("unknown id changed the list length")
	}
	for i := range same {
		if same[i] != metas[i] {
			t.Errorf("unknown id altered entry %d", i)
		}
	}
}

func TestToggleVisibility(t *testing.T) {
	metas := defaultSections()

	toggled := ToggleVisibility(metas, IDEducation)
	if idx, _ := findByID(toggled, IDEducation); toggled[idx].IsVisible {
		t.Error("toggle should hide a visible section")
	}

	back := ToggleVisibility(toggled, IDEducation)
	if idx, _ := findByID(back, IDEducation); !back[idx].IsVisible {
		t.Error("second toggle should restore visibility")
	}
}

func TestToggleVisibility_PersonalInfoRefused(t *testing.T) {
	metas := defaultSections()
	toggled := ToggleVisibility(metas, IDPersonalInfo)
	if idx, _ := findByID(toggled, IDPersonalInfo); !toggled[idx].IsVisible {
		t.Error("personalInfo must never be hidden")
	}
}

func TestDeleteSection_CustomRemovesMetaAndPayload(t *testing.T) {
	doc := &types.ResumeDocument{}
	meta := AddCustomSection(doc, "Awards", types.SectionTypeStringList)

	remaining := DeleteSection(doc, meta.ID)

	if _, ok := findByID(remaining, meta.ID); ok {
		t.Error("metadata survived deletion")
	}
	if _, ok := doc.CustomSections[meta.Key]; ok {
		t.Error("orphaned payload survived deletion")
	}
	assertOrdersDense(t, SortByOrder(remaining))
}

func TestDeleteSection_DefaultDegradesToHide(t *testing.T) {
	doc := &types.ResumeDocument{}

	remaining := DeleteSection(doc, IDPersonalProjects)

	idx, ok := findByID(remaining, IDPersonalProjects)
	if !ok {
		t.Fatal("default section must not be structurally removed")
	}
	if remaining[idx].IsVisible {
		t.Error("deleting a default section should hide it")
	}
}

func TestDeleteSection_UnknownIDIsNoOp(t *testing.T) {
	doc := &types.ResumeDocument{}
	before := GetSectionMeta(doc)

	after := DeleteSection(doc, "custom-never-existed")
	if len(after) != len(before) {
		t.Errorf("unknown id changed the section count: %d -> %d", len(before), len(after))
	}
}

// Rapid double-delete of the same custom section: the second call sees the
// section already gone and must stay silent.
func TestDeleteSection_DoubleDelete(t *testing.T) {
	doc := &types.ResumeDocument{}
	meta := AddCustomSection(doc, "Volunteering", types.SectionTypeText)

	DeleteSection(doc, meta.ID)
	after := DeleteSection(doc, meta.ID)

	if _, ok := findByID(after, meta.ID); ok {
		t.Error("deleted section reappeared")
	}
}
