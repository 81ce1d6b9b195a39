package keywords

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/sections"
	"github.com/jonathan/resume-builder/internal/types"
)

// SectionCompleteness reports the percentage of visible sections that hold
// any content. This feeds the 30% structural component of the match score:
// a resume with empty visible sections scores lower than one that fills
// everything it shows.
func SectionCompleteness(doc *types.ResumeDocument) float64 {
	if doc == nil {
		return 0
	}
	visible := sections.VisibleSections(doc)
	if len(visible) == 0 {
		return 0
	}

	filled := 0
	for _, meta := range visible {
		if sectionHasContent(doc, meta) {
			filled++
		}
	}
	return 100 * float64(filled) / float64(len(visible))
}

func sectionHasContent(doc *types.ResumeDocument, meta types.SectionMeta) bool {
	switch meta.ID {
	case sections.IDPersonalInfo:
		return strings.TrimSpace(doc.PersonalInfo.Name) != ""
	case sections.IDSummary:
		return strings.TrimSpace(doc.Summary) != ""
	case sections.IDWorkExperience:
		return len(doc.WorkExperience) > 0
	case sections.IDEducation:
		return len(doc.Education) > 0
	case sections.IDPersonalProjects:
		return len(doc.PersonalProjects) > 0
	case sections.IDAdditional:
		return strings.TrimSpace(doc.AdditionalInfo) != ""
	}

	payload, ok := doc.CustomSections[meta.Key]
	if !ok {
		return false
	}
	switch payload.Type {
	case types.SectionTypeItemList:
		return len(payload.Items) > 0
	case types.SectionTypeStringList:
		return len(payload.Strings) > 0
	default:
		return strings.TrimSpace(payload.Text) != ""
	}
}
