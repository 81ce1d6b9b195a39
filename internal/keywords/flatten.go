package keywords

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Flatten renders a resume document as one plain-text blob for keyword
// scanning. Layout does not matter here; only that every scannable field of
// every section, default or custom, ends up in the output.
func Flatten(doc *types.ResumeDocument) string {
	if doc == nil {
		return ""
	}

	var sb strings.Builder
	writeLine := func(s string) {
		if strings.TrimSpace(s) != "" {
			sb.WriteString(s)
			sb.WriteString("\n")
		}
	}

	writeLine(doc.PersonalInfo.Name)
	writeLine(doc.PersonalInfo.Location)
	writeLine(doc.Summary)
	for _, list := range [][]types.SectionItem{doc.WorkExperience, doc.Education, doc.PersonalProjects} {
		flattenItems(&sb, list)
	}
	writeLine(doc.AdditionalInfo)

	for _, payload := range doc.CustomSections {
		switch payload.Type {
		case types.SectionTypeItemList:
			flattenItems(&sb, payload.Items)
		case types.SectionTypeStringList:
			for _, s := range payload.Strings {
				writeLine(s)
			}
		default:
			writeLine(payload.Text)
		}
	}

	return strings.TrimSpace(sb.String())
}

func flattenItems(sb *strings.Builder, items []types.SectionItem) {
	for _, item := range items {
		for _, field := range []string{item.Title, item.Subtitle, item.Location, item.Years} {
			if strings.TrimSpace(field) != "" {
				sb.WriteString(field)
				sb.WriteString("\n")
			}
		}
		for _, line := range item.Description {
			if strings.TrimSpace(line) != "" {
				sb.WriteString(line)
				sb.WriteString("\n")
			}
		}
	}
}
