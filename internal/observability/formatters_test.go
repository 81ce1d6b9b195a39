package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestPrintMatchReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchReport(
		types.MatchScore{KeywordCoverage: 66.7, SectionCompleteness: 100, FinalScore: 77},
		types.KeywordDiff{Present: []string{"python", "react"}, Missing: []string{"sql"}},
		types.MatchStats{MatchCount: 2, MatchPercentage: 67},
	)

	out := buf.String()
	for _, want := range []string{"77 / 100", "66.7%", "python", "sql", "Match Report"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintMatchReport_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	missing := make([]string, 20)
	for i := range missing {
		missing[i] = strings.Repeat("k", 5)
	}
	p.PrintMatchReport(types.MatchScore{}, types.KeywordDiff{Missing: missing}, types.MatchStats{})

	if !strings.Contains(buf.String(), "... and 12 more") {
		t.Errorf("long lists should be truncated:\n%s", buf.String())
	}
}

func TestPrintSectionLayout(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSectionLayout([]types.SectionMeta{
		{ID: "personalInfo", DisplayName: "Personal Info", IsDefault: true, IsVisible: true, Order: 0},
		{ID: "custom-1", DisplayName: "Certifications", SectionType: types.SectionTypeStringList, IsVisible: false, Order: 1},
	})

	out := buf.String()
	if !strings.Contains(out, "Personal Info") || !strings.Contains(out, "Certifications") {
		t.Errorf("section names missing:\n%s", out)
	}
	if !strings.Contains(out, "hidden") {
		t.Errorf("hidden flag missing:\n%s", out)
	}
	if !strings.Contains(out, "stringList") {
		t.Errorf("custom section type missing:\n%s", out)
	}
}
