// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchReport outputs a human-readable summary of a keyword match run.
func (p *Printer) PrintMatchReport(score types.MatchScore, diff types.KeywordDiff, stats types.MatchStats) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Final score:      %d / 100\n", score.FinalScore))
	sb.WriteString(fmt.Sprintf("Keyword coverage: %.1f%% (weight 70%%)\n", score.KeywordCoverage))
	sb.WriteString(fmt.Sprintf("Sections:         %.1f%% (weight 30%%)\n", score.SectionCompleteness))
	sb.WriteString(fmt.Sprintf("Text matches:     %d keywords (%d%%)\n", stats.MatchCount, stats.MatchPercentage))
	sb.WriteString("\n")

	writeKeywordList(&sb, "Matched", diff.Present)
	writeKeywordList(&sb, "Missing", diff.Missing)
	writeKeywordList(&sb, "Extra", diff.Extra)

	p.printBox("Match Report", strings.TrimRight(sb.String(), "\n"))
}

// PrintSectionLayout outputs the merged section list in render order.
func (p *Printer) PrintSectionLayout(metas []types.SectionMeta) {
	var sb strings.Builder

	for _, meta := range metas {
		visibility := " "
		if !meta.IsVisible {
			visibility = "hidden"
		}
		kind := "default"
		if !meta.IsDefault {
			kind = string(meta.SectionType)
		}
		sb.WriteString(fmt.Sprintf("%2d. %-24s %-10s %s\n", meta.Order, meta.DisplayName, kind, visibility))
	}

	p.printBox("Section Layout", strings.TrimRight(sb.String(), "\n"))
}

func writeKeywordList(sb *strings.Builder, label string, kws []string) {
	if len(kws) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("%s (%d):\n", label, len(kws)))
	count := min(len(kws), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", kws[i]))
	}
	if len(kws) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(kws)-maxItemsToShow))
	}
}
