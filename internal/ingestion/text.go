// Package ingestion cleans raw job-description text before keyword
// extraction. Input arrives as pasted text, a local file, or HTML stripped
// by the fetch package; all three paths go through CleanText.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	reSpaces     = regexp.MustCompile(`[ \t]+`)
	reBlankRuns  = regexp.MustCompile(`\n\n\n+`)
	reBulletMark = regexp.MustCompile(`^[-*•·]\s+`)
)

// CleanText normalizes line endings, collapses runs of spaces, strips
// trailing whitespace, and reduces consecutive blank lines to at most one.
// Bullet markers are normalized to "- " so list structure survives for
// display alongside keyword highlighting.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = reBlankRuns.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	if reBulletMark.MatchString(trimmed) {
		trimmed = "- " + reBulletMark.ReplaceAllString(trimmed, "")
	}
	return reSpaces.ReplaceAllString(trimmed, " ")
}

// FromFile reads and cleans a job description from a local text file.
func FromFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("job description file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read job description: %w", err)
	}
	return CleanText(string(content)), nil
}
