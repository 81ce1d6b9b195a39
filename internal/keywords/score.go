package keywords

import (
	"math"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Weights for the composite score. The 70/30 split is a fixed design
// constant: the UI labels the score as "70% keyword coverage / 30% sections".
const (
	keywordCoverageWeight     = 0.7
	sectionCompletenessWeight = 0.3
)

// MatchStats scans resume text for each distinct job-description keyword and
// reports how many were found at least once. Matching is case-insensitive
// substring containment, the same rule Segment uses. The denominator is
// floored at 1 so an empty keyword set yields 0%, not a division by zero.
func MatchStats(resumeText string, jdKeywords []string) types.MatchStats {
	jd := Dedupe(jdKeywords)
	haystack := strings.ToLower(resumeText)

	count := 0
	for _, kw := range jd {
		if strings.Contains(haystack, kw) {
			count++
		}
	}

	denom := len(jd)
	if denom < 1 {
		denom = 1
	}
	return types.MatchStats{
		MatchCount:      count,
		MatchPercentage: int(math.Round(100 * float64(count) / float64(denom))),
	}
}

// Score combines keyword coverage with a caller-supplied section completeness
// signal into the final 0-100 ATS score. Coverage is the share of
// job-description keywords present in the resume; completeness is a heuristic
// the caller computes (100 when the resume parsed fully), passed through
// untouched. finalScore = round(0.7*coverage + 0.3*completeness), clamped.
func Score(diff types.KeywordDiff, jdKeywords []string, sectionCompleteness float64) types.MatchScore {
	jd := Dedupe(jdKeywords)

	denom := len(jd)
	if denom < 1 {
		denom = 1
	}
	coverage := 100 * float64(len(diff.Present)) / float64(denom)

	final := math.Round(keywordCoverageWeight*coverage + sectionCompletenessWeight*sectionCompleteness)
	if final < 0 {
		final = 0
	}
	if final > 100 {
		final = 100
	}

	return types.MatchScore{
		KeywordCoverage:     coverage,
		SectionCompleteness: sectionCompleteness,
		FinalScore:          int(final),
	}
}
