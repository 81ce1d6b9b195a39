package keywords

import "github.com/jonathan/resume-builder/internal/types"

// Diff computes the set algebra between a resume's keywords and a job
// description's keywords: Present = resume ∩ jd, Missing = jd − resume,
// Extra = resume − jd. Comparison is case-insensitive and both inputs are
// deduplicated before diffing, so callers may pass raw lists.
func Diff(resumeKeywords, jdKeywords []string) types.KeywordDiff {
	resume := Dedupe(resumeKeywords)
	jd := Dedupe(jdKeywords)

	resumeSet := make(map[string]struct{}, len(resume))
	for _, kw := range resume {
		resumeSet[kw] = struct{}{}
	}
	jdSet := make(map[string]struct{}, len(jd))
	for _, kw := range jd {
		jdSet[kw] = struct{}{}
	}

	diff := types.KeywordDiff{
		Present: []string{},
		Missing: []string{},
		Extra:   []string{},
	}
	for _, kw := range jd {
		if _, ok := resumeSet[kw]; ok {
			diff.Present = append(diff.Present, kw)
		} else {
			diff.Missing = append(diff.Missing, kw)
		}
	}
	for _, kw := range resume {
		if _, ok := jdSet[kw]; !ok {
			diff.Extra = append(diff.Extra, kw)
		}
	}
	return diff
}
