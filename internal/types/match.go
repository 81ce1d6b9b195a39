//nolint:revive // types is a standard Go package name pattern
package types

// KeywordDiff is the set difference between a resume's keywords and a job
// description's keywords. Present = resume ∩ jd, Missing = jd − resume,
// Extra = resume − jd.
type KeywordDiff struct {
	Present []string `json:"present"`
	Missing []string `json:"missing"`
	Extra   []string `json:"extra"`
}

// MatchScore is the composite ATS-style score for a resume against a job
// description. All components are on a 0-100 scale.
type MatchScore struct {
	KeywordCoverage     float64 `json:"keyword_coverage"`
	SectionCompleteness float64 `json:"section_completeness"`
	FinalScore          int     `json:"final_score"`
}

// MatchStats reports how many job-description keywords appear in resume text.
type MatchStats struct {
	MatchCount      int `json:"match_count"`
	MatchPercentage int `json:"match_percentage"`
}

// Segment is one run of text, flagged when it matches a keyword.
// Concatenating the Text of all segments reproduces the input exactly.
type Segment struct {
	Text    string `json:"text"`
	IsMatch bool   `json:"isMatch"`
}
