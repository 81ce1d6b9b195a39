// Package keywords turns free text into comparable sets of normalized
// keywords, diffs a resume's set against a job description's, and computes
// the composite ATS-style match score. Everything here is a pure function;
// results are recomputed on demand and never persisted.
package keywords

import (
	"regexp"
	"sort"
	"strings"
)

// minTokenLength drops one-character noise while keeping short tech names
// like "go" and "c#".
const minTokenLength = 2

// reSeparators matches runs of characters that never belong to a keyword.
// Letters, digits and the symbols common in tech terms (c++, c#, node.js)
// survive tokenization.
var reSeparators = regexp.MustCompile(`[^\p{L}\p{N}+#.]+`)

// stopwords are common words that carry no signal when matching a resume
// against a job description.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"but": {}, "by": {}, "for": {}, "from": {}, "has": {}, "have": {},
	"in": {}, "is": {}, "it": {}, "its": {}, "of": {}, "on": {}, "or": {},
	"our": {}, "that": {}, "the": {}, "this": {}, "to": {}, "was": {},
	"we": {}, "were": {}, "will": {}, "with": {}, "you": {}, "your": {},
	"ability": {}, "experience": {}, "knowledge": {}, "skills": {},
	"strong": {}, "team": {}, "work": {}, "working": {}, "years": {},
}

// Normalize lower-cases and trims a single keyword for comparison.
func Normalize(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}

// Extract tokenizes free text into a deduplicated set of normalized keywords.
// Tokens are lower-cased, stripped of surrounding punctuation, and dropped
// when shorter than minTokenLength or listed as stopwords. The result is
// sorted so output is deterministic, but callers must not attach meaning to
// the order; it is a set. Extraction is idempotent: re-extracting the joined
// result yields the same set.
func Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	seen := make(map[string]struct{})
	for _, token := range reSeparators.Split(strings.ToLower(text), -1) {
		token = strings.Trim(token, ".")
		if len(token) < minTokenLength {
			continue
		}
		if _, skip := stopwords[token]; skip {
			continue
		}
		seen[token] = struct{}{}
	}

	return sortedSet(seen)
}

// Dedupe normalizes a caller-supplied keyword list into set form: trimmed,
// lower-cased, empties dropped, duplicates collapsed, sorted.
func Dedupe(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	for _, kw := range raw {
		normalized := Normalize(kw)
		if normalized == "" {
			continue
		}
		seen[normalized] = struct{}{}
	}
	return sortedSet(seen)
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for kw := range set {
		out = append(out, kw)
	}
	sort.Strings(out)
	return out
}
