package keywords

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/types"
)

// Segment splits text into matched and unmatched runs for highlighting.
// Every maximal run whose lowercase form contains a keyword is flagged
// IsMatch; concatenating all segment texts reproduces the input byte for
// byte. Empty keyword sets yield the whole text as one unmatched segment,
// and empty text yields no segments.
func Segment(text string, kws []string) []types.Segment {
	if text == "" {
		return []types.Segment{}
	}

	jd := Dedupe(kws)
	if len(jd) == 0 {
		return []types.Segment{{Text: text, IsMatch: false}}
	}

	lowered, origOffsets := foldCase(text)

	// Collect every keyword occurrence as a byte span in the folded text.
	var spans [][2]int
	for _, kw := range jd {
		for from := 0; ; {
			idx := strings.Index(lowered[from:], kw)
			if idx < 0 {
				break
			}
			start := from + idx
			spans = append(spans, [2]int{start, start + len(kw)})
			from = start + len(kw)
		}
	}
	if len(spans) == 0 {
		return []types.Segment{{Text: text, IsMatch: false}}
	}

	// Merge overlapping spans into maximal matched runs.
	sort.Slice(spans, func(i, j int) bool { return spans[i][0] < spans[j][0] })
	merged := spans[:1]
	for _, span := range spans[1:] {
		last := &merged[len(merged)-1]
		if span[0] <= last[1] {
			if span[1] > last[1] {
				last[1] = span[1]
			}
			continue
		}
		merged = append(merged, span)
	}

	// Emit alternating runs, slicing the original text via the offset map so
	// case folding that changes byte widths cannot corrupt the round trip.
	segments := make([]types.Segment, 0, 2*len(merged)+1)
	cursor := 0
	for _, span := range merged {
		start, end := origOffsets[span[0]], origOffsets[span[1]]
		if start > cursor {
			segments = append(segments, types.Segment{Text: text[cursor:start]})
		}
		segments = append(segments, types.Segment{Text: text[start:end], IsMatch: true})
		cursor = end
	}
	if cursor < len(text) {
		segments = append(segments, types.Segment{Text: text[cursor:]})
	}
	return segments
}

// foldCase lower-cases text rune by rune and returns, alongside the folded
// string, a map from every folded byte offset (inclusive of the end) back to
// the corresponding byte offset in the original text.
func foldCase(text string) (string, []int) {
	var folded strings.Builder
	folded.Grow(len(text))
	offsets := make([]int, 0, len(text)+1)

	for i, r := range text {
		lower := unicode.ToLower(r)
		for range utf8.RuneLen(lower) {
			offsets = append(offsets, i)
		}
		folded.WriteRune(lower)
	}
	offsets = append(offsets, len(text))

	return folded.String(), offsets
}
