package keywords

import (
	"encoding/json"
	"strings"
)

// Parse coerces keyword data arriving in inconsistent shapes into a flat list
// of trimmed, non-empty strings. Accepted inputs: a []string, a []any of
// strings, a JSON-array-encoded string, or a comma/newline/semicolon
// separated string. nil and unparsable values degrade to an empty list;
// Parse never fails. Remote APIs are sloppy about this field, so the
// tolerance lives here rather than at every call site.
func Parse(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return []string{}
	case []string:
		return cleanList(v)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return cleanList(out)
	case string:
		return parseString(v)
	default:
		return []string{}
	}
}

func parseString(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []string{}
	}

	// A JSON array is the well-behaved case.
	if strings.HasPrefix(trimmed, "[") {
		var list []string
		if err := json.Unmarshal([]byte(trimmed), &list); err == nil {
			return cleanList(list)
		}
		// Malformed JSON: fall through to a best-effort split, shedding the
		// brackets so fragments like `["python", "sql"` still yield tokens.
		trimmed = strings.Trim(trimmed, "[]")
	}

	split := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == ',' || r == '\n' || r == ';'
	})
	out := make([]string, 0, len(split))
	for _, item := range split {
		out = append(out, strings.Trim(item, ` "'`))
	}
	return cleanList(out)
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
