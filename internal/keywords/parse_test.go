package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_NilAndEmpty(t *testing.T) {
	assert.Equal(t, []string{}, Parse(nil))
	assert.Equal(t, []string{}, Parse(""))
	assert.Equal(t, []string{}, Parse("   "))
}

func TestParse_StringList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Parse([]string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, Parse([]string{" a ", "", "b"}))
}

func TestParse_AnyList(t *testing.T) {
	// json.Unmarshal into `any` produces []any; non-strings are skipped.
	assert.Equal(t, []string{"python", "sql"}, Parse([]any{"python", 42, "sql", nil}))
}

func TestParse_JSONArrayString(t *testing.T) {
	assert.Equal(t, []string{"python", "sql", "react"}, Parse(`["python", "sql", "react"]`))
	assert.Equal(t, []string{}, Parse(`[]`))
}

func TestParse_SeparatedString(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Parse("a, b, c"))
	assert.Equal(t, []string{"python", "sql"}, Parse("python\nsql"))
	assert.Equal(t, []string{"go", "rust"}, Parse("go; rust"))
}

func TestParse_MalformedJSONDegradesToSplit(t *testing.T) {
	// Truncated JSON must not fail; it falls back to a best-effort split.
	got := Parse(`["python", "sql"`)
	assert.Equal(t, []string{"python", "sql"}, got)

	got = Parse(`[python, sql]`)
	assert.Equal(t, []string{"python", "sql"}, got)
}

func TestParse_UnsupportedTypes(t *testing.T) {
	assert.Equal(t, []string{}, Parse(42))
	assert.Equal(t, []string{}, Parse(map[string]string{"a": "b"}))
}
