package keywords

import (
	"sort"
	"testing"
)

func TestDiff_Basic(t *testing.T) {
	resume := []string{"python", "react", "docker"}
	jd := []string{"python", "sql", "react"}

	diff := Diff(resume, jd)

	assertSameSet(t, []string{"python", "react"}, diff.Present, "present")
	assertSameSet(t, []string{"sql"}, diff.Missing, "missing")
	assertSameSet(t, []string{"docker"}, diff.Extra, "extra")
}

func TestDiff_CaseInsensitiveAndDeduplicated(t *testing.T) {
	diff := Diff([]string{"Python", "PYTHON", " python "}, []string{"python", "python"})

	assertSameSet(t, []string{"python"}, diff.Present, "present")
	if len(diff.Missing) != 0 || len(diff.Extra) != 0 {
		t.Errorf("expected empty missing/extra, got %v / %v", diff.Missing, diff.Extra)
	}
}

func TestDiff_EmptyInputs(t *testing.T) {
	diff := Diff(nil, nil)
	if len(diff.Present)+len(diff.Missing)+len(diff.Extra) != 0 {
		t.Errorf("empty inputs should yield an empty diff, got %+v", diff)
	}

	diff = Diff(nil, []string{"sql"})
	assertSameSet(t, []string{"sql"}, diff.Missing, "missing")

	diff = Diff([]string{"sql"}, nil)
	assertSameSet(t, []string{"sql"}, diff.Extra, "extra")
}

// present ∪ missing = jd, present ∪ extra = resume, and present is disjoint
// from both missing and extra.
func TestDiff_SetAlgebra(t *testing.T) {
	resume := []string{"go", "python", "docker", "kafka", "redis"}
	jd := []string{"python", "kafka", "terraform", "sql"}

	diff := Diff(resume, jd)

	union := append(append([]string{}, diff.Present...), diff.Missing...)
	assertSameSet(t, Dedupe(jd), union, "present ∪ missing vs jd")

	union = append(append([]string{}, diff.Present...), diff.Extra...)
	assertSameSet(t, Dedupe(resume), union, "present ∪ extra vs resume")

	presentSet := make(map[string]bool)
	for _, kw := range diff.Present {
		presentSet[kw] = true
	}
	for _, kw := range diff.Missing {
		if presentSet[kw] {
			t.Errorf("keyword %q in both present and missing", kw)
		}
	}
	for _, kw := range diff.Extra {
		if presentSet[kw] {
			t.Errorf("keyword %q in both present and extra", kw)
		}
	}
}

func assertSameSet(t *testing.T, want, got []string, label string) {
	t.Helper()
	w := append([]string{}, want...)
	g := append([]string{}, got...)
	sort.Strings(w)
	sort.Strings(g)
	if len(w) != len(g) {
		t.Fatalf("%s: want %v, got %v", label, w, g)
	}
	for i := range w {
		if w[i] != g[i] {
			t.Fatalf("%s: want %v, got %v", label, w, g)
		}
	}
}
