package canon

import (
	"strings"
	"testing"
)

func TestCanonicalizeHit(t *testing.T) {
	table := New(map[string]string{"js": "JavaScript", "ts": "TypeScript"})

	if got := table.Canonicalize("js"); got != "JavaScript" {
		t.Errorf("Canonicalize(js) = %q, want JavaScript", got)
	}
	if got := table.Canonicalize("JS"); got != "JavaScript" {
		t.Errorf("Lookup should be case-insensitive, got %q", got)
	}
}

func TestCanonicalizeMissPassesThrough(t *testing.T) {
	table := New(map[string]string{"js": "JavaScript"})

	// Unknown values are preserved verbatim, case included.
	if got := table.Canonicalize("Rust"); got != "Rust" {
		t.Errorf("Canonicalize(Rust) = %q, want Rust", got)
	}
}

func TestCanonicalizeCaseInsensitiveProperty(t *testing.T) {
	table := New(map[string]string{"webdev": "Web Development", "ml": "Machine Learning"})

	// canonicalize(t) == canonicalize(lower(t)) for mapped inputs
	for _, raw := range []string{"WebDev", "WEBDEV", "Ml", "ML"} {
		if table.Canonicalize(raw) != table.Canonicalize(strings.ToLower(raw)) {
			t.Errorf("Canonicalize(%q) differs from lowered form", raw)
		}
	}
}

func TestIsCanonical(t *testing.T) {
	table := New(map[string]string{"js": "JavaScript", "javascript": "JavaScript"})

	if !table.IsCanonical("JavaScript") {
		t.Error("JavaScript should be canonical")
	}
	if table.IsCanonical("js") {
		t.Error("js is a synonym, not a canonical value")
	}
}

func TestCanonicalValuesSorted(t *testing.T) {
	table := New(map[string]string{
		"ts": "TypeScript",
		"js": "JavaScript",
		"go": "Go",
	})

	got := table.CanonicalValues()
	want := []string{"Go", "JavaScript", "TypeScript"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CanonicalValues[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNilTable(t *testing.T) {
	var table *Table
	if got := table.Canonicalize("anything"); got != "anything" {
		t.Errorf("nil table should pass through, got %q", got)
	}
	if table.IsCanonical("anything") {
		t.Error("nil table has no canonical values")
	}
}

func TestDefaultTablesConsistent(t *testing.T) {
	cats := New(DefaultCategories())
	tags := New(DefaultTags())

	if cats.Canonicalize("webdev") != "Web Development" {
		t.Error("webdev should canonicalize to Web Development")
	}
	if tags.Canonicalize("JS") != "javascript" {
		t.Error("JS should canonicalize to javascript")
	}
	// Identity rows keep their target canonical.
	if tags.Canonicalize("react") != "react" {
		t.Error("react should map to itself")
	}
}
