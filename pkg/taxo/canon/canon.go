// Package canon maps raw taxonomy strings (categories, tags) onto their
// canonical display forms via curated synonym tables.
package canon

import (
	"sort"
	"strings"
)

// Table is an immutable synonym → canonical lookup. Lookups are
// case-insensitive; unknown values pass through unchanged.
type Table struct {
	// lowered synonym -> canonical display name
	// Example: "js" -> "JavaScript", "ml" -> "Machine Learning"
	entries map[string]string

	// canonical display names, including map targets and their own
	// lowered forms ("javascript" -> "JavaScript" implies "JavaScript"
	// is canonical)
	canonical map[string]struct{}
}

// New builds a Table from a synonym map. Keys are lowered on ingest so
// callers can supply them in any case.
func New(mapping map[string]string) *Table {
	t := &Table{
		entries:   make(map[string]string, len(mapping)),
		canonical: make(map[string]struct{}, len(mapping)),
	}
	for raw, display := range mapping {
		t.entries[strings.ToLower(raw)] = display
		t.canonical[display] = struct{}{}
	}
	return t
}

// Canonicalize returns the canonical form of raw, or raw unchanged when no
// mapping exists.
func (t *Table) Canonicalize(raw string) string {
	if t == nil {
		return raw
	}
	if display, ok := t.entries[strings.ToLower(raw)]; ok {
		return display
	}
	return raw
}

// IsCanonical reports whether s is one of the table's canonical outputs.
func (t *Table) IsCanonical(s string) bool {
	if t == nil {
		return false
	}
	_, ok := t.canonical[s]
	return ok
}

// CanonicalValues returns the sorted set of canonical display names.
func (t *Table) CanonicalValues() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.canonical))
	for v := range t.canonical {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Mapping returns a copy of the synonym map (lowered key → canonical),
// for inclusion in reports.
func (t *Table) Mapping() map[string]string {
	if t == nil {
		return map[string]string{}
	}
	out := make(map[string]string, len(t.entries))
	for k, v := range t.entries {
		out[k] = v
	}
	return out
}

// Len returns the number of synonym entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}
