package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/contentops/taxo/pkg/taxo/advise"
	"github.com/contentops/taxo/pkg/taxo/analytics"
	"github.com/contentops/taxo/pkg/taxo/canon"
	"github.com/contentops/taxo/pkg/taxo/lint"
)

func sampleReport(t *testing.T) Report {
	t.Helper()
	b := NewBuilder()
	b.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}

	stats := analytics.Stats{
		TotalDocs:        10,
		DocsWithCategory: 8,
		Categories:       map[string]int64{"Backend": 6, "Frontend": 2},
		Tags:             map[string]int64{"go": 5, "sql": 3, "wasm": 1},
		Skipped:          1,
	}
	pairs := []analytics.Pair{{A: "javascript", B: "js", CountA: 3, CountB: 2}}
	recs := []advise.Recommendation{{
		Type:    advise.TagConsolidation,
		Message: "1 tags are used by only one document; consider merging or removing them",
		Names:   []string{"wasm"},
	}}
	findings := []lint.Finding{{Path: "posts/x/index.md", Rule: lint.RuleRawHTML, Message: "body contains raw HTML: <div>"}}

	return b.Build(stats, pairs, recs, findings,
		canon.New(map[string]string{"backend": "Backend"}),
		canon.New(map[string]string{"js": "javascript"}))
}

func TestBuildSummary(t *testing.T) {
	r := sampleReport(t)

	if r.RunID == "" {
		t.Error("Report must carry a run ID")
	}
	if !r.GeneratedAt.Equal(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("GeneratedAt = %v", r.GeneratedAt)
	}
	s := r.Summary
	if s.TotalDocs != 10 || s.DocsWithCategory != 8 || s.DistinctCats != 2 ||
		s.DistinctTags != 3 || s.Recommendations != 1 || s.Duplicates != 1 ||
		s.SkippedFiles != 1 || s.LintFindings != 1 {
		t.Errorf("Unexpected summary: %+v", s)
	}
}

func TestWriterWritesBothSinks(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	w := &Writer{Dir: dir}

	jsonPath, textPath, err := w.Write(sampleReport(t))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("JSON sink not parseable: %v", err)
	}
	if decoded.Summary.TotalDocs != 10 {
		t.Errorf("Round-tripped TotalDocs = %d", decoded.Summary.TotalDocs)
	}
	if decoded.TagMap["js"] != "javascript" {
		t.Error("Standardization maps must be part of the structured report")
	}

	if _, err := os.Stat(textPath); err != nil {
		t.Fatalf("Text sink missing: %v", err)
	}
}

func TestRenderTextSections(t *testing.T) {
	text := RenderText(sampleReport(t))

	for _, want := range []string{
		"## Summary",
		"## Category Distribution",
		"## Top Tags",
		"## Recommendations",
		"## Potential Duplicates",
		"## Lint Findings",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Missing section %q", want)
		}
	}

	// Percentages of total documents, one decimal.
	if !strings.Contains(text, "- Backend: 6 (60.0%)") {
		t.Errorf("Category line wrong:\n%s", text)
	}
	// Recommendation types are upper-cased with underscores replaced.
	if !strings.Contains(text, "1. TAG CONSOLIDATION:") {
		t.Errorf("Recommendation label wrong:\n%s", text)
	}
	// Duplicate pairs carry both counts.
	if !strings.Contains(text, "- javascript (3) / js (2)") {
		t.Errorf("Duplicate line wrong:\n%s", text)
	}
	if !strings.Contains(text, "(1 skipped)") {
		t.Errorf("Skipped count missing:\n%s", text)
	}
}

func TestRenderTextTopTagsLimit(t *testing.T) {
	tags := make(map[string]int64)
	for i := 0; i < 30; i++ {
		tags[strings.Repeat("t", i+1)] = int64(i + 1)
	}
	r := Report{Tags: tags, Categories: map[string]int64{}}

	text := RenderText(r)
	section := text[strings.Index(text, "## Top Tags"):]
	if end := strings.Index(section, "\n## "); end >= 0 {
		section = section[:end]
	}
	lines := strings.Count(section, "\n- ")
	if lines != topTagLimit {
		t.Errorf("Top tags lines = %d, want %d", lines, topTagLimit)
	}
}

func TestRunIDsMonotonic(t *testing.T) {
	b := NewBuilder()
	stats := analytics.Stats{Categories: map[string]int64{}, Tags: map[string]int64{}}
	first := b.Build(stats, nil, nil, nil, canon.New(nil), canon.New(nil))
	second := b.Build(stats, nil, nil, nil, canon.New(nil), canon.New(nil))
	if first.RunID >= second.RunID {
		t.Errorf("Run IDs should increase: %s then %s", first.RunID, second.RunID)
	}
}
