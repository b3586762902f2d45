package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	jsonName = "taxonomy-analysis.json"
	textName = "taxonomy-analysis.txt"

	topTagLimit = 20
)

// Writer serializes reports into a fixed reports directory.
type Writer struct {
	Dir string
}

// Write emits the structured and human-readable forms, creating the reports
// directory if needed. The two files are written sequentially; there is no
// cross-file transaction.
func (w *Writer) Write(r Report) (jsonPath, textPath string, err error) {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return "", "", fmt.Errorf("create reports dir: %w", err)
	}

	jsonPath = filepath.Join(w.Dir, jsonName)
	textPath = filepath.Join(w.Dir, textName)

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(jsonPath, append(data, '\n'), 0644); err != nil {
		return "", "", fmt.Errorf("write %s: %w", jsonName, err)
	}

	if err := os.WriteFile(textPath, []byte(RenderText(r)), 0644); err != nil {
		return "", "", fmt.Errorf("write %s: %w", textName, err)
	}
	return jsonPath, textPath, nil
}

type entry struct {
	name  string
	count int64
}

func sortedEntries(m map[string]int64) []entry {
	out := make([]entry, 0, len(m))
	for name, count := range m {
		out = append(out, entry{name, count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count == out[j].count {
			return out[i].name < out[j].name
		}
		return out[i].count > out[j].count
	})
	return out
}

// RenderText renders the Markdown form of a report.
func RenderText(r Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Taxonomy Analysis\n\n")
	fmt.Fprintf(&b, "Run %s, generated %s\n\n", r.RunID, r.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"))

	fmt.Fprintf(&b, "## Summary\n\n")
	fmt.Fprintf(&b, "- Documents: %d", r.Summary.TotalDocs)
	if r.Summary.SkippedFiles > 0 {
		fmt.Fprintf(&b, " (%d skipped)", r.Summary.SkippedFiles)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "- Distinct categories: %d\n", r.Summary.DistinctCats)
	fmt.Fprintf(&b, "- Distinct tags: %d\n", r.Summary.DistinctTags)
	fmt.Fprintf(&b, "- Recommendations: %d\n\n", r.Summary.Recommendations)

	fmt.Fprintf(&b, "## Category Distribution\n\n")
	for _, e := range sortedEntries(r.Categories) {
		pct := 0.0
		if r.Summary.TotalDocs > 0 {
			pct = 100 * float64(e.count) / float64(r.Summary.TotalDocs)
		}
		fmt.Fprintf(&b, "- %s: %d (%.1f%%)\n", e.name, e.count, pct)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Top Tags\n\n")
	tags := sortedEntries(r.Tags)
	if len(tags) > topTagLimit {
		tags = tags[:topTagLimit]
	}
	for _, e := range tags {
		fmt.Fprintf(&b, "- %s: %d\n", e.name, e.count)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Recommendations\n\n")
	for i, rec := range r.Recommendations {
		label := strings.ToUpper(strings.ReplaceAll(rec.Type, "_", " "))
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, label, rec.Message)
		if len(rec.Names) > 0 {
			fmt.Fprintf(&b, "   %s\n", strings.Join(rec.Names, ", "))
		}
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Potential Duplicates\n\n")
	for _, p := range r.Duplicates {
		fmt.Fprintf(&b, "- %s (%d) / %s (%d)\n", p.A, p.CountA, p.B, p.CountB)
	}

	if len(r.Lint) > 0 {
		fmt.Fprintf(&b, "\n## Lint Findings\n\n")
		for _, f := range r.Lint {
			fmt.Fprintf(&b, "- %s: %s\n", f.Path, f.Message)
		}
	}

	return b.String()
}
