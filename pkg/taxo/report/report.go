// Package report assembles and serializes the result of one analysis run.
package report

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/contentops/taxo/pkg/taxo/advise"
	"github.com/contentops/taxo/pkg/taxo/analytics"
	"github.com/contentops/taxo/pkg/taxo/canon"
	"github.com/contentops/taxo/pkg/taxo/lint"
)

// Summary holds the headline counts of a run.
type Summary struct {
	TotalDocs        int64 `json:"total_docs"`
	DocsWithCategory int64 `json:"docs_with_category"`
	DistinctCats     int   `json:"distinct_categories"`
	DistinctTags     int   `json:"distinct_tags"`
	Recommendations  int   `json:"recommendations"`
	Duplicates       int   `json:"duplicate_pairs"`
	SkippedFiles     int   `json:"skipped_files"`
	LintFindings     int   `json:"lint_findings"`
}

// Report is the write-once aggregate of one analysis run.
type Report struct {
	RunID           string                  `json:"run_id"`
	GeneratedAt     time.Time               `json:"generated_at"`
	Summary         Summary                 `json:"summary"`
	Categories      map[string]int64        `json:"categories"`
	Tags            map[string]int64        `json:"tags"`
	Duplicates      []analytics.Pair        `json:"duplicates"`
	Recommendations []advise.Recommendation `json:"recommendations"`
	Lint            []lint.Finding          `json:"lint,omitempty"`
	CategoryMap     map[string]string       `json:"category_map"`
	TagMap          map[string]string       `json:"tag_map"`
}

// Builder constructs reports with monotonic run IDs.
type Builder struct {
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// NewBuilder creates a report builder.
func NewBuilder() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

// Build assembles a report from a run's outputs.
func (b *Builder) Build(stats analytics.Stats, pairs []analytics.Pair,
	recs []advise.Recommendation, findings []lint.Finding,
	categories, tags *canon.Table) Report {

	now := b.now().UTC()
	return Report{
		RunID:       ulid.MustNew(ulid.Timestamp(now), b.entropy).String(),
		GeneratedAt: now,
		Summary: Summary{
			TotalDocs:        stats.TotalDocs,
			DocsWithCategory: stats.DocsWithCategory,
			DistinctCats:     len(stats.Categories),
			DistinctTags:     len(stats.Tags),
			Recommendations:  len(recs),
			Duplicates:       len(pairs),
			SkippedFiles:     stats.Skipped,
			LintFindings:     len(findings),
		},
		Categories:      stats.Categories,
		Tags:            stats.Tags,
		Duplicates:      pairs,
		Recommendations: recs,
		Lint:            findings,
		CategoryMap:     categories.Mapping(),
		TagMap:          tags.Mapping(),
	}
}
