// Package analytics aggregates taxonomy statistics over a scanned corpus and
// flags likely-duplicate tags.
package analytics

import (
	"strings"

	"github.com/contentops/taxo/pkg/taxo/content"
)

// Analyzer accumulates category/tag tallies across one scanning pass.
type Analyzer struct {
	totalDocs        int64
	docsWithCategory int64
	categories       map[string]int64 // raw observed names
	tags             map[string]int64 // lower-cased; case fold is intentional
	skipped          int
}

// NewAnalyzer creates an empty analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		categories: make(map[string]int64),
		tags:       make(map[string]int64),
	}
}

// Process consumes one document's taxonomy fields.
func (a *Analyzer) Process(doc content.Doc) {
	a.totalDocs++

	if doc.HasCategory() {
		a.docsWithCategory++
		a.categories[doc.Category]++
	}

	// A document using the same tag twice still counts once.
	seen := make(map[string]struct{}, len(doc.Tags))
	for _, tag := range doc.Tags {
		lowered := strings.ToLower(strings.TrimSpace(tag))
		if lowered == "" {
			continue
		}
		if _, ok := seen[lowered]; ok {
			continue
		}
		seen[lowered] = struct{}{}
		a.tags[lowered]++
	}
}

// AddSkipped records files the scanner excluded.
func (a *Analyzer) AddSkipped(n int) {
	a.skipped += n
}

// Stats exposes the aggregated tallies.
type Stats struct {
	TotalDocs        int64
	DocsWithCategory int64
	Categories       map[string]int64
	Tags             map[string]int64
	Skipped          int
}

// Snapshot returns a copy of the accumulated statistics.
func (a *Analyzer) Snapshot() Stats {
	cats := make(map[string]int64, len(a.categories))
	for name, count := range a.categories {
		cats[name] = count
	}
	tags := make(map[string]int64, len(a.tags))
	for name, count := range a.tags {
		tags[name] = count
	}
	return Stats{
		TotalDocs:        a.totalDocs,
		DocsWithCategory: a.docsWithCategory,
		Categories:       cats,
		Tags:             tags,
		Skipped:          a.skipped,
	}
}
