package advise

import (
	"reflect"
	"testing"

	"github.com/contentops/taxo/pkg/taxo/analytics"
	"github.com/contentops/taxo/pkg/taxo/canon"
)

func findRec(recs []Recommendation, typ string) *Recommendation {
	for i := range recs {
		if recs[i].Type == typ {
			return &recs[i]
		}
	}
	return nil
}

func TestSingleUseTags(t *testing.T) {
	g := &Generator{Categories: canon.New(nil), Tags: canon.New(nil)}

	stats := analytics.Stats{Tags: map[string]int64{"go": 5, "wasm": 1, "zig": 1}}
	rec := findRec(g.Run(stats), TagConsolidation)
	if rec == nil {
		t.Fatal("Expected a tag_consolidation recommendation")
	}
	if !reflect.DeepEqual(rec.Names, []string{"wasm", "zig"}) {
		t.Errorf("Names = %v, want sorted single-use tags", rec.Names)
	}

	// Using "wasm" on a second document removes it from the list.
	stats.Tags["wasm"] = 2
	rec = findRec(g.Run(stats), TagConsolidation)
	if rec == nil || !reflect.DeepEqual(rec.Names, []string{"zig"}) {
		t.Errorf("Expected only zig after wasm gained a second doc, got %+v", rec)
	}
}

func TestLowUseCategoriesOnRawNames(t *testing.T) {
	// "test3" maps to "Backend", but rules run against raw observed names:
	// Backend's raw count of 1 keeps it in the list regardless of what the
	// synonym would contribute.
	g := &Generator{
		Categories: canon.New(map[string]string{"test3": "Backend"}),
		Tags:       canon.New(nil),
	}
	stats := analytics.Stats{Categories: map[string]int64{"test3": 5, "Backend": 1, "Frontend": 4}}

	rec := findRec(g.Run(stats), CategoryConsolidation)
	if rec == nil {
		t.Fatal("Expected a category_consolidation recommendation")
	}
	if !reflect.DeepEqual(rec.Names, []string{"Backend"}) {
		t.Errorf("Names = %v, want raw-count-based [Backend]", rec.Names)
	}
}

func TestNonCanonicalCategories(t *testing.T) {
	g := &Generator{
		Categories: canon.New(map[string]string{"webdev": "Web Development", "backend": "Backend"}),
		Tags:       canon.New(nil),
	}
	stats := analytics.Stats{Categories: map[string]int64{
		"Web Development": 4, "webdev": 2, "Backend": 3,
	}}

	rec := findRec(g.Run(stats), CategoryStandardization)
	if rec == nil {
		t.Fatal("Expected a category_standardization recommendation")
	}
	if !reflect.DeepEqual(rec.Names, []string{"webdev"}) {
		t.Errorf("Names = %v, want [webdev]", rec.Names)
	}
}

func TestNoRecommendationsOnHealthyTaxonomy(t *testing.T) {
	g := &Generator{
		Categories: canon.New(map[string]string{"backend": "Backend"}),
		Tags:       canon.New(nil),
	}
	stats := analytics.Stats{
		Categories: map[string]int64{"Backend": 5},
		Tags:       map[string]int64{"go": 4, "sql": 2},
	}
	if recs := g.Run(stats); len(recs) != 0 {
		t.Errorf("Healthy taxonomy should produce no recommendations: %v", recs)
	}
}

func TestThresholdDefaults(t *testing.T) {
	g := &Generator{Categories: canon.New(nil), Tags: canon.New(nil)}
	th := g.thresholdsOrDefault()
	if th.MinCategoryDocs != 3 || th.SingleUseCount != 1 {
		t.Errorf("Unexpected defaults: %+v", th)
	}

	g.Thresholds = Thresholds{MinCategoryDocs: 10, SingleUseCount: 2}
	th = g.thresholdsOrDefault()
	if th.MinCategoryDocs != 10 || th.SingleUseCount != 2 {
		t.Errorf("Explicit thresholds must win: %+v", th)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	g := &Generator{
		Categories: canon.New(map[string]string{"x": "X"}),
		Tags:       canon.New(nil),
	}
	stats := analytics.Stats{
		Categories: map[string]int64{"a": 1, "b": 2, "c": 1, "X": 5},
		Tags:       map[string]int64{"t1": 1, "t2": 1, "t3": 3},
	}
	first := g.Run(stats)
	for i := 0; i < 10; i++ {
		if again := g.Run(stats); !reflect.DeepEqual(first, again) {
			t.Fatalf("Run %d differed", i)
		}
	}
}
