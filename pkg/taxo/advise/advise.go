// Package advise turns taxonomy tallies into cleanup recommendations.
package advise

import (
	"fmt"
	"sort"

	"github.com/contentops/taxo/pkg/taxo/analytics"
	"github.com/contentops/taxo/pkg/taxo/canon"
)

// Recommendation type constants.
const (
	TagConsolidation        = "tag_consolidation"
	CategoryConsolidation   = "category_consolidation"
	CategoryStandardization = "category_standardization"
)

// Recommendation is one suggested cleanup action over named values.
type Recommendation struct {
	Type    string   `json:"type"`
	Message string   `json:"message"`
	Names   []string `json:"names"`
}

// Thresholds control rule sensitivity.
type Thresholds struct {
	MinCategoryDocs int64 // categories below this are consolidation candidates (default 3)
	SingleUseCount  int64 // tag count treated as "used once" (default 1)
}

// Generator derives recommendations from a run's tallies. The rules operate
// on raw observed names, not canonical ones; a category spelled three ways
// is reported three ways, which is exactly what an operator cleaning the
// taxonomy wants to see.
type Generator struct {
	Categories *canon.Table
	Tags       *canon.Table
	Thresholds Thresholds
}

// Run produces zero or more recommendations. Pure and deterministic given
// the same stats and tables.
func (g *Generator) Run(stats analytics.Stats) []Recommendation {
	th := g.thresholdsOrDefault()
	var recs []Recommendation

	var singleUse []string
	for tag, count := range stats.Tags {
		if count == th.SingleUseCount {
			singleUse = append(singleUse, tag)
		}
	}
	if len(singleUse) > 0 {
		sort.Strings(singleUse)
		recs = append(recs, Recommendation{
			Type:    TagConsolidation,
			Message: fmt.Sprintf("%d tags are used by only one document; consider merging or removing them", len(singleUse)),
			Names:   singleUse,
		})
	}

	var lowUse []string
	for cat, count := range stats.Categories {
		if count < th.MinCategoryDocs {
			lowUse = append(lowUse, cat)
		}
	}
	if len(lowUse) > 0 {
		sort.Strings(lowUse)
		recs = append(recs, Recommendation{
			Type:    CategoryConsolidation,
			Message: fmt.Sprintf("%d categories are used by fewer than %d documents; consider merging them", len(lowUse), th.MinCategoryDocs),
			Names:   lowUse,
		})
	}

	var nonCanonical []string
	for cat := range stats.Categories {
		if !g.Categories.IsCanonical(cat) {
			nonCanonical = append(nonCanonical, cat)
		}
	}
	if len(nonCanonical) > 0 {
		sort.Strings(nonCanonical)
		recs = append(recs, Recommendation{
			Type:    CategoryStandardization,
			Message: fmt.Sprintf("%d categories are not in canonical form; run with --update to standardize", len(nonCanonical)),
			Names:   nonCanonical,
		})
	}

	return recs
}

func (g *Generator) thresholdsOrDefault() Thresholds {
	th := g.Thresholds
	if th.MinCategoryDocs == 0 {
		th.MinCategoryDocs = 3
	}
	if th.SingleUseCount == 0 {
		th.SingleUseCount = 1
	}
	return th
}
