package analytics

import (
	"sort"
	"strings"

	"github.com/contentops/taxo/pkg/taxo/canon"
)

// Pair is an unordered pair of distinct tags flagged as likely synonyms.
type Pair struct {
	A      string `json:"a"`
	B      string `json:"b"`
	CountA int64  `json:"count_a"`
	CountB int64  `json:"count_b"`
}

// DetectDuplicates scans the tag tally for likely duplicates. Two signals,
// OR-ed: one tag is a substring of the other, or both share a canonical form
// under the tag table.
//
// Pairing is greedy: once a tag lands in a pair it is excluded from further
// pairing, so a popular tag cannot show up in a dozen redundant pairs. The
// vocabulary is sorted first, which makes the greedy outcome independent of
// map iteration order.
func DetectDuplicates(tags map[string]int64, table *canon.Table) []Pair {
	vocab := make([]string, 0, len(tags))
	for tag := range tags {
		vocab = append(vocab, tag)
	}
	sort.Strings(vocab)

	used := make(map[string]struct{}, len(vocab))
	var pairs []Pair

	for i, a := range vocab {
		if _, ok := used[a]; ok {
			continue
		}
		for _, b := range vocab[i+1:] {
			if _, ok := used[b]; ok {
				continue
			}
			if !likelySame(a, b, table) {
				continue
			}
			pairs = append(pairs, Pair{A: a, B: b, CountA: tags[a], CountB: tags[b]})
			used[a] = struct{}{}
			used[b] = struct{}{}
			break
		}
	}
	return pairs
}

func likelySame(a, b string, table *canon.Table) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la == lb {
		return false // identical values are one tally key, never a pair
	}
	if strings.Contains(la, lb) || strings.Contains(lb, la) {
		return true
	}
	return table.Canonicalize(a) == table.Canonicalize(b)
}
