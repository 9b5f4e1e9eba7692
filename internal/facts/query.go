package facts

import (
	"slices"
	"strings"
)

// SearchQuery describes a search_facts call. Domain is applied by the
// API; Tags and MinConfidence are applied locally when non-nil.
type SearchQuery struct {
	Domain        string
	Tags          *string
	MinConfidence *float64
}

// Filter returns the facts matching the client-side parts of q. The input
// slice is left untouched and order is preserved.
func Filter(facts []Fact, q SearchQuery) []Fact {
	out := make([]Fact, 0, len(facts))
	for _, f := range facts {
		if q.MinConfidence != nil && f.ConfidenceOrZero() < *q.MinConfidence {
			continue
		}
		if q.Tags != nil && !strings.Contains(strings.ToLower(f.Tags), strings.ToLower(*q.Tags)) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// DomainCount is the number of facts in one domain.
type DomainCount struct {
	Domain string
	Count  int
}

// CountDomains groups facts by domain and orders the groups by descending
// count. Domains with equal counts keep the order they were first seen in.
func CountDomains(facts []Fact) []DomainCount {
	index := make(map[string]int)
	var counts []DomainCount
	for _, f := range facts {
		key := f.DomainKey()
		i, ok := index[key]
		if !ok {
			i = len(counts)
			index[key] = i
			counts = append(counts, DomainCount{Domain: key})
		}
		counts[i].Count++
	}

	slices.SortStableFunc(counts, func(a, b DomainCount) int {
		return b.Count - a.Count
	})
	return counts
}
