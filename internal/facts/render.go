package facts

import (
	"context"
	"fmt"
	"strings"
)

// Messages returned instead of a listing.
const (
	MsgNoFacts       = "No facts found."
	MsgNoMatches     = "No facts match the given filters."
	MsgNoFactsStored = "No facts stored yet."
)

const (
	idPrefixLen = 8
	dateLen     = 10
)

// Source is anything that can fetch facts. *Client is the production one.
type Source interface {
	Fetch(ctx context.Context, domain string) []Fact
}

// Search runs q against src and renders the result. It always returns
// text; fetch failures surface as MsgNoFacts.
func Search(ctx context.Context, src Source, q SearchQuery) string {
	return FormatSearch(src.Fetch(ctx, q.Domain), q)
}

// ListDomains renders the per-domain fact counts of the whole store.
func ListDomains(ctx context.Context, src Source) string {
	return FormatDomains(src.Fetch(ctx, ""))
}

// FormatSearch filters fetched with q and renders the survivors.
func FormatSearch(fetched []Fact, q SearchQuery) string {
	if len(fetched) == 0 {
		return MsgNoFacts
	}

	matched := Filter(fetched, q)
	if len(matched) == 0 {
		return MsgNoMatches
	}

	blocks := make([]string, 0, len(matched))
	for _, f := range matched {
		blocks = append(blocks, formatFact(f))
	}
	return fmt.Sprintf("%d fact(s) found:\n\n", len(blocks)) + strings.Join(blocks, "\n\n")
}

// FormatDomains renders CountDomains(facts). The header counts facts,
// not domains.
func FormatDomains(facts []Fact) string {
	if len(facts) == 0 {
		return MsgNoFactsStored
	}

	counts := CountDomains(facts)
	lines := make([]string, 0, len(counts))
	total := 0
	for _, dc := range counts {
		total += dc.Count
		lines = append(lines, fmt.Sprintf("  %s: %d fact(s)", dc.Domain, dc.Count))
	}
	return fmt.Sprintf("%d domain(s):\n", total) + strings.Join(lines, "\n")
}

func formatFact(f Fact) string {
	return fmt.Sprintf("[%s] %s | %s | %s\n  %s\n  %s | %s",
		truncate(f.ID, idPrefixLen), f.DomainName(), FormatConfidence(f.Confidence), f.Tags,
		f.Statement,
		f.Source, truncate(f.CreatedAt, dateLen),
	)
}

// FormatConfidence renders c as a whole percentage ("87%"), or "n/a".
func FormatConfidence(c *float64) string {
	if c == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.0f%%", *c*100)
}

// truncate returns the first n characters of s.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
