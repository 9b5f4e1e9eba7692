// Package facts is the read side of the notebare facts API.
//
// It fetches fact records over HTTP, applies the filters the API cannot
// run itself (tag substring, minimum confidence), and renders results as
// plain text for tool responses. Nothing here mutates or caches facts.
package facts

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// UnknownDomain is the bucket for facts that carry no domain field.
const UnknownDomain = "unknown"

// Fact is a single record returned by GET /facts/.
//
// Optional fields that are absent or null decode to their zero value,
// except Domain and Confidence where absence is meaningful.
type Fact struct {
	ID         string   `json:"id"`
	Domain     *string  `json:"domain"`
	Statement  string   `json:"statement"`
	Confidence *float64 `json:"confidence"`
	Tags       string   `json:"tags"`
	Source     string   `json:"source"`
	CreatedAt  string   `json:"created_at"`
}

// DomainName returns the domain as rendered in listings ("" when absent).
func (f Fact) DomainName() string {
	if f.Domain == nil {
		return ""
	}
	return *f.Domain
}

// DomainKey returns the domain used for grouping, UnknownDomain when absent.
func (f Fact) DomainKey() string {
	if f.Domain == nil {
		return UnknownDomain
	}
	return *f.Domain
}

// ConfidenceOrZero returns the confidence, treating absence as 0.
func (f Fact) ConfidenceOrZero() float64 {
	if f.Confidence == nil {
		return 0
	}
	return *f.Confidence
}

// decodeFacts parses a response body into facts. The body must be a JSON
// array of objects; each object is decoded leniently so that a numeric id
// or a string-encoded confidence does not reject the whole response.
func decodeFacts(body []byte) ([]Fact, error) {
	var records []map[string]any
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decoding facts array: %w", err)
	}

	out := make([]Fact, 0, len(records))
	for i, rec := range records {
		if rec == nil {
			return nil, fmt.Errorf("fact %d: not an object", i)
		}
		f, err := decodeFact(rec)
		if err != nil {
			return nil, fmt.Errorf("fact %d: %w", i, err)
		}
		out = append(out, f)
	}
	return out, nil
}

func decodeFact(rec map[string]any) (Fact, error) {
	var f Fact
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &f,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Fact{}, fmt.Errorf("creating decoder: %w", err)
	}
	if err := dec.Decode(rec); err != nil {
		return Fact{}, err
	}
	return f, nil
}
