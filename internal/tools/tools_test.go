package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/notebare/notebare-facts/internal/facts"
)

// ─── Test helpers ────────────────────────────────────────────────────────────

// fakeSource is a facts.Source returning a fixed list.
type fakeSource struct {
	facts     []facts.Fact
	gotDomain string
	calls     int
}

func (s *fakeSource) Fetch(_ context.Context, domain string) []facts.Fact {
	s.calls++
	s.gotDomain = domain
	return s.facts
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// makeReq builds a mcp.CallToolRequest with the given arguments.
func makeReq(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// resultText extracts the text content from a tool result.
func resultText(r *mcp.CallToolResult) string {
	if r == nil || len(r.Content) == 0 {
		return ""
	}
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func sampleFacts() []facts.Fact {
	return []facts.Fact{
		{ID: "11111111-aaaa", Domain: strPtr("opensearch"), Statement: "Keep shards small.", Confidence: floatPtr(0.9), Tags: "OpenSearch,Infra", Source: "docs", CreatedAt: "2024-05-01T00:00:00Z"},
		{ID: "22222222-bbbb", Domain: strPtr("opensearch"), Statement: "Use ILM.", Confidence: floatPtr(0.4), Tags: "opensearch"},
		{ID: "33333333-cccc", Domain: strPtr("terraform"), Statement: "Lock state.", Tags: "infra"},
	}
}

// ─── search_facts ────────────────────────────────────────────────────────────

func TestSearchFactsTool_Definition(t *testing.T) {
	tool := NewSearchFactsTool(&fakeSource{})
	def := tool.Definition()

	if def.Name != "search_facts" {
		t.Errorf("tool name = %q, want %q", def.Name, "search_facts")
	}

	props := def.InputSchema.Properties
	for _, p := range []string{"domain", "tags", "min_confidence"} {
		if _, ok := props[p]; !ok {
			t.Errorf("missing %q parameter", p)
		}
	}
	if len(def.InputSchema.Required) != 0 {
		t.Errorf("required = %v, want none", def.InputSchema.Required)
	}
	if def.Annotations.ReadOnlyHint == nil || !*def.Annotations.ReadOnlyHint {
		t.Error("search_facts should be annotated read-only")
	}
}

func TestSearchFactsTool_NoArgs(t *testing.T) {
	src := &fakeSource{facts: sampleFacts()}
	tool := NewSearchFactsTool(src)

	res, err := tool.Handle(context.Background(), makeReq(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(res))
	}

	text := resultText(res)
	if !strings.HasPrefix(text, "3 fact(s) found:\n\n") {
		t.Errorf("header wrong: %q", text)
	}
	if src.gotDomain != "" {
		t.Errorf("domain = %q, want empty", src.gotDomain)
	}
}

func TestSearchFactsTool_PassesDomain(t *testing.T) {
	src := &fakeSource{facts: sampleFacts()[:2]}
	tool := NewSearchFactsTool(src)

	_, _ = tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"domain": "opensearch",
	}))

	if src.gotDomain != "opensearch" {
		t.Errorf("domain = %q, want opensearch", src.gotDomain)
	}
}

func TestSearchFactsTool_Filters(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]interface{}
		wantIDs []string
	}{
		{"tags substring", map[string]interface{}{"tags": "open"}, []string{"11111111", "22222222"}},
		{"tags case-insensitive", map[string]interface{}{"tags": "INFRA"}, []string{"11111111", "33333333"}},
		{"min confidence", map[string]interface{}{"min_confidence": 0.5}, []string{"11111111"}},
		{"min confidence as string", map[string]interface{}{"min_confidence": "0.3"}, []string{"11111111", "22222222"}},
		{"both", map[string]interface{}{"tags": "infra", "min_confidence": 0.5}, []string{"11111111"}},
		{"null filters ignored", map[string]interface{}{"tags": nil, "min_confidence": nil}, []string{"11111111", "22222222", "33333333"}},
		{"garbage confidence ignored", map[string]interface{}{"min_confidence": "lots"}, []string{"11111111", "22222222", "33333333"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := NewSearchFactsTool(&fakeSource{facts: sampleFacts()})

			res, err := tool.Handle(context.Background(), makeReq(tt.args))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			text := resultText(res)

			want := fmt.Sprintf("%d fact(s) found:", len(tt.wantIDs))
			if !strings.HasPrefix(text, want) {
				t.Fatalf("text = %q, want prefix %q", text, want)
			}
			for _, id := range tt.wantIDs {
				if !strings.Contains(text, "["+id+"]") {
					t.Errorf("missing fact %s in %q", id, text)
				}
			}
		})
	}
}

func TestSearchFactsTool_NoMatches(t *testing.T) {
	tool := NewSearchFactsTool(&fakeSource{facts: sampleFacts()})

	res, _ := tool.Handle(context.Background(), makeReq(map[string]interface{}{"tags": "kubernetes"}))

	if got := resultText(res); got != "No facts match the given filters." {
		t.Errorf("text = %q", got)
	}
}

func TestSearchFactsTool_NoFacts(t *testing.T) {
	tool := NewSearchFactsTool(&fakeSource{})

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{"tags": "x"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := resultText(res); got != "No facts found." {
		t.Errorf("text = %q, want %q", got, "No facts found.")
	}
}

// ─── list_domains ────────────────────────────────────────────────────────────

func TestListDomainsTool_Definition(t *testing.T) {
	def := NewListDomainsTool(&fakeSource{}).Definition()

	if def.Name != "list_domains" {
		t.Errorf("tool name = %q, want list_domains", def.Name)
	}
	if len(def.InputSchema.Properties) != 0 {
		t.Errorf("list_domains should take no parameters, got %v", def.InputSchema.Properties)
	}
}

func TestListDomainsTool_Handle(t *testing.T) {
	src := &fakeSource{facts: sampleFacts()}
	tool := NewListDomainsTool(src)

	res, err := tool.Handle(context.Background(), makeReq(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "3 domain(s):\n  opensearch: 2 fact(s)\n  terraform: 1 fact(s)"
	if got := resultText(res); got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
	if src.gotDomain != "" {
		t.Errorf("list_domains must fetch unfiltered, got domain %q", src.gotDomain)
	}
}

func TestListDomainsTool_Empty(t *testing.T) {
	res, _ := NewListDomainsTool(&fakeSource{}).Handle(context.Background(), makeReq(nil))

	if got := resultText(res); got != "No facts stored yet." {
		t.Errorf("text = %q", got)
	}
}

// ─── Against a fake facts API ────────────────────────────────────────────────

func TestTools_APIFailuresBecomeNoFacts(t *testing.T) {
	statuses := []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusInternalServerError, http.StatusBadGateway}

	for _, status := range statuses {
		t.Run(http.StatusText(status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))
			defer srv.Close()

			client := facts.NewClient(srv.URL, "tok")

			res, err := NewSearchFactsTool(client).Handle(context.Background(), makeReq(nil))
			if err != nil || res.IsError {
				t.Fatalf("search_facts must not fail: err=%v", err)
			}
			if got := resultText(res); got != "No facts found." {
				t.Errorf("search_facts = %q", got)
			}

			res, err = NewListDomainsTool(client).Handle(context.Background(), makeReq(nil))
			if err != nil || res.IsError {
				t.Fatalf("list_domains must not fail: err=%v", err)
			}
			if got := resultText(res); got != "No facts stored yet." {
				t.Errorf("list_domains = %q", got)
			}
		})
	}
}

func TestTools_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `[
		  {"id":"aaaaaaaa-1","domain":"go","statement":"Accept interfaces.","confidence":0.8,"tags":"style","source":"wiki","created_at":"2025-01-02T03:04:05Z"},
		  {"id":"bbbbbbbb-2","domain":"go","statement":"Return structs.","confidence":0.6,"tags":"Style"}
		]`)
	}))
	defer srv.Close()

	client := facts.NewClient(srv.URL, "tok")
	res, err := NewSearchFactsTool(client).Handle(context.Background(), makeReq(map[string]interface{}{
		"tags":           "style",
		"min_confidence": 0.5,
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "2 fact(s) found:\n\n" +
		"[aaaaaaaa] go | 80% | style\n  Accept interfaces.\n  wiki | 2025-01-02\n\n" +
		"[bbbbbbbb] go | 60% | Style\n  Return structs.\n   | "
	if got := resultText(res); got != want {
		t.Errorf("text =\n%q\nwant\n%q", got, want)
	}
}
