package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/notebare/notebare-facts/internal/facts"
	"github.com/notebare/notebare-facts/internal/logging"
)

// SearchFactsTool handles the search_facts MCP tool.
type SearchFactsTool struct {
	source facts.Source
}

// NewSearchFactsTool creates a SearchFactsTool reading from source.
func NewSearchFactsTool(source facts.Source) *SearchFactsTool {
	return &SearchFactsTool{source: source}
}

// Definition returns the MCP tool definition for search_facts.
func (t *SearchFactsTool) Definition() mcp.Tool {
	return mcp.NewTool("search_facts",
		mcp.WithDescription(
			"Search the notebare facts store. "+
				"Returns matching facts with their confidence, tags, source and date. "+
				"All filters are optional and combine with AND.",
		),
		mcp.WithString("domain",
			mcp.Description(`Filter by exact domain name (e.g. "opensearch", "terraform").`),
		),
		mcp.WithString("tags",
			mcp.Description("Case-insensitive substring match against the tags field."),
		),
		mcp.WithNumber("min_confidence",
			mcp.Description("Only return facts with confidence >= this value (0-1). Facts without a confidence count as 0."),
			mcp.Min(0),
			mcp.Max(1),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

// Handle processes the search_facts tool call.
func (t *SearchFactsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	q := facts.SearchQuery{
		Tags:          optionalString(req, "tags"),
		MinConfidence: optionalNumber(req, "min_confidence"),
	}
	if d := optionalString(req, "domain"); d != nil {
		q.Domain = *d
	}

	logging.FromCtx(ctx).Debug().
		Str("domain", q.Domain).
		Bool("tags", q.Tags != nil).
		Bool("min_confidence", q.MinConfidence != nil).
		Msg("search_facts")

	return mcp.NewToolResultText(facts.Search(ctx, t.source, q)), nil
}
