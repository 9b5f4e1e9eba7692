package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/notebare/notebare-facts/internal/facts"
)

// ListDomainsTool handles the list_domains MCP tool.
type ListDomainsTool struct {
	source facts.Source
}

// NewListDomainsTool creates a ListDomainsTool reading from source.
func NewListDomainsTool(source facts.Source) *ListDomainsTool {
	return &ListDomainsTool{source: source}
}

// Definition returns the MCP tool definition for list_domains.
func (t *ListDomainsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_domains",
		mcp.WithDescription("List all fact domains with counts, sorted by most facts first."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

// Handle processes the list_domains tool call.
func (t *ListDomainsTool) Handle(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(facts.ListDomains(ctx, t.source)), nil
}
