// Package resources implements MCP resource handlers for the facts store.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (facts://...) following MCP conventions.
package resources

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/notebare/notebare-facts/internal/facts"
)

// DomainsURI addresses the domain overview resource.
const DomainsURI = "facts://domains"

// Handler serves facts resources.
type Handler struct {
	source facts.Source
}

// NewHandler creates a resource Handler reading from source.
func NewHandler(source facts.Source) *Handler {
	return &Handler{source: source}
}

// DomainsResource returns the MCP resource definition for the domain overview.
func (h *Handler) DomainsResource() mcp.Resource {
	return mcp.NewResource(
		DomainsURI,
		"Fact domains",
		mcp.WithResourceDescription("Every fact domain with its fact count, largest first"),
		mcp.WithMIMEType("text/plain"),
	)
}

// HandleDomains returns the same text as the list_domains tool.
func (h *Handler) HandleDomains(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     facts.ListDomains(ctx, h.source),
		},
	}, nil
}
