// Package prompts implements MCP prompt handlers for the facts store.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// ExplorePrompt handles the facts-explore MCP prompt.
// It asks the AI to survey the store and summarise what is known about
// a domain, or about the largest domains when none is given.
type ExplorePrompt struct{}

// NewExplorePrompt creates an ExplorePrompt.
func NewExplorePrompt() *ExplorePrompt {
	return &ExplorePrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *ExplorePrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("facts-explore",
		mcp.WithPromptDescription(
			"Summarise what the notebare facts store knows. "+
				"Optionally focus on a single domain.",
		),
		mcp.WithArgument("domain",
			mcp.ArgumentDescription(`Domain to focus on (e.g. "opensearch"). Leave empty for an overview.`),
		),
	)
}

// Handle processes the facts-explore prompt request.
func (p *ExplorePrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	domain := strings.TrimSpace(req.Params.Arguments["domain"])

	var text string
	if domain == "" {
		text = "Please call `list_domains` to see which domains the facts store covers.\n\n" +
			"Then, for the three largest domains, call `search_facts` with that domain and " +
			"`min_confidence` 0.7, and give me:\n" +
			"1. A one-paragraph summary per domain\n" +
			"2. Any facts that look contradictory or stale (check the dates)\n" +
			"3. Domains that look thin and could use more facts"
	} else {
		text = fmt.Sprintf(
			"Please call `search_facts` with domain %q to load everything the facts store "+
				"knows about it.\n\n"+
				"Then give me:\n"+
				"1. The key facts, highest confidence first\n"+
				"2. Facts without a confidence value, flagged as unverified\n"+
				"3. Recurring tags and what they suggest\n\n"+
				"If nothing is found, call `list_domains` and suggest the closest existing domain.",
			domain,
		)
	}

	return &mcp.GetPromptResult{
		Description: "Explore notebare facts",
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(text),
			},
		},
	}, nil
}
