// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates the facts client from the
// startup configuration and injects it into the tools, resources and
// prompts that depend on facts.Source. No business logic lives here.
package server

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/notebare/notebare-facts/internal/config"
	"github.com/notebare/notebare-facts/internal/facts"
	"github.com/notebare/notebare-facts/internal/logging"
	"github.com/notebare/notebare-facts/internal/prompts"
	"github.com/notebare/notebare-facts/internal/resources"
	"github.com/notebare/notebare-facts/internal/tools"
	"github.com/rs/zerolog"
)

// Name is the server name announced during MCP initialization.
const Name = "notebare-facts"

// Version is set at build time via ldflags.
var Version = "dev"

// shutdownTimeout bounds the graceful stop of the HTTP transport.
const shutdownTimeout = 5 * time.Second

// New creates the MCP server with every tool, resource and prompt
// registered against the facts API described by cfg.
func New(cfg config.Config) *server.MCPServer {
	client := facts.NewClient(cfg.APIURL, cfg.APIToken,
		facts.WithUserAgent(Name+"/"+Version),
	)
	return NewWithSource(client)
}

// NewWithSource creates the MCP server on top of an arbitrary facts source.
func NewWithSource(source facts.Source) *server.MCPServer {
	s := server.NewMCPServer(
		Name,
		Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Tools ---

	searchTool := tools.NewSearchFactsTool(source)
	s.AddTool(searchTool.Definition(), searchTool.Handle)

	domainsTool := tools.NewListDomainsTool(source)
	s.AddTool(domainsTool.Definition(), domainsTool.Handle)

	// --- Resources ---

	resourceHandler := resources.NewHandler(source)
	s.AddResource(resourceHandler.DomainsResource(), resourceHandler.HandleDomains)

	// --- Prompts ---

	explorePrompt := prompts.NewExplorePrompt()
	s.AddPrompt(explorePrompt.Definition(), explorePrompt.Handle)

	return s
}

// Serve runs s on the transport selected in cfg until ctx is cancelled
// (HTTP) or stdin is closed (stdio). Every request context carries logger.
func Serve(ctx context.Context, s *server.MCPServer, cfg config.Config, logger zerolog.Logger) error {
	switch cfg.Transport {
	case config.TransportHTTP:
		return serveHTTP(ctx, s, cfg.HTTPAddr, logger)
	default:
		logger.Info().Str("transport", config.TransportStdio).Msg("serving MCP")
		return server.ServeStdio(s,
			server.WithErrorLogger(stdlog.New(logger, "", 0)),
			server.WithStdioContextFunc(func(ctx context.Context) context.Context {
				return logging.WithLogger(ctx, logger)
			}),
		)
	}
}

func serveHTTP(ctx context.Context, s *server.MCPServer, addr string, logger zerolog.Logger) error {
	httpServer := server.NewStreamableHTTPServer(s,
		server.WithHTTPContextFunc(func(ctx context.Context, _ *http.Request) context.Context {
			return logging.WithLogger(ctx, logger)
		}),
	)

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("transport", config.TransportHTTP).Str("addr", addr).Msg("serving MCP")
		errCh <- httpServer.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http transport: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http transport: %w", err)
	}
	logger.Info().Msg("http transport stopped")
	return nil
}

// serverInstructions returns the system instructions that tell the AI
// how to use the facts tools.
func serverInstructions() string {
	return `You have access to the notebare facts store: short, curated statements about
technical domains, each with an optional confidence score (0-1), tags, a source and a date.

## When to use it
- Before answering questions about a technology or topic the user has documented facts about
- When the user asks "what do we know about X" or refers to their notes or facts
- To double-check an assumption against recorded, sourced statements

## How to use it
1. Call list_domains to see which domains exist and how many facts each holds.
2. Call search_facts with an exact domain name from that list.
3. Narrow with tags (case-insensitive substring) or min_confidence (e.g. 0.7).

## Reading results
- "No facts found." means nothing came back for that query, or the store was unreachable.
- "No facts match the given filters." means facts exist but the tag/confidence filters removed them; relax them.
- Confidence "n/a" means the fact has no score; treat it as unverified.
- Cite the bracketed fact id prefix when you rely on a fact.`
}
