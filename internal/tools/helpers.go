// Package tools implements the MCP tool handlers backed by the facts API.
//
// Each tool follows the same shape:
// - a struct holding its dependencies, injected via constructor
// - Definition() returns the mcp.Tool schema
// - Handle() processes the request and returns a result
//
// Tools are read-only. They never return a tool error: a failed fetch is
// reported to the caller as "no facts" text.
package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"
)

// optionalString returns the string argument key, or nil when it is
// missing or null. Non-string values are converted.
func optionalString(req mcp.CallToolRequest, key string) *string {
	v, ok := req.GetArguments()[key]
	if !ok || v == nil {
		return nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return nil
	}
	return &s
}

// optionalNumber returns the numeric argument key, or nil when it is
// missing, null, or not convertible to a number. JSON numbers arrive as
// float64; numeric strings such as "0.5" are accepted too.
func optionalNumber(req mcp.CallToolRequest, key string) *float64 {
	v, ok := req.GetArguments()[key]
	if !ok || v == nil {
		return nil
	}
	if s, isStr := v.(string); isStr && s == "" {
		return nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return nil
	}
	return &f
}
