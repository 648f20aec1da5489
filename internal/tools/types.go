// Package tools declares the Exa tool catalog and the registry that routes
// incoming tool calls to the client operations.
package tools

import "context"

// Tool represents a callable capability exposed over the tool-invocation
// protocol
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]interface{}
	Execute     func(ctx context.Context, input map[string]interface{}) (string, error)
}

// Descriptor is the advertised form of a tool, returned verbatim on a
// list-tools request.
type Descriptor struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"input_schema"`
}

// Result is the single text payload every call returns. Errors are encoded
// as text with an "Error: " prefix rather than a separate channel.
type Result struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
