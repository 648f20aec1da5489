package tools

import (
	"context"
	"fmt"

	"github.com/exatools/exa-mcp-server/internal/exa"
	"github.com/rs/zerolog/log"
)

// Registry is the single source of truth for the tool catalog and dispatch.
// It is built once at startup and is safe for concurrent use; dispatches
// share no mutable state.
type Registry struct {
	tools []Tool
	index map[string]int
}

// NewRegistry registers every Exa tool against the given client.
func NewRegistry(client *exa.Client) *Registry {
	r := &Registry{index: make(map[string]int)}
	for _, t := range []Tool{
		WebSearchTool(client),
		FetchContentTool(client),
		FetchContentsTool(client),
		FetchSubpagesTool(client),
		FindSimilarLinksTool(client),
		AnswerQuestionTool(client),
		ResearchStartTool(client),
		ResearchPollTool(client),
	} {
		r.index[t.Name] = len(r.tools)
		r.tools = append(r.tools, t)
	}
	return r
}

// List returns the static tool catalog.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, Descriptor{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.InputSchema,
		})
	}
	return out
}

// Dispatch routes a (name, arguments) pair to the matching tool and always
// returns exactly one text result. Errors never escape: they are folded into
// the result text with an "Error: " prefix. An unknown tool name is likewise
// a normal text result, not a protocol failure, so callers that only read
// text keep working.
func (r *Registry) Dispatch(ctx context.Context, name string, arguments map[string]interface{}) []Result {
	i, ok := r.index[name]
	if !ok {
		return textResult(fmt.Sprintf("Error: Unknown tool '%s'", name))
	}

	text, err := r.tools[i].Execute(ctx, arguments)
	if err != nil {
		log.Error().Err(err).Str("tool", name).Msg("tool execution failed")
		return textResult("Error: " + err.Error())
	}
	return textResult(text)
}

func textResult(text string) []Result {
	return []Result{{Type: "text", Text: text}}
}
