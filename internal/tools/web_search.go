package tools

import (
	"context"

	"github.com/exatools/exa-mcp-server/internal/exa"
)

// WebSearchTool performs a real-time web search, optionally enriching each
// result with the full page text.
func WebSearchTool(client *exa.Client) Tool {
	return Tool{
		Name: "search",
		Description: "Perform a real-time web search via Exa and return a list of results " +
			"with title, url, and snippet fields. Optionally include full text in each result.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "The search query.",
				},
				"num_results": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return",
					"minimum":     1,
					"default":     exa.DefaultNumResults,
				},
				"include_text": map[string]interface{}{
					"type":        "boolean",
					"description": "Whether to include full page text in each search result",
					"default":     false,
				},
			},
			"required": []string{"query"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			query, err := requireString(input, "query")
			if err != nil {
				return "", err
			}
			numResults := argInt(input, "num_results", exa.DefaultNumResults)
			includeText := argBool(input, "include_text")

			results, err := client.Search(ctx, query, numResults)
			if err != nil {
				return "", err
			}
			if includeText {
				return marshalResult(client.EnrichResults(ctx, results))
			}
			return marshalResult(results)
		},
	}
}
