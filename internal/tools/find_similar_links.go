package tools

import (
	"context"

	"github.com/exatools/exa-mcp-server/internal/exa"
)

// FindSimilarLinksTool discovers links semantically related to a given URL.
func FindSimilarLinksTool(client *exa.Client) Tool {
	return Tool{
		Name: "find_similar_links",
		Description: "Given a URL, return a list of links with similar meaning using Exa's " +
			"findSimilar API. Useful for discovering related articles or pages.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"url": map[string]interface{}{
					"type":        "string",
					"description": "The URL to find similar links for.",
				},
				"include_text": map[string]interface{}{
					"type":        "boolean",
					"description": "Whether to include the text of each similar page in the response.",
					"default":     false,
				},
				"num_results": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of similar results to return",
					"minimum":     1,
					"default":     exa.DefaultNumResults,
				},
			},
			"required": []string{"url"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			url, err := requireString(input, "url")
			if err != nil {
				return "", err
			}
			links, err := client.FindSimilar(ctx, url,
				argBool(input, "include_text"),
				argInt(input, "num_results", exa.DefaultNumResults))
			if err != nil {
				return "", err
			}
			return marshalResult(links)
		},
	}
}
