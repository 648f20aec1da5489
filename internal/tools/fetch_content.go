package tools

import (
	"context"

	"github.com/exatools/exa-mcp-server/internal/exa"
)

// FetchContentTool retrieves the full text content of a single URL.
func FetchContentTool(client *exa.Client) Tool {
	return Tool{
		Name: "fetch_content",
		Description: "Retrieve and read the full text content of a given URL using Exa's " +
			"content retrieval API. Use after obtaining a URL from the search tool or other means.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"url": map[string]interface{}{
					"type":        "string",
					"description": "The URL of the page to fetch.",
				},
			},
			"required": []string{"url"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			url, err := requireString(input, "url")
			if err != nil {
				return "", err
			}
			page, err := client.FetchContent(ctx, url)
			if err != nil {
				return "", err
			}
			return marshalResult(page)
		},
	}
}
