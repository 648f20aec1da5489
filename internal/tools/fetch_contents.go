package tools

import (
	"context"

	"github.com/exatools/exa-mcp-server/internal/exa"
)

// FetchContentsTool retrieves the full text contents of multiple URLs in one
// call.
func FetchContentsTool(client *exa.Client) Tool {
	return Tool{
		Name: "fetch_contents",
		Description: "Retrieve the full text contents of multiple URLs in one call via Exa's " +
			"contents API. Provide a list of URLs and optionally specify the livecrawl mode " +
			"to control whether Exa should fetch fresh pages.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"urls": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "A list of URLs to fetch. Must contain at least one URL.",
				},
				"livecrawl": map[string]interface{}{
					"type":        "string",
					"description": "Optional livecrawl mode: 'always', 'preferred', or 'never'.",
					"enum":        []string{"always", "preferred", "never"},
				},
			},
			"required": []string{"urls"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			urls, ok := argStringSlice(input, "urls")
			if !ok || len(urls) == 0 {
				return "", exa.NewValidationError("argument 'urls' must be a non-empty list")
			}
			pages, err := client.FetchContents(ctx, urls, argString(input, "livecrawl"))
			if err != nil {
				return "", err
			}
			return marshalResult(pages)
		},
	}
}
