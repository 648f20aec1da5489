package tools

import (
	"context"

	"github.com/exatools/exa-mcp-server/internal/exa"
)

// FetchSubpagesTool crawls a website root and a number of its subpages.
func FetchSubpagesTool(client *exa.Client) Tool {
	return Tool{
		Name: "fetch_subpages",
		Description: "Crawl a website and retrieve the contents of the root page and a number " +
			"of its subpages. Use this when you need to explore beyond the main page, such as " +
			"fetching 'about' or 'products' pages on a company site.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"url": map[string]interface{}{
					"type":        "string",
					"description": "The root URL from which to crawl subpages.",
				},
				"subpages": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of subpages to crawl.",
					"minimum":     1,
					"default":     exa.DefaultSubpages,
				},
				"subpage_target": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Optional keywords used to prioritise which subpages to fetch.",
				},
				"livecrawl": map[string]interface{}{
					"type":        "string",
					"description": "Optional livecrawl mode: 'always', 'preferred', or 'never'.",
					"enum":        []string{"always", "preferred", "never"},
				},
			},
			"required": []string{"url"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			url, err := requireString(input, "url")
			if err != nil {
				return "", err
			}
			target, ok := argStringSlice(input, "subpage_target")
			if !ok {
				return "", exa.NewValidationError("argument 'subpage_target' must be an array of strings if provided")
			}
			bundle, err := client.FetchSubpages(ctx, exa.SubpagesParams{
				URL:           url,
				Subpages:      argInt(input, "subpages", exa.DefaultSubpages),
				SubpageTarget: target,
				Livecrawl:     argString(input, "livecrawl"),
			})
			if err != nil {
				return "", err
			}
			return marshalResult(bundle)
		},
	}
}
