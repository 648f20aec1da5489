package exa

import (
	"context"

	"github.com/rs/zerolog/log"
)

// DefaultNumResults is used when a caller does not specify how many search or
// findSimilar results to return.
const DefaultNumResults = 3

// Search performs a web search and returns up to numResults normalized
// results. Snippets fall back from text to summary to the empty string.
func (c *Client) Search(ctx context.Context, query string, numResults int) ([]SearchResult, error) {
	if query == "" {
		return nil, NewValidationError("argument 'query' is required")
	}
	if numResults <= 0 {
		numResults = DefaultNumResults
	}

	payload := map[string]any{
		"query":       query,
		"num_results": numResults,
		"text":        false,
	}
	var resp resultsResponse
	if err := c.postJSON(ctx, searchEndpoint, payload, &resp, singleTimeout); err != nil {
		return nil, err
	}

	items := resp.Results
	if len(items) > numResults {
		items = items[:numResults]
	}
	results := make([]SearchResult, 0, len(items))
	for _, it := range items {
		results = append(results, SearchResult{
			Title:   it.Title,
			URL:     it.URL,
			Snippet: it.snippet(),
		})
	}
	log.Debug().Int("count", len(results)).Str("query", query).Msg("search results")
	return results, nil
}

// FindSimilar returns up to numResults links semantically related to the
// content at url. When includeText is false the Text field stays nil even if
// the upstream response carried text.
func (c *Client) FindSimilar(ctx context.Context, url string, includeText bool, numResults int) ([]SimilarLink, error) {
	if url == "" {
		return nil, NewValidationError("argument 'url' is required")
	}
	if numResults <= 0 {
		numResults = DefaultNumResults
	}

	payload := map[string]any{
		"url":  url,
		"text": includeText,
	}
	var resp resultsResponse
	if err := c.postJSON(ctx, findSimilarEndpoint, payload, &resp, singleTimeout); err != nil {
		return nil, err
	}

	items := resp.Results
	if len(items) > numResults {
		items = items[:numResults]
	}
	links := make([]SimilarLink, 0, len(items))
	for _, it := range items {
		link := SimilarLink{
			Title: it.Title,
			URL:   it.URL,
			Score: it.Score,
		}
		if includeText {
			text := it.snippet()
			link.Text = &text
		}
		links = append(links, link)
	}
	return links, nil
}
