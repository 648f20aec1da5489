package exa

import "context"

// DefaultSubpages is the number of subpages crawled when unspecified.
const DefaultSubpages = 5

// FetchContent retrieves the full text content of a single URL. Returns
// ErrNoContent when Exa has nothing for the URL.
func (c *Client) FetchContent(ctx context.Context, url string) (PageContent, error) {
	if url == "" {
		return PageContent{}, NewValidationError("argument 'url' is required")
	}

	payload := map[string]any{
		"urls": []string{url},
		"text": true,
	}
	var resp resultsResponse
	if err := c.postJSON(ctx, contentsEndpoint, payload, &resp, singleTimeout); err != nil {
		return PageContent{}, err
	}
	if len(resp.Results) == 0 {
		return PageContent{}, ErrNoContent
	}

	it := resp.Results[0]
	return PageContent{Title: it.Title, URL: it.URL, Text: it.Text}, nil
}

// FetchContents retrieves the full text content of multiple URLs in one call.
// Results come back in upstream response order, which is not necessarily the
// input order, and pages Exa could not fetch are simply omitted. The optional
// livecrawl mode ("always", "preferred" or "never") is forwarded unvalidated;
// Exa rejects unknown values.
func (c *Client) FetchContents(ctx context.Context, urls []string, livecrawl string) ([]PageContent, error) {
	if len(urls) == 0 {
		return nil, NewValidationError("argument 'urls' must be a non-empty list of URLs")
	}

	payload := map[string]any{
		"urls": urls,
		"text": true,
	}
	if livecrawl != "" {
		payload["livecrawl"] = livecrawl
	}
	var resp resultsResponse
	if err := c.postJSON(ctx, contentsEndpoint, payload, &resp, bulkTimeout); err != nil {
		return nil, err
	}

	pages := make([]PageContent, 0, len(resp.Results))
	for _, it := range resp.Results {
		pages = append(pages, PageContent{Title: it.Title, URL: it.URL, Text: it.Text})
	}
	return pages, nil
}

// FetchSubpages crawls a root URL and a number of its subpages, returning the
// root page content together with the discovered subpage contents.
func (c *Client) FetchSubpages(ctx context.Context, p SubpagesParams) (*SubpageBundle, error) {
	if p.URL == "" {
		return nil, NewValidationError("argument 'url' is required")
	}
	if p.Subpages <= 0 {
		p.Subpages = DefaultSubpages
	}

	payload := map[string]any{
		"urls":     []string{p.URL},
		"text":     true,
		"subpages": p.Subpages,
	}
	if len(p.SubpageTarget) > 0 {
		payload["subpage_target"] = p.SubpageTarget
	}
	if p.Livecrawl != "" {
		payload["livecrawl"] = p.Livecrawl
	}
	var resp resultsResponse
	if err := c.postJSON(ctx, contentsEndpoint, payload, &resp, bulkTimeout); err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, ErrNoContent
	}

	it := resp.Results[0]
	bundle := &SubpageBundle{
		Page:     PageContent{Title: it.Title, URL: it.URL, Text: it.Text},
		Subpages: make([]PageContent, 0, len(it.Subpages)),
	}
	for _, sub := range it.Subpages {
		bundle.Subpages = append(bundle.Subpages, PageContent{Title: sub.Title, URL: sub.URL, Text: sub.Text})
	}
	return bundle, nil
}
