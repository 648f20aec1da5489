// Package exa is a thin client for the Exa web-research API. It exposes one
// function per API capability (search, contents, findSimilar, answer,
// research tasks) and normalizes the heterogeneous upstream JSON into small
// stable shapes. Every normalized shape always serializes its declared keys,
// even when the upstream field was absent.
package exa

// SearchResult is one web search hit. Snippet holds the page text when
// available, falling back to the upstream summary, else the empty string.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// PageContent is the extracted content of a single page.
type PageContent struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Text  string `json:"text"`
}

// SimilarLink is one findSimilar hit. Text is nil unless full text was
// requested, so it serializes as an explicit null rather than a missing key.
type SimilarLink struct {
	Title string   `json:"title"`
	URL   string   `json:"url"`
	Score *float64 `json:"score"`
	Text  *string  `json:"text"`
}

// SubpageBundle is the result of a subpage crawl: the root page plus the
// discovered subpages.
type SubpageBundle struct {
	Page     PageContent   `json:"page"`
	Subpages []PageContent `json:"subpages"`
}

// SubpagesParams are the inputs to FetchSubpages.
type SubpagesParams struct {
	URL           string
	Subpages      int
	SubpageTarget []string
	Livecrawl     string
}

// resultItem covers every field the search, contents and findSimilar
// endpoints may return per item.
type resultItem struct {
	Title    string       `json:"title"`
	URL      string       `json:"url"`
	Text     string       `json:"text"`
	Summary  string       `json:"summary"`
	Score    *float64     `json:"score"`
	Subpages []resultItem `json:"subpages"`
}

type resultsResponse struct {
	Results []resultItem `json:"results"`
}

// snippet returns the best available short text for an item.
func (it resultItem) snippet() string {
	if it.Text != "" {
		return it.Text
	}
	return it.Summary
}
