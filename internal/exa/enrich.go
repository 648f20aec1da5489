package exa

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// EnrichResults upgrades search result stubs to full page content. It first
// attempts a single bulk contents call across all URLs; if that fails it
// falls back to one contents call per URL. A stub whose content cannot be
// fetched on either path is kept unchanged, so the returned list always has
// the same length and order as the input. Elements are either the original
// SearchResult or a PageContent replacement.
func (c *Client) EnrichResults(ctx context.Context, results []SearchResult) []any {
	enriched := make([]any, len(results))
	for i, r := range results {
		enriched[i] = r
	}
	if len(results) == 0 {
		return enriched
	}

	urls := make([]string, 0, len(results))
	for _, r := range results {
		if r.URL != "" {
			urls = append(urls, r.URL)
		}
	}

	pages, err := c.FetchContents(ctx, urls, "")
	if err == nil {
		byURL := make(map[string]PageContent, len(pages))
		for _, p := range pages {
			byURL[p.URL] = p
		}
		for i, r := range results {
			if p, ok := byURL[r.URL]; ok {
				enriched[i] = p
			}
		}
		return enriched
	}

	log.Warn().Err(err).Msg("bulk contents fetch failed, falling back to per-URL fetch")

	// Fan out one fetch per URL. Each goroutine owns its own index and never
	// returns an error, so one failed page cannot cancel the others.
	var g errgroup.Group
	for i, r := range results {
		i, r := i, r
		g.Go(func() error {
			page, err := c.FetchContent(ctx, r.URL)
			if err != nil {
				log.Debug().Err(err).Str("url", r.URL).Msg("per-URL content fetch failed, keeping search stub")
				return nil
			}
			enriched[i] = page
			return nil
		})
	}
	_ = g.Wait()
	return enriched
}
