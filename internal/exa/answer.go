package exa

import "context"

// Answer asks a natural-language question through Exa's Answer API. The
// response is passed through structurally unchanged; it carries at least
// "answer" and "citations" fields.
func (c *Client) Answer(ctx context.Context, query string, includeText bool) (map[string]any, error) {
	if query == "" {
		return nil, NewValidationError("argument 'query' is required")
	}

	payload := map[string]any{
		"query": query,
		"text":  includeText,
	}
	var out map[string]any
	if err := c.postJSON(ctx, answerEndpoint, payload, &out, singleTimeout); err != nil {
		return nil, err
	}
	return out, nil
}
