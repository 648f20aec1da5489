package exa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultBaseURL is the production Exa API.
	DefaultBaseURL = "https://api.exa.ai"

	searchEndpoint      = "/search"
	contentsEndpoint    = "/contents"
	findSimilarEndpoint = "/findSimilar"
	answerEndpoint      = "/answer"
	researchEndpoint    = "/research/v0/tasks"

	// singleTimeout bounds operations that touch one page or one query.
	singleTimeout = 30 * time.Second
	// bulkTimeout bounds contents calls that can aggregate many pages.
	bulkTimeout = 60 * time.Second
)

// Client issues requests against the Exa API. It is stateless between calls
// and safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a client for the given API key. An empty baseURL selects
// the production API. The key is not checked here; every operation fails fast
// with ErrMissingAPIKey when it is empty.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{},
	}
}

// request sends one HTTP request with the credential header attached and
// returns the raw response body. Non-2xx statuses become *HTTPError, network
// failures become *UnavailableError.
func (c *Client) request(ctx context.Context, method, path string, payload any, timeout time.Duration) ([]byte, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request payload: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debug().Str("method", method).Str("endpoint", path).Msg("sending request to Exa")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &UnavailableError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnavailableError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}
	return data, nil
}

// postJSON POSTs payload to path and decodes the JSON response into out.
func (c *Client) postJSON(ctx context.Context, path string, payload, out any, timeout time.Duration) error {
	data, err := c.request(ctx, http.MethodPost, path, payload, timeout)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// getJSON GETs path and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any, timeout time.Duration) error {
	data, err := c.request(ctx, http.MethodGet, path, nil, timeout)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
