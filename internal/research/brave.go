// Package research provides best-effort company and recruiter research
// backed by the Brave Search API. Research failures never propagate:
// callers always receive a well-formed, possibly empty result.
package research

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBraveBaseURL is the Brave Search API endpoint.
const DefaultBraveBaseURL = "https://api.search.brave.com/res/v1"

// DefaultSearchTimeout bounds a single search call.
const DefaultSearchTimeout = 10 * time.Second

// SearchHit is one result from a web or news search.
type SearchHit struct {
	Title       string
	URL         string
	Description string
}

// Searcher is the minimal search surface the research service needs.
type Searcher interface {
	// WebSearch returns up to count web results for the query.
	WebSearch(ctx context.Context, query string, count int) ([]SearchHit, error)
	// NewsSearch returns up to count news results for the query.
	NewsSearch(ctx context.Context, query string, count int) ([]SearchHit, error)
}

// Error represents a failure calling the search API.
type Error struct {
	Query   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("search error for %q: %s: %v", e.Query, e.Message, e.Cause)
	}
	return fmt.Sprintf("search error for %q: %s", e.Query, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// BraveClient calls the Brave Search REST API.
type BraveClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewBraveClient creates a client for the Brave Search API.
func NewBraveClient(apiKey string) (*BraveClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	return &BraveClient{
		apiKey:  apiKey,
		baseURL: DefaultBraveBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultSearchTimeout,
		},
	}, nil
}

// braveWebResponse mirrors the slice of the Brave response we consume.
type braveWebResponse struct {
	Web struct {
		Results []braveResult `json:"results"`
	} `json:"web"`
}

type braveNewsResponse struct {
	Results []braveResult `json:"results"`
}

type braveResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// WebSearch returns up to count web results for the query.
func (c *BraveClient) WebSearch(ctx context.Context, query string, count int) ([]SearchHit, error) {
	var decoded braveWebResponse
	if err := c.get(ctx, "/web/search", query, count, &decoded); err != nil {
		return nil, err
	}
	return toHits(decoded.Web.Results), nil
}

// NewsSearch returns up to count news results for the query.
func (c *BraveClient) NewsSearch(ctx context.Context, query string, count int) ([]SearchHit, error) {
	var decoded braveNewsResponse
	if err := c.get(ctx, "/news/search", query, count, &decoded); err != nil {
		return nil, err
	}
	return toHits(decoded.Results), nil
}

// get performs one API request and decodes the JSON body into out.
func (c *BraveClient) get(ctx context.Context, path, query string, count int, out any) error {
	if count <= 0 {
		count = 5
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("count", strconv.Itoa(count))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return &Error{Query: query, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Query: query, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &Error{Query: query, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return &Error{Query: query, Message: "failed to read response", Cause: err}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Query: query, Message: "failed to parse response", Cause: err}
	}

	return nil
}

func toHits(results []braveResult) []SearchHit {
	hits := make([]SearchHit, 0, len(results))
	for _, r := range results {
		if r.URL == "" && r.Description == "" {
			continue
		}
		hits = append(hits, SearchHit{
			Title:       r.Title,
			URL:         r.URL,
			Description: r.Description,
		})
	}
	return hits
}
