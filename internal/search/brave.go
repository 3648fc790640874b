package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/arbiterhq/arbiter/internal/domain"
)

const braveSearchURL = "https://api.search.brave.com/res/v1/web/search"

type BraveClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewBraveClient(apiKey string) *BraveClient {
	return &BraveClient{
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

type braveResponse struct {
	Web struct {
		Results []struct {
			Title       string `json:"title"`
			URL         string `json:"url"`
			Description string `json:"description"`
		} `json:"results"`
	} `json:"web"`
}

func (c *BraveClient) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	u := fmt.Sprintf("%s?q=%s&count=%s", braveSearchURL, url.QueryEscape(query), strconv.Itoa(limit))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create brave request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("brave request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read brave response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("brave API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result braveResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("unmarshal brave response: %w", err)
	}

	results := make([]domain.SearchResult, 0, limit)
	for _, r := range result.Web.Results {
		if len(results) >= limit {
			break
		}
		results = append(results, domain.SearchResult{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: r.Description,
			Domain:  hostOf(r.URL),
		})
	}
	return results, nil
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(u.Host, "www.")
}
