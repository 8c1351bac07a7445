package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"
)

const serperBaseURL = "https://google.serper.dev"

// SerperSearch queries the Serper.dev Google Search API. Without an API key
// every search returns empty results and the pipeline runs with degraded
// evidence quality.
type SerperSearch struct {
	apiKey string
	http   *http.Client
}

func NewSerperSearch(apiKey string) *SerperSearch {
	if apiKey == "" {
		log.Printf("serper: SERPER_API_KEY not set, web search disabled")
	}
	return &SerperSearch{
		apiKey: apiKey,
		http:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *SerperSearch) Search(ctx context.Context, query string, maxResults int) []SearchResult {
	return s.search(ctx, "search", query, maxResults)
}

// SearchNews hits the news endpoint, used for the corroboration probe.
func (s *SerperSearch) SearchNews(ctx context.Context, query string, maxResults int) []SearchResult {
	return s.search(ctx, "news", query, maxResults)
}

func (s *SerperSearch) search(ctx context.Context, kind, query string, maxResults int) []SearchResult {
	if s.apiKey == "" {
		return nil
	}
	if maxResults <= 0 {
		maxResults = 5
	}

	body, _ := json.Marshal(map[string]any{"q": query, "num": maxResults})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, serperBaseURL+"/"+kind, bytes.NewReader(body))
	if err != nil {
		log.Printf("serper: build request: %v", err)
		return nil
	}
	req.Header.Set("X-API-KEY", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		log.Printf("serper: request failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		log.Printf("serper: status %d: %s", resp.StatusCode, snippet)
		return nil
	}

	var payload struct {
		Organic []struct {
			Title   string `json:"title"`
			Link    string `json:"link"`
			Snippet string `json:"snippet"`
		} `json:"organic"`
		News []struct {
			Title   string `json:"title"`
			Link    string `json:"link"`
			Snippet string `json:"snippet"`
		} `json:"news"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("serper: decode: %v", err)
		return nil
	}

	out := make([]SearchResult, 0, maxResults)
	for _, r := range payload.Organic {
		out = append(out, SearchResult{Title: r.Title, URL: r.Link, Snippet: r.Snippet})
	}
	for _, r := range payload.News {
		out = append(out, SearchResult{Title: r.Title, URL: r.Link, Snippet: r.Snippet})
	}
	if len(out) > maxResults {
		out = out[:maxResults]
	}
	return out
}
