package provider

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const factCheckBaseURL = "https://factchecktools.googleapis.com/v1alpha1/claims:search"

// GoogleFactCheck queries the Google Fact Check Tools API for published
// claim reviews. Unconfigured or failing lookups return nothing; the debate
// still reaches a verdict without the independent signal.
type GoogleFactCheck struct {
	apiKey string
	http   *http.Client
}

func NewGoogleFactCheck(apiKey string) *GoogleFactCheck {
	if apiKey == "" {
		log.Printf("factcheck: GOOGLE_FACT_CHECK_API_KEY not set, claim review lookup disabled")
	}
	return &GoogleFactCheck{
		apiKey: apiKey,
		http:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (f *GoogleFactCheck) Lookup(ctx context.Context, query string, maxResults int) []ClaimReview {
	if f.apiKey == "" {
		return nil
	}
	if maxResults <= 0 {
		maxResults = 5
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("languageCode", "en")
	q.Set("pageSize", strconv.Itoa(maxResults))
	q.Set("key", f.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, factCheckBaseURL+"?"+q.Encode(), nil)
	if err != nil {
		log.Printf("factcheck: build request: %v", err)
		return nil
	}

	resp, err := f.http.Do(req)
	if err != nil {
		log.Printf("factcheck: request failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		log.Printf("factcheck: status %d: %s", resp.StatusCode, snippet)
		return nil
	}

	var payload struct {
		Claims []struct {
			Text        string `json:"text"`
			ClaimReview []struct {
				Publisher struct {
					Name string `json:"name"`
				} `json:"publisher"`
				Title         string `json:"title"`
				URL           string `json:"url"`
				TextualRating string `json:"textualRating"`
			} `json:"claimReview"`
		} `json:"claims"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("factcheck: decode: %v", err)
		return nil
	}

	var out []ClaimReview
	for _, c := range payload.Claims {
		for _, r := range c.ClaimReview {
			out = append(out, ClaimReview{
				ClaimText: c.Text,
				Publisher: r.Publisher.Name,
				Title:     r.Title,
				URL:       r.URL,
				Rating:    r.TextualRating,
			})
			if len(out) >= maxResults {
				return out
			}
		}
	}
	return out
}
