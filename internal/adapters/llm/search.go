package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const cseURL = "https://www.googleapis.com/customsearch/v1"

// maxSearchResults caps how many hits get rendered into the answer
const maxSearchResults = 3

// Search is the web-search fallback via Google Custom Search
type Search struct {
	apiKey  string
	cseID   string
	baseURL string
	http    *http.Client
}

// NewSearch builds the provider, missing credentials leave it disabled
func NewSearch(apiKey, cseID string) *Search {
	return &Search{
		apiKey:  apiKey,
		cseID:   cseID,
		baseURL: cseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// Name satisfies Provider
func (s *Search) Name() string { return "search" }

// Enabled satisfies Provider
func (s *Search) Enabled() bool { return s.apiKey != "" && s.cseID != "" }

// Query satisfies Provider
func (s *Search) Query(ctx context.Context, prompt string) (string, error) {
	q := url.Values{}
	q.Set("key", s.apiKey)
	q.Set("cx", s.cseID)
	q.Set("q", prompt)

	var body struct {
		Items []struct {
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
			Link    string `json:"link"`
		} `json:"items"`
	}
	if err := getJSON(ctx, s.http, s.baseURL+"?"+q.Encode(), s.Name(), &body); err != nil {
		return "", err
	}
	if len(body.Items) == 0 {
		return "", nil
	}

	n := len(body.Items)
	if n > maxSearchResults {
		n = maxSearchResults
	}
	lines := make([]string, 0, n)
	for _, item := range body.Items[:n] {
		lines = append(lines, fmt.Sprintf("%s: %s (%s)", item.Title, item.Snippet, item.Link))
	}
	return strings.Join(lines, "\n\n"), nil
}
