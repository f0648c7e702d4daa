package llm

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

const wolframURL = "https://api.wolframalpha.com/v1/result"

// Wolfram answers factual prompts through the short answers API
type Wolfram struct {
	appID   string
	baseURL string
	http    *http.Client
}

// NewWolfram builds the provider, a missing app id leaves it disabled
func NewWolfram(appID string) *Wolfram {
	return &Wolfram{
		appID:   appID,
		baseURL: wolframURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// Name satisfies Provider
func (w *Wolfram) Name() string { return "wolfram" }

// Enabled satisfies Provider
func (w *Wolfram) Enabled() bool { return w.appID != "" }

// Query satisfies Provider
func (w *Wolfram) Query(ctx context.Context, prompt string) (string, error) {
	q := url.Values{}
	q.Set("appid", w.appID)
	q.Set("i", prompt)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	return getText(ctx, w.http, w.baseURL+"?"+q.Encode(), w.Name())
}
