// Package llm holds the external answer providers the assistant falls
// back through: Gemini, OpenAI, Wolfram Alpha short answers, and Google
// Custom Search. Each provider reports Enabled from its credentials and
// returns errors tagged with the upstream HTTP status so callers can
// decide retry versus terminal
package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	perr "assistant/internal/platform/errors"
)

// Provider is one external answer source
type Provider interface {
	Name() string

	// Enabled reports whether credentials are configured,
	// disabled providers are skipped without a network call
	Enabled() bool

	// Query returns the provider's answer, empty string means no answer
	Query(ctx context.Context, prompt string) (string, error)
}

const defaultTimeout = 30 * time.Second

// getText issues a GET and returns the body as text, mapping non-2xx
// statuses to errors that carry the upstream status
func getText(ctx context.Context, client *http.Client, url, name string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "%s: new request", name)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "%s: request failed", name)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "%s: read body", name)
	}
	if resp.StatusCode != http.StatusOK {
		return "", perr.WithStatus(
			perr.Unavailablef("%s: status %d", name, resp.StatusCode),
			resp.StatusCode,
		)
	}
	return string(body), nil
}

// getJSON issues a GET and decodes a JSON body with the same status mapping
func getJSON(ctx context.Context, client *http.Client, url, name string, out any) error {
	body, err := getText(ctx, client, url, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(body), out); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "%s: decode response", name)
	}
	return nil
}
