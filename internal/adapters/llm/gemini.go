package llm

import (
	"context"
	"errors"

	"google.golang.org/genai"

	perr "assistant/internal/platform/errors"
)

// DefaultGeminiModel is used unless overridden
const DefaultGeminiModel = "gemini-2.5-pro"

// Gemini answers prompts through the Gemini API
type Gemini struct {
	apiKey string
	model  string
	client *genai.Client
}

// NewGemini builds the provider. A missing key leaves it disabled;
// client construction is deferred to the first query so a bad key
// does not fail boot
func NewGemini(apiKey, model string) *Gemini {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &Gemini{apiKey: apiKey, model: model}
}

// Name satisfies Provider
func (g *Gemini) Name() string { return "gemini" }

// Enabled satisfies Provider
func (g *Gemini) Enabled() bool { return g.apiKey != "" }

// Query satisfies Provider
func (g *Gemini) Query(ctx context.Context, prompt string) (string, error) {
	if g.client == nil {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  g.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "gemini: client init")
		}
		g.client = client
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) && apiErr.Code != 0 {
			return "", perr.WithStatus(
				perr.Wrapf(err, perr.ErrorCodeUnavailable, "gemini: generate"),
				apiErr.Code,
			)
		}
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "gemini: generate")
	}
	return resp.Text(), nil
}
