package llm

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	perr "assistant/internal/platform/errors"
)

// DefaultOpenAIModel is used unless overridden
const DefaultOpenAIModel = openai.ChatModelGPT3_5Turbo

// maxAnswerTokens bounds the completion so spoken answers stay short
const maxAnswerTokens = 300

// OpenAI answers prompts through chat completions
type OpenAI struct {
	apiKey string
	model  string
	client openai.Client
}

// NewOpenAI builds the provider, a missing key leaves it disabled
func NewOpenAI(apiKey, model string) *OpenAI {
	if model == "" {
		model = DefaultOpenAIModel
	}
	p := &OpenAI{apiKey: apiKey, model: model}
	if apiKey != "" {
		p.client = openai.NewClient(option.WithAPIKey(apiKey))
	}
	return p
}

// Name satisfies Provider
func (o *OpenAI) Name() string { return "openai" }

// Enabled satisfies Provider
func (o *OpenAI) Enabled() bool { return o.apiKey != "" }

// Query satisfies Provider
func (o *OpenAI) Query(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model:     o.model,
		MaxTokens: openai.Int(maxAnswerTokens),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", perr.WithStatus(
				perr.Wrapf(err, perr.ErrorCodeUnavailable, "openai: completion"),
				apiErr.StatusCode,
			)
		}
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "openai: completion")
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
