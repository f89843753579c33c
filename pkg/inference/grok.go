package inference

import (
	"context"
	"errors"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// GrokInferencer generates story text through xAI's OpenAI-compatible API.
type GrokInferencer struct {
	client *openai.Client
	apiKey string
	model  string
}

func NewGrokInferencer(apiKey string, model string) *GrokInferencer {
	if model == "" {
		model = "grok-4-fast-reasoning"
	}
	client := openai.NewClient(
		option.WithBaseURL("https://api.x.ai/v1"),
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(requestTimeout),
	)
	return &GrokInferencer{
		client: &client,
		apiKey: apiKey,
		model:  model,
	}
}

func (o *GrokInferencer) ChangeBaseURL(baseURL string) {
	client := openai.NewClient(
		option.WithAPIKey(o.apiKey),
		option.WithBaseURL(baseURL),
		option.WithRequestTimeout(requestTimeout),
	)
	o.client = &client
}

func (o *GrokInferencer) SetModel(model string) {
	o.model = model
}

// Infer sends the instruction block and prompt to the xAI chat completion
// endpoint and returns the raw story text.
func (o *GrokInferencer) Infer(ctx context.Context, system, user string) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, chatParams(o.model, system, user))
	if err != nil {
		return "", wrapErr("grok", err)
	}
	if len(resp.Choices) == 0 {
		return "", &ProviderError{Provider: "grok", Err: errors.New("no choices returned")}
	}
	if resp.Choices[0].Message.Content == "" {
		return "", &ProviderError{Provider: "grok", Err: errors.New("empty completion content")}
	}

	return resp.Choices[0].Message.Content, nil
}
