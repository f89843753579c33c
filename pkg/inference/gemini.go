package inference

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

// GeminiInferencer generates story text through Google's Gemini API.
type GeminiInferencer struct {
	client *genai.Client
	apiKey string
	model  string
}

func NewGeminiInferencer(apiKey string, model string) (*GeminiInferencer, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	return &GeminiInferencer{
		client: client,
		apiKey: apiKey,
		model:  model,
	}, nil
}

func (o *GeminiInferencer) ChangeConfig(config *genai.ClientConfig) {
	client, err := genai.NewClient(context.Background(), config)
	if err != nil {
		return
	}
	o.client = client
}

// Infer sends the instruction block and prompt to Gemini and returns the raw
// story text.
func (o *GeminiInferencer) Infer(ctx context.Context, system, user string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleModel),
		MaxOutputTokens:   int32(completionBudget(system, user)),
		Temperature:       genai.Ptr[float32](temperature),
	}

	result, err := o.client.Models.GenerateContent(ctx, o.model, genai.Text(user), config)
	if err != nil {
		return "", &ProviderError{Provider: "gemini", Err: err}
	}
	if result.Text() == "" {
		return "", &ProviderError{Provider: "gemini", Err: errors.New("empty completion content")}
	}

	return result.Text(), nil
}
