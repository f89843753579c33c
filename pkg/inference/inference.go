package inference

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/openai/openai-go/v3"

	"fable/pkg/utils"
)

// Inferencer generates story text from a compiled instruction block and a
// sanitized user prompt. Implementations do not retry; retry and fallback
// policy belongs to the caller.
type Inferencer interface {
	Infer(ctx context.Context, system, user string) (string, error)
}

// Sampling shared by every chat-completion backed provider: creative but
// controllable variance, bounded output.
const (
	temperature         = 0.85
	minCompletionTokens = 512
	maxCompletionTokens = 2048
)

// requestTimeout bounds a single generation call; a timeout surfaces as the
// same ProviderError as any other transport failure.
var requestTimeout = 2 * time.Minute

// completionBudget sizes the output allowance from a token count of the full
// prompt. Longer instruction blocks describe longer stories, so the budget
// scales with them, clamped to [minCompletionTokens, maxCompletionTokens].
func completionBudget(system, user string) int64 {
	n, err := utils.NumTokens(system + user)
	if err != nil {
		// rough 4 chars per token when the encoding is unavailable
		n = len(system+user) / 4
	}
	budget := int64(n) * 2
	if budget < minCompletionTokens {
		budget = minCompletionTokens
	}
	if budget > maxCompletionTokens {
		budget = maxCompletionTokens
	}
	log.Debug("completion budget", "prompt_tokens", n, "max_completion_tokens", budget)
	return budget
}

// ProviderError is any transport failure or non-2xx response from an external
// generation endpoint, text or image.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Provider, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// wrapErr normalizes an openai-go SDK error into a ProviderError, keeping the
// upstream status and body when present.
func wrapErr(provider string, err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return &ProviderError{
			Provider:   provider,
			StatusCode: apiErr.StatusCode,
			Body:       apiErr.RawJSON(),
			Err:        err,
		}
	}
	return &ProviderError{Provider: provider, Err: err}
}
