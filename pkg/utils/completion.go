package utils

import (
	"context"
	"fmt"
	"strings"
)

// CompletionClientInterface is the capability the itinerary and
// recommendation services depend on: one prompt in, one JSON document out.
// The service is non-deterministic; identical prompts may yield different
// plans, so callers must never assume repeatability.
type CompletionClientInterface interface {
	Name() string
	CompleteJSON(ctx context.Context, prompt string) (string, error)
}

// NewCompletionClient is the factory used by the fx wiring to pick a
// provider implementation from configuration.
func NewCompletionClient(provider, apiKey, model string) (CompletionClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAICompletionClient(apiKey, model), nil
	case "gemini":
		return NewGeminiCompletionClient(apiKey, model)
	case "claude":
		return NewClaudeCompletionClient(apiKey, model), nil
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s. Use 'openai', 'gemini' or 'claude'", provider)
	}
}
