package completion_fx

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/fx"

	"roamwarrior/pkg/utils"
)

var Module = fx.Provide(
	ProvideCompletionConfig,
	ProvideCompletionClient,
)

// CompletionConfig holds provider selection and the per-call bound shared by
// every adapter.
type CompletionConfig struct {
	Provider string
	APIKey   string
	Model    string
	Timeout  time.Duration
}

// ProvideCompletionConfig reads configuration from environment variables.
func ProvideCompletionConfig() CompletionConfig {
	provider := getEnvWithDefault("COMPLETION_PROVIDER", "gemini")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using the OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using the Gemini provider")
		}
	case "claude":
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
		model = getEnvWithDefault("CLAUDE_MODEL", "claude-sonnet-4-20250514")
		if apiKey == "" {
			log.Fatal("ANTHROPIC_API_KEY is required when using the Claude provider")
		}
	}

	timeoutSeconds := 45
	if raw := os.Getenv("COMPLETION_TIMEOUT_SECONDS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeoutSeconds = parsed
		}
	}

	return CompletionConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
		Timeout:  time.Duration(timeoutSeconds) * time.Second,
	}
}

// ProvideCompletionClient creates the completion client for the configured
// provider.
func ProvideCompletionClient(config CompletionConfig) (utils.CompletionClientInterface, error) {
	log.Printf("Initializing %s completion client with model: %s", config.Provider, config.Model)

	client, err := utils.NewCompletionClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}
	return client, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
