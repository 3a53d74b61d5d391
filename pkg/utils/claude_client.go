package utils

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// ClaudeCompletionClient implements CompletionClientInterface using the
// Anthropic messages API. Claude has no JSON response mode, so the prompt
// itself must demand JSON and the output is cleaned before use.
type ClaudeCompletionClient struct {
	client *anthropic.Client
	model  string
}

func NewClaudeCompletionClient(apiKey, model string) CompletionClientInterface {
	if model == "" {
		model = "claude-sonnet-4-20250514"
	}
	return &ClaudeCompletionClient{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (c *ClaudeCompletionClient) Name() string {
	return "claude"
}

func (c *ClaudeCompletionClient) CompleteJSON(ctx context.Context, prompt string) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.F(c.model),
		MaxTokens:   anthropic.F(int64(8192)),
		Temperature: anthropic.F(0.3),
		Messages: anthropic.F([]anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		}),
	})
	if err != nil {
		return "", fmt.Errorf("claude: %w", err)
	}

	var text string
	for _, block := range message.Content {
		if block.Type == "text" {
			text = block.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("claude returned no text content")
	}

	return CleanJSONResponse(text), nil
}
