package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare object passes through",
			input:    `{"days": []}`,
			expected: `{"days": []}`,
		},
		{
			name:     "markdown fences are stripped",
			input:    "```json\n{\"days\": []}\n```",
			expected: `{"days": []}`,
		},
		{
			name:     "uppercase fence tag",
			input:    "```JSON\n{\"days\": []}\n```",
			expected: `{"days": []}`,
		},
		{
			name:     "prose prefix is dropped",
			input:    `Here's the itinerary: {"days": []}`,
			expected: `{"days": []}`,
		},
		{
			name:     "trailing commentary after the object is cut",
			input:    `{"days": []} Let me know if you'd like any changes!`,
			expected: `{"days": []}`,
		},
		{
			name:     "leading chatter before the object is cut",
			input:    `Sure! Your plan: {"days": []}`,
			expected: `{"days": []}`,
		},
		{
			name:     "braces inside string values do not end the object",
			input:    `{"note": "use {curly} braces"} trailing`,
			expected: `{"note": "use {curly} braces"}`,
		},
		{
			name:     "escaped quote inside a string",
			input:    `{"note": "she said \"go\" now"} extra`,
			expected: `{"note": "she said \"go\" now"}`,
		},
		{
			name:     "array payload",
			input:    "```json\n[1, 2, 3]\n```",
			expected: `[1, 2, 3]`,
		},
		{
			name:     "object preferred when it comes first",
			input:    `{"items": [1, 2]} [3]`,
			expected: `{"items": [1, 2]}`,
		},
		{
			name:     "unbalanced object is left as-is",
			input:    `{"days": [`,
			expected: `{"days": [`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanJSONResponse(tt.input)
			assert.Equal(t, tt.expected, got)
			if json.Valid([]byte(tt.expected)) {
				assert.True(t, json.Valid([]byte(got)))
			}
		})
	}
}
