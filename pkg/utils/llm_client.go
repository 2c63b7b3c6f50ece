package utils

import (
	"context"
	"fmt"
	"strings"
)

// LLMClient produces a JSON completion for a system/user prompt pair.
type LLMClient interface {
	CompleteJSON(ctx context.Context, system, user string) (string, error)
	Provider() string
	Close() error
}

// NewLLMClient picks a client by provider name. An empty api key is an error;
// callers decide whether to run without a client.
func NewLLMClient(provider, apiKey, model string) (LLMClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: no api key for provider %q", ErrAssistantUnavailable, provider)
	}
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIClient(apiKey, model), nil
	case "gemini":
		return NewGeminiClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

// CleanJSONResponse strips markdown fences and chatter around the first JSON
// object or array in an LLM response.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if end := findClosing(response, objStart, '{', '}'); end != -1 {
			response = response[objStart : end+1]
		}
	} else if arrStart != -1 {
		if end := findClosing(response, arrStart, '[', ']'); end != -1 {
			response = response[arrStart : end+1]
		}
	}

	return strings.TrimSpace(response)
}

// findClosing returns the index of the delimiter closing s[start], skipping
// over string literals, or -1.
func findClosing(s string, start int, open, close byte) int {
	if start >= len(s) || s[start] != open {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
