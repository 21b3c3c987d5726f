package providers

import (
	"context"
	"strings"
)

// Config is the per-call configuration for a text-classification request.
type Config struct {
	Credentials  Credentials `json:"credentials"`
	Model        string      `json:"model"`
	MaxTokens    int         `json:"max_tokens,omitempty"`
	Temperature  float64     `json:"temperature,omitempty"`
	SystemPrompt string      `json:"system_prompt,omitempty"`
	History      []string    `json:"history,omitempty"`
}

type Credentials struct {
	ApiKey string `json:"api_key"`
}

type CompletionResponse struct {
	ID       string `json:"id"`
	Model    string `json:"model"`
	Response string `json:"response"`
	Usage    Usage  `json:"usage"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=client_mock.go --case=underscore --with-expecter

// Client is the capability every classification provider implements. The
// moderation adapters depend only on this interface, which keeps the
// providers interchangeable and trivially mockable.
type Client interface {
	Ask(ctx context.Context, config *Config, prompt string) (*CompletionResponse, error)
}

// FormatHistory renders the bounded recent-message window handed to the
// classifier as conversation context.
func FormatHistory(history []string) string {
	if len(history) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("[Recent messages]\n")
	for _, line := range history {
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.WriteString("- ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
