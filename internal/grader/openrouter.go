package grader

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Grading parameters sent with every request. Low temperature keeps the
// scoring deterministic-leaning; the token cap bounds the critique length.
const (
	systemMessage = "你是专业的英语翻译题批改老师。"
	temperature   = 0.2
	maxTokens     = 1024
)

// OpenRouterGrader grades answers through an OpenAI-compatible chat
// completion endpoint (OpenRouter in production, anything speaking the same
// protocol in tests).
type OpenRouterGrader struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// Compile-time check: *OpenRouterGrader satisfies the Grader interface.
var _ Grader = (*OpenRouterGrader)(nil)

// NewOpenRouter creates a grader that calls the given endpoint. The timeout
// bounds each Grade call; on expiry the request is cancelled and
// ErrProviderTimeout is returned.
func NewOpenRouter(baseURL, apiKey, model string, timeout time.Duration) (*OpenRouterGrader, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &OpenRouterGrader{
		client:  openai.NewClientWithConfig(config),
		model:   model,
		timeout: timeout,
	}, nil
}

// Grade sends the prompt as a single user turn alongside the fixed system
// instruction and returns the provider's reply text verbatim. Exactly one
// attempt is made.
func (g *OpenRouterGrader) Grade(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", mapProviderError(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: response contained no choices", ErrProviderError)
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("%w: response contained empty content", ErrProviderError)
	}

	return content, nil
}

// mapProviderError sorts a call failure into the three caller-visible
// kinds: timeout, provider-side error, or network failure.
func mapProviderError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrProviderTimeout, err)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: status %d: %v", ErrProviderError, apiErr.HTTPStatusCode, err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("%w: status %d: %v", ErrProviderError, reqErr.HTTPStatusCode, err)
	}

	return fmt.Errorf("%w: %v", ErrProviderUnreachable, err)
}
