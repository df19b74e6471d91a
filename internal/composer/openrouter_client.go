package composer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	defaultOpenRouterModel   = "meta-llama/llama-3.3-8b-instruct:free"
	completionTimeout        = 60 * time.Second
)

type chatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenRouterClient generates completions through OpenRouter's
// OpenAI-compatible chat completions endpoint.
type OpenRouterClient struct {
	chat  chatClient
	model string
}

// OpenRouterConfig holds configuration for the OpenRouter client.
type OpenRouterConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// NewOpenRouterClient creates a client for the OpenRouter API.
func NewOpenRouterClient(cfg OpenRouterConfig) (*OpenRouterClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("composer: openrouter api key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultOpenRouterBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultOpenRouterModel
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &OpenRouterClient{
		chat:  openai.NewClientWithConfig(clientCfg),
		model: cfg.Model,
	}, nil
}

// Complete sends a single user-turn completion request and returns the
// trimmed response text.
func (c *OpenRouterClient) Complete(ctx context.Context, req Request) (Response, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}

	callCtx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	resp, err := c.chat.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return Response{}, fmt.Errorf("composer: openrouter completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Response{}, errors.New("composer: openrouter returned no choices")
	}

	return Response{Text: strings.TrimSpace(resp.Choices[0].Message.Content)}, nil
}

var _ LLMClient = (*OpenRouterClient)(nil)
