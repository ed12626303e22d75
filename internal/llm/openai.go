package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// openAIClient implements LLMClient over the OpenAI chat completions API,
// or any server speaking the same protocol when Endpoint is set.
type openAIClient struct {
	cfg      LLMConfig
	api      *openai.Client
	observer Observer
}

// NewOpenAIClient creates an LLMClient backed by OpenAI chat completions.
func NewOpenAIClient(cfg LLMConfig, observer Observer) (LLMClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if observer == nil {
		observer = NoopObserver{}
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		oc.BaseURL = cfg.Endpoint
	}
	return &openAIClient{
		cfg:      cfg,
		api:      openai.NewClientWithConfig(oc),
		observer: observer,
	}, nil
}

func (c *openAIClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	temp, maxTok := c.cfg.resolve(req)

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.UserPrompt,
	})

	body := openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Temperature: float32(temp),
		MaxTokens:   maxTok,
	}

	return generateWithRetries(ctx, c.cfg, ProviderOpenAI, c.observer, req.Task, func(ctx context.Context) (string, string, error) {
		resp, err := c.api.CreateChatCompletion(ctx, body)
		if err != nil {
			return "", "", classifyAPIError(err)
		}
		if len(resp.Choices) == 0 {
			return "", resp.Model, errors.New("completion returned no choices")
		}
		return resp.Choices[0].Message.Content, resp.Model, nil
	})
}

// classifyAPIError marks client-side rejections as permanent. Rate limits
// and server errors stay retryable.
func classifyAPIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode >= 400 && apiErr.HTTPStatusCode < 500 && apiErr.HTTPStatusCode != http.StatusTooManyRequests {
			return &permanentError{fmt.Errorf("openai status %d: %w", apiErr.HTTPStatusCode, err)}
		}
		return fmt.Errorf("openai status %d: %w", apiErr.HTTPStatusCode, err)
	}
	return err
}

func (c *openAIClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := c.api.ListModels(ctx)
	return err == nil
}
