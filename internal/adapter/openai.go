package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIAdapter connects to the OpenAI chat completions API, or any
// OpenAI-compatible endpoint when BaseURL points elsewhere.
type OpenAIAdapter struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAIAdapter builds an adapter for the given credential and model.
// baseURL overrides the default API endpoint when non-empty; httpClient
// overrides the SDK's default client when non-nil.
func NewOpenAIAdapter(apiKey, model, baseURL string, httpClient *http.Client) *OpenAIAdapter {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return &OpenAIAdapter{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClientWithConfig(cfg),
	}
}

func (o *OpenAIAdapter) Name() string {
	return fmt.Sprintf("OpenAI (%s)", o.model)
}

func (o *OpenAIAdapter) Complete(ctx context.Context, req Request) (string, error) {
	if o.apiKey == "" {
		return "", fmt.Errorf("openai: %w", ErrNotConfigured)
	}

	var messages []openai.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.User,
	})

	chatReq := openai.ChatCompletionRequest{
		Model:       o.model,
		Messages:    messages,
		Temperature: samplingTemperature,
	}
	if req.JSONMode {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := o.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response content")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (o *OpenAIAdapter) Available() bool {
	return o.apiKey != ""
}
