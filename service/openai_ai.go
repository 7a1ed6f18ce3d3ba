package service

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"

	"github.com/Harshilmalhotra/bfhl-internal-hack/types"
)

type OpenAIService struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

func NewOpenAIService(baseURL, apiKey, model string, maxTokens int, temperature float32) *OpenAIService {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	client := openai.NewClientWithConfig(config)
	return &OpenAIService{
		client:      client,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

func (s *OpenAIService) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: SystemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   s.maxTokens,
			Temperature: s.temperature,
		},
	)
	if err != nil {
		return "", &types.GatewayError{Provider: "openai", Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &types.GatewayError{Provider: "openai", Err: errors.New("no response generated")}
	}

	return resp.Choices[0].Message.Content, nil
}
