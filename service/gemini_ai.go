package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/Harshilmalhotra/bfhl-internal-hack/types"
)

// GeminiService is the Gemini-backed completion gateway. Several API keys can
// be configured; the service rotates to the next one when a call fails.
type GeminiService struct {
	apiKeys     []string
	currentKey  int
	client      *genai.Client
	model       *genai.GenerativeModel
	modelName   string
	maxTokens   int
	temperature float32
	mu          sync.Mutex
}

func NewGeminiService(apiKeys []string, modelName string, maxTokens int, temperature float32) (*GeminiService, error) {
	if len(apiKeys) == 0 {
		return nil, errors.New("no API keys provided")
	}

	s := &GeminiService{
		apiKeys:     apiKeys,
		currentKey:  0,
		modelName:   modelName,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
	if err := s.initClient(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *GeminiService) initClient() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(s.apiKeys[s.currentKey]))
	if err != nil {
		return err
	}
	if s.client != nil {
		s.client.Close()
	}
	s.client = client
	model := client.GenerativeModel(s.modelName)
	model.SetMaxOutputTokens(int32(s.maxTokens))
	model.SetTemperature(s.temperature)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(SystemPrompt)},
	}
	s.model = model
	return nil
}

func (s *GeminiService) rotateAPIKey() error {
	s.mu.Lock()
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
	s.mu.Unlock()
	return s.initClient()
}

func (s *GeminiService) Complete(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	model := s.model
	s.mu.Unlock()

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil && len(s.apiKeys) > 1 {
		// Retry once on the next key, the current one may be exhausted.
		if rotateErr := s.rotateAPIKey(); rotateErr == nil {
			s.mu.Lock()
			model = s.model
			s.mu.Unlock()
			resp, err = model.GenerateContent(ctx, genai.Text(prompt))
		}
	}
	if err != nil {
		return "", &types.GatewayError{Provider: "gemini", Err: err}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", &types.GatewayError{Provider: "gemini", Err: errors.New("no response generated")}
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", &types.GatewayError{Provider: "gemini", Err: errors.New("empty response")}
	}
	return sb.String(), nil
}

func (s *GeminiService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		s.client.Close()
	}
}
