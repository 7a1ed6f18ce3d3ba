package service

import "context"

// SystemPrompt frames every completion request sent to a gateway.
const SystemPrompt = "You are a precise document analyst. Find and extract specific information accurately."

// AIService is the LLM completion gateway. Implementations carry their own
// model, token limit and temperature configuration; failures are returned as
// *types.GatewayError.
type AIService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
