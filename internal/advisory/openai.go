package advisory

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient backs the advisory capability with a chat-completion model.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient builds a client for the given API key. Model defaults to
// gpt-4o-mini when blank.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIClient{client: openai.NewClient(apiKey), model: model}
}

// Summarize asks for a two-sentence business-health summary.
func (c *OpenAIClient) Summarize(ctx context.Context, snap FinancialSnapshot) (string, error) {
	payload, err := json.Marshal(snap)
	if err != nil {
		return "", err
	}
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(
					"Analyze this ERP financial data and provide a professional 2-sentence summary of business health: %s",
					payload),
			},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("advisory: empty completion")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// VerifyTaxID asks the model to validate an Indian GSTIN format and return a
// structured verdict.
func (c *OpenAIClient) VerifyTaxID(ctx context.Context, gstin string) (Verification, error) {
	if strings.TrimSpace(gstin) == "" {
		return Verification{IsValid: false, ErrorMessage: "GSTIN is empty."}, nil
	}
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(
					"Validate this Indian GSTIN format and simulate fetching legal details: %s. "+
						"Return a JSON object with: isValid (boolean), legalName, tradeName, "+
						"status (Active/Cancelled), and errorMessage if invalid.",
					gstin),
			},
		},
	})
	if err != nil {
		return Verification{}, err
	}
	if len(resp.Choices) == 0 {
		return Verification{}, fmt.Errorf("advisory: empty completion")
	}
	var v Verification
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &v); err != nil {
		return Verification{}, fmt.Errorf("advisory: decode verdict: %w", err)
	}
	return v, nil
}
