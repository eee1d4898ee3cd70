package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = "gpt-4o-mini"

// Models known to honor response_format json_object.
var openAIJSONModels = map[string]bool{
	"gpt-4o":             true,
	"gpt-4o-mini":        true,
	"gpt-4-turbo":        true,
	"gpt-3.5-turbo-1106": true,
}

type OpenAIReportClient struct {
	client *openai.Client
	apiKey string
	model  string
}

func NewOpenAIReportClient(apiKey, model string) *OpenAIReportClient {
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIReportClient{
		client: openai.NewClient(apiKey),
		apiKey: apiKey,
		model:  model,
	}
}

func (c *OpenAIReportClient) ModelName() string {
	return c.model
}

func (c *OpenAIReportClient) GenerateReport(ctx context.Context, answers map[string]string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}
	if len(answers) == 0 {
		return "", fmt.Errorf("%w: empty answer set", ErrInvalidInput)
	}

	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return "", fmt.Errorf("marshal answers: %w", err)
	}

	jsonMode := openAIJSONModels[c.model]
	systemPrompt := SystemPrompt
	if jsonMode {
		systemPrompt += jsonOutputInstruction
	} else {
		systemPrompt += markdownOutputInstruction
	}

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Gere a devolutiva final em português (Brasil), tom consultivo, direto, sem promessas irreais. Aqui estão as respostas do quiz em JSON: %s", string(answersJSON)),
			},
		},
		Temperature: 0.7,
		MaxTokens:   2000,
	}
	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, req)
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices returned")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("openai: empty completion")
	}
	return content, nil
}
