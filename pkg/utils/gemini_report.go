package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-flash"

type GeminiReportClient struct {
	apiKey string
	model  string

	mu     sync.Mutex
	client *genai.Client
}

func NewGeminiReportClient(apiKey, model string) *GeminiReportClient {
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiReportClient{apiKey: apiKey, model: model}
}

func (c *GeminiReportClient) ModelName() string {
	return c.model
}

// ensureClient connects lazily so a missing key fails the generate call, not
// process startup.
func (c *GeminiReportClient) ensureClient(ctx context.Context) (*genai.Client, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		return c.client, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	c.client = client
	return client, nil
}

func (c *GeminiReportClient) GenerateReport(ctx context.Context, answers map[string]string) (string, error) {
	if len(answers) == 0 {
		return "", fmt.Errorf("%w: empty answer set", ErrInvalidInput)
	}

	client, err := c.ensureClient(ctx)
	if err != nil {
		return "", err
	}

	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return "", fmt.Errorf("marshal answers: %w", err)
	}

	m := client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.7)
	m.SetMaxOutputTokens(2000)

	prompt := fmt.Sprintf("%s%s\n\nGere a devolutiva final em português (Brasil), tom consultivo, direto, sem promessas irreais. Aqui estão as respostas do quiz em JSON: %s",
		SystemPrompt, jsonOutputInstruction, string(answersJSON))

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated")
	}

	content := strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	if content == "" {
		return "", fmt.Errorf("gemini: empty completion")
	}
	return content, nil
}

// Close closes the Gemini client.
func (c *GeminiReportClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
