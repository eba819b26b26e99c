package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// geminiClient implements Client on top of the Gemini API.
type geminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func newGeminiClient(cfg *Config) (*geminiClient, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &geminiClient{client: client, model: model, timeout: cfg.Timeout}, nil
}

func (c *geminiClient) Explain(ctx context.Context, word string) (string, error) {
	return c.Generate(ctx, explainPrompt(word))
}

func (c *geminiClient) Monologue(ctx context.Context, word string) (string, error) {
	return c.Generate(ctx, monologuePrompt(word))
}

func (c *geminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := callContext(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrNoContent
	}
	return text, nil
}
