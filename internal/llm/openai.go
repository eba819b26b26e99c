package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// openAIClient implements Client on top of the OpenAI chat completion API.
type openAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func newOpenAIClient(cfg *Config) *openAIClient {
	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	return &openAIClient{
		client:  openai.NewClient(cfg.APIKey),
		model:   model,
		timeout: cfg.Timeout,
	}
}

func (c *openAIClient) Explain(ctx context.Context, word string) (string, error) {
	return c.complete(ctx, explainPrompt(word))
}

func (c *openAIClient) Monologue(ctx context.Context, word string) (string, error) {
	return c.complete(ctx, monologuePrompt(word))
}

func (c *openAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, prompt)
}

func (c *openAIClient) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := callContext(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoContent
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrNoContent
	}
	return text, nil
}
