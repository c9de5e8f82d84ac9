package recipe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

var ErrGeneratorUnavailable = errors.New("recipe generator is not configured")

// Generator sends a prompt to a text-generation service and returns its reply.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// UnavailableGenerator stands in when no API key is configured. Every slot
// then falls back.
type UnavailableGenerator struct{}

func (UnavailableGenerator) Generate(context.Context, string) (string, error) {
	return "", ErrGeneratorUnavailable
}

const (
	DefaultModel   = openai.GPT4o
	DefaultTimeout = 60 * time.Second
)

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

// NewOpenAIGenerator talks to any OpenAI-compatible chat completions API.
func NewOpenAIGenerator(cfg OpenAIConfig) *OpenAIGenerator {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	oc.HTTPClient = &http.Client{Timeout: timeout}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(oc),
		model:  model,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

// NewGenerator picks the OpenAI client when a key is set.
func NewGenerator(cfg OpenAIConfig) Generator {
	if cfg.APIKey == "" {
		return UnavailableGenerator{}
	}
	return NewOpenAIGenerator(cfg)
}
