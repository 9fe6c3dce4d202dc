package gemini

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

var models = []string{
	"gemini-2.5-pro",
	"gemini-2.5-flash",
}

func Models() []string {
	return append([]string{}, models...)
}

func IsModelSupported(name string) bool {
	return slices.Contains(models, name)
}

// resolveModel maps an operator-supplied model name to a supported one,
// falling back to the default.
func resolveModel(model string) string {
	model = strings.TrimSpace(model)
	if slices.Contains(models, model) {
		return model
	}
	return defaultModel
}

// Client generates text through the Gemini API. It holds its own configured
// API handle; nothing else in the process talks to the service.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient builds a Gemini client from the given credential. The model name
// is resolved against the supported catalog.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key is required")
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Client{client: c, model: resolveModel(model)}, nil
}

// Model returns the resolved model name the client will use.
func (c *Client) Model() string {
	return c.model
}

// Generate sends one prompt and returns the raw reply text. There is no
// retry: a one-shot request surfaces its failure directly.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		if ctx.Err() != nil {
			return "", errors.New("gemini request interrupted")
		}
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("gemini returned empty response")
	}
	return text, nil
}
