// Package gemini wraps the Google GenAI SDK behind the one call this tool
// makes.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

const systemInstruction = "You are an expert software architect producing repository analysis reports."

// Config carries everything the client needs. The API key is resolved by
// the caller at process start; this package never reads the environment.
type Config struct {
	APIKey string
	Model  string
}

// Client issues GenerateContent calls against the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// New creates a client from cfg. An empty API key is an error.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// Analyze sends the composed prompt in a single GenerateContent call and
// returns the report text.
func (c *Client) Analyze(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	})
	if err != nil {
		return "", fmt.Errorf("generating report: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}
	return resp.Text(), nil
}
