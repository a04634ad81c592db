// Package cohere is a minimal client for the Cohere v1 chat and embed
// APIs, covering exactly the capabilities the insight pipeline consumes.
package cohere

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/siderealhq/insight-service/internal/corpus"
	"github.com/siderealhq/insight-service/internal/health"
	"github.com/siderealhq/insight-service/internal/model"
)

const defaultBaseURL = "https://api.cohere.com"

// Config carries client construction parameters. An empty APIKey yields
// an unconfigured client whose calls return model.ErrCapabilityUnavailable.
type Config struct {
	APIKey     string
	BaseURL    string
	ChatModel  string
	EmbedModel string
}

// Client talks to the Cohere API. A nil http field marks the
// unconfigured state; the service then runs on fallback templates only.
type Client struct {
	http       *resty.Client
	chatModel  string
	embedModel string
}

var _ corpus.Embedder = (*Client)(nil)
var _ health.Pinger = (*Client)(nil)

// New builds a client. Missing credentials are not an error: the caller
// decides how to degrade.
func New(cfg Config) *Client {
	c := &Client{chatModel: cfg.ChatModel, embedModel: cfg.EmbedModel}
	if cfg.APIKey == "" {
		return c
	}

	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	c.http = resty.New().
		SetBaseURL(base).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(cfg.APIKey).
		SetTimeout(60 * time.Second)
	return c
}

// Configured reports whether an API key was supplied.
func (c *Client) Configured() bool { return c.http != nil }

// HealthPing checks API reachability with a cheap authenticated call.
func (c *Client) HealthPing(ctx context.Context) error {
	if c.http == nil {
		return fmt.Errorf("cohere ping: %w", model.ErrCapabilityUnavailable)
	}
	resp, err := c.http.R().SetContext(ctx).Get("/v1/models")
	if err != nil {
		return fmt.Errorf("cohere ping: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("cohere ping status %d", resp.StatusCode())
	}
	return nil
}

type chatRequest struct {
	Model       string  `json:"model"`
	Message     string  `json:"message"`
	Preamble    string  `json:"preamble,omitempty"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

type chatResponse struct {
	Text    string `json:"text"`
	Message string `json:"message"`
}

// Chat generates text for the given prompt.
func (c *Client) Chat(ctx context.Context, prompt, preamble string, temperature float64, maxTokens int) (string, error) {
	if c.http == nil {
		return "", fmt.Errorf("cohere chat: %w", model.ErrCapabilityUnavailable)
	}

	reqBody := chatRequest{
		Model:       c.chatModel,
		Message:     prompt,
		Preamble:    preamble,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	resp, err := c.http.R().SetContext(ctx).SetBody(&reqBody).Post("/v1/chat")
	if err != nil {
		return "", fmt.Errorf("cohere chat: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("cohere chat status %d: %s", resp.StatusCode(), resp.String())
	}

	var out chatResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	return strings.TrimSpace(out.Text), nil
}

type embedRequest struct {
	Model     string   `json:"model"`
	Texts     []string `json:"texts"`
	InputType string   `json:"input_type"`
}

type embedResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
	Message    string      `json:"message"`
}

// Embed returns one vector per input text, order-preserving. Mode selects
// the asymmetric document/query encoding.
func (c *Client) Embed(ctx context.Context, texts []string, mode corpus.EmbedMode) ([][]float32, error) {
	if c.http == nil {
		return nil, fmt.Errorf("cohere embed: %w", model.ErrCapabilityUnavailable)
	}
	if len(texts) == 0 {
		return nil, nil
	}

	reqBody := embedRequest{Model: c.embedModel, Texts: texts, InputType: string(mode)}
	resp, err := c.http.R().SetContext(ctx).SetBody(&reqBody).Post("/v1/embed")
	if err != nil {
		return nil, fmt.Errorf("cohere embed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("cohere embed status %d: %s", resp.StatusCode(), resp.String())
	}

	var out embedResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode embed response: %w", err)
	}
	if len(out.Embeddings) != len(texts) {
		return nil, fmt.Errorf("cohere embed: got %d vectors for %d texts", len(out.Embeddings), len(texts))
	}
	return out.Embeddings, nil
}
