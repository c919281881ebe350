// Package anthropic is the REST client for the text-completion service. The
// service is a black box to Horizon: it accepts a prompt and returns free-form
// text that is expected to contain a single JSON object.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/amapara27/Horizon/internal/domain"
)

const apiVersion = "2023-06-01"

// Client calls the messages endpoint of the completion service. It is
// explicitly constructed at process start; a missing API key yields a client
// whose Available() is false, and callers must degrade rather than dial out.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int
	httpClient *http.Client
}

// Config holds the completion-service connection parameters.
type Config struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// New creates a completion client from cfg, applying defaults for the model
// and token cap.
func New(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = "claude-3-haiku-20240307"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 512
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Available reports whether the client is configured with an API key.
func (c *Client) Available() bool { return c.apiKey != "" }

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends a single-user-message prompt and returns the raw response
// text. It returns domain.ErrUpstreamUnavailable when the client is not
// configured or the service cannot be reached.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if !c.Available() {
		return "", fmt.Errorf("anthropic: %w: no API key configured", domain.ErrUpstreamUnavailable)
	}

	payload, err := json.Marshal(messagesRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("anthropic: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("anthropic: %w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("anthropic: read response: %w", err)
	}

	var decoded messagesResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("anthropic: decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("HTTP %d", resp.StatusCode)
		if decoded.Error != nil {
			msg = decoded.Error.Message
		}
		return "", fmt.Errorf("anthropic: %w: %s", domain.ErrUpstreamUnavailable, msg)
	}

	if len(decoded.Content) == 0 {
		return "", fmt.Errorf("anthropic: %w: empty content", domain.ErrResponseParse)
	}

	return decoded.Content[0].Text, nil
}
