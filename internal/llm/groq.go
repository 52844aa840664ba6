// Package llm holds a minimal chat-completions client for the Groq API,
// which speaks the OpenAI wire format.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"codeberg.org/mutker/droidpulse/internal/errors"
)

const defaultBaseURL = "https://api.groq.com/openai"

type Config struct {
	Model   string
	BaseURL string
	Timeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		BaseURL: defaultBaseURL,
		Timeout: 2 * time.Minute,
	}
}

type Client struct {
	apiKey     string
	httpClient *http.Client
	cfg        Config
}

// New creates a Groq client. An empty API key is allowed; Chat then fails
// with ErrAnalysisUnavailable so callers can fall back.
func New(cfg Config, apiKey string) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}

	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	Stream      bool          `json:"stream"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Chat submits a single user prompt and returns the reply text.
func (c *Client) Chat(ctx context.Context, prompt string, temperature float64) (string, error) {
	errFactory := errors.New()

	if c.apiKey == "" {
		return "", errFactory.WithMessage(errors.ErrAnalysisUnavailable, "no API key configured")
	}

	body, err := json.Marshal(chatRequest{
		Model:       c.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
		Stream:      false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errFactory.Wrap(errors.ErrAnalysisUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errFactory.Wrap(errors.ErrAnalysisUnavailable, err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", errFactory.Wrap(errors.ErrAnalysisUnavailable, err)
	}

	var resp chatResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", errFactory.Wrap(errors.ErrAnalysisParse, err)
	}

	if httpResp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("status %d", httpResp.StatusCode)
		if resp.Error != nil {
			msg = fmt.Sprintf("%s: %s", msg, resp.Error.Message)
		}
		return "", errFactory.WithMessage(errors.ErrAnalysisUnavailable, msg)
	}

	if len(resp.Choices) == 0 {
		return "", errFactory.WithMessage(errors.ErrAnalysisParse, "reply contains no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
