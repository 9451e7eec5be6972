// Package llm provides the outbound chat-completion client abstraction.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/jonathan/jobgen/internal/config"
	"github.com/jonathan/jobgen/internal/types"
)

// systemInstruction constrains the model to JSON-only output.
const systemInstruction = "You are a professional job description writer. " +
	"Respond only with valid JSON. Do not include any code or script tags in your response."

// securityHeaders are sent on every upstream call.
var securityHeaders = map[string]string{
	"User-Agent":    "JobGenerator/1.0",
	"Accept":        "application/json",
	"Cache-Control": "no-cache",
	"Pragma":        "no-cache",
}

// Client is the narrow seam over the completion service. Implementations
// return the raw message text of the first completion choice.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ChatClient implements Client against an OpenAI-style chat-completions
// endpoint with bearer authentication.
type ChatClient struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
}

// NewChatClient creates a chat-completion client from the validated
// process configuration.
func NewChatClient(cfg *config.Config) *ChatClient {
	return &ChatClient{
		endpoint:   cfg.APIEndpoint,
		model:      cfg.Model,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete issues a single attempt against the completion service. Every
// failure is a terminal SecurityError: the caller's fallback generator
// substitutes for retry logic, so nothing here retries.
func (c *ChatClient) Complete(ctx context.Context, prompt string) (string, error) {
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   1000,
		Temperature: 0.7,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", &types.SecurityError{Message: "API request failed", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &types.SecurityError{Message: "API request failed", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range securityHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", classifyStatusError(resp.StatusCode)
	}

	contentType := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(contentType, "application/json") {
		return "", &types.SecurityError{Message: "invalid response content type"}
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &types.SecurityError{Message: "invalid API response structure", Err: err}
	}
	if len(parsed.Choices) == 0 {
		return "", &types.SecurityError{Message: "invalid API response structure"}
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

// classifyTransportError maps network-level failures to user-safe messages.
func classifyTransportError(err error) error {
	var urlErr *url.Error
	if (errors.As(err, &urlErr) && urlErr.Timeout()) || errors.Is(err, context.DeadlineExceeded) {
		return &types.SecurityError{Message: "request timeout - please try again", Err: err}
	}
	return &types.SecurityError{Message: "unable to connect to API service", Err: err}
}

// classifyStatusError maps non-2xx upstream statuses to user-safe messages.
// Everything outside the listed cases collapses to a generic failure.
func classifyStatusError(status int) error {
	cause := fmt.Errorf("upstream returned status %d", status)
	switch status {
	case http.StatusTooManyRequests:
		return &types.SecurityError{Message: "API rate limit exceeded - please wait before retrying", Err: cause}
	case http.StatusUnauthorized:
		return &types.SecurityError{Message: "API authentication failed", Err: cause}
	default:
		return &types.SecurityError{Message: "API request failed", Err: cause}
	}
}
