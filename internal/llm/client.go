package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/tacogips/aiscaffold/internal/debug"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultTimeout = 120 * time.Second

	// Rate limiting keeps sequential batches well under common provider
	// tiers; bursts cover the planning call plus the first content calls.
	defaultRequestsPerMinute = 60
	defaultBurstSize         = 4

	// errorBodyLimit bounds how much of an error body is kept for messages.
	errorBodyLimit = 2048
)

// ClientOptions configures a Client.
type ClientOptions struct {
	// BaseURL overrides the chat-completions endpoint base URL.
	BaseURL string
	// Model is the model identifier sent with every request.
	Model string
	// Timeout is the per-request timeout (0 uses the default).
	Timeout time.Duration
	// RequestsPerMinute bounds the request rate (0 uses the default).
	RequestsPerMinute int
}

// Client is a chat-completions API client for OpenAI-compatible providers.
// Calls are single-shot: there is no retry layer, the planning flow treats
// a failed call as a fallback trigger instead.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// defaultTransport returns an http.Transport with tuned connection pool settings.
func defaultTransport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   4,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ForceAttemptHTTP2:     true,
	}
}

// NewClient creates a new Client.
func NewClient(apiKey string, opts ClientOptions) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	rpm := opts.RequestsPerMinute
	if rpm <= 0 {
		rpm = defaultRequestsPerMinute
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   opts.Model,
		limiter: rate.NewLimiter(rate.Limit(float64(rpm)/60.0), defaultBurstSize),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: defaultTransport(),
		},
	}
}

// Model returns the model identifier this client sends.
func (c *Client) Model() string {
	return c.model
}

// Complete performs one chat completion and returns the reply text.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	if c.apiKey == "" {
		return "", newCompletionError(MissingAPIKey, "no API key configured", nil)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", newCompletionError(RequestFailed, "rate limiter wait interrupted", err)
	}

	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserPrompt},
		},
	}
	if req.JSONMode {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", newCompletionError(RequestFailed, "failed to encode request", err)
	}

	requestID := uuid.NewString()
	debug.Debug("[llm] request %s: model=%s, jsonMode=%v, userPrompt=%d bytes",
		requestID, c.model, req.JSONMode, len(req.UserPrompt))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", newCompletionError(RequestFailed, "failed to build request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", newCompletionError(RequestFailed, "request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", newCompletionError(RequestFailed, "failed to read response body", err)
	}

	debug.Debug("[llm] request %s: status=%d, %d bytes in %s",
		requestID, resp.StatusCode, len(data), time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &CompletionError{
			Type:       BadStatus,
			Message:    errorMessageFromBody(data),
			StatusCode: resp.StatusCode,
		}
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", newCompletionError(RequestFailed, "failed to decode response", err)
	}
	if parsed.Error != nil {
		return "", newCompletionError(RequestFailed, parsed.Error.Message, nil)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", newCompletionError(EmptyResponse, "provider returned no content", nil)
	}

	return parsed.Choices[0].Message.Content, nil
}

// errorMessageFromBody extracts a readable message from an error body.
func errorMessageFromBody(data []byte) string {
	if len(data) > errorBodyLimit {
		data = data[:errorBodyLimit]
	}

	var parsed struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return fmt.Sprintf("unexpected provider response: %s", bytes.TrimSpace(data))
}
