// Package openai implements llm.Provider on top of the OpenAI chat
// completions API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mimivibe/backend/pkg/llm"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-3.5-turbo"

	// Answers are short; generation stays bounded and deterministic.
	maxTokens   = 64
	temperature = 0.0

	// Covers the whole call: connect, send, receive.
	callTimeout = 20 * time.Second

	mockAnswer = "This is a mock response for testing purposes."
)

// Client is a minimal OpenAI chat completions client. All fields are set at
// construction and never written afterwards, so a single instance can be
// shared across request handlers.
type Client struct {
	APIKey   string
	BaseURL  string
	Model    string
	MockMode bool
	httpDo   *http.Client
}

// New builds a client. The model falls back to a default when empty. Outside
// mock mode an empty API key is rejected here instead of surfacing as a 401
// on the first call.
func New(apiKey, model string, mockMode bool) (*Client, error) {
	if apiKey == "" && !mockMode {
		return nil, errors.New("openai: api key is empty and mock mode is off")
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{
		APIKey:   apiKey,
		BaseURL:  defaultBaseURL,
		Model:    model,
		MockMode: mockMode,
		httpDo: &http.Client{
			Timeout: callTimeout,
		},
	}, nil
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// No omitempty on temperature: 0.0 must reach the wire.
type chatCompletionsRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type chatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type chatCompletionsResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}

// Ask sends the question as a single user message and returns the first
// choice's content plus the provider's payload as originally parsed.
func (c *Client) Ask(ctx context.Context, question string) (llm.Result, error) {
	if c.MockMode {
		return c.mockResult(), nil
	}

	reqBody := chatCompletionsRequest{
		Model:       c.Model,
		Messages:    []message{{Role: "user", Content: question}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return llm.Result{}, &llm.ProviderError{Kind: llm.ErrKindNetwork, Message: "encode request", Cause: err}
	}

	endpoint := fmt.Sprintf("%s/chat/completions", c.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return llm.Result{}, &llm.ProviderError{Kind: llm.ErrKindNetwork, Message: "build request", Cause: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return llm.Result{}, &llm.ProviderError{Kind: llm.ErrKindNetwork, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	// The body is read in full regardless of status: error diagnostics need it.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return llm.Result{}, &llm.ProviderError{Kind: llm.ErrKindNetwork, Message: "read response body", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// The raw body stays server-side; callers only see the status.
		slog.Error("openai returned non-success status", "status", resp.StatusCode, "body", string(body))
		return llm.Result{}, &llm.ProviderError{
			Kind:       llm.ErrKindHTTPStatus,
			StatusCode: resp.StatusCode,
			Message:    "openai request was rejected",
		}
	}

	var generic any
	if err := json.Unmarshal(body, &generic); err != nil {
		return llm.Result{}, &llm.ProviderError{Kind: llm.ErrKindParse, Message: "response body is not valid json", Cause: err}
	}
	raw, ok := generic.(map[string]any)
	if !ok {
		return llm.Result{}, &llm.ProviderError{Kind: llm.ErrKindSchema, Message: "response json is not an object"}
	}
	if _, ok := raw["choices"]; !ok {
		return llm.Result{}, &llm.ProviderError{Kind: llm.ErrKindSchema, Message: "response json has no choices field"}
	}
	var out chatCompletionsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return llm.Result{}, &llm.ProviderError{Kind: llm.ErrKindSchema, Message: "response json does not match the chat completions shape", Cause: err}
	}
	if len(out.Choices) == 0 {
		return llm.Result{}, &llm.ProviderError{Kind: llm.ErrKindEmptyResponse, Message: "no choices returned by model"}
	}

	// Raw goes back exactly as parsed so provider fields the typed view does
	// not model survive for downstream consumers.
	return llm.Result{Answer: out.Choices[0].Message.Content, Raw: raw}, nil
}

// mockResult is shaped like a real chat completions body so callers cannot
// tell the two paths apart structurally.
func (c *Client) mockResult() llm.Result {
	raw := map[string]any{
		"id":     "mock-123",
		"object": "chat.completion",
		"model":  c.Model,
		"choices": []any{
			map[string]any{
				"index": 0,
				"message": map[string]any{
					"role":    "assistant",
					"content": mockAnswer,
				},
				"finish_reason": "stop",
			},
		},
	}
	return llm.Result{Answer: mockAnswer, Raw: raw}
}
