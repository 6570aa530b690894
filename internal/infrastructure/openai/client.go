// Package openai implements the Summarizer port against the OpenAI
// chat-completions API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/coursehub/course-platform/internal/core/domain"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-3.5-turbo"

	systemPrompt = "You are a helpful assistant that summarizes course descriptions concisely."
)

// Client is a minimal OpenAI chat-completions client used for course
// description summaries.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	httpDo  *http.Client
}

func New(apiKey, baseURL, model string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		httpDo:  &http.Client{Timeout: 60 * time.Second},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionsRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float32   `json:"temperature,omitempty"`
}

type chatCompletionsResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// Summarize asks the model for a concise summary of text. All failure modes
// (missing key, transport error, non-2xx status, empty response) surface as
// domain.ErrSummaryUnavailable with the upstream detail attached.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: api key is not configured, set OPENAI_API_KEY", domain.ErrSummaryUnavailable)
	}

	reqBody := chatCompletionsRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: "Please provide a concise summary of the following course description: " + text},
		},
		MaxTokens:   150,
		Temperature: 0.7,
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrSummaryUnavailable, err)
	}

	endpoint := c.baseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrSummaryUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrSummaryUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: upstream status %d: %s", domain.ErrSummaryUnavailable, resp.StatusCode, body)
	}

	var out chatCompletionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", domain.ErrSummaryUnavailable, err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned by model", domain.ErrSummaryUnavailable)
	}
	return out.Choices[0].Message.Content, nil
}
