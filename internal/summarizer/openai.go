// Package summarizer turns transcripts into summaries via the OpenAI
// chat completions API.
package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const defaultBase = "https://api.openai.com/v1"

const systemPrompt = "You are a helpful assistant that summarizes YouTube video transcripts. " +
	"Create a concise but comprehensive summary that captures the key points, " +
	"main arguments, and important details from the transcript."

// FallbackSummary is returned when summarization fails; the transcript
// is still stored and shown.
const FallbackSummary = "Error generating summary. The transcript may be too long or the service is unavailable."

// maxInputChars approximates the model context window (~16k tokens at
// ~4 chars per token). Longer transcripts are truncated, not rejected.
const maxInputChars = 16000 * 4

type Client struct {
	apiKey string
	model  string
	base   string
	http   *http.Client
}

func NewClient(apiKey, model string) *Client {
	return &Client{apiKey: apiKey, model: model, base: defaultBase, http: &http.Client{}}
}

// NewClientWithBase is used by tests to point at a local server.
func NewClientWithBase(base, apiKey, model string) *Client {
	return &Client{apiKey: apiKey, model: model, base: base, http: &http.Client{}}
}

type chatRequest struct {
	Model       string              `json:"model"`
	Messages    []map[string]string `json:"messages"`
	MaxTokens   int                 `json:"max_tokens,omitempty"`
	Temperature float32             `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Summarize produces a summary of the transcript text. It returns an
// error only for transport/decoding failures; callers decide whether
// to substitute FallbackSummary.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	if len(text) > maxInputChars {
		text = text[:maxInputChars]
	}

	body := chatRequest{
		Model: c.model,
		Messages: []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": "Please summarize this transcript: " + text},
		},
		Temperature: 0.5,
		MaxTokens:   1000,
	}

	b, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion failed: status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode chat completion: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
