package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Message is a single chat message sent to the completion service.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client calls an OpenAI-compatible chat-completions API over HTTP.
// It is stateless; each call is a single blocking request with no retries.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient creates a completion client for the given endpoint and model.
func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{},
	}
}

// checkResp returns an error if the status is not 2xx.
// On error it includes the upstream body for debugging.
func checkResp(resp *http.Response, path string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("completion service %s returned %d: %s", path, resp.StatusCode, string(body))
}

// CreateCompletion calls POST /chat/completions and returns the text of the
// first choice.
func (c *Client) CreateCompletion(ctx context.Context, messages []Message, temperature float64) (string, error) {
	const path = "/chat/completions"

	body, _ := json.Marshal(map[string]interface{}{
		"model":       c.model,
		"messages":    messages,
		"temperature": temperature,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("completion service %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion service %s: %w", path, err)
	}
	defer resp.Body.Close()

	if err := checkResp(resp, path); err != nil {
		return "", err
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("completion service %s: decode: %w", path, err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("completion service %s: no choices in response", path)
	}

	return result.Choices[0].Message.Content, nil
}
