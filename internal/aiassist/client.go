// Package aiassist talks to an OpenAI-compatible API for the CV parsing,
// draft generation and summarization features. Every feature degrades
// gracefully when no API key is configured.
package aiassist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// ErrNotConfigured is returned when no API key is available.
var ErrNotConfigured = errors.New("ai assistance is not configured")

const (
	defaultBaseURL    = "https://api.openai.com/v1"
	defaultModel      = "gpt-4o-mini"
	defaultImageModel = "dall-e-3"
)

// Client calls the chat-completions and image-generation endpoints.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	imageModel string
	httpClient *http.Client
}

// NewClientFromEnv reads OPENAI_API_KEY, OPENAI_BASE_URL, OPENAI_MODEL and
// OPENAI_IMAGE_MODEL. A client without a key is still usable; its calls
// return ErrNotConfigured.
func NewClientFromEnv() *Client {
	c := &Client{
		apiKey:     os.Getenv("OPENAI_API_KEY"),
		baseURL:    strings.TrimSuffix(os.Getenv("OPENAI_BASE_URL"), "/"),
		model:      os.Getenv("OPENAI_MODEL"),
		imageModel: os.Getenv("OPENAI_IMAGE_MODEL"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.model == "" {
		c.model = defaultModel
	}
	if c.imageModel == "" {
		c.imageModel = defaultImageModel
	}
	return c
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
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// complete sends one system+user exchange and returns the assistant text.
func (c *Client) complete(ctx context.Context, system, user string, jsonOutput bool) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	if jsonOutput {
		reqBody.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	var parsed chatResponse
	if err := c.post(ctx, "/chat/completions", reqBody, &parsed); err != nil {
		return "", err
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("ai provider error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("ai provider returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

type imageRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format"`
}

type imageResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// generateImage returns the base64-encoded image for the prompt.
func (c *Client) generateImage(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	reqBody := imageRequest{
		Model:          c.imageModel,
		Prompt:         prompt,
		N:              1,
		Size:           "1024x1024",
		ResponseFormat: "b64_json",
	}
	var parsed imageResponse
	if err := c.post(ctx, "/images/generations", reqBody, &parsed); err != nil {
		return "", err
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("ai provider error: %s", parsed.Error.Message)
	}
	if len(parsed.Data) == 0 || parsed.Data[0].B64JSON == "" {
		return "", errors.New("ai provider returned no image")
	}
	return parsed.Data[0].B64JSON, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call ai provider: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read ai response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ai provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return json.Unmarshal(raw, out)
}
