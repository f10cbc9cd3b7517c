package dream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	systemPrompt = "You are a professional dream analyst and counselor, skilled at interpreting dreams and offering psychological guidance."

	userPromptTemplate = `As a professional dream analyst and counselor, please analyze the following dream in depth.
Dream: %s

Please cover these aspects:
1. Key symbols in the dream and their possible meanings
2. The emotional state the dream reflects
3. Underlying psychological hints
4. Possible connections to waking life
5. Personalized suggestions for psychological wellbeing

Answer in professional but accessible language, keeping the analysis objective and the suggestions practical.`
)

// ErrNotConfigured is returned when no API key is set. The demo page shows a
// configuration notice instead of calling out.
var ErrNotConfigured = errors.New("dream interpretation API key is not configured")

// Client calls an OpenAI-compatible chat completions endpoint to interpret
// dream descriptions. One request per interpretation, no retry.
type Client struct {
	APIKey  string
	BaseURL string
	Model   string

	HTTPClient *http.Client
}

// NewClient builds a completion client from explicit configuration.
func NewClient(apiKey, baseURL, model string) *Client {
	return &Client{
		APIKey:  strings.TrimSpace(apiKey),
		BaseURL: strings.TrimRight(baseURL, "/"),
		Model:   model,
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// IsConfigured reports whether an API key is present.
func (c *Client) IsConfigured() bool {
	return c.APIKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// Interpret sends the dream text to the model and returns the first choice
// content split into paragraphs on newlines, empty lines dropped.
func (c *Client) Interpret(ctx context.Context, dreamText string) ([]string, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}
	text := strings.TrimSpace(dreamText)
	if text == "" {
		return nil, errors.New("dream description is required")
	}

	payload := chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(userPromptTemplate, text)},
		},
		Temperature: 0.7,
		MaxTokens:   1000,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("completion request failed: status=%d", resp.StatusCode)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if len(out.Choices) == 0 {
		return nil, errors.New("completion response contained no choices")
	}

	return SplitParagraphs(out.Choices[0].Message.Content), nil
}

// SplitParagraphs splits completion content on newlines, dropping empty
// lines, for paragraph-by-paragraph rendering.
func SplitParagraphs(content string) []string {
	var paragraphs []string
	for _, line := range strings.Split(content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs
}
