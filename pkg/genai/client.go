package genai

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

	"go.uber.org/zap"
)

var (
	ErrMissingAPIKey = errors.New("text generation API key is not configured")
	ErrEmptyResponse = errors.New("text generation returned no text")
)

// Client talks to the generateContent endpoint of the text-generation API
type Client struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

// GenerateRequest is the request body of generateContent
type GenerateRequest struct {
	Contents []content `json:"contents"`
}

// GenerateResponse is the subset of the generateContent response we read
type GenerateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
}

// ErrorResponse represents an API error body
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// NewClient creates a new client instance
func NewClient(baseURL, apiKey, model string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		Model:      model,
		HTTPClient: &http.Client{Timeout: timeout},
		Logger:     logger,
	}
}

// Text returns the concatenated text parts of the first candidate
func (r *GenerateResponse) Text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// GenerateText sends a single user prompt and returns the generated text
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	body, err := json.Marshal(GenerateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.BaseURL, c.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.Logger.Error("Failed to create request", zap.Error(err))
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	c.Logger.Debug("Calling text generation API", zap.String("model", c.Model))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Error("Text generation request failed", zap.Error(err))
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Logger.Error("Failed to read response body", zap.Error(err))
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ErrorResponse
		if err := json.Unmarshal(respBody, &errorResp); err != nil || errorResp.Error.Message == "" {
			c.Logger.Error("Text generation returned error status",
				zap.Int("status", resp.StatusCode),
				zap.String("response", string(respBody)))
			return "", fmt.Errorf("text generation failed: %d %s", resp.StatusCode, string(respBody))
		}
		c.Logger.Error("Text generation error",
			zap.Int("status", resp.StatusCode),
			zap.String("error_status", errorResp.Error.Status),
			zap.String("message", errorResp.Error.Message))
		return "", fmt.Errorf("text generation failed: %s - %s", errorResp.Error.Status, errorResp.Error.Message)
	}

	var genResp GenerateResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		c.Logger.Error("Failed to parse text generation response", zap.Error(err))
		return "", err
	}

	text := strings.TrimSpace(genResp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}

	c.Logger.Debug("Text generation successful", zap.Int("length", len(text)))
	return text, nil
}
