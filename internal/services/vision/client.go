package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL     = "https://generativelanguage.googleapis.com"
	defaultModel       = "gemini-2.0-flash"
	defaultHTTPTimeout = 60 * time.Second
)

// Client wraps the multimodal generateContent API.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Option customizes the vision client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the default API base (useful for tests/mocks).
func WithBaseURL(base string) Option {
	return func(c *Client) {
		base = strings.TrimSpace(base)
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithModel overrides the default model identifier.
func WithModel(model string) Option {
	return func(c *Client) {
		model = strings.TrimSpace(model)
		if model != "" {
			c.model = model
		}
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// NewClient constructs a metadata service client.
func NewClient(apiKey string, opts ...Option) *Client {
	client := &Client{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    defaultBaseURL,
		model:      defaultModel,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.baseURL == "" {
		client.baseURL = defaultBaseURL
	}
	if client.model == "" {
		client.model = defaultModel
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return client
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// ImageMetadata captures the JSON payload embedded in the model response.
type ImageMetadata struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Keywords       []string `json:"keywords"`
	TopTenKeywords []string `json:"topTenKeywords"`
	AltText        string   `json:"altText"`
	Category       string   `json:"category"`
	Raw            string   `json:"-"`
}

// GenerateMetadata sends image data to the model and parses the embedded
// metadata JSON out of its response.
func (c *Client) GenerateMetadata(ctx context.Context, mimeType string, data []byte) (ImageMetadata, error) {
	var empty ImageMetadata
	if len(data) == 0 {
		return empty, errors.New("vision generate: image data required")
	}
	mimeType = strings.TrimSpace(mimeType)
	if mimeType == "" {
		return empty, errors.New("vision generate: mime type required")
	}
	if c.apiKey == "" {
		return empty, errors.New("vision generate: api key required")
	}

	requestBody := generateContentRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{MIMEType: mimeType, Data: base64.StdEncoding.EncodeToString(data)}},
				{Text: MetadataPrompt},
			},
		}},
		GenerationConfig: &generationConfig{
			Temperature:      0.4,
			ResponseMIMEType: "application/json",
		},
	}

	endpoint, err := url.JoinPath(c.baseURL, "/v1beta/models/", c.model+":generateContent")
	if err != nil {
		return empty, fmt.Errorf("vision generate: build url: %w", err)
	}
	encoded, err := json.Marshal(requestBody)
	if err != nil {
		return empty, fmt.Errorf("vision generate: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return empty, fmt.Errorf("vision generate: request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return empty, fmt.Errorf("vision generate: request failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return empty, fmt.Errorf("vision generate: read body: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return empty, fmt.Errorf("vision generate: http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var completion generateContentResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return empty, fmt.Errorf("vision generate: decode response: %w", err)
	}
	if completion.Error != nil {
		return empty, fmt.Errorf("vision generate: api error: %s", strings.TrimSpace(completion.Error.Message))
	}
	text := completion.text()
	if text == "" {
		return empty, errors.New("vision generate: empty content")
	}

	var parsed ImageMetadata
	if err := DecodeModelJSON(text, &parsed); err != nil {
		return empty, fmt.Errorf("vision generate: parse payload: %w", err)
	}
	parsed.Raw = text
	parsed.Title = strings.TrimSpace(parsed.Title)
	parsed.Description = strings.TrimSpace(parsed.Description)
	parsed.AltText = strings.TrimSpace(parsed.AltText)
	parsed.Category = strings.TrimSpace(parsed.Category)
	return parsed, nil
}

// HealthCheck issues a fast text-only ping to verify the API key and model.
func (c *Client) HealthCheck(ctx context.Context) error {
	if c.apiKey == "" {
		return errors.New("vision health: api key required")
	}
	requestBody := generateContentRequest{
		Contents: []content{{
			Parts: []part{{Text: "Respond with {\"ok\":true}"}},
		}},
		GenerationConfig: &generationConfig{ResponseMIMEType: "application/json"},
	}

	endpoint, err := url.JoinPath(c.baseURL, "/v1beta/models/", c.model+":generateContent")
	if err != nil {
		return fmt.Errorf("vision health: build url: %w", err)
	}
	encoded, err := json.Marshal(requestBody)
	if err != nil {
		return fmt.Errorf("vision health: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("vision health: request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("vision health: request failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("vision health: read body: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("vision health: http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var completion generateContentResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return fmt.Errorf("vision health: decode response: %w", err)
	}
	if completion.Error != nil {
		return fmt.Errorf("vision health: api error: %s", strings.TrimSpace(completion.Error.Message))
	}
	var parsed struct {
		OK bool `json:"ok"`
	}
	if err := DecodeModelJSON(completion.text(), &parsed); err != nil {
		return fmt.Errorf("vision health: parse payload: %w", err)
	}
	if !parsed.OK {
		return errors.New("vision health: unexpected response")
	}
	return nil
}

type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature,omitempty"`
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (r generateContentResponse) text() string {
	for _, candidate := range r.Candidates {
		for _, p := range candidate.Content.Parts {
			if trimmed := strings.TrimSpace(p.Text); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}
