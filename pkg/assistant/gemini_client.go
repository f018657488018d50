// Package assistant invokes the hosted generative-language endpoint for
// the legal chat. One request yields one complete reply; there is no
// streaming.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"legal-assist-be/internal/constant"
	"legal-assist-be/internal/locale"
	"legal-assist-be/pkg/conversation"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

	// defaultMaxHistory bounds the replayed history at prompt assembly;
	// the context itself grows unbounded for the session's lifetime.
	defaultMaxHistory = 20
)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiSafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
	SafetySettings   []geminiSafetySetting  `json:"safetySettings"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

// Uniform across all languages; blocking threshold matches the product's
// published safety posture.
var safetySettings = []geminiSafetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
}

var generationConfig = geminiGenerationConfig{
	Temperature:     0.7,
	TopK:            40,
	TopP:            0.95,
	MaxOutputTokens: 1024,
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithMaxHistory caps how many history entries are replayed per request.
// Zero or negative disables the cap.
func WithMaxHistory(maxHistory int) Option {
	return func(c *Client) {
		c.maxHistory = maxHistory
	}
}

type Client struct {
	apiKey     string
	model      string
	baseURL    string
	maxHistory int
	httpClient *http.Client
}

// NewClient builds a client with an explicit request timeout; a hung
// endpoint surfaces as ErrorKindUnavailable instead of stalling the turn.
func NewClient(apiKey, model string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		maxHistory: defaultMaxHistory,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Generate produces a reply for userText given the session language and
// accumulated history. On success the reply always carries the localized
// legal disclaimer. On failure the returned error is always a *ModelError.
func (c *Client) Generate(ctx context.Context, userText, language string, history []conversation.Turn) (string, error) {
	language = locale.Normalize(language)
	history = windowHistory(history, c.maxHistory)

	contents := make([]geminiContent, 0, len(history)+3)
	contents = append(contents, geminiContent{
		Parts: []geminiPart{{Text: locale.SystemPrompt(language)}},
		Role:  constant.ModelTurnRoleUser,
	})
	contents = append(contents, geminiContent{
		Parts: []geminiPart{{Text: locale.Acknowledgment(language)}},
		Role:  constant.ModelTurnRoleModel,
	})
	for _, turn := range history {
		contents = append(contents, geminiContent{
			Parts: []geminiPart{{Text: turn.Text}},
			Role:  string(turn.Role),
		})
	}
	contents = append(contents, geminiContent{
		Parts: []geminiPart{{Text: userText}},
		Role:  constant.ModelTurnRoleUser,
	})

	payload := geminiRequest{
		Contents:         contents,
		GenerationConfig: generationConfig,
		SafetySettings:   safetySettings,
	}

	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", &ModelError{Kind: ErrorKindUnavailable, Err: err}
	}

	url := fmt.Sprintf("%s/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", &ModelError{Kind: ErrorKindUnavailable, Err: err}
	}
	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ModelError{Kind: ErrorKindUnavailable, Err: err}
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", &ModelError{Kind: ErrorKindUnavailable, Err: err}
	}

	if res.StatusCode != http.StatusOK {
		return "", &ModelError{
			Kind: ErrorKindRejectedByProvider,
			Err:  fmt.Errorf("status %d: %s", res.StatusCode, string(resBody)),
		}
	}

	var geminiRes geminiResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", &ModelError{Kind: ErrorKindEmptyResponse, Err: err}
	}

	if len(geminiRes.Candidates) == 0 || len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", &ModelError{Kind: ErrorKindEmptyResponse}
	}

	text := geminiRes.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", &ModelError{Kind: ErrorKindEmptyResponse}
	}

	return locale.EnsureDisclaimer(text, language), nil
}

// GenerateForUpload announces an uploaded file by name and runs the same
// generation pipeline. File bytes are never sent to the model.
func (c *Client) GenerateForUpload(ctx context.Context, fileName, language string) (string, error) {
	prompt := locale.UploadPrompt(fileName, locale.Normalize(language))
	return c.Generate(ctx, prompt, language, nil)
}

// windowHistory keeps the most recent max entries, advancing past any
// leading model turn so the replayed history never opens with one.
func windowHistory(history []conversation.Turn, max int) []conversation.Turn {
	if max <= 0 || len(history) <= max {
		return history
	}
	start := len(history) - max
	for start < len(history) && history[start].Role == conversation.RoleModel {
		start++
	}
	return history[start:]
}
