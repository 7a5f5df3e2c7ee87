package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/shawndavis1/ai-test-framework/internal/errs"
)

// GoogleClient implements the Client interface for Google Gemini
type GoogleClient struct {
	apiKey     string
	model      string
	httpClient *http.Client
	baseURL    string
}

// NewGoogleClient creates a new Google Gemini client
func NewGoogleClient(apiKey, model string) *GoogleClient {
	return &GoogleClient{
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{},
		baseURL:    "https://generativelanguage.googleapis.com/v1beta",
	}
}

// Google API request/response types
type googleRequest struct {
	Contents          []googleContent         `json:"contents"`
	SystemInstruction *googleContent          `json:"systemInstruction,omitempty"`
	GenerationConfig  *googleGenerationConfig `json:"generationConfig,omitempty"`
}

type googleContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []googlePart `json:"parts"`
}

type googlePart struct {
	Text string `json:"text"`
}

type googleGenerationConfig struct {
	Temperature     *float64 `json:"temperature,omitempty"`
	MaxOutputTokens int      `json:"maxOutputTokens,omitempty"`
}

type googleResponse struct {
	Candidates    []googleCandidate `json:"candidates"`
	UsageMetadata googleUsage       `json:"usageMetadata"`
}

type googleCandidate struct {
	Content      googleContent `json:"content"`
	FinishReason string        `json:"finishReason,omitempty"`
}

type googleUsage struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

// Complete sends a request to Google Gemini
func (c *GoogleClient) Complete(ctx context.Context, messages []Message, opts Options) (*Response, error) {
	reqBody := googleRequest{
		Contents: make([]googleContent, 0, len(messages)),
	}

	for _, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			reqBody.SystemInstruction = &googleContent{Parts: []googlePart{{Text: msg.Content}}}
		case RoleAssistant:
			// Gemini calls the assistant role "model"
			reqBody.Contents = append(reqBody.Contents, googleContent{Role: "model", Parts: []googlePart{{Text: msg.Content}}})
		default:
			reqBody.Contents = append(reqBody.Contents, googleContent{Role: msg.Role, Parts: []googlePart{{Text: msg.Content}}})
		}
	}

	if opts.Temperature != nil || opts.MaxTokens > 0 {
		reqBody.GenerationConfig = &googleGenerationConfig{
			Temperature:     opts.Temperature,
			MaxOutputTokens: opts.MaxTokens,
		}
	}

	// The key travels as a header so it never appears in a *url.Error.
	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)

	var googleResp googleResponse
	headers := map[string]string{"x-goog-api-key": c.apiKey}
	if err := postJSON(ctx, c.httpClient, url, headers, reqBody, &googleResp); err != nil {
		return nil, errs.Service("gemini", err)
	}

	if len(googleResp.Candidates) == 0 {
		return nil, errs.Service("gemini", errors.New("no response candidates"))
	}

	var content strings.Builder
	for _, part := range googleResp.Candidates[0].Content.Parts {
		content.WriteString(part.Text)
	}

	return &Response{
		Content:      content.String(),
		InputTokens:  googleResp.UsageMetadata.PromptTokenCount,
		OutputTokens: googleResp.UsageMetadata.CandidatesTokenCount,
		Model:        c.model,
	}, nil
}

// Provider returns the provider name
func (c *GoogleClient) Provider() Provider {
	return ProviderGoogle
}

// Model returns the model name
func (c *GoogleClient) Model() string {
	return c.model
}
