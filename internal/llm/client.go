package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/shawndavis1/ai-test-framework/internal/errs"
)

// ClientConfig selects and authenticates a provider.
type ClientConfig struct {
	Provider   Provider
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a client for cfg.Provider. It fails with a configuration error
// when the provider is unknown or no API key is set.
func New(cfg ClientConfig) (Client, error) {
	if !cfg.Provider.Valid() {
		return nil, errs.Config("unknown provider %q", cfg.Provider)
	}
	if cfg.APIKey == "" {
		return nil, errs.Config("%s environment variable required", cfg.Provider.KeyEnv())
	}

	model := cfg.Model
	if model == "" {
		model = cfg.Provider.DefaultModel()
	}

	var c Client
	switch cfg.Provider {
	case ProviderAnthropic:
		ac := NewAnthropicClient(cfg.APIKey, model)
		setTransport(&ac.baseURL, &ac.httpClient, cfg)
		c = ac
	case ProviderGoogle:
		gc := NewGoogleClient(cfg.APIKey, model)
		setTransport(&gc.baseURL, &gc.httpClient, cfg)
		c = gc
	default:
		oc := NewOpenAIClient(cfg.APIKey, model)
		setTransport(&oc.baseURL, &oc.httpClient, cfg)
		c = oc
	}
	return c, nil
}

func setTransport(baseURL *string, httpClient **http.Client, cfg ClientConfig) {
	if cfg.BaseURL != "" {
		*baseURL = cfg.BaseURL
	}
	if cfg.HTTPClient != nil {
		*httpClient = cfg.HTTPClient
	}
}

// postJSON sends body as JSON to url and decodes a 200 response into out.
func postJSON(ctx context.Context, httpClient *http.Client, url string, headers map[string]string, body, out any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API error (%d): %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
