package llm

import "context"

// Provider represents an LLM provider
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGoogle    Provider = "google"
)

// Providers lists the supported providers.
var Providers = []Provider{ProviderOpenAI, ProviderAnthropic, ProviderGoogle}

// KeyEnv returns the environment variable holding the provider's API key.
func (p Provider) KeyEnv() string {
	switch p {
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case ProviderGoogle:
		return "GOOGLE_API_KEY"
	default:
		return "OPENAI_API_KEY"
	}
}

// DefaultModel returns the model used when none is configured.
func (p Provider) DefaultModel() string {
	switch p {
	case ProviderAnthropic:
		return "claude-sonnet-4-5"
	case ProviderGoogle:
		return "gemini-2.5-flash"
	default:
		return "gpt-4o-mini"
	}
}

// Valid reports whether p is a supported provider.
func (p Provider) Valid() bool {
	for _, known := range Providers {
		if p == known {
			return true
		}
	}
	return false
}

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single role-tagged chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options controls sampling. Zero values are left out of the request.
type Options struct {
	MaxTokens   int
	Temperature *float64
}

// Temperature returns a pointer to v for use in Options.
func Temperature(v float64) *float64 {
	return &v
}

// Response is the text returned by a completion service.
type Response struct {
	Content      string
	InputTokens  int
	OutputTokens int
	Model        string
}

// Client sends one completion request to a provider.
type Client interface {
	Complete(ctx context.Context, messages []Message, opts Options) (*Response, error)
	Provider() Provider
	Model() string
}
