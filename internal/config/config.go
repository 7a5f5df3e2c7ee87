// Package config resolves CLI settings from defaults, an optional YAML file,
// a .env file and the environment.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/shawndavis1/ai-test-framework/internal/errs"
	"github.com/shawndavis1/ai-test-framework/internal/llm"
	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultResultsDir = "reports"
	DefaultOutput     = "ai_summary.txt"
	DefaultFile       = "aisummary.yaml"
	DefaultEnvFile    = ".env"
)

// Environment overrides.
const (
	EnvProvider = "AI_SUMMARY_PROVIDER"
	EnvModel    = "AI_SUMMARY_MODEL"
	EnvOutput   = "AI_SUMMARY_OUTPUT"
	EnvBaseURL  = "AI_SUMMARY_BASE_URL"
)

// Config holds the resolved settings for one run.
type Config struct {
	Provider   llm.Provider `yaml:"provider"`
	Model      string       `yaml:"model"`
	BaseURL    string       `yaml:"base_url"`
	Output     string       `yaml:"output"`
	ResultsDir string       `yaml:"results_dir"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Provider:   llm.ProviderOpenAI,
		Output:     DefaultOutput,
		ResultsDir: DefaultResultsDir,
	}
}

// Load resolves settings. An explicit path must exist; without one,
// aisummary.yaml in the working directory is read when present.
func Load(path string) (*Config, error) {
	cfg := Default()

	file := path
	if file == "" {
		file = DefaultFile
	}
	data, err := os.ReadFile(file)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errs.Config("invalid config file %s: %v", file, err)
		}
	case path == "" && errors.Is(err, fs.ErrNotExist):
	default:
		return nil, errs.Config("cannot read config file %s: %v", file, err)
	}

	if err := loadEnvFile(DefaultEnvFile); err != nil {
		return nil, err
	}

	if v := os.Getenv(EnvProvider); v != "" {
		cfg.Provider = llm.Provider(v)
	}
	if v := os.Getenv(EnvModel); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}

	return cfg, nil
}

// loadEnvFile exports variables from path without overriding the real environment.
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errs.Config("failed to load %s: %v", path, err)
	}
	return nil
}

// Validate checks the settings before any work starts.
func (c *Config) Validate() error {
	if !c.Provider.Valid() {
		return errs.Config("unknown provider %q (supported: openai, anthropic, google)", c.Provider)
	}
	if c.Output == "" {
		return errs.Config("output path must not be empty")
	}
	return nil
}

// APIKey returns the credential for the configured provider.
func (c *Config) APIKey() string {
	return os.Getenv(c.Provider.KeyEnv())
}

// ClientConfig builds the LLM client settings. profileModel is used when no
// model is configured and the provider is OpenAI, whose model names profiles use.
func (c *Config) ClientConfig(profileModel string) llm.ClientConfig {
	model := c.Model
	if model == "" && c.Provider == llm.ProviderOpenAI {
		model = profileModel
	}
	return llm.ClientConfig{
		Provider: c.Provider,
		APIKey:   c.APIKey(),
		Model:    model,
		BaseURL:  c.BaseURL,
	}
}
