package docgrab

import (
	"time"
)

// Provider identifies the language-model backend used for link filtering.
type Provider string

// Supported relevance filter providers.
const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

// Environment variables read by NewConfig.
const (
	EnvProxyAPIKey  = "JINA_API_KEY"
	EnvOpenAIAPIKey = "OPENAI_API_KEY"
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvProvider     = "DOCGRAB_PROVIDER"
	EnvModel        = "DOCGRAB_MODEL"
)

// DefaultProxyTimeout is the fetch timeout hint sent to the extraction proxy.
const DefaultProxyTimeout = 10 * time.Second

// Config holds credentials and settings resolved once at startup.
// Missing credentials are not rejected here; the first call that needs
// them fails instead.
type Config struct {
	ProxyAPIKey  string
	OpenAIAPIKey string
	GeminiAPIKey string

	Provider     Provider
	Model        string // empty selects the provider's default
	ProxyTimeout time.Duration
}

// NewConfig builds a Config from environment lookups.
// Pass os.Getenv in production.
func NewConfig(getenv func(string) string) Config {
	cfg := Config{
		ProxyAPIKey:  getenv(EnvProxyAPIKey),
		OpenAIAPIKey: getenv(EnvOpenAIAPIKey),
		GeminiAPIKey: getenv(EnvGeminiAPIKey),
		Provider:     Provider(getenv(EnvProvider)),
		Model:        getenv(EnvModel),
		ProxyTimeout: DefaultProxyTimeout,
	}
	if cfg.Provider == "" {
		cfg.Provider = ProviderOpenAI
	}
	return cfg
}

// Validate returns an error if the config contains invalid settings.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return Errorf(EINVALID, "unknown provider %q (want %q or %q)", c.Provider, ProviderOpenAI, ProviderGemini)
	}
	if c.ProxyTimeout <= 0 {
		return Errorf(EINVALID, "proxy timeout must be positive")
	}
	return nil
}

// LLMAPIKey returns the credential for the configured provider.
func (c *Config) LLMAPIKey() string {
	if c.Provider == ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}
