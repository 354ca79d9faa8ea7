package ai

import (
	"context"
	"errors"
	"fmt"
)

// Provider defines the interface for completion providers.
type Provider interface {
	// Translate sends one bounded completion request and returns the raw
	// completion text. An empty result means the provider answered but
	// produced no usable text; callers decide how to surface that.
	Translate(ctx context.Context, systemPrompt, phrase string) (string, error)
	// Name returns the provider name.
	Name() string
}

// Fixed sampling parameters. Tone lives in the system prompt; sampling is
// not a per-request knob.
const (
	temperature = 0.8
	maxTokens   = 120
)

// Config holds the configuration for a completion provider.
type Config struct {
	Provider string // openai, anthropic, compatible
	APIKey   string
	BaseURL  string // optional for openai/anthropic, required for compatible
	Model    string
}

// ProviderType constants
const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

var (
	ErrInvalidProvider = errors.New("invalid provider")
	ErrMissingAPIKey   = errors.New("API key is required")
	ErrMissingBaseURL  = errors.New("base URL is required for compatible provider")
	ErrMissingModel    = errors.New("model is required")
)

// UpstreamError is a provider call failure normalized away from the SDK
// error types: status code (0 when the call never reached the provider) and
// a detail string safe to surface to callers.
type UpstreamError struct {
	Status int
	Detail string
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("upstream: %s", e.Detail)
	}
	return fmt.Sprintf("upstream: status %d: %s", e.Status, e.Detail)
}

// NewProvider creates a new completion provider based on the config.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		return NewCompatibleProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	default:
		return nil, ErrInvalidProvider
	}
}
