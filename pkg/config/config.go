// Package config is the single configuration surface, read once at startup
// and treated as immutable for the process lifetime. No business logic looks
// at the environment directly.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Provider selects the text-generation backend. Fixed at startup, never
// request-configurable.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGrok   Provider = "grok"
	ProviderGemini Provider = "gemini"
)

type Config struct {
	TextProvider Provider `envconfig:"TEXT_PROVIDER" default:"openai"`

	OpenAIKey   string `envconfig:"OPENAI_API_KEY"`
	OpenAIModel string `envconfig:"OPENAI_MODEL"`
	GrokKey     string `envconfig:"GROK_API_KEY"`
	GrokModel   string `envconfig:"GROK_MODEL"`
	GeminiKey   string `envconfig:"GEMINI_API_KEY"`
	GeminiModel string `envconfig:"GEMINI_MODEL"`

	ImageEndpoint string `envconfig:"IMAGE_ENDPOINT"`

	Addr      string `envconfig:"ADDR" default:":8080"`
	StorePath string `envconfig:"STORE_PATH" default:"stories.json"`
}

func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}
	switch c.TextProvider {
	case ProviderOpenAI, ProviderGrok, ProviderGemini:
	default:
		return Config{}, fmt.Errorf("unknown text provider %q", c.TextProvider)
	}
	return c, nil
}

// TextKey returns the API key for the selected text provider.
func (c Config) TextKey() string {
	switch c.TextProvider {
	case ProviderGrok:
		return c.GrokKey
	case ProviderGemini:
		return c.GeminiKey
	default:
		return c.OpenAIKey
	}
}

// TextModel returns the model override for the selected text provider, empty
// for the provider default.
func (c Config) TextModel() string {
	switch c.TextProvider {
	case ProviderGrok:
		return c.GrokModel
	case ProviderGemini:
		return c.GeminiModel
	default:
		return c.OpenAIModel
	}
}

// TextReady reports whether live text generation can be attempted. When
// false, story creation uses the mock path.
func (c Config) TextReady() bool {
	return c.TextKey() != ""
}

// ImageReady reports whether illustrations are enabled. When false, stories
// are text-only; it never forces the mock path.
func (c Config) ImageReady() bool {
	return c.ImageEndpoint != ""
}
