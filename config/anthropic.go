package config

import (
	"fmt"
	"os"
)

const (
	defaultAnthropicApiUrl  = "https://api.anthropic.com"
	defaultAnthropicModel   = "claude-3-haiku-20240307"
	defaultAnthropicVersion = "2023-06-01"
	defaultMaxTokens        = 1000
)

type AnthropicConfig struct {
	ApiUrl    string
	ApiKey    string
	Model     string
	Version   string
	MaxTokens int
}

func GetAnthropicConfig() (*AnthropicConfig, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY must be set")
	}
	maxTokens, err := getIntEnv("ANTHROPIC_MAX_TOKENS", defaultMaxTokens)
	if err != nil {
		return nil, err
	}

	return &AnthropicConfig{
		ApiUrl:    getEnvOrDefault("ANTHROPIC_API_URL", defaultAnthropicApiUrl),
		ApiKey:    apiKey,
		Model:     getEnvOrDefault("ANTHROPIC_MODEL", defaultAnthropicModel),
		Version:   getEnvOrDefault("ANTHROPIC_VERSION", defaultAnthropicVersion),
		MaxTokens: maxTokens,
	}, nil
}
