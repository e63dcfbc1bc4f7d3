package config

import (
	"fmt"
	"os"
)

const defaultOpenAIModel = "gpt-3.5-turbo"

// OpenAIConfig configures any OpenAI-compatible chat completions endpoint.
// An empty ApiUrl keeps the client library's default.
type OpenAIConfig struct {
	ApiUrl    string
	ApiKey    string
	Model     string
	MaxTokens int
}

func GetOpenAIConfig() (*OpenAIConfig, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY must be set")
	}
	maxTokens, err := getIntEnv("OPENAI_MAX_TOKENS", defaultMaxTokens)
	if err != nil {
		return nil, err
	}

	return &OpenAIConfig{
		ApiUrl:    os.Getenv("OPENAI_API_URL"),
		ApiKey:    apiKey,
		Model:     getEnvOrDefault("OPENAI_MODEL", defaultOpenAIModel),
		MaxTokens: maxTokens,
	}, nil
}
