package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	TextProviderAnthropic = "anthropic"
	TextProviderOpenAI    = "openai"
)

type ServerConfig struct {
	Port           string
	LogLevel       string
	WorkerPoolSize int
	TextProvider   string
}

func GetServerConfig() (*ServerConfig, error) {
	workerPoolSize, err := getIntEnv("WORKER_POOL_SIZE", 64)
	if err != nil {
		return nil, err
	}

	textProvider := strings.ToLower(getEnvOrDefault("TEXT_PROVIDER", TextProviderAnthropic))
	if textProvider != TextProviderAnthropic && textProvider != TextProviderOpenAI {
		return nil, fmt.Errorf("unsupported TEXT_PROVIDER %q", os.Getenv("TEXT_PROVIDER"))
	}

	return &ServerConfig{
		Port:           getEnvOrDefault("PORT", "8080"),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		WorkerPoolSize: workerPoolSize,
		TextProvider:   textProvider,
	}, nil
}
