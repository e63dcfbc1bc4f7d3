package config

import (
	"fmt"
	"os"
	"rapper-ai/domain"
)

const (
	defaultElevenLabsApiUrl          = "https://api.elevenlabs.io"
	defaultElevenLabsStability       = 0.7
	defaultElevenLabsSimilarityBoost = 0.8
)

type ElevenLabsConfig struct {
	ApiUrl          string
	ApiKey          string
	ModelId         string
	Stability       float64
	SimilarityBoost float64
	DefaultVoiceID  string
}

func GetElevenLabsConfig() (*ElevenLabsConfig, error) {
	apiKey := os.Getenv("ELEVEN_LABS_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_API_KEY must be set")
	}
	stability, err := getFloatEnv("ELEVEN_LABS_STABILITY", defaultElevenLabsStability)
	if err != nil {
		return nil, err
	}
	similarityBoost, err := getFloatEnv("ELEVEN_LABS_SIMILARITY_BOOST", defaultElevenLabsSimilarityBoost)
	if err != nil {
		return nil, err
	}

	return &ElevenLabsConfig{
		ApiUrl:          getEnvOrDefault("ELEVEN_LABS_API_URL", defaultElevenLabsApiUrl),
		ApiKey:          apiKey,
		ModelId:         os.Getenv("ELEVEN_LABS_MODEL_ID"),
		Stability:       stability,
		SimilarityBoost: similarityBoost,
		DefaultVoiceID:  getEnvOrDefault("ELEVEN_LABS_DEFAULT_VOICE_ID", domain.DefaultVoiceID),
	}, nil
}
