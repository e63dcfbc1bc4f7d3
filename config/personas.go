package config

import (
	"fmt"
	"gopkg.in/yaml.v2"
	"os"
)

// LoadPersonaVoices reads the YAML file named by PERSONA_VOICES_FILE, a flat
// map of persona id to voice id. Without the variable it returns an empty map.
func LoadPersonaVoices() (map[string]string, error) {
	path := os.Getenv("PERSONA_VOICES_FILE")
	if path == "" {
		return map[string]string{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read persona voices file; %w", err)
	}

	voices := make(map[string]string)
	if err := yaml.Unmarshal(data, &voices); err != nil {
		return nil, fmt.Errorf("failed to parse persona voices file; %w", err)
	}

	return voices, nil
}
