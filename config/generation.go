package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultGenerationApiUrl = "https://openrouter.ai/api/v1/chat/completions"
	defaultGenerationModel  = "anthropic/claude-3.5-sonnet"
)

type GenerationConfig struct {
	ApiUrl string
	// ApiKey may be empty: the response generator then serves canned fallback
	// utterances instead of calling out.
	ApiKey               string
	Model                string
	NarrationMaxTokens   int
	RoastMaxTokens       int
	NarrationTemperature float64
	RoastTemperature     float64
}

func GetGenerationConfig() (*GenerationConfig, error) {
	apiUrl := os.Getenv("GENERATION_API_URL")
	if apiUrl == "" {
		apiUrl = defaultGenerationApiUrl
	}

	model := os.Getenv("GENERATION_MODEL")
	if model == "" {
		model = defaultGenerationModel
	}

	narrationMaxTokens, err := intFromEnv("GENERATION_NARRATION_MAX_TOKENS", 150)
	if err != nil {
		return nil, err
	}
	roastMaxTokens, err := intFromEnv("GENERATION_ROAST_MAX_TOKENS", 100)
	if err != nil {
		return nil, err
	}
	narrationTemperature, err := floatFromEnv("GENERATION_NARRATION_TEMPERATURE", 0.8)
	if err != nil {
		return nil, err
	}
	roastTemperature, err := floatFromEnv("GENERATION_ROAST_TEMPERATURE", 0.9)
	if err != nil {
		return nil, err
	}

	return &GenerationConfig{
		ApiUrl:               apiUrl,
		ApiKey:               os.Getenv("GENERATION_API_KEY"),
		Model:                model,
		NarrationMaxTokens:   narrationMaxTokens,
		RoastMaxTokens:       roastMaxTokens,
		NarrationTemperature: narrationTemperature,
		RoastTemperature:     roastTemperature,
	}, nil
}

func intFromEnv(name string, fallback int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return val, nil
}

func floatFromEnv(name string, fallback float64) (float64, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return val, nil
}
