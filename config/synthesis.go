package config

import "os"

const (
	defaultSynthesisApiUrl = "https://api.elevenlabs.io/v1/text-to-speech"
	defaultSynthesisModel  = "eleven_multilingual_v2"
)

type SynthesisConfig struct {
	ApiUrl string
	// ApiKey may be empty; the synthesizer reports SynthesisUnavailable at
	// call time. There is no offline substitute for audio.
	ApiKey          string
	ModelId         string
	Stability       float64
	SimilarityBoost float64
}

func GetSynthesisConfig() (*SynthesisConfig, error) {
	apiUrl := os.Getenv("SYNTHESIS_API_URL")
	if apiUrl == "" {
		apiUrl = defaultSynthesisApiUrl
	}

	modelId := os.Getenv("SYNTHESIS_MODEL_ID")
	if modelId == "" {
		modelId = defaultSynthesisModel
	}

	stability, err := floatFromEnv("SYNTHESIS_STABILITY", 0.5)
	if err != nil {
		return nil, err
	}
	similarityBoost, err := floatFromEnv("SYNTHESIS_SIMILARITY_BOOST", 0.75)
	if err != nil {
		return nil, err
	}

	return &SynthesisConfig{
		ApiUrl:          apiUrl,
		ApiKey:          os.Getenv("SYNTHESIS_API_KEY"),
		ModelId:         modelId,
		Stability:       stability,
		SimilarityBoost: similarityBoost,
	}, nil
}
