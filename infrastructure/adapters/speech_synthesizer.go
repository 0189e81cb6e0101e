package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/viveknaskar/ConfessBot/application/ports/outbound"
	"github.com/viveknaskar/ConfessBot/config"
	"github.com/viveknaskar/ConfessBot/domain"
	"github.com/viveknaskar/ConfessBot/sanitize"
)

const audioMimeType = "audio/mpeg"

// The service emits 128 kbps MP3; duration is derived from payload size until
// a player reports the exact value.
const nominalBitrate = 128_000.0

type synthesisRequest struct {
	Text          string        `json:"text"`
	ModelId       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type speechSynthesizer struct {
	ContentFetcher
	logger          outbound.LoggerPort
	synthesisConfig *config.SynthesisConfig
}

func NewSpeechSynthesizer(contentFetcher ContentFetcher, synthesisConfig *config.SynthesisConfig,
	logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &speechSynthesizer{
		ContentFetcher:  contentFetcher,
		logger:          logger,
		synthesisConfig: synthesisConfig,
	}
}

// Synthesize converts sanitized text into playable audio. Unlike the response
// generator there is no local substitute, so every failure propagates: missing
// credentials as SynthesisUnavailable, remote rejection as *UpstreamError.
func (s *speechSynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeSpeechRequest) (*domain.AudioArtifact, error) {
	if strings.TrimSpace(sanitize.Text(req.Text)) == "" {
		return nil, domain.ErrEmptyInput
	}
	if s.synthesisConfig.ApiKey == "" {
		return nil, domain.ErrSynthesisUnavailable
	}

	httpReq, err := s.createRequest(ctx, req.Text, req.VoiceID)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to construct the synthesis request", map[string]interface{}{
			"voice_id": req.VoiceID,
		})
		return nil, err
	}

	audio, err := s.FetchContent(httpReq)
	if err != nil {
		return nil, err
	}

	return &domain.AudioArtifact{
		ID:              uuid.NewString(),
		MimeType:        audioMimeType,
		Data:            audio,
		DurationSeconds: float64(len(audio)) * 8 / nominalBitrate,
	}, nil
}

func (s *speechSynthesizer) createRequest(ctx context.Context, text string, voiceID string) (*http.Request, error) {
	reqBody := synthesisRequest{
		Text:    text,
		ModelId: s.synthesisConfig.ModelId,
		VoiceSettings: voiceSettings{
			Stability:       s.synthesisConfig.Stability,
			SimilarityBoost: s.synthesisConfig.SimilarityBoost,
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.synthesisConfig.ApiUrl+"/"+voiceID, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", audioMimeType)
	req.Header.Set("xi-api-key", s.synthesisConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
