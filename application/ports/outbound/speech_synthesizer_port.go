package outbound

import (
	"context"

	"github.com/viveknaskar/ConfessBot/domain"
)

// SynthesizeSpeechRequest carries text that was already sanitized. The
// synthesizer rejects it rather than re-sanitizing.
type SynthesizeSpeechRequest struct {
	Text    string
	VoiceID string
}

type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, req SynthesizeSpeechRequest) (*domain.AudioArtifact, error)
}
