package domain

import "time"

type GenerationMode string

const (
	NarrateMode GenerationMode = "narrator"
	RoastMode   GenerationMode = "roast"
)

type GenerationOrigin string

const (
	RemoteOrigin   GenerationOrigin = "remote"
	FallbackOrigin GenerationOrigin = "fallback"
)

// FallbackUtterance renders a canned response from the original confession
// text. Used when the remote generation service is unavailable.
type FallbackUtterance func(confession string) string

// Persona is a simulated character with a distinct response style and
// synthesis voice. The persona set is a process-wide constant.
type Persona struct {
	ID                string
	DisplayName       string
	VoiceID           string
	PersonalityPrompt string
	Fallbacks         []FallbackUtterance
}

type GenerationResult struct {
	Text   string
	Origin GenerationOrigin
}

// AudioArtifact wraps one synthesized audio payload together with metadata
// derived from it. Each artifact belongs to exactly one sanitized text.
type AudioArtifact struct {
	ID              string
	MimeType        string
	Data            []byte
	DurationSeconds float64
}

// VoicedText pairs generated text with its audio. Origin is kept for
// observability only; callers show degraded output the same as remote output.
type VoicedText struct {
	Text   string
	Audio  *AudioArtifact
	Origin GenerationOrigin
}

// PipelineResult aggregates the narration and, when roast mode was requested,
// the roast. The roast is either fully populated or nil, never partial.
type PipelineResult struct {
	Narration VoicedText
	Roast     *VoicedText
}

// PipelineStage names the orchestrator's states for observers and logs.
type PipelineStage string

const (
	StageSanitizing            PipelineStage = "sanitizing"
	StageGeneratingNarration   PipelineStage = "generating_narration"
	StageSynthesizingNarration PipelineStage = "synthesizing_narration"
	StageGeneratingRoast       PipelineStage = "generating_roast"
	StageSynthesizingRoast     PipelineStage = "synthesizing_roast"
	StageComplete              PipelineStage = "complete"
	StageFailed                PipelineStage = "failed"
)

// Confession is one feed entry. The feed lives in memory only.
type Confession struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	PersonaID string    `json:"persona_id"`
	Voice     string    `json:"voice"`
	Likes     int       `json:"likes"`
	AudioURL  string    `json:"audio_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
