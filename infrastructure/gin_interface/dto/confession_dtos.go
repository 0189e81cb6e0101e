package dto

import "github.com/viveknaskar/ConfessBot/domain"

type CreateConfessionRequest struct {
	Confession string `json:"confession" binding:"required"`
	PersonaID  string `json:"personaId" binding:"required"`
	Roast      bool   `json:"roast"`
}

type VoicedTextResponse struct {
	Text            string  `json:"text"`
	AudioURL        string  `json:"audio_url"`
	MimeType        string  `json:"mime_type"`
	DurationSeconds float64 `json:"duration_seconds"`
}

type CreateConfessionResponse struct {
	Confession domain.Confession   `json:"confession"`
	Narration  VoicedTextResponse  `json:"narration"`
	Roast      *VoicedTextResponse `json:"roast,omitempty"`
}

type PersonaResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	VoiceID     string `json:"voice_id"`
}
