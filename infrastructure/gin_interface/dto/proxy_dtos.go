package dto

// Proxy boundary payloads. Shapes match what the web client already sends to
// the edge functions this service replaces.

type AIRequest struct {
	Confession   string `json:"confession" binding:"required"`
	NarratorName string `json:"narratorName"`
	Type         string `json:"type" binding:"required"`
}

type AIResponse struct {
	Response string `json:"response"`
}

type VoiceRequest struct {
	Text    string `json:"text" binding:"required"`
	VoiceID string `json:"voiceId" binding:"required"`
}

type VoiceResponse struct {
	AudioBase64 string `json:"audioBase64"`
	MimeType    string `json:"mimeType"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}
