// Package mock_upstreams registers local stand-ins for the generation and
// synthesis services so the full pipeline can run with no external
// credentials, e.g. during frontend development.
package mock_upstreams

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viveknaskar/ConfessBot/application/ports/outbound"
)

const (
	ChatCompletionsPath = "/mock/chat/completions"
	TextToSpeechPath    = "/mock/text-to-speech"
)

type chatCompletionRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func Init(g *gin.Engine, logger outbound.LoggerPort) {
	audio := mockAudioPayload()

	g.POST(ChatCompletionsPath, func(c *gin.Context) {
		var req chatCompletionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
			return
		}

		content := "Well now, that is quite the confession. We all carry our secrets."
		for _, msg := range req.Messages {
			if msg.Role == "user" {
				content = fmt.Sprintf("Well now... %s That is quite the confession, and quite human too.", msg.Content)
			}
		}

		logger.Debug("mock chat completion served")
		c.JSON(http.StatusOK, gin.H{
			"choices": []gin.H{
				{"message": gin.H{"role": "assistant", "content": content}},
			},
		})
	})

	g.POST(TextToSpeechPath+"/:voiceId", func(c *gin.Context) {
		logger.DebugWithFields("mock synthesis served", map[string]interface{}{
			"voice_id": c.Param("voiceId"),
		})
		c.Data(http.StatusOK, "audio/mpeg", audio)
	})
}

// mockAudioPayload is a sequence of valid-looking 128 kbps MPEG frame headers
// over silence, enough for players to report a short nonzero duration.
func mockAudioPayload() []byte {
	const frameSize = 417
	const frames = 40

	payload := make([]byte, 0, frameSize*frames)
	for i := 0; i < frames; i++ {
		frame := make([]byte, frameSize)
		frame[0], frame[1], frame[2], frame[3] = 0xFF, 0xFB, 0x90, 0x64
		payload = append(payload, frame...)
	}
	return payload
}
