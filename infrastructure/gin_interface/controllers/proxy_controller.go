package controllers

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/viveknaskar/ConfessBot/application/ports/outbound"
	"github.com/viveknaskar/ConfessBot/domain"
	"github.com/viveknaskar/ConfessBot/infrastructure/gin_interface/dto"
	"github.com/viveknaskar/ConfessBot/sanitize"
)

const defaultNarratorID = "morgan-freeman"

// ProxyController exposes the two single-purpose endpoints the web client
// calls directly: text generation and voice synthesis. Credentials come from
// the environment only, never from the caller.
type ProxyController interface {
	GenerateAIResponse(c *gin.Context)
	GenerateVoice(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type proxyController struct {
	logger      outbound.LoggerPort
	registry    outbound.PersonaRegistryPort
	generator   outbound.ResponseGeneratorPort
	synthesizer outbound.SpeechSynthesizerPort
}

func NewProxyController(logger outbound.LoggerPort, registry outbound.PersonaRegistryPort,
	generator outbound.ResponseGeneratorPort, synthesizer outbound.SpeechSynthesizerPort) ProxyController {
	return &proxyController{
		logger:      logger,
		registry:    registry,
		generator:   generator,
		synthesizer: synthesizer,
	}
}

// GenerateAIResponse parses the request exactly once and reuses it for both
// the remote path and the fallback path inside the generator.
func (p *proxyController) GenerateAIResponse(c *gin.Context) {
	var req dto.AIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   true,
			Message: "Missing required parameters: confession and type are required",
		})
		return
	}

	mode := domain.NarrateMode
	if req.Type == string(domain.RoastMode) {
		mode = domain.RoastMode
	}

	result, err := p.generator.Generate(c.Request.Context(), outbound.GenerateResponseRequest{
		Confession: req.Confession,
		Persona:    p.resolveNarrator(req.NarratorName),
		Mode:       mode,
	})
	if err != nil {
		p.logger.Error(err, "generation invocation broke")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: true, Message: "failed to generate response"})
		return
	}

	c.JSON(http.StatusOK, dto.AIResponse{Response: result.Text})
}

// resolveNarrator accepts the display name the client sends and falls back to
// the default narrator when it matches nothing.
func (p *proxyController) resolveNarrator(displayName string) domain.Persona {
	for _, persona := range p.registry.All() {
		if strings.EqualFold(persona.DisplayName, displayName) {
			return persona
		}
	}

	persona, err := p.registry.Lookup(defaultNarratorID)
	if err != nil {
		// Registry validation guarantees the default exists.
		p.logger.Error(err, "default narrator missing from registry")
	}
	return persona
}

func (p *proxyController) GenerateVoice(c *gin.Context) {
	var voiceReq dto.VoiceRequest
	if err := c.ShouldBindJSON(&voiceReq); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   true,
			Message: "Missing required parameters: text and voiceId are required",
		})
		return
	}

	sanitized := sanitize.Text(voiceReq.Text)
	if strings.TrimSpace(sanitized) == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: true, Message: "Text is empty after sanitization"})
		return
	}

	artifact, err := p.synthesizer.Synthesize(c.Request.Context(), outbound.SynthesizeSpeechRequest{
		Text:    sanitized,
		VoiceID: voiceReq.VoiceID,
	})
	if err != nil {
		p.abortWithSynthesisError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VoiceResponse{
		AudioBase64: base64.StdEncoding.EncodeToString(artifact.Data),
		MimeType:    artifact.MimeType,
	})
}

func (p *proxyController) abortWithSynthesisError(c *gin.Context, err error) {
	var upstream *domain.UpstreamError

	switch {
	case errors.Is(err, domain.ErrEmptyInput):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: true, Message: "Text is empty after sanitization"})
	case errors.Is(err, domain.ErrSynthesisUnavailable):
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: true, Message: "Voice API key not configured"})
	case errors.As(err, &upstream):
		c.JSON(upstream.Status, dto.ErrorResponse{Error: true, Message: err.Error()})
	default:
		p.logger.Error(err, "voice generation failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: true, Message: "Server error: " + err.Error()})
	}
}

func (p *proxyController) RegisterRoutes(g *gin.Engine) {
	g.POST("/api/generate-ai-response", p.GenerateAIResponse)
	g.POST("/api/generate-voice", p.GenerateVoice)
}
