package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viveknaskar/ConfessBot/application/ports/inbound"
	"github.com/viveknaskar/ConfessBot/application/ports/outbound"
	"github.com/viveknaskar/ConfessBot/domain"
	"github.com/viveknaskar/ConfessBot/infrastructure/gin_interface/dto"
)

type ConfessionController interface {
	CreateConfession(c *gin.Context)
	StreamConfession(c *gin.Context)
	ListConfessions(c *gin.Context)
	LikeConfession(c *gin.Context)
	ListPersonas(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type confessionController struct {
	logger     outbound.LoggerPort
	workerPool outbound.TaskDispatcher
	registry   outbound.PersonaRegistryPort
	pipeline   inbound.ConfessionPipelinePort
	audioStore outbound.AudioStorePort
	feed       inbound.ConfessionFeedPort
}

func NewConfessionController(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	registry outbound.PersonaRegistryPort, pipeline inbound.ConfessionPipelinePort,
	audioStore outbound.AudioStorePort, feed inbound.ConfessionFeedPort) ConfessionController {
	return &confessionController{
		logger:     logger,
		workerPool: workerPool,
		registry:   registry,
		pipeline:   pipeline,
		audioStore: audioStore,
		feed:       feed,
	}
}

// CreateConfession runs the whole pipeline for one submission and appends the
// result to the feed. On failure nothing is shown: a single error message
// comes back and no partial audio or text leaks out.
func (cc *confessionController) CreateConfession(c *gin.Context) {
	var req dto.CreateConfessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: true, Message: err.Error()})
		return
	}

	result, err := cc.pipeline.Run(c.Request.Context(), inbound.RunPipelineParams{
		Confession: req.Confession,
		PersonaID:  req.PersonaID,
		Roast:      req.Roast,
	})
	if err != nil {
		cc.abortWithPipelineError(c, err)
		return
	}

	narration, err := cc.storeVoicedText(c.Request.Context(), result.Narration)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: true, Message: "failed to store audio"})
		return
	}

	var roast *dto.VoicedTextResponse
	if result.Roast != nil {
		stored, err := cc.storeVoicedText(c.Request.Context(), *result.Roast)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: true, Message: "failed to store audio"})
			return
		}
		roast = &stored
	}

	persona, err := cc.registry.Lookup(req.PersonaID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: true, Message: err.Error()})
		return
	}

	confession := cc.feed.Add(inbound.AddConfessionParams{
		Text:     req.Confession,
		Persona:  persona,
		AudioURL: narration.AudioURL,
	})

	c.JSON(http.StatusOK, dto.CreateConfessionResponse{
		Confession: confession,
		Narration:  narration,
		Roast:      roast,
	})
}

// StreamConfession runs the same pipeline but emits each orchestrator stage
// as a server-sent event before the final result, so the page can show
// progress during the slow synthesis calls.
func (cc *confessionController) StreamConfession(c *gin.Context) {
	var req dto.CreateConfessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: true, Message: err.Error()})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	type outcome struct {
		result *domain.PipelineResult
		err    error
	}

	stages := make(chan domain.PipelineStage, 8)
	done := make(chan outcome, 1)

	err := cc.workerPool.Submit(func() {
		defer close(stages)
		result, runErr := cc.pipeline.Run(c.Request.Context(), inbound.RunPipelineParams{
			Confession: req.Confession,
			PersonaID:  req.PersonaID,
			Roast:      req.Roast,
			OnStage: func(stage domain.PipelineStage) {
				select {
				case stages <- stage:
				default:
				}
			},
		})
		done <- outcome{result: result, err: runErr}
	})
	if err != nil {
		cc.logger.Error(err, "failed to submit pipeline invocation to worker pool")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: true, Message: "server busy, please try again"})
		return
	}

	for stage := range stages {
		c.SSEvent("stage", string(stage))
		c.Writer.Flush()
	}

	o := <-done
	if o.err != nil {
		c.SSEvent("error", pipelineErrorMessage(o.err))
		c.Writer.Flush()
		return
	}

	narration, err := cc.storeVoicedText(c.Request.Context(), o.result.Narration)
	if err != nil {
		c.SSEvent("error", "failed to store audio")
		c.Writer.Flush()
		return
	}

	response := dto.CreateConfessionResponse{Narration: narration}
	if o.result.Roast != nil {
		stored, err := cc.storeVoicedText(c.Request.Context(), *o.result.Roast)
		if err != nil {
			c.SSEvent("error", "failed to store audio")
			c.Writer.Flush()
			return
		}
		response.Roast = &stored
	}

	if persona, err := cc.registry.Lookup(req.PersonaID); err == nil {
		response.Confession = cc.feed.Add(inbound.AddConfessionParams{
			Text:     req.Confession,
			Persona:  persona,
			AudioURL: narration.AudioURL,
		})
	}

	c.SSEvent("result", response)
	c.Writer.Flush()
}

func (cc *confessionController) storeVoicedText(ctx context.Context, voiced domain.VoicedText) (dto.VoicedTextResponse, error) {
	url, err := cc.audioStore.Save(ctx, voiced.Audio)
	if err != nil {
		cc.logger.Error(err, "failed to store audio artifact")
		return dto.VoicedTextResponse{}, err
	}

	return dto.VoicedTextResponse{
		Text:            voiced.Text,
		AudioURL:        url,
		MimeType:        voiced.Audio.MimeType,
		DurationSeconds: voiced.Audio.DurationSeconds,
	}, nil
}

func (cc *confessionController) abortWithPipelineError(c *gin.Context, err error) {
	var upstream *domain.UpstreamError

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrEmptyInput), errors.Is(err, domain.ErrUnknownPersona):
		status = http.StatusBadRequest
	case errors.As(err, &upstream):
		status = http.StatusBadGateway
	}

	cc.logger.Error(err, "pipeline failed")
	c.JSON(status, dto.ErrorResponse{Error: true, Message: pipelineErrorMessage(err)})
}

// pipelineErrorMessage maps pipeline failures to the single descriptive
// message shown to the user.
func pipelineErrorMessage(err error) string {
	var upstream *domain.UpstreamError

	switch {
	case errors.Is(err, domain.ErrEmptyInput):
		return "confession is empty after sanitization"
	case errors.Is(err, domain.ErrUnknownPersona):
		return err.Error()
	case errors.Is(err, domain.ErrSynthesisUnavailable):
		return "voice generation is not configured"
	case errors.As(err, &upstream):
		return "voice generation failed, please try again"
	default:
		return "failed to generate audio, please try again"
	}
}

func (cc *confessionController) ListConfessions(c *gin.Context) {
	c.JSON(http.StatusOK, cc.feed.List())
}

func (cc *confessionController) LikeConfession(c *gin.Context) {
	confession, err := cc.feed.Like(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: true, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, confession)
}

func (cc *confessionController) ListPersonas(c *gin.Context) {
	personas := cc.registry.All()
	out := make([]dto.PersonaResponse, 0, len(personas))
	for _, p := range personas {
		out = append(out, dto.PersonaResponse{
			ID:          p.ID,
			DisplayName: p.DisplayName,
			VoiceID:     p.VoiceID,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (cc *confessionController) RegisterRoutes(g *gin.Engine) {
	g.POST("/api/confessions", cc.CreateConfession)
	g.POST("/api/confessions/stream", cc.StreamConfession)
	g.GET("/api/confessions", cc.ListConfessions)
	g.POST("/api/confessions/:id/like", cc.LikeConfession)
	g.GET("/api/personas", cc.ListPersonas)
}
