package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/viveknaskar/ConfessBot/application/ports/outbound"
	"github.com/viveknaskar/ConfessBot/infrastructure/adapters"
	"github.com/viveknaskar/ConfessBot/infrastructure/gin_interface/dto"
	"github.com/viveknaskar/ConfessBot/sanitize"
)

// AudioController serves artifacts kept in the in-memory store. Registered
// only when no external bucket hosts the audio.
type AudioController interface {
	GetAudio(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type audioController struct {
	logger outbound.LoggerPort
	store  *adapters.MemoryAudioStore
}

func NewAudioController(logger outbound.LoggerPort, store *adapters.MemoryAudioStore) AudioController {
	return &audioController{
		logger: logger,
		store:  store,
	}
}

func (a *audioController) GetAudio(c *gin.Context) {
	artifact, err := a.store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: true, Message: err.Error()})
		return
	}

	if title := c.Query("download"); title != "" {
		filename := sanitize.Filename(title) + ".mp3"
		c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(filename))
	}

	c.Data(http.StatusOK, artifact.MimeType, artifact.Data)
}

func (a *audioController) RegisterRoutes(g *gin.Engine) {
	g.GET("/audio/:id", a.GetAudio)
}
