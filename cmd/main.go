package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
	"github.com/viveknaskar/ConfessBot/application/ports/outbound"
	"github.com/viveknaskar/ConfessBot/application/services"
	"github.com/viveknaskar/ConfessBot/config"
	"github.com/viveknaskar/ConfessBot/domain"
	"github.com/viveknaskar/ConfessBot/infrastructure/adapters"
	"github.com/viveknaskar/ConfessBot/infrastructure/gin_interface/controllers"
	"github.com/viveknaskar/ConfessBot/middleware"
	mockupstreams "github.com/viveknaskar/ConfessBot/mock"
)

func main() {
	serverConfig, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get server config")
	}

	generationConfig, err := config.GetGenerationConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get generation config")
	}

	synthesisConfig, err := config.GetSynthesisConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get synthesis config")
	}

	if serverConfig.MockUpstreams {
		base := "http://localhost:" + serverConfig.Port
		generationConfig.ApiUrl = base + mockupstreams.ChatCompletionsPath
		generationConfig.ApiKey = "mock"
		synthesisConfig.ApiUrl = base + mockupstreams.TextToSpeechPath
		synthesisConfig.ApiKey = "mock"
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(64, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	registry, err := services.NewPersonaRegistry(domain.DefaultPersonas(), adapters.NewRandomSource())
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid persona registry")
	}

	contentFetcher := adapters.NewContentFetcher(zeroLogger)

	responseGenerator := adapters.NewResponseGenerator(contentFetcher, generationConfig, adapters.NewRandomSource(), zeroLogger)
	speechSynthesizer := adapters.NewSpeechSynthesizer(contentFetcher, synthesisConfig, zeroLogger)

	var audioStore outbound.AudioStorePort
	var memoryStore *adapters.MemoryAudioStore

	if os.Getenv("AUDIO_BUCKET_NAME") != "" {
		s3Config, err := config.GetS3Config()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to get s3 config")
		}

		sess := session.Must(session.NewSessionWithOptions(session.Options{
			SharedConfigState: session.SharedConfigEnable,
		}))
		audioStore = adapters.NewS3AudioStore(s3.New(sess), s3Config, zeroLogger)
	} else {
		memoryStore = adapters.NewMemoryAudioStore()
		audioStore = memoryStore
	}

	pipeline := services.NewConfessionPipeline(zeroLogger, registry, responseGenerator, speechSynthesizer)

	feed := services.NewConfessionFeed(services.SampleConfessions())

	confessionController := controllers.NewConfessionController(zeroLogger, workerPool, registry, pipeline, audioStore, feed)
	proxyController := controllers.NewProxyController(zeroLogger, registry, responseGenerator, speechSynthesizer)

	router := gin.Default()

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	router.Use(middleware.CORSMiddleware())

	if serverConfig.MockUpstreams {
		mockupstreams.Init(router, zeroLogger)
	}

	confessionController.RegisterRoutes(router)
	proxyController.RegisterRoutes(router)

	if memoryStore != nil {
		controllers.NewAudioController(zeroLogger, memoryStore).RegisterRoutes(router)
	}

	if err := router.Run(":" + serverConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
