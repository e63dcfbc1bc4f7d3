package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"net/http"
	"os"
	"os/signal"
	"rapper-ai/application/ports/outbound"
	"rapper-ai/application/services"
	"rapper-ai/config"
	"rapper-ai/domain"
	"rapper-ai/infrastructure/adapters"
	"rapper-ai/infrastructure/gin_interface"
	"rapper-ai/infrastructure/gin_interface/controllers"
	"rapper-ai/infrastructure/gin_interface/web"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

func newInterruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

func newTextGenerator(textProvider string, logger outbound.LoggerPort) (outbound.TextGeneratorPort, error) {
	switch textProvider {
	case config.TextProviderOpenAI:
		openAIConfig, err := config.GetOpenAIConfig()
		if err != nil {
			return nil, err
		}
		return adapters.NewOpenAITextGenerator(openAIConfig, logger), nil
	default:
		anthropicConfig, err := config.GetAnthropicConfig()
		if err != nil {
			return nil, err
		}
		return adapters.NewAnthropicTextGenerator(anthropicConfig, logger), nil
	}
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatal().Err(err).Msg("Failed to load .env file")
	}

	serverConfig, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get server config")
	}

	elevenLabsConfig, err := config.GetElevenLabsConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get eleven labs config")
	}

	personaVoices, err := config.LoadPersonaVoices()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load persona voices")
	}

	zeroLogger := adapters.NewZerologWrapper(os.Stderr, serverConfig.LogLevel)

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(serverConfig.WorkerPoolSize, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	textGenerator, err := newTextGenerator(serverConfig.TextProvider, zeroLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get text provider config")
	}

	audioGenerator := adapters.NewAudioGenerator(elevenLabsConfig, zeroLogger)

	personas := domain.NewPersonaCatalog(elevenLabsConfig.DefaultVoiceID, personaVoices)

	verseRequester := services.NewVerseRequester(zeroLogger, textGenerator, personas, workerPool)
	audioRequester := services.NewAudioRequester(zeroLogger, audioGenerator, personas, workerPool)

	static, err := web.Static()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load static assets")
	}

	router, err := gin_interface.NewRouter(zeroLogger,
		controllers.NewVerseController(zeroLogger, verseRequester),
		controllers.NewAudioController(zeroLogger, audioRequester),
		controllers.NewPageController(personas, static),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create router")
	}

	server := &http.Server{
		Addr:              ":" + serverConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := newInterruptContext(context.Background())
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zeroLogger.Info(fmt.Sprintf("Listening on %s using %s", server.Addr, textGenerator.Provider()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("Server stopped with error")
	}
	zeroLogger.Info("Server stopped")
}
