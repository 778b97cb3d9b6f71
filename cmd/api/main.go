package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/joho/godotenv"
	"google.golang.org/genai"

	"github.com/Likhith623/agentic-image-generation/internal/config"
	"github.com/Likhith623/agentic-image-generation/internal/handler"
	"github.com/Likhith623/agentic-image-generation/internal/model/persona"
	"github.com/Likhith623/agentic-image-generation/internal/service/ai"
	emotionservice "github.com/Likhith623/agentic-image-generation/internal/service/emotion"
	"github.com/Likhith623/agentic-image-generation/internal/service/selfie"
	"github.com/Likhith623/agentic-image-generation/internal/upstream/gradio"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	personaStore := persona.NewMemoryStore(persona.Seed())

	// Shared Gemini client, created once and reused by every upstream caller.
	var geminiClient *genai.Client
	if cfg.AI.Enabled() {
		geminiClient, err = cfg.AI.NewClient(ctx)
		if err != nil {
			log.Printf("warning: failed to create Gemini client: %v", err)
		}
	} else {
		log.Println("GEMINI_API_KEY not set, chat and emotion LLM features disabled")
	}

	var aiService *ai.Service
	if geminiClient != nil {
		aiService, err = ai.NewService(ctx, cfg.AI, geminiClient)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing without chat functionality")
		} else {
			log.Println("AI service initialized successfully")
		}
	}

	var chatModelForEmotion model.ChatModel
	if aiService != nil {
		chatModelForEmotion = aiService.ChatModel()
	}
	emotionSvc, err := emotionservice.NewService(ctx, chatModelForEmotion, emotionservice.Config{
		Enabled: cfg.AI.EmotionLLMEnabled,
	})
	if err != nil {
		log.Fatalf("failed to initialize emotion service: %v", err)
	}
	if emotionSvc.Enabled() {
		log.Println("LLM emotion extraction enabled")
	} else {
		log.Println("emotion extraction running on keyword heuristics")
	}

	selfieSvc := buildSelfieService(cfg, geminiClient)

	router := handler.NewRouter(personaStore, aiService, emotionSvc, selfieSvc, cfg.CORS, cfg.Selfie.StaticDir)

	startServer(ctx, cfg.Server, router)
}

// buildSelfieService picks the configured image backend. A missing backend
// is a degraded mode, not a startup failure.
func buildSelfieService(cfg *config.Config, geminiClient *genai.Client) *selfie.Service {
	timeout := time.Duration(cfg.Selfie.TimeoutSeconds) * time.Second

	var generator selfie.Generator
	switch cfg.Selfie.Backend {
	case config.SelfieBackendGemini:
		if geminiClient == nil {
			log.Println("selfie backend 'gemini' requires GEMINI_API_KEY, selfie generation disabled")
			return nil
		}
		generator = selfie.NewGeminiGenerator(geminiClient, cfg.Selfie.ImageModel)
	case config.SelfieBackendGradio:
		client := gradio.NewClient(cfg.Selfie.SpaceURL, cfg.Selfie.APIName, timeout)
		generator = selfie.NewGradioGenerator(client)
	}

	svc, err := selfie.NewService(generator, cfg.Selfie.StaticDir, timeout)
	if err != nil {
		log.Printf("warning: failed to initialize selfie service: %v", err)
		return nil
	}
	log.Printf("selfie service initialized with %s backend", cfg.Selfie.Backend)
	return svc
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("persona selfie backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
