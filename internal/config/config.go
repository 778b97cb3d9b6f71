package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	einogemini "github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/components/model"
	"google.golang.org/genai"
)

// Config aggregates all service settings, resolved once at startup.
type Config struct {
	Server ServerConfig
	AI     AIConfig
	Selfie SelfieConfig
	CORS   CORSConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	selfie, err := loadSelfieConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: server,
		AI:     ai,
		Selfie: selfie,
		CORS:   loadCORSConfig(),
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Allow ":8080" or "127.0.0.1:8080" to be passed through as-is.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig holds the Gemini credential and sampling options shared by the
// chat gateway and the emotion extractor.
type AIConfig struct {
	APIKey            string
	Model             string
	Temperature       *float64
	TopP              *float64
	MaxTokens         *int
	EmotionLLMEnabled bool
	HistoryTurnLimit  int
}

// Enabled reports whether the Gemini credential is present.
func (c AIConfig) Enabled() bool {
	return c.APIKey != ""
}

// NewClient creates the process-wide Gemini client. It is constructed once
// in main and shared by every upstream caller.
func (c AIConfig) NewClient(ctx context.Context) (*genai.Client, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// NewChatModel wraps the shared client in an eino chat-model component.
func (c AIConfig) NewChatModel(ctx context.Context, client *genai.Client) (model.ChatModel, error) {
	if client == nil {
		return nil, fmt.Errorf("gemini client is required")
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	var topP *float32
	if c.TopP != nil {
		val := float32(*c.TopP)
		topP = &val
	}

	return einogemini.NewChatModel(ctx, &einogemini.Config{
		Client:      client,
		Model:       c.Model,
		MaxTokens:   c.MaxTokens,
		Temperature: temperature,
		TopP:        topP,
	})
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloatEnv("GEMINI_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}

	topP, err := parseOptionalFloatEnv("GEMINI_TOP_P")
	if err != nil {
		return AIConfig{}, err
	}

	maxTokens, err := parseOptionalIntEnv("GEMINI_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	emotionEnabled, err := parseBoolEnv("EMOTION_LLM_ENABLED", true)
	if err != nil {
		return AIConfig{}, err
	}

	historyLimit := 20
	if limitOverride, err := parseOptionalIntEnv("HISTORY_TURN_LIMIT"); err != nil {
		return AIConfig{}, err
	} else if limitOverride != nil && *limitOverride >= 1 {
		historyLimit = *limitOverride
	}

	return AIConfig{
		APIKey:            strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		Model:             getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		Temperature:       temperature,
		TopP:              topP,
		MaxTokens:         maxTokens,
		EmotionLLMEnabled: emotionEnabled,
		HistoryTurnLimit:  historyLimit,
	}, nil
}

// Selfie backends.
const (
	SelfieBackendGradio = "gradio"
	SelfieBackendGemini = "gemini"
)

// SelfieConfig describes the image-generation upstream.
type SelfieConfig struct {
	Backend        string
	SpaceURL       string
	APIName        string
	ImageModel     string
	TimeoutSeconds int
	StaticDir      string
}

func loadSelfieConfig() (SelfieConfig, error) {
	backend := strings.ToLower(getEnvOrDefault("SELFIE_BACKEND", SelfieBackendGradio))
	if backend != SelfieBackendGradio && backend != SelfieBackendGemini {
		return SelfieConfig{}, fmt.Errorf("invalid SELFIE_BACKEND value: %q", backend)
	}

	timeout := 120
	if timeoutOverride, err := parseOptionalIntEnv("SELFIE_TIMEOUT"); err != nil {
		return SelfieConfig{}, err
	} else if timeoutOverride != nil && *timeoutOverride > 0 {
		timeout = *timeoutOverride
	}

	return SelfieConfig{
		Backend:        backend,
		SpaceURL:       getEnvOrDefault("SELFIE_SPACE_URL", "https://multimodalart-ip-adapter-faceid.hf.space"),
		APIName:        getEnvOrDefault("SELFIE_API_NAME", "generate_image"),
		ImageModel:     getEnvOrDefault("SELFIE_IMAGE_MODEL", "gemini-2.5-flash-image-preview"),
		TimeoutSeconds: timeout,
		StaticDir:      strings.TrimSpace(os.Getenv("STATIC_DIR")),
	}, nil
}

// CORSConfig lists the origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string
}

func loadCORSConfig() CORSConfig {
	raw := getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return CORSConfig{AllowedOrigins: origins}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
