// Package selfie serves the standalone /generate-selfie route.
package selfie

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	chatmodel "github.com/Likhith623/agentic-image-generation/internal/model/chat"
	"github.com/Likhith623/agentic-image-generation/internal/model/persona"
	selfiesvc "github.com/Likhith623/agentic-image-generation/internal/service/selfie"
	"github.com/Likhith623/agentic-image-generation/pkg/utils"
)

// ContextExtractor derives the emotion context from the user message.
type ContextExtractor interface {
	Extract(ctx context.Context, userMessage, botReply string) chatmodel.EmotionContext
}

// Generator produces the selfie image.
type Generator interface {
	Generate(ctx context.Context, p persona.Persona, emo chatmodel.EmotionContext) (selfiesvc.Result, error)
}

// Handler wires extractor and generator for the standalone selfie route.
type Handler struct {
	personas  persona.Store
	extractor ContextExtractor
	generator Generator
}

// New creates the selfie handler. generator may be nil when no backend is
// configured; the route then answers 503.
func New(personas persona.Store, extractor ContextExtractor, generator Generator) *Handler {
	return &Handler{personas: personas, extractor: extractor, generator: generator}
}

// RegisterRoutes mounts the selfie route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/generate-selfie", h.handleGenerateSelfie)
}

func (h *Handler) handleGenerateSelfie(w http.ResponseWriter, r *http.Request) {
	botID := strings.TrimSpace(r.URL.Query().Get("bot_id"))
	message := strings.TrimSpace(r.URL.Query().Get("message"))
	if botID == "" && message == "" {
		var payload struct {
			BotID   string `json:"bot_id"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err == nil {
			botID = strings.TrimSpace(payload.BotID)
			message = strings.TrimSpace(payload.Message)
		}
	}

	if botID == "" {
		utils.RespondError(w, http.StatusBadRequest, "bot_id is required")
		return
	}
	if message == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	// Validation happens before any upstream call.
	p, ok := h.personas.FindByID(botID)
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "bot with id '"+botID+"' is not a valid bot")
		return
	}

	if h.generator == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "image generation service is not available")
		return
	}

	emoCtx := h.extractor.Extract(r.Context(), message, "")

	result, err := h.generator.Generate(r.Context(), p, emoCtx)
	if err != nil {
		log.Printf("[selfie] generation failed for bot=%s: %v", p.ID, err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to generate the image")
		return
	}

	response := chatmodel.SelfieResponse{
		BotID:          p.ID,
		SelfieImage:    result.Base64,
		EmotionContext: emoCtx,
		Status:         "success",
	}
	if result.ServedPath != "" {
		url := absoluteURL(r, result.ServedPath)
		response.SelfieURL = &url
	}

	utils.RespondJSON(w, http.StatusOK, response)
}

func absoluteURL(r *http.Request, path string) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host + path
}
