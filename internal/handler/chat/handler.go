// Package chat serves the /chat and /detect-emotion routes.
package chat

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	chatmodel "github.com/Likhith623/agentic-image-generation/internal/model/chat"
	"github.com/Likhith623/agentic-image-generation/internal/model/persona"
	chatsvc "github.com/Likhith623/agentic-image-generation/internal/service/chat"
	"github.com/Likhith623/agentic-image-generation/internal/service/selfie"
	"github.com/Likhith623/agentic-image-generation/pkg/utils"
)

// ReplyGenerator produces the persona's next chat line.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, p persona.Persona, history []chatmodel.Turn, userMessage string) (string, error)
}

// ContextExtractor derives the emotion context; it never fails.
type ContextExtractor interface {
	Extract(ctx context.Context, userMessage, botReply string) chatmodel.EmotionContext
}

// SelfieGenerator produces the optional selfie for a chat turn.
type SelfieGenerator interface {
	Generate(ctx context.Context, p persona.Persona, emo chatmodel.EmotionContext) (selfie.Result, error)
}

// Handler composes the chat pipeline.
type Handler struct {
	personas  persona.Store
	ai        ReplyGenerator
	extractor ContextExtractor
	selfies   SelfieGenerator
}

// New creates the chat handler. ai and selfies may be nil when the matching
// upstream credential is absent; affected routes answer 503.
func New(personas persona.Store, ai ReplyGenerator, extractor ContextExtractor, selfies SelfieGenerator) *Handler {
	return &Handler{
		personas:  personas,
		ai:        ai,
		extractor: extractor,
		selfies:   selfies,
	}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Post("/detect-emotion", h.handleDetectEmotion)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatmodel.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.BotID) == "" {
		utils.RespondError(w, http.StatusBadRequest, "bot_id is required")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	p, ok := h.personas.FindByID(req.BotID)
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "bot with id '"+req.BotID+"' is not a valid bot")
		return
	}

	if h.ai == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "chat model is not configured")
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		username = "User"
	}

	history := chatsvc.ParseTranscript(req.PreviousConversation, p.DisplayName)

	reply, err := h.ai.GenerateReply(r.Context(), p, history, req.Message)
	if err != nil {
		log.Printf("[chat] reply generation failed for bot=%s: %v", p.ID, err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to generate bot response")
		return
	}

	emoCtx := h.extractor.Extract(r.Context(), req.Message, reply)

	response := chatmodel.Response{
		BotResponse:    reply,
		EmotionContext: emoCtx,
		ConversationHistory: chatsvc.AppendTurn(
			chatsvc.AppendTurn(req.PreviousConversation, username, req.Message),
			p.DisplayName, reply,
		),
		Status: "success",
	}

	// Selfie generation is best-effort: a failure never blocks the chat text.
	if req.GenerateSelfie && h.selfies != nil {
		result, err := h.selfies.Generate(r.Context(), p, emoCtx)
		if err != nil {
			log.Printf("[chat] selfie generation failed for bot=%s: %v", p.ID, err)
		} else {
			response.SelfieImage = &result.Base64
			if result.ServedPath != "" {
				url := absoluteURL(r, result.ServedPath)
				response.SelfieURL = &url
			}
		}
	}

	utils.RespondJSON(w, http.StatusOK, response)
}

func (h *Handler) handleDetectEmotion(w http.ResponseWriter, r *http.Request) {
	message := strings.TrimSpace(r.URL.Query().Get("message"))
	if message == "" {
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err == nil {
			message = strings.TrimSpace(payload.Message)
		}
	}
	if message == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	emoCtx := h.extractor.Extract(r.Context(), message, "")
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"emotion_context": emoCtx,
		"status":          "success",
	})
}

// absoluteURL rebuilds the public URL for a served path from the inbound
// request, matching the deployment's external host.
func absoluteURL(r *http.Request, path string) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host + path
}
