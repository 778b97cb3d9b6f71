// Package persona serves the bot registry routes.
package persona

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Likhith623/agentic-image-generation/internal/model/persona"
	"github.com/Likhith623/agentic-image-generation/pkg/utils"
)

// Handler exposes the persona registry over HTTP.
type Handler struct {
	personas persona.Store
}

// New creates the persona handler.
func New(personas persona.Store) *Handler {
	return &Handler{personas: personas}
}

// RegisterRoutes mounts the registry routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/bots", h.handleListBots)
}

func (h *Handler) handleListBots(w http.ResponseWriter, r *http.Request) {
	bots := h.personas.List()
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"bots":   bots,
		"count":  len(bots),
		"status": "success",
	})
}
