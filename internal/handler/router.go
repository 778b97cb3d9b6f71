package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Likhith623/agentic-image-generation/internal/config"
	chathandler "github.com/Likhith623/agentic-image-generation/internal/handler/chat"
	personahandler "github.com/Likhith623/agentic-image-generation/internal/handler/persona"
	selfiehandler "github.com/Likhith623/agentic-image-generation/internal/handler/selfie"
	"github.com/Likhith623/agentic-image-generation/internal/middleware"
	personamodel "github.com/Likhith623/agentic-image-generation/internal/model/persona"
	aiservice "github.com/Likhith623/agentic-image-generation/internal/service/ai"
	emotionservice "github.com/Likhith623/agentic-image-generation/internal/service/emotion"
	selfieservice "github.com/Likhith623/agentic-image-generation/internal/service/selfie"
	"github.com/Likhith623/agentic-image-generation/pkg/utils"
)

// NewRouter wires HTTP routes to core services. aiSvc and selfieSvc may be
// nil when their upstream is not configured; the affected routes degrade to
// 503 instead of failing startup.
func NewRouter(
	personas personamodel.Store,
	aiSvc *aiservice.Service,
	emotionSvc *emotionservice.Service,
	selfieSvc *selfieservice.Service,
	corsCfg config.CORSConfig,
	staticDir string,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(corsCfg))

	// A nil *Service must stay a nil interface inside the handlers.
	var replyGen chathandler.ReplyGenerator
	if aiSvc != nil {
		replyGen = aiSvc
	}
	var chatSelfies chathandler.SelfieGenerator
	var selfieGen selfiehandler.Generator
	if selfieSvc != nil {
		chatSelfies = selfieSvc
		selfieGen = selfieSvc
	}

	chatHandler := chathandler.New(personas, replyGen, emotionSvc, chatSelfies)
	personaHandler := personahandler.New(personas)
	selfieHandler := selfiehandler.New(personas, emotionSvc, selfieGen)

	r.Get("/", handleHealth)
	personaHandler.RegisterRoutes(r)
	chatHandler.RegisterRoutes(r)
	selfieHandler.RegisterRoutes(r)

	if staticDir != "" {
		fs := http.StripPrefix("/static/images/", http.FileServer(http.Dir(staticDir)))
		r.Get("/static/images/*", fs.ServeHTTP)
	}

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "API is running.",
	})
}
