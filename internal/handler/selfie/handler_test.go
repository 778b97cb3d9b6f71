package selfie

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"

	chatmodel "github.com/Likhith623/agentic-image-generation/internal/model/chat"
	"github.com/Likhith623/agentic-image-generation/internal/model/persona"
	emotionservice "github.com/Likhith623/agentic-image-generation/internal/service/emotion"
	selfiesvc "github.com/Likhith623/agentic-image-generation/internal/service/selfie"
)

type stubGenerator struct {
	result selfiesvc.Result
	err    error
	calls  int
}

func (g *stubGenerator) Generate(_ context.Context, _ persona.Persona, _ chatmodel.EmotionContext) (selfiesvc.Result, error) {
	g.calls++
	return g.result, g.err
}

func setupRouter(t *testing.T, gen *stubGenerator) *chi.Mux {
	t.Helper()

	store := persona.NewMemoryStore(persona.Seed())
	extractor, err := emotionservice.NewService(context.Background(), nil, emotionservice.Config{})
	if err != nil {
		t.Fatalf("emotion service err: %v", err)
	}

	var generator Generator
	if gen != nil {
		generator = gen
	}
	handler := New(store, extractor, generator)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestGenerateSelfieQueryParams(t *testing.T) {
	gen := &stubGenerator{result: selfiesvc.Result{Base64: "aW1n"}}
	r := setupRouter(t, gen)

	target := "/generate-selfie?bot_id=jayden_lim&message=" + url.QueryEscape("so excited for the trip!")
	req := httptest.NewRequest(http.MethodPost, target, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body chatmodel.SelfieResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if body.SelfieImage != "aW1n" {
		t.Fatalf("unexpected selfie_image: %q", body.SelfieImage)
	}
	if body.BotID != "jayden_lim" {
		t.Fatalf("unexpected bot_id: %q", body.BotID)
	}
	if body.EmotionContext.Emotion != "excited" {
		t.Fatalf("expected excited context, got %s", body.EmotionContext.Emotion)
	}
}

func TestGenerateSelfieJSONBodyFallback(t *testing.T) {
	gen := &stubGenerator{result: selfiesvc.Result{Base64: "aW1n"}}
	r := setupRouter(t, gen)

	payload := []byte(`{"bot_id": "jayden_lim", "message": "hello"}`)
	req := httptest.NewRequest(http.MethodPost, "/generate-selfie", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestGenerateSelfieUnknownBot(t *testing.T) {
	gen := &stubGenerator{result: selfiesvc.Result{Base64: "x"}}
	r := setupRouter(t, gen)

	req := httptest.NewRequest(http.MethodPost, "/generate-selfie?bot_id=nobody&message=hi", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if gen.calls != 0 {
		t.Fatal("generator must not run for an unknown bot")
	}
}

func TestGenerateSelfieUpstreamFailure(t *testing.T) {
	gen := &stubGenerator{err: fmt.Errorf("space down")}
	r := setupRouter(t, gen)

	req := httptest.NewRequest(http.MethodPost, "/generate-selfie?bot_id=jayden_lim&message=hi", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}

	var body map[string]string
	json.Unmarshal(resp.Body.Bytes(), &body)
	if body["status"] != "error" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestGenerateSelfieUnavailableBackend(t *testing.T) {
	r := setupRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/generate-selfie?bot_id=jayden_lim&message=hi", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}
