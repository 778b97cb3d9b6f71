package selfie

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Likhith623/agentic-image-generation/internal/model/chat"
	"github.com/Likhith623/agentic-image-generation/internal/model/persona"
)

type stubGenerator struct {
	image []byte
	err   error
	calls int
	last  GenerationRequest
}

func (g *stubGenerator) Generate(_ context.Context, req GenerationRequest) ([]byte, error) {
	g.calls++
	g.last = req
	return g.image, g.err
}

func testPersona() persona.Persona {
	return persona.Persona{ID: "jayden_lim", DisplayName: "Jayden Lim", Origin: "Singapore"}
}

func TestGenerateEncodesBase64(t *testing.T) {
	gen := &stubGenerator{image: []byte("fake-png")}
	svc, err := NewService(gen, "", time.Second)
	if err != nil {
		t.Fatalf("NewService err: %v", err)
	}

	result, err := svc.Generate(context.Background(), testPersona(), chat.DefaultEmotionContext())
	if err != nil {
		t.Fatalf("Generate err: %v", err)
	}

	decoded, err := base64.StdEncoding.DecodeString(result.Base64)
	if err != nil {
		t.Fatalf("result is not valid base64: %v", err)
	}
	if string(decoded) != "fake-png" {
		t.Fatalf("unexpected decoded image: %q", decoded)
	}
	if result.ServedPath != "" {
		t.Fatalf("served path should be empty without a static dir, got %q", result.ServedPath)
	}
}

func TestGenerateSavesToStaticDir(t *testing.T) {
	dir := t.TempDir()
	gen := &stubGenerator{image: []byte("fake-png")}
	svc, err := NewService(gen, dir, time.Second)
	if err != nil {
		t.Fatalf("NewService err: %v", err)
	}

	result, err := svc.Generate(context.Background(), testPersona(), chat.DefaultEmotionContext())
	if err != nil {
		t.Fatalf("Generate err: %v", err)
	}
	if !strings.HasPrefix(result.ServedPath, "/static/images/") {
		t.Fatalf("unexpected served path: %q", result.ServedPath)
	}

	saved, err := os.ReadFile(filepath.Join(dir, filepath.Base(result.ServedPath)))
	if err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
	if string(saved) != "fake-png" {
		t.Fatalf("saved bytes mismatch: %q", saved)
	}
}

func TestGenerateUpstreamFailure(t *testing.T) {
	gen := &stubGenerator{err: fmt.Errorf("space down")}
	svc, _ := NewService(gen, "", time.Second)

	if _, err := svc.Generate(context.Background(), testPersona(), chat.DefaultEmotionContext()); err == nil {
		t.Fatal("expected error from failing generator")
	}
}

func TestGeneratePassesNegativePrompt(t *testing.T) {
	gen := &stubGenerator{image: []byte("x")}
	svc, _ := NewService(gen, "", time.Second)

	emo := chat.EmotionContext{Emotion: "excited", Location: "at the beach", Action: "taking photos"}
	if _, err := svc.Generate(context.Background(), testPersona(), emo); err != nil {
		t.Fatalf("Generate err: %v", err)
	}
	if gen.last.NegativePrompt != NegativePrompt {
		t.Fatalf("negative prompt not forwarded: %q", gen.last.NegativePrompt)
	}
	if !strings.Contains(gen.last.Prompt, "excited") || !strings.Contains(gen.last.Prompt, "at the beach") {
		t.Fatalf("prompt missing context: %q", gen.last.Prompt)
	}
}

func TestBuildPromptDefaults(t *testing.T) {
	prompt := BuildPrompt(testPersona(), chat.DefaultEmotionContext())
	if !strings.Contains(prompt, "neutral expression") {
		t.Fatalf("expected neutral phrasing, got %q", prompt)
	}
	if !strings.Contains(prompt, "looking at the camera") {
		t.Fatalf("expected camera phrasing, got %q", prompt)
	}
	if !strings.Contains(prompt, "Jayden Lim") {
		t.Fatalf("expected persona name, got %q", prompt)
	}
}

func TestNewServiceRequiresGenerator(t *testing.T) {
	if _, err := NewService(nil, "", time.Second); err == nil {
		t.Fatal("expected error for nil generator")
	}
}
