// Package selfie turns an emotion context into a generated persona selfie.
// The generator backend is chosen at startup and shared by all requests.
package selfie

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Likhith623/agentic-image-generation/internal/model/chat"
	"github.com/Likhith623/agentic-image-generation/internal/model/persona"
)

// GenerationRequest is the input to a generator backend.
type GenerationRequest struct {
	Prompt         string
	NegativePrompt string
	RefImageURL    string
}

// Generator produces raw image bytes for a prompt. Implementations must be
// safe for concurrent use; the service holds exactly one for the process.
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) ([]byte, error)
}

// Result carries the encoded selfie and, when static saving is enabled, the
// relative path the image is served under.
type Result struct {
	Base64     string
	ServedPath string
}

// Service drives a Generator and handles encoding and optional persistence.
type Service struct {
	generator Generator
	staticDir string
	timeout   time.Duration
}

// NewService wires the chosen generator. staticDir may be empty, which
// disables disk persistence and URL serving.
func NewService(generator Generator, staticDir string, timeout time.Duration) (*Service, error) {
	if generator == nil {
		return nil, fmt.Errorf("a generator backend is required")
	}
	if staticDir != "" {
		if err := os.MkdirAll(staticDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create static dir: %w", err)
		}
	}
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Service{generator: generator, staticDir: staticDir, timeout: timeout}, nil
}

// Generate runs one image generation for the persona in the given context.
// The call is bounded by the configured timeout regardless of the caller's
// context.
func (s *Service) Generate(ctx context.Context, p persona.Persona, emo chat.EmotionContext) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req := GenerationRequest{
		Prompt:         BuildPrompt(p, emo),
		NegativePrompt: NegativePrompt,
		RefImageURL:    p.RefImageURL,
	}

	log.Printf("[selfie] generating image for persona=%s prompt=%q", p.ID, req.Prompt)
	image, err := s.generator.Generate(ctx, req)
	if err != nil {
		return Result{}, fmt.Errorf("image generation failed: %w", err)
	}
	if len(image) == 0 {
		return Result{}, fmt.Errorf("image generation returned no data")
	}

	result := Result{Base64: base64.StdEncoding.EncodeToString(image)}

	if s.staticDir != "" {
		filename := uuid.NewString() + ".png"
		outputPath := filepath.Join(s.staticDir, filename)
		if err := os.WriteFile(outputPath, image, 0o644); err != nil {
			// Persistence is a convenience; the encoded image still ships.
			log.Printf("[selfie] failed to save image to %s: %v", outputPath, err)
		} else {
			result.ServedPath = "/static/images/" + filename
		}
	}

	return result, nil
}
