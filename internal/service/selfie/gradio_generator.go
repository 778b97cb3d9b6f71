package selfie

import (
	"context"
	"fmt"

	"github.com/Likhith623/agentic-image-generation/internal/upstream/gradio"
)

// GradioGenerator drives an Ip-Adapter-FaceID style Space. The payload is
// positional: reference images, prompt, negative prompt.
type GradioGenerator struct {
	client *gradio.Client
}

// NewGradioGenerator wraps an already-constructed Space client.
func NewGradioGenerator(client *gradio.Client) *GradioGenerator {
	return &GradioGenerator{client: client}
}

// Generate submits the call and downloads the first produced image.
func (g *GradioGenerator) Generate(ctx context.Context, req GenerationRequest) ([]byte, error) {
	var refImages any
	if req.RefImageURL != "" {
		refImages = []any{req.RefImageURL}
	}

	data, err := g.client.Predict(ctx, []any{refImages, req.Prompt, req.NegativePrompt})
	if err != nil {
		return nil, err
	}

	fileURL, ok := findImageURL(data)
	if !ok {
		return nil, fmt.Errorf("invalid response from image generation service")
	}
	return g.client.FetchFile(ctx, fileURL)
}

// findImageURL walks the result payload looking for the first image file
// reference. Spaces nest these differently across gradio versions, so the
// search is structural rather than positional.
func findImageURL(v any) (string, bool) {
	switch value := v.(type) {
	case []any:
		for _, item := range value {
			if url, ok := findImageURL(item); ok {
				return url, true
			}
		}
	case map[string]any:
		if image, ok := value["image"]; ok {
			if url, ok := findImageURL(image); ok {
				return url, true
			}
		}
		if url, ok := value["url"].(string); ok && url != "" {
			return url, true
		}
		if path, ok := value["path"].(string); ok && path != "" {
			return path, true
		}
	}
	return "", false
}
