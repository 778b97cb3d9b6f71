package selfie

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiGenerator synthesizes the selfie with a Gemini image model over the
// shared genai client. Gemini has no negative-prompt input, so that field is
// folded into the prompt text.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator wraps the shared client.
func NewGeminiGenerator(client *genai.Client, model string) *GeminiGenerator {
	return &GeminiGenerator{client: client, model: model}
}

// Generate asks the image model for a portrait and returns the raw bytes.
func (g *GeminiGenerator) Generate(ctx context.Context, req GenerationRequest) ([]byte, error) {
	prompt := req.Prompt
	if req.NegativePrompt != "" {
		prompt += " Avoid: " + req.NegativePrompt + "."
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE"},
		ImageConfig: &genai.ImageConfig{
			AspectRatio: "3:4",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini image call failed: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("empty response from image model")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data, nil
		}
	}
	return nil, fmt.Errorf("no image data in model response")
}
