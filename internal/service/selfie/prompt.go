package selfie

import (
	"fmt"

	"github.com/Likhith623/agentic-image-generation/internal/model/chat"
	"github.com/Likhith623/agentic-image-generation/internal/model/persona"
)

// NegativePrompt is sent with every generation on backends that support it.
const NegativePrompt = "nsfw, low quality, deformed, ugly"

// BuildPrompt renders the portrait prompt for one generation. Empty context
// fields fall back to neutral phrasing so the prompt always reads cleanly.
func BuildPrompt(p persona.Persona, emo chat.EmotionContext) string {
	emotion := emo.Emotion
	if emotion == "" || emotion == "neutral" {
		emotion = "neutral expression"
	}
	action := emo.Action
	if action == "" || action == "talking" {
		action = "looking at the camera"
	}
	location := emo.Location
	if location == "" || location == "unknown" {
		location = "a neutral background"
	}

	return fmt.Sprintf(
		"Close-up portrait selfie of a person with a %s expression, %s, at %s. The person's name is %s from %s. Ultra-detailed, dslr quality, cinematic photo.",
		emotion, action, location, p.DisplayName, p.Origin,
	)
}
