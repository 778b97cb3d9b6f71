package chat

// Turn is one line of the conversation transcript. Role is "user" or
// "assistant"; Speaker preserves the display name used on the wire.
type Turn struct {
	Role    string `json:"role"`
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// EmotionContext is the small structured guess derived from free text.
// It is a derived value, never stored.
type EmotionContext struct {
	Emotion  string `json:"emotion"`
	Location string `json:"location"`
	Action   string `json:"action"`
}

// DefaultEmotionContext is returned whenever no signal can be extracted.
// Emotion extraction must never fail.
func DefaultEmotionContext() EmotionContext {
	return EmotionContext{Emotion: "neutral", Location: "unknown", Action: "talking"}
}
