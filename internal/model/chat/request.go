package chat

// Request is the /chat request body. The caller carries the conversation
// history; the server holds no state between calls.
type Request struct {
	BotID                string `json:"bot_id"`
	Email                string `json:"email"`
	Message              string `json:"message"`
	PreviousConversation string `json:"previous_conversation"`
	Username             string `json:"username"`
	GenerateSelfie       bool   `json:"generate_selfie"`
}

// Response is the combined /chat response.
type Response struct {
	BotResponse         string         `json:"bot_response"`
	EmotionContext      EmotionContext `json:"emotion_context"`
	SelfieImage         *string        `json:"selfie_image"`
	SelfieURL           *string        `json:"selfie_url"`
	ConversationHistory string         `json:"conversation_history"`
	Status              string         `json:"status"`
}

// SelfieResponse is the /generate-selfie response.
type SelfieResponse struct {
	BotID          string         `json:"bot_id"`
	SelfieImage    string         `json:"selfie_image"`
	SelfieURL      *string        `json:"selfie_url"`
	EmotionContext EmotionContext `json:"emotion_context"`
	Status         string         `json:"status"`
}
