// Package emotion extracts the {emotion, location, action} context from a
// conversation turn. The primary path asks the model for a small JSON
// object; every failure falls back to keyword heuristics. Extraction never
// returns an error.
package emotion

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	analysis "github.com/Likhith623/agentic-image-generation/internal/analysis/emotion"
	"github.com/Likhith623/agentic-image-generation/internal/model/chat"
)

// Config controls the extractor.
type Config struct {
	Enabled bool
}

// Service runs LLM-based context extraction with a heuristic fallback.
type Service struct {
	enabled   bool
	extractor compose.Runnable[map[string]any, *schema.Message]
	fallback  func(userText, botText string) chat.EmotionContext
}

// NewService creates the extractor. chatModel may be nil, in which case only
// the heuristic path is used.
func NewService(ctx context.Context, chatModel model.ChatModel, cfg Config) (*Service, error) {
	svc := &Service{
		enabled:  cfg.Enabled && chatModel != nil,
		fallback: analysis.Analyze,
	}

	if !svc.enabled {
		return svc, nil
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage(extractorSystemPrompt),
		schema.UserMessage(extractorUserPrompt),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile extractor chain: %w", err)
	}

	svc.extractor = runnable
	return svc, nil
}

// Enabled reports whether the LLM path is active.
func (s *Service) Enabled() bool {
	return s != nil && s.enabled && s.extractor != nil
}

// Extract derives the emotion context. The bot reply is the primary signal;
// the user message is the fallback when the reply is empty.
func (s *Service) Extract(ctx context.Context, userMessage, botReply string) chat.EmotionContext {
	text := strings.TrimSpace(botReply)
	if text == "" {
		text = strings.TrimSpace(userMessage)
	}
	if text == "" {
		return chat.DefaultEmotionContext()
	}

	if !s.Enabled() {
		return s.fallback(userMessage, botReply)
	}

	msg, err := s.extractor.Invoke(ctx, map[string]any{"text": text})
	if err != nil {
		log.Printf("[emotion] extractor invoke failed, using heuristics: %v", err)
		return s.fallback(userMessage, botReply)
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		return s.fallback(userMessage, botReply)
	}

	extracted, err := parseExtractorOutput(msg.Content)
	if err != nil {
		log.Printf("[emotion] extractor output parse failed, using heuristics: %v", err)
		return s.fallback(userMessage, botReply)
	}

	return extracted
}

// parseExtractorOutput slices the first JSON object out of the model reply;
// models habitually wrap JSON in prose or code fences.
func parseExtractorOutput(content string) (chat.EmotionContext, error) {
	trimmed := strings.TrimSpace(content)
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end <= start {
		return chat.EmotionContext{}, fmt.Errorf("missing json object")
	}

	var payload chat.EmotionContext
	if err := json.Unmarshal([]byte(trimmed[start:end+1]), &payload); err != nil {
		return chat.EmotionContext{}, err
	}

	defaults := chat.DefaultEmotionContext()
	if strings.TrimSpace(payload.Emotion) == "" {
		payload.Emotion = defaults.Emotion
	}
	if strings.TrimSpace(payload.Location) == "" {
		payload.Location = defaults.Location
	}
	if strings.TrimSpace(payload.Action) == "" {
		payload.Action = defaults.Action
	}
	return payload, nil
}

// The doubled braces keep the f-string template engine from treating the
// example object as a placeholder.
const extractorSystemPrompt = "You analyze a line of conversation and describe the scene it implies in simple terms. Respond ONLY with a JSON object with keys \"emotion\", \"location\", and \"action\". Example: {{\"emotion\": \"happy and smiling\", \"location\": \"at a bustling cafe\", \"action\": \"sipping a coffee\"}}. No extra text."

const extractorUserPrompt = "Text: \"{text}\""
