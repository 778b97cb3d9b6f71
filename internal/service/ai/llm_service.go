// Package ai is the language-model gateway: one eino chain from persona
// system prompt plus carried history to an in-character reply.
package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"github.com/Likhith623/agentic-image-generation/internal/config"
	"github.com/Likhith623/agentic-image-generation/internal/model/chat"
	"github.com/Likhith623/agentic-image-generation/internal/model/persona"
)

// ErrEmptyReply is returned when the model answers with no usable content.
var ErrEmptyReply = fmt.Errorf("model returned an empty reply")

// Service wraps the compiled chat chain. A single failed call surfaces as an
// error; there is no retry or backoff.
type Service struct {
	chatModel model.ChatModel
	cfg       config.AIConfig
	prompts   *PromptBuilder
	chain     compose.Runnable[map[string]any, *schema.Message]
}

// NewService compiles the chat chain over the shared Gemini client.
func NewService(ctx context.Context, cfg config.AIConfig, client *genai.Client) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		chatModel: chatModel,
		cfg:       cfg,
		prompts:   NewPromptBuilder(),
		chain:     runnable,
	}, nil
}

// GenerateReply produces the persona's next line for the conversation.
func (s *Service) GenerateReply(ctx context.Context, p persona.Persona, history []chat.Turn, userMessage string) (string, error) {
	input := map[string]any{
		"system":  s.prompts.BuildSystemPrompt(p),
		"history": buildHistoryMessages(history, s.cfg.HistoryTurnLimit),
		"query":   userMessage,
	}

	response, err := s.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to run chat chain: %w", err)
	}
	if response == nil || strings.TrimSpace(response.Content) == "" {
		return "", ErrEmptyReply
	}

	log.Printf("[ai] generated reply for persona=%s, length=%d", p.ID, len(response.Content))
	return strings.TrimSpace(response.Content), nil
}

// ChatModel exposes the underlying model so the emotion extractor can reuse it.
func (s *Service) ChatModel() model.ChatModel {
	return s.chatModel
}

func buildHistoryMessages(turns []chat.Turn, limit int) []*schema.Message {
	if len(turns) == 0 {
		return nil
	}

	if limit <= 0 {
		limit = 20
	}
	startIdx := 0
	if len(turns) > limit {
		startIdx = len(turns) - limit
	}

	history := make([]*schema.Message, 0, len(turns)-startIdx)
	for _, turn := range turns[startIdx:] {
		switch turn.Role {
		case "user":
			history = append(history, schema.UserMessage(turn.Text))
		case "assistant":
			history = append(history, schema.AssistantMessage(turn.Text, nil))
		}
	}
	return history
}
