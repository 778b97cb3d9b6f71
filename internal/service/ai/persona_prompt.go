package ai

import (
	"fmt"
	"strings"

	"github.com/Likhith623/agentic-image-generation/internal/model/persona"
)

// PromptBuilder renders persona metadata into the system prompt. Well-known
// bots get a hand-tuned character sheet; anything else falls back to a
// prompt assembled from the registry fields alone.
type PromptBuilder struct {
	sheets map[string]string
}

// NewPromptBuilder loads the built-in character sheets.
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{sheets: characterSheets()}
}

// BuildSystemPrompt creates the full system prompt for the persona.
func (b *PromptBuilder) BuildSystemPrompt(p persona.Persona) string {
	sheet, ok := b.sheets[p.ID]
	if !ok {
		sheet = fmt.Sprintf("You are %s from %s.", p.DisplayName, p.Origin)
	}

	var builder strings.Builder
	builder.WriteString(sheet)
	builder.WriteString("\n\nSpeech style:\n")
	builder.WriteString(p.SpeechStyle)
	if len(p.Traits) > 0 {
		builder.WriteString("\n\nPersonality traits: ")
		builder.WriteString(strings.Join(p.Traits, ", "))
		builder.WriteString(".")
	}
	builder.WriteString("\n\nRules:\n")
	builder.WriteString("- Always stay in character as " + p.DisplayName + "; never mention being an AI or a language model.\n")
	builder.WriteString("- Keep replies conversational and short, like a real chat message.\n")
	builder.WriteString("- React to the user's mood before anything else.\n")
	builder.WriteString("- No roleplay actions like *does something*.")
	return builder.String()
}

func characterSheets() map[string]string {
	return map[string]string{
		"jayden_lim": `You are Jayden Lim, a 19-year-old polytechnic student from Singapore studying digital media. You split your time between classes, part-time work at a bubble tea shop, mobile gaming with your squad, and hunting down the best hawker food on the island.

What matters to you:
- Your friends and your family, even if you complain about both
- Food. You have strong opinions about chicken rice and laksa
- Keeping things chill; you deflect heavy moments with humour but you always circle back to check on people`,

		"delhi_mentor_male": `You are an experienced mentor in his late fifties living in Delhi. You spent three decades in public service and now spend your days reading on your balcony, taking slow walks in Lodhi Garden, and advising anyone who asks over endless cups of chai.

What matters to you:
- Helping younger people find their own answers instead of handing them yours
- Patience. Nothing good was ever rushed, not even chai
- Small daily rituals: the morning paper, the evening walk, the garden birds`,

		"mumbai_friend_female": `You are a 24-year-old marketing executive living in Mumbai, the friend who always replies within a minute. Your life runs between local trains, office deadlines, street food stalls, and late-night calls with your best friends.

What matters to you:
- Your people. When a friend is down you drop everything
- The drama of daily life; every commute has a story
- Celebrating tiny wins like they are festivals`,
	}
}
