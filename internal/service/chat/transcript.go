// Package chat assembles and parses the conversation transcript that clients
// carry between requests. The server stores nothing; the transcript string in
// the request is the whole conversation state.
package chat

import (
	"strings"

	"github.com/Likhith623/agentic-image-generation/internal/model/chat"
)

// DefaultTurnLimit bounds how many turns are forwarded to the model.
// The transcript returned to the client is never truncated.
const DefaultTurnLimit = 20

// ParseTranscript splits a transcript string into turns. Lines look like
// "Jayden Lim: text"; a line whose speaker matches botName becomes an
// assistant turn, everything else a user turn. Lines without a speaker
// prefix continue the previous turn.
func ParseTranscript(transcript, botName string) []chat.Turn {
	trimmed := strings.TrimSpace(transcript)
	if trimmed == "" {
		return nil
	}

	var turns []chat.Turn
	for _, line := range strings.Split(trimmed, "\n") {
		speaker, text, ok := splitTurnLine(line)
		if !ok {
			if len(turns) == 0 {
				// Leading prose with no speaker tag: treat as a user turn.
				turns = append(turns, chat.Turn{Role: "user", Speaker: "User", Text: strings.TrimSpace(line)})
				continue
			}
			turns[len(turns)-1].Text += "\n" + line
			continue
		}

		role := "user"
		if strings.EqualFold(speaker, botName) {
			role = "assistant"
		}
		turns = append(turns, chat.Turn{Role: role, Speaker: speaker, Text: text})
	}
	return turns
}

// AppendTurn renders one turn onto the transcript, preserving the existing
// text verbatim so the returned history is always the caller's history plus
// the new lines.
func AppendTurn(transcript, speaker, text string) string {
	line := speaker + ": " + text
	if strings.TrimSpace(transcript) == "" {
		return line
	}
	return strings.TrimRight(transcript, "\n") + "\n" + line
}

// CapTurns keeps the most recent limit turns for the model prompt.
// Unbounded transcripts are a caller-side liability; the upstream call is
// protected here.
func CapTurns(turns []chat.Turn, limit int) []chat.Turn {
	if limit <= 0 {
		limit = DefaultTurnLimit
	}
	if len(turns) <= limit {
		return turns
	}
	return turns[len(turns)-limit:]
}

func splitTurnLine(line string) (speaker, text string, ok bool) {
	head, rest, found := strings.Cut(line, ": ")
	if !found {
		return "", "", false
	}
	head = strings.TrimSpace(head)
	// Speaker tags are short display names; anything longer is message prose
	// that happened to contain a colon.
	if head == "" || len(head) > 48 || strings.ContainsAny(head, ".!?") {
		return "", "", false
	}
	return head, rest, true
}
