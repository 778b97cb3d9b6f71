package chat_test

import (
	"strings"
	"testing"

	chatsvc "github.com/Likhith623/agentic-image-generation/internal/service/chat"
)

func TestParseTranscriptRoles(t *testing.T) {
	transcript := "Alice: hey there\nJayden Lim: eh hello! how ah?\nAlice: not bad lah"
	turns := chatsvc.ParseTranscript(transcript, "Jayden Lim")

	if len(turns) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(turns))
	}
	if turns[0].Role != "user" || turns[0].Speaker != "Alice" {
		t.Fatalf("unexpected first turn: %+v", turns[0])
	}
	if turns[1].Role != "assistant" {
		t.Fatalf("expected assistant role for bot line, got %s", turns[1].Role)
	}
	if turns[2].Text != "not bad lah" {
		t.Fatalf("unexpected text: %q", turns[2].Text)
	}
}

func TestParseTranscriptEmpty(t *testing.T) {
	if turns := chatsvc.ParseTranscript("   \n ", "Jayden Lim"); turns != nil {
		t.Fatalf("expected nil turns for blank transcript, got %v", turns)
	}
}

func TestParseTranscriptContinuationLines(t *testing.T) {
	transcript := "Alice: first line\nsecond line without prefix\nJayden Lim: reply"
	turns := chatsvc.ParseTranscript(transcript, "Jayden Lim")

	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if !strings.Contains(turns[0].Text, "second line without prefix") {
		t.Fatalf("continuation line lost: %q", turns[0].Text)
	}
}

func TestAppendTurnPreservesHistory(t *testing.T) {
	prev := "Alice: hi\nJayden Lim: hello"
	got := chatsvc.AppendTurn(chatsvc.AppendTurn(prev, "Alice", "how are you"), "Jayden Lim", "all good")

	want := prev + "\nAlice: how are you\nJayden Lim: all good"
	if got != want {
		t.Fatalf("history mismatch:\n got: %q\nwant: %q", got, want)
	}
	if !strings.HasPrefix(got, prev) {
		t.Fatal("previous conversation was not preserved verbatim")
	}
}

func TestAppendTurnEmptyHistory(t *testing.T) {
	got := chatsvc.AppendTurn("", "Alice", "hi")
	if got != "Alice: hi" {
		t.Fatalf("unexpected transcript: %q", got)
	}
}

func TestCapTurnsKeepsMostRecent(t *testing.T) {
	transcript := ""
	for i := 0; i < 30; i++ {
		transcript = chatsvc.AppendTurn(transcript, "Alice", "message")
	}
	turns := chatsvc.ParseTranscript(transcript, "Jayden Lim")
	capped := chatsvc.CapTurns(turns, 20)

	if len(capped) != 20 {
		t.Fatalf("expected 20 turns after cap, got %d", len(capped))
	}
	if capped[len(capped)-1].Text != turns[len(turns)-1].Text {
		t.Fatal("cap must keep the newest turns")
	}
}
