package emotion

import "testing"

func TestAnalyzeExcitedUser(t *testing.T) {
	ctx := Analyze("I'm really excited about this project!", "")
	if ctx.Emotion != "excited" {
		t.Fatalf("expected excited emotion, got %s", ctx.Emotion)
	}
}

func TestAnalyzeNoSignalReturnsDefault(t *testing.T) {
	ctx := Analyze("the report is due on thursday", "noted, will prepare it")
	if ctx.Emotion != "neutral" {
		t.Fatalf("expected neutral emotion, got %s", ctx.Emotion)
	}
	if ctx.Location != "unknown" {
		t.Fatalf("expected unknown location, got %s", ctx.Location)
	}
	if ctx.Action != "talking" {
		t.Fatalf("expected talking action, got %s", ctx.Action)
	}
}

func TestAnalyzePrefersBotReplySignal(t *testing.T) {
	ctx := Analyze("i am so sad today", "haha that was awesome, so happy for you")
	if ctx.Emotion != "happy" {
		t.Fatalf("expected happy from bot reply, got %s", ctx.Emotion)
	}
}

func TestAnalyzeFallsBackToUserSignal(t *testing.T) {
	ctx := Analyze("i am so sad today", "mm, I see")
	if ctx.Emotion != "sad" {
		t.Fatalf("expected sad from user message, got %s", ctx.Emotion)
	}
}

func TestAnalyzeGuessesLocationAndAction(t *testing.T) {
	ctx := Analyze("", "just chilling at the cafe, sipping my coffee, so happy")
	if ctx.Location != "at a bustling cafe" {
		t.Fatalf("unexpected location: %s", ctx.Location)
	}
	if ctx.Action != "sipping a coffee" {
		t.Fatalf("unexpected action: %s", ctx.Action)
	}
}

func TestAnalyzeMatchesWholeWordsOnly(t *testing.T) {
	// "meeting" must not trigger the "eating" hint, "unhappy" must not
	// score the happy bucket.
	ctx := Analyze("the meeting moved to tuesday", "")
	if ctx.Action != "talking" {
		t.Fatalf("expected default action, got %s", ctx.Action)
	}

	ctx = Analyze("i am so unhappy right now", "")
	if ctx.Emotion != "sad" {
		t.Fatalf("expected sad for unhappy, got %s", ctx.Emotion)
	}
}

func TestClassifyEmptyText(t *testing.T) {
	if label := Classify("   "); label != Neutral {
		t.Fatalf("expected neutral for empty text, got %s", label)
	}
}
