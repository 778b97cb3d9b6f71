// Package emotion provides keyword heuristics that turn free text into an
// EmotionContext. It is the infallible fallback behind the LLM extractor:
// ambiguous input yields the default context, never an error.
package emotion

import (
	"strings"

	"github.com/Likhith623/agentic-image-generation/internal/model/chat"
)

// Label names one emotion bucket in the fixed vocabulary.
type Label string

const (
	Neutral Label = "neutral"
	Happy   Label = "happy"
	Sad     Label = "sad"
	Angry   Label = "angry"
	Excited Label = "excited"
	Anxious Label = "anxious"
	Tired   Label = "tired"
)

var keywordBuckets = map[Label][]string{
	Happy: {
		"happy", "glad", "great day", "wonderful", "lovely", "haha", "lol", "awesome",
		"thanks", "thank you", "love it", "feeling good", "smile", "nice one", "shiok",
	},
	Sad: {
		"sad", "unhappy", "depressed", "miserable", "cry", "crying", "lonely", "heartbroken",
		"down today", "upset", "hurt", "miss you", "miss home", "disappointed",
	},
	Angry: {
		"angry", "furious", "mad at", "annoyed", "pissed", "fed up", "hate", "rage",
		"so unfair", "walao", "frustrated", "irritated",
	},
	Excited: {
		"excited", "can't wait", "cant wait", "thrilled", "amazing", "incredible", "wow",
		"let's go", "lets go", "hyped", "pumped", "unbelievable", "so cool",
	},
	Anxious: {
		"nervous", "anxious", "worried", "scared", "stressed", "afraid", "panicking",
		"overthinking", "exam tomorrow", "deadline",
	},
	Tired: {
		"tired", "exhausted", "sleepy", "drained", "burnt out", "burned out", "no energy",
		"long day", "shag",
	},
}

// punctuationBoost rewards exclamation-heavy text, which usually signals
// excitement rather than any keyword.
var punctuationBoost = map[Label]int{
	Happy:   2,
	Excited: 3,
}

var locationHints = map[string]string{
	"cafe":       "at a bustling cafe",
	"coffee":     "at a bustling cafe",
	"kopitiam":   "at a busy kopitiam",
	"restaurant": "at a cozy restaurant",
	"home":       "at home",
	"office":     "at the office",
	"work":       "at the office",
	"school":     "on campus",
	"class":      "on campus",
	"gym":        "at the gym",
	"beach":      "at the beach",
	"park":       "in a sunny park",
	"mall":       "at a shopping mall",
	"bus":        "on the bus",
	"train":      "on the mrt",
}

var actionHints = map[string]string{
	"eating":   "enjoying some food",
	"lunch":    "enjoying some food",
	"dinner":   "enjoying some food",
	"coffee":   "sipping a coffee",
	"tea":      "sipping a cup of tea",
	"studying": "studying with books open",
	"study":    "studying with books open",
	"working":  "working on a laptop",
	"gaming":   "playing a video game",
	"game":     "playing a video game",
	"running":  "out on a run",
	"gym":      "working out",
	"cooking":  "cooking a meal",
	"music":    "listening to music",
	"walking":  "taking a walk",
	"shopping": "out shopping",
}

// Analyze derives an EmotionContext from a bot reply and the user message
// that prompted it. The reply is scored first; the user text only fills in
// whatever the reply left blank.
func Analyze(userText, botText string) chat.EmotionContext {
	ctx := chat.DefaultEmotionContext()

	if label, ok := classify(botText); ok {
		ctx.Emotion = string(label)
	} else if label, ok := classify(userText); ok {
		ctx.Emotion = string(label)
	}

	if loc, ok := guess(botText, locationHints); ok {
		ctx.Location = loc
	} else if loc, ok := guess(userText, locationHints); ok {
		ctx.Location = loc
	}

	if act, ok := guess(botText, actionHints); ok {
		ctx.Action = act
	} else if act, ok := guess(userText, actionHints); ok {
		ctx.Action = act
	}

	return ctx
}

// Classify scores a single text against the keyword buckets.
func Classify(text string) Label {
	if label, ok := classify(text); ok {
		return label
	}
	return Neutral
}

func classify(text string) (Label, bool) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return Neutral, false
	}

	scores := make(map[Label]int)
	for label, keywords := range keywordBuckets {
		for _, word := range keywords {
			if indexWord(normalized, word) >= 0 {
				scores[label] += 3
			}
		}
	}

	if exclamations := strings.Count(text, "!"); exclamations > 0 {
		scores[Excited] += exclamations * punctuationBoost[Excited]
		if exclamations == 1 {
			scores[Happy] += punctuationBoost[Happy]
		}
	}

	bestLabel := Neutral
	bestScore := 0
	for label, s := range scores {
		if s > bestScore {
			bestScore = s
			bestLabel = label
		}
	}

	if bestScore == 0 {
		return Neutral, false
	}
	return bestLabel, true
}

func guess(text string, hints map[string]string) (string, bool) {
	normalized := strings.ToLower(text)
	best := ""
	bestIdx := -1
	// Pick the earliest hint so the guess tracks what the text leads with.
	for word, phrase := range hints {
		if idx := indexWord(normalized, word); idx >= 0 {
			if bestIdx == -1 || idx < bestIdx {
				bestIdx = idx
				best = phrase
			}
		}
	}
	if bestIdx == -1 {
		return "", false
	}
	return best, true
}

// indexWord locates word in text on letter boundaries, so "eating" does not
// match inside "meeting" and "happy" does not match inside "unhappy".
func indexWord(text, word string) int {
	for start := 0; start <= len(text)-len(word); {
		idx := strings.Index(text[start:], word)
		if idx < 0 {
			return -1
		}
		idx += start
		end := idx + len(word)
		if (idx == 0 || !isLetter(text[idx-1])) && (end == len(text) || !isLetter(text[end])) {
			return idx
		}
		start = idx + 1
	}
	return -1
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z'
}
