package npc

import (
	"fmt"
	"strings"

	"github.com/dungeonforge/dungeonforge-api/internal/entities"
)

// Keyword lists for the rule-based sentiment fallback. Matching is
// substring-based, so "help" also hits "helpful".
var (
	positiveWords = []string{"hello", "good", "great", "nice", "thank", "please", "help"}
	negativeWords = []string{"bad", "terrible", "hate", "angry", "kill", "attack", "threat"}
)

// analyzeSentiment classifies a player utterance by counting keyword hits
func analyzeSentiment(text string) entities.Sentiment {
	lower := strings.ToLower(text)

	var positive, negative int
	for _, word := range positiveWords {
		if strings.Contains(lower, word) {
			positive++
		}
	}
	for _, word := range negativeWords {
		if strings.Contains(lower, word) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return entities.SentimentPositive
	case negative > positive:
		return entities.SentimentNegative
	default:
		return entities.SentimentNeutral
	}
}

// moodTransitions maps current mood and utterance sentiment to the next
// mood. Moods without an entry (very_friendly, very_hostile) are sinks.
var moodTransitions = map[entities.Mood]map[entities.Sentiment]entities.Mood{
	entities.MoodNeutral: {
		entities.SentimentPositive: entities.MoodFriendly,
		entities.SentimentNegative: entities.MoodSuspicious,
		entities.SentimentNeutral:  entities.MoodNeutral,
	},
	entities.MoodFriendly: {
		entities.SentimentPositive: entities.MoodVeryFriendly,
		entities.SentimentNegative: entities.MoodNeutral,
		entities.SentimentNeutral:  entities.MoodFriendly,
	},
	entities.MoodSuspicious: {
		entities.SentimentPositive: entities.MoodNeutral,
		entities.SentimentNegative: entities.MoodHostile,
		entities.SentimentNeutral:  entities.MoodSuspicious,
	},
	entities.MoodHostile: {
		entities.SentimentPositive: entities.MoodSuspicious,
		entities.SentimentNegative: entities.MoodVeryHostile,
		entities.SentimentNeutral:  entities.MoodHostile,
	},
}

// nextMood applies the transition table. Unknown moods keep themselves.
func nextMood(current entities.Mood, sentiment entities.Sentiment) entities.Mood {
	if next, ok := moodTransitions[current][sentiment]; ok {
		return next
	}
	return current
}

// Personality archetypes
const (
	typeSage      = "sage"
	typeMerchant  = "merchant"
	typeGuard     = "guard"
	typeInnkeeper = "innkeeper"
	typePriest    = "priest"
	typeThief     = "thief"
)

var personalityKeywords = []struct {
	npcType  string
	keywords []string
}{
	{typeSage, []string{"sage", "wise", "philosopher", "scholar"}},
	{typeMerchant, []string{"merchant", "trader", "shop", "business"}},
	{typeGuard, []string{"guard", "soldier", "protect", "duty"}},
	{typeInnkeeper, []string{"innkeeper", "tavern", "host", "hospitality"}},
	{typePriest, []string{"priest", "cleric", "holy", "divine"}},
	{typeThief, []string{"thief", "rogue", "criminal", "underworld"}},
}

// classifyPersonality buckets a free-text personality description into an
// archetype. First bucket with a keyword hit wins; merchant is the default.
func classifyPersonality(personality string) string {
	lower := strings.ToLower(personality)
	for _, bucket := range personalityKeywords {
		for _, word := range bucket.keywords {
			if strings.Contains(lower, word) {
				return bucket.npcType
			}
		}
	}
	return typeMerchant
}

// Greeting templates by archetype and mood. The format verb takes the
// NPC's name. Archetypes without a table borrow the merchant's; moods
// without an entry get a flat "Hello."
var greetingTemplates = map[string]map[entities.Mood]string{
	typeSage: {
		entities.MoodFriendly:   "Ah, greetings, traveler. I am %s. What wisdom do you seek today?",
		entities.MoodNeutral:    "Greetings. I am %s. How may I assist you?",
		entities.MoodSuspicious: "Hmm, a visitor. I am %s. What brings you here?",
		entities.MoodHostile:    "You dare approach me? I am %s. Speak quickly.",
	},
	typeMerchant: {
		entities.MoodFriendly:   "Welcome, welcome! I'm %s. Looking for some fine wares today?",
		entities.MoodNeutral:    "Hello there. I'm %s. Can I help you find something?",
		entities.MoodSuspicious: "*eyes you carefully* I'm %s. What do you want?",
		entities.MoodHostile:    "*crosses arms* I'm %s. Make it quick.",
	},
	typeGuard: {
		entities.MoodFriendly:   "Good day, citizen. Guard %s at your service.",
		entities.MoodNeutral:    "State your business. I'm %s.",
		entities.MoodSuspicious: "*hand on weapon* I'm %s. What's your purpose here?",
		entities.MoodHostile:    "*draws weapon* I'm %s. You're under arrest!",
	},
}

var locationAnswers = map[string]string{
	typeSage:      "The ancient library holds many secrets, though few dare to enter its dusty halls.",
	typeMerchant:  "The market square is always busy with traders and travelers from distant lands.",
	typeGuard:     "The barracks are near the city gate. That's where you'll find the captain.",
	typeInnkeeper: "The tavern is just down the street. Best ale in town, if I do say so myself!",
}

var howAnswers = map[string]string{
	typeSage:      "Through study and contemplation, one may find the answers they seek.",
	typeMerchant:  "With good coin and a fair deal, anything is possible!",
	typeGuard:     "Through training and discipline. That's how we maintain order.",
	typeInnkeeper: "With a warm hearth and good company, of course!",
}

var whoAnswers = map[string]string{
	typeSage:      "Many have passed through these halls seeking knowledge. Some find it, others... do not.",
	typeMerchant:  "I know many people in my trade. What kind of person are you looking for?",
	typeGuard:     "I know every face in this town. Who are you asking about?",
	typeInnkeeper: "Travelers come and go. Some stay longer than others.",
}

var genericAnswers = map[string]string{
	typeSage:      "That is a question that requires deep contemplation. Perhaps the answer lies within you.",
	typeMerchant:  "Well, that depends on what you're willing to pay for the information!",
	typeGuard:     "I can't discuss that. Official business, you understand.",
	typeInnkeeper: "Oh, that's quite a story! Let me tell you what I know...",
	typePriest:    "The divine works in mysterious ways. We must have faith.",
	typeThief:     "*looks around nervously* I might know something about that...",
}

// Reaction templates by archetype and mood for plain statements.
var reactionTemplates = map[string]map[entities.Mood]string{
	typeSage: {
		entities.MoodFriendly:   "Ah, an interesting perspective. You show wisdom beyond your years.",
		entities.MoodNeutral:    "I see. That's... interesting.",
		entities.MoodSuspicious: "Hmm. And why do you tell me this?",
		entities.MoodHostile:    "Your words mean nothing to me.",
	},
	typeMerchant: {
		entities.MoodFriendly:   "Well, that's good to hear! Maybe we can do business sometime.",
		entities.MoodNeutral:    "I see. Well, if you need anything, you know where to find me.",
		entities.MoodSuspicious: "Is that so? *eyes you carefully*",
		entities.MoodHostile:    "I don't care about your problems.",
	},
}

var greetingKeywords = []string{"hello", "hi", "greetings", "hey"}

// composeResponse routes an utterance to a greeting, a question answer, or
// a statement reaction.
func composeResponse(npcType string, mood entities.Mood, name, message string) string {
	lower := strings.ToLower(message)

	for _, word := range greetingKeywords {
		if strings.Contains(lower, word) {
			return greeting(npcType, mood, name)
		}
	}

	if strings.Contains(message, "?") {
		return answerQuestion(npcType, lower)
	}

	return react(npcType, mood)
}

func greeting(npcType string, mood entities.Mood, name string) string {
	table, ok := greetingTemplates[npcType]
	if !ok {
		table = greetingTemplates[typeMerchant]
	}
	tmpl, ok := table[mood]
	if !ok {
		return "Hello."
	}
	return fmt.Sprintf(tmpl, name)
}

// answerQuestion routes on the interrogative. "where" outranks "what",
// which outranks "how" and "who".
func answerQuestion(npcType, lowerQuestion string) string {
	switch {
	case strings.Contains(lowerQuestion, "where"):
		if answer, ok := locationAnswers[npcType]; ok {
			return answer
		}
		return "I'm not sure about that location."
	case strings.Contains(lowerQuestion, "what"):
		return answerWhat(npcType, lowerQuestion)
	case strings.Contains(lowerQuestion, "how"):
		if answer, ok := howAnswers[npcType]; ok {
			return answer
		}
		return "I'm not sure how to answer that."
	case strings.Contains(lowerQuestion, "who"):
		if answer, ok := whoAnswers[npcType]; ok {
			return answer
		}
		return "I don't know who you're referring to."
	default:
		return genericAnswer(npcType)
	}
}

func answerWhat(npcType, lowerQuestion string) string {
	switch {
	case strings.Contains(lowerQuestion, "name"):
		return "My name? That's not important right now."
	case strings.Contains(lowerQuestion, "time"):
		return "Time is a curious thing, isn't it? The sun will set soon."
	default:
		return genericAnswer(npcType)
	}
}

func genericAnswer(npcType string) string {
	if answer, ok := genericAnswers[npcType]; ok {
		return answer
	}
	return "I'm not sure about that."
}

func react(npcType string, mood entities.Mood) string {
	table, ok := reactionTemplates[npcType]
	if !ok {
		table = reactionTemplates[typeMerchant]
	}
	if reaction, ok := table[mood]; ok {
		return reaction
	}
	return "I see."
}

// summarizeInteraction produces one memory line. Both sides are clipped to
// 50 characters with a trailing ellipsis either way.
func summarizeInteraction(playerMessage, response string) string {
	return fmt.Sprintf("Player said: '%s...' | I responded: '%s...'",
		clip(playerMessage, 50), clip(response, 50))
}

func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// appendMemory adds one interaction summary, keeping only the most recent
// ten entries.
func appendMemory(memory []string, summary string) []string {
	if len(memory) >= 10 {
		memory = memory[len(memory)-9:]
	}
	return append(memory, summary)
}
