package entities

import "time"

// Mood is an NPC disposition toward the player
type Mood string

// Moods. very_friendly and very_hostile are reachable sinks of the
// transition table; they have no outgoing transitions of their own.
const (
	MoodNeutral      Mood = "neutral"
	MoodFriendly     Mood = "friendly"
	MoodVeryFriendly Mood = "very_friendly"
	MoodSuspicious   Mood = "suspicious"
	MoodHostile      Mood = "hostile"
	MoodVeryHostile  Mood = "very_hostile"
)

// Sentiment classifies a player utterance
type Sentiment string

// Sentiments
const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// NPCState is the persistent conversational state of one NPC
type NPCState struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Personality string   `json:"personality"`
	Background  string   `json:"background"`
	CurrentMood Mood     `json:"current_mood"`
	// Memory holds summaries of the most recent interactions, capped at 10.
	Memory        []string                `json:"memory"`
	Relationships map[string]Relationship `json:"relationships,omitempty"`

	// LastInteraction is stamped by the repository on every save.
	LastInteraction time.Time `json:"last_interaction"`
}

// Relationship tracks an NPC's standing with one named player
type Relationship struct {
	Affinity int      `json:"affinity"`
	Notes    []string `json:"notes,omitempty"`
}

// QuestReward is what a completed quest pays out
type QuestReward struct {
	Experience int      `json:"experience"`
	Gold       int      `json:"gold"`
	Items      []string `json:"items"`
}

// Quest is a generated quest offer
type Quest struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Objectives  []string    `json:"objectives"`
	Reward      QuestReward `json:"reward"`
	Difficulty  int         `json:"difficulty"`
}
