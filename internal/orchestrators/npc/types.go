package npc

import (
	"github.com/dungeonforge/dungeonforge-api/internal/entities"
)

// ConverseInput contains one player utterance directed at an NPC
type ConverseInput struct {
	// NPCID identifies the NPC. Required.
	NPCID string

	// Message is the player's utterance. Required.
	Message string

	// PlayerName attributes the utterance for relationship tracking.
	PlayerName string

	// PlayerLevel gates quest offers. Values below 1 are treated as 1.
	PlayerLevel int

	// Name, Personality, and Background seed a fresh NPC on first
	// contact. Ignored once state exists.
	Name        string
	Personality string
	Background  string
}

// ConverseOutput contains the NPC's reply and any side effects
type ConverseOutput struct {
	NPCID    string
	Response string

	// Mood is the NPC's disposition after this exchange.
	Mood entities.Mood

	// MoodChanged reports whether this exchange shifted the mood.
	MoodChanged bool

	// QuestOffered is non-nil when the NPC volunteers a quest.
	QuestOffered *entities.Quest
}

// GetNPCInput contains parameters for fetching an NPC's state
type GetNPCInput struct {
	NPCID string
}

// GetNPCOutput contains an NPC's current state
type GetNPCOutput struct {
	State *entities.NPCState
}

// GenerateQuestInput contains parameters for a standalone quest draw
type GenerateQuestInput struct {
	// NPCID selects the quest giver. When set, the NPC's stored
	// personality drives template selection.
	NPCID string

	// Personality drives template selection when no NPCID is given.
	Personality string

	// PlayerLevel scales the quest difficulty. Values below 1 are
	// treated as 1.
	PlayerLevel int
}

// GenerateQuestOutput contains the generated quest
type GenerateQuestOutput struct {
	Quest *entities.Quest
}
