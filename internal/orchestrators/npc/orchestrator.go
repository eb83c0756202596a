// Package npc implements the rule-based NPC conversation engine: keyword
// sentiment, mood transitions, templated dialogue, bounded interaction
// memory, and opportunistic quest offers.
package npc

//go:generate mockgen -destination=mock/mock_service.go -package=npcmock github.com/dungeonforge/dungeonforge-api/internal/orchestrators/npc Service

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/dungeonforge/dungeonforge-api/internal/entities"
	"github.com/dungeonforge/dungeonforge-api/internal/errors"
	npcstate "github.com/dungeonforge/dungeonforge-api/internal/repositories/npc_state"
)

// Service defines the NPC conversation interface
type Service interface {
	// Converse processes one player utterance and returns the NPC's reply
	Converse(ctx context.Context, input *ConverseInput) (*ConverseOutput, error)

	// GetNPC retrieves an NPC's current conversational state
	GetNPC(ctx context.Context, input *GetNPCInput) (*GetNPCOutput, error)

	// GenerateQuest draws a quest from an NPC's archetype templates
	GenerateQuest(ctx context.Context, input *GenerateQuestInput) (*GenerateQuestOutput, error)
}

// Config holds the dependencies for the NPC orchestrator
type Config struct {
	Repository npcstate.Repository

	// StateTTL bounds how long idle NPC state lives. Optional; zero
	// means the repository default.
	StateTTL time.Duration

	// Rand seeds per-request random sources. Optional; defaults to a
	// time-seeded source. Tests inject a pinned source here.
	Rand *rand.Rand
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}

	return vb.Build()
}

type orchestrator struct {
	repo     npcstate.Repository
	stateTTL time.Duration

	mu      sync.Mutex
	seedSrc *rand.Rand
}

// NewOrchestrator creates a new NPC orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	seedSrc := cfg.Rand
	if seedSrc == nil {
		seedSrc = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &orchestrator{
		repo:     cfg.Repository,
		stateTTL: cfg.StateTTL,
		seedSrc:  seedSrc,
	}, nil
}

func (o *orchestrator) requestRand() *rand.Rand {
	o.mu.Lock()
	seed := o.seedSrc.Int63()
	o.mu.Unlock()
	return rand.New(rand.NewSource(seed))
}

// Converse runs one exchange: sentiment, mood transition, response
// synthesis, memory update, quest check, persist. The response and the
// quest check both read the mood as it was before this exchange.
func (o *orchestrator) Converse(ctx context.Context, input *ConverseInput) (*ConverseOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.NPCID == "" {
		return nil, errors.InvalidArgument("NPC ID is required")
	}
	if input.Message == "" {
		return nil, errors.InvalidArgument("message is required")
	}

	state, err := o.loadOrCreate(ctx, input)
	if err != nil {
		return nil, err
	}

	rng := o.requestRand()

	sentiment := analyzeSentiment(input.Message)
	previousMood := state.CurrentMood
	newMood := nextMood(previousMood, sentiment)

	npcType := classifyPersonality(state.Personality)
	response := composeResponse(npcType, previousMood, state.Name, input.Message)

	var quest *entities.Quest
	if offersQuest(previousMood, rng) {
		quest = questFor(npcType, normalizeLevel(input.PlayerLevel))
	}

	state.CurrentMood = newMood
	state.Memory = appendMemory(state.Memory, summarizeInteraction(input.Message, response))
	o.trackRelationship(state, input.PlayerName, sentiment)

	if _, err := o.repo.Save(ctx, npcstate.SaveInput{State: state, TTL: o.stateTTL}); err != nil {
		return nil, errors.Wrap(err, "failed to persist NPC state")
	}

	slog.Info("npc exchange",
		"npc_id", state.ID,
		"npc_type", npcType,
		"sentiment", sentiment,
		"mood", newMood,
		"quest_offered", quest != nil,
	)

	return &ConverseOutput{
		NPCID:        state.ID,
		Response:     response,
		Mood:         newMood,
		MoodChanged:  newMood != previousMood,
		QuestOffered: quest,
	}, nil
}

// loadOrCreate fetches the NPC's state, seeding a fresh one on first
// contact.
func (o *orchestrator) loadOrCreate(ctx context.Context, input *ConverseInput) (*entities.NPCState, error) {
	out, err := o.repo.Get(ctx, npcstate.GetInput{NPCID: input.NPCID})
	if err == nil {
		return out.State, nil
	}
	if !errors.IsNotFound(err) {
		return nil, errors.Wrap(err, "failed to load NPC state")
	}

	name := input.Name
	if name == "" {
		name = "NPC"
	}

	return &entities.NPCState{
		ID:          input.NPCID,
		Name:        name,
		Personality: input.Personality,
		Background:  input.Background,
		CurrentMood: entities.MoodNeutral,
	}, nil
}

// trackRelationship nudges the named player's affinity by the exchange's
// sentiment.
func (o *orchestrator) trackRelationship(state *entities.NPCState, playerName string, sentiment entities.Sentiment) {
	if playerName == "" {
		return
	}
	if state.Relationships == nil {
		state.Relationships = make(map[string]entities.Relationship)
	}

	rel := state.Relationships[playerName]
	switch sentiment {
	case entities.SentimentPositive:
		rel.Affinity++
	case entities.SentimentNegative:
		rel.Affinity--
	}
	state.Relationships[playerName] = rel
}

// offersQuest rolls the quest gate: the NPC must already be well-disposed.
func offersQuest(mood entities.Mood, rng *rand.Rand) bool {
	if mood != entities.MoodFriendly && mood != entities.MoodVeryFriendly {
		return false
	}
	return rng.Float64() < questOfferChance
}

func normalizeLevel(level int) int {
	if level < 1 {
		return 1
	}
	return level
}

// GetNPC retrieves an NPC's current conversational state
func (o *orchestrator) GetNPC(ctx context.Context, input *GetNPCInput) (*GetNPCOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.NPCID == "" {
		return nil, errors.InvalidArgument("NPC ID is required")
	}

	out, err := o.repo.Get(ctx, npcstate.GetInput{NPCID: input.NPCID})
	if err != nil {
		return nil, err
	}

	return &GetNPCOutput{State: out.State}, nil
}

// GenerateQuest draws a quest from an NPC's archetype templates. When an
// NPCID is given, the stored personality drives archetype selection.
func (o *orchestrator) GenerateQuest(ctx context.Context, input *GenerateQuestInput) (*GenerateQuestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	personality := input.Personality
	if input.NPCID != "" {
		out, err := o.repo.Get(ctx, npcstate.GetInput{NPCID: input.NPCID})
		if err != nil {
			return nil, err
		}
		personality = out.State.Personality
	}

	npcType := classifyPersonality(personality)
	quest := questFor(npcType, normalizeLevel(input.PlayerLevel))

	slog.Info("quest generated", "npc_type", npcType, "title", quest.Title)

	return &GenerateQuestOutput{Quest: quest}, nil
}

var _ Service = (*orchestrator)(nil)
