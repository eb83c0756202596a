package npc

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dungeonforge/dungeonforge-api/internal/entities"
	"github.com/dungeonforge/dungeonforge-api/internal/errors"
	npcstate "github.com/dungeonforge/dungeonforge-api/internal/repositories/npc_state"
	npcstatemock "github.com/dungeonforge/dungeonforge-api/internal/repositories/npc_state/mock"
)

func TestNewOrchestrator_RequiresRepository(t *testing.T) {
	_, err := NewOrchestrator(&Config{})
	require.Error(t, err)
}

func TestConverse_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o, err := NewOrchestrator(&Config{
		Repository: npcstatemock.NewMockRepository(ctrl),
	})
	require.NoError(t, err)

	ctx := context.Background()

	_, err = o.Converse(ctx, nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = o.Converse(ctx, &ConverseInput{Message: "hello"})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = o.Converse(ctx, &ConverseInput{NPCID: "npc_1"})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestConverse_FirstContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := npcstatemock.NewMockRepository(ctrl)

	o, err := NewOrchestrator(&Config{
		Repository: mockRepo,
		Rand:       rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)

	ctx := context.Background()

	mockRepo.EXPECT().
		Get(ctx, npcstate.GetInput{NPCID: "npc_grimble"}).
		Return(nil, errors.NotFound("NPC state not found"))

	mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input npcstate.SaveInput) (*npcstate.SaveOutput, error) {
			require.NotNil(t, input.State)
			assert.Equal(t, "npc_grimble", input.State.ID)
			assert.Equal(t, "Grimble", input.State.Name)
			// "hello" reads as positive, so neutral shifts to friendly.
			assert.Equal(t, entities.MoodFriendly, input.State.CurrentMood)
			require.Len(t, input.State.Memory, 1)
			assert.Contains(t, input.State.Memory[0], "Player said: 'hello there...'")
			return &npcstate.SaveOutput{State: input.State}, nil
		})

	output, err := o.Converse(ctx, &ConverseInput{
		NPCID:      "npc_grimble",
		Message:    "hello there",
		PlayerName: "player_001",
		Name:       "Grimble",
	})
	require.NoError(t, err)

	// The reply is composed against the mood before the shift.
	assert.Equal(t, "Hello there. I'm Grimble. Can I help you find something?", output.Response)
	assert.Equal(t, entities.MoodFriendly, output.Mood)
	assert.True(t, output.MoodChanged)
	assert.Nil(t, output.QuestOffered)
}

func TestConverse_HostileSpiral(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := npcstatemock.NewMockRepository(ctrl)

	o, err := NewOrchestrator(&Config{
		Repository: mockRepo,
		Rand:       rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)

	ctx := context.Background()

	mockRepo.EXPECT().
		Get(ctx, npcstate.GetInput{NPCID: "npc_aldric"}).
		Return(&npcstate.GetOutput{State: &entities.NPCState{
			ID:          "npc_aldric",
			Name:        "Aldric",
			Personality: "A wise old sage",
			CurrentMood: entities.MoodHostile,
		}}, nil)

	mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input npcstate.SaveInput) (*npcstate.SaveOutput, error) {
			assert.Equal(t, entities.MoodVeryHostile, input.State.CurrentMood)
			return &npcstate.SaveOutput{State: input.State}, nil
		})

	output, err := o.Converse(ctx, &ConverseInput{
		NPCID:   "npc_aldric",
		Message: "I hate your tower and all who dwell in it.",
	})
	require.NoError(t, err)

	assert.Equal(t, "Your words mean nothing to me.", output.Response)
	assert.Equal(t, entities.MoodVeryHostile, output.Mood)
	assert.True(t, output.MoodChanged)
}

func TestConverse_RelationshipTracking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := npcstatemock.NewMockRepository(ctrl)

	o, err := NewOrchestrator(&Config{
		Repository: mockRepo,
		Rand:       rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)

	ctx := context.Background()

	mockRepo.EXPECT().
		Get(ctx, gomock.Any()).
		Return(nil, errors.NotFound("NPC state not found"))

	mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input npcstate.SaveInput) (*npcstate.SaveOutput, error) {
			rel := input.State.Relationships["player_001"]
			assert.Equal(t, 1, rel.Affinity)
			return &npcstate.SaveOutput{State: input.State}, nil
		})

	_, err = o.Converse(ctx, &ConverseInput{
		NPCID:      "npc_grimble",
		Message:    "thank you for the help",
		PlayerName: "player_001",
	})
	require.NoError(t, err)
}

func TestConverse_QuestOffers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := npcstatemock.NewMockRepository(ctrl)

	o, err := NewOrchestrator(&Config{
		Repository: mockRepo,
		Rand:       rand.New(rand.NewSource(7)),
	})
	require.NoError(t, err)

	ctx := context.Background()

	state := &entities.NPCState{
		ID:          "npc_tessa",
		Name:        "Tessa",
		Personality: "A shrewd trader",
		CurrentMood: entities.MoodFriendly,
	}

	mockRepo.EXPECT().
		Get(ctx, gomock.Any()).
		DoAndReturn(func(context.Context, npcstate.GetInput) (*npcstate.GetOutput, error) {
			clone := *state
			return &npcstate.GetOutput{State: &clone}, nil
		}).
		AnyTimes()

	mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input npcstate.SaveInput) (*npcstate.SaveOutput, error) {
			return &npcstate.SaveOutput{State: input.State}, nil
		}).
		AnyTimes()

	const exchanges = 300
	offered := 0
	for range exchanges {
		output, err := o.Converse(ctx, &ConverseInput{
			NPCID:       "npc_tessa",
			Message:     "The roads were quiet on the way in.",
			PlayerLevel: 3,
		})
		require.NoError(t, err)

		if output.QuestOffered != nil {
			offered++
			assert.Equal(t, "Supply Run", output.QuestOffered.Title)
			assert.Equal(t, 3, output.QuestOffered.Difficulty)
			assert.Equal(t, 75, output.QuestOffered.Reward.Gold)
		}
	}

	// Offers land at a 0.2 rate for well-disposed NPCs.
	assert.Greater(t, offered, exchanges/10)
	assert.Less(t, offered, exchanges/2)
}

func TestConverse_NoQuestWhenSuspicious(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := npcstatemock.NewMockRepository(ctrl)

	o, err := NewOrchestrator(&Config{
		Repository: mockRepo,
		Rand:       rand.New(rand.NewSource(7)),
	})
	require.NoError(t, err)

	ctx := context.Background()

	mockRepo.EXPECT().
		Get(ctx, gomock.Any()).
		DoAndReturn(func(context.Context, npcstate.GetInput) (*npcstate.GetOutput, error) {
			return &npcstate.GetOutput{State: &entities.NPCState{
				ID:          "npc_bram",
				Name:        "Bram",
				CurrentMood: entities.MoodSuspicious,
			}}, nil
		}).
		AnyTimes()

	mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input npcstate.SaveInput) (*npcstate.SaveOutput, error) {
			return &npcstate.SaveOutput{State: input.State}, nil
		}).
		AnyTimes()

	for range 100 {
		output, err := o.Converse(ctx, &ConverseInput{
			NPCID:       "npc_bram",
			Message:     "The roads were quiet on the way in.",
			PlayerLevel: 3,
		})
		require.NoError(t, err)
		assert.Nil(t, output.QuestOffered)
	}
}

func TestGetNPC(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := npcstatemock.NewMockRepository(ctrl)

	o, err := NewOrchestrator(&Config{Repository: mockRepo})
	require.NoError(t, err)

	ctx := context.Background()

	_, err = o.GetNPC(ctx, &GetNPCInput{})
	assert.True(t, errors.IsInvalidArgument(err))

	state := &entities.NPCState{ID: "npc_grimble", Name: "Grimble"}
	mockRepo.EXPECT().
		Get(ctx, npcstate.GetInput{NPCID: "npc_grimble"}).
		Return(&npcstate.GetOutput{State: state}, nil)

	output, err := o.GetNPC(ctx, &GetNPCInput{NPCID: "npc_grimble"})
	require.NoError(t, err)
	assert.Equal(t, state, output.State)

	mockRepo.EXPECT().
		Get(ctx, npcstate.GetInput{NPCID: "npc_missing"}).
		Return(nil, errors.NotFound("NPC state not found"))

	_, err = o.GetNPC(ctx, &GetNPCInput{NPCID: "npc_missing"})
	assert.True(t, errors.IsNotFound(err))
}

func TestGenerateQuest_FromPersonality(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o, err := NewOrchestrator(&Config{
		Repository: npcstatemock.NewMockRepository(ctrl),
	})
	require.NoError(t, err)

	ctx := context.Background()

	output, err := o.GenerateQuest(ctx, &GenerateQuestInput{
		Personality: "A wise old scholar",
	})
	require.NoError(t, err)
	assert.Equal(t, "The Lost Tome", output.Quest.Title)
	assert.Equal(t, 1, output.Quest.Difficulty)
	assert.Equal(t, []string{"Scroll of Knowledge"}, output.Quest.Reward.Items)
}

func TestGenerateQuest_FromStoredNPC(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := npcstatemock.NewMockRepository(ctrl)

	o, err := NewOrchestrator(&Config{Repository: mockRepo})
	require.NoError(t, err)

	ctx := context.Background()

	mockRepo.EXPECT().
		Get(ctx, npcstate.GetInput{NPCID: "npc_bram"}).
		Return(&npcstate.GetOutput{State: &entities.NPCState{
			ID:          "npc_bram",
			Personality: "A dutiful soldier",
		}}, nil)

	output, err := o.GenerateQuest(ctx, &GenerateQuestInput{
		NPCID:       "npc_bram",
		PlayerLevel: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, "Patrol Duty", output.Quest.Title)
	assert.Equal(t, 4, output.Quest.Difficulty)
}

func TestGenerateQuest_TemplatesAreIndependentCopies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o, err := NewOrchestrator(&Config{
		Repository: npcstatemock.NewMockRepository(ctrl),
	})
	require.NoError(t, err)

	ctx := context.Background()

	first, err := o.GenerateQuest(ctx, &GenerateQuestInput{Personality: "trader"})
	require.NoError(t, err)
	first.Quest.Objectives[0] = "tampered"
	first.Quest.Reward.Items[0] = "tampered"

	second, err := o.GenerateQuest(ctx, &GenerateQuestInput{Personality: "trader"})
	require.NoError(t, err)
	assert.Equal(t, "Escort the caravan", second.Quest.Objectives[0])
	assert.Equal(t, []string{"Merchant's Favor"}, second.Quest.Reward.Items)
}
