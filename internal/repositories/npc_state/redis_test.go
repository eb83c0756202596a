package npcstate_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dungeonforge/dungeonforge-api/internal/entities"
	"github.com/dungeonforge/dungeonforge-api/internal/errors"
	"github.com/dungeonforge/dungeonforge-api/internal/pkg/clock"
	npcstate "github.com/dungeonforge/dungeonforge-api/internal/repositories/npc_state"
	"github.com/dungeonforge/dungeonforge-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    npcstate.Repository
	cleanup func()
	ctx     context.Context
	now     time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo, err := npcstate.NewRedisRepository(&npcstate.Config{
		Client: client,
		Clock:  &clock.Fixed{T: s.now},
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) testState() *entities.NPCState {
	return &entities.NPCState{
		ID:          "npc_grimble",
		Name:        "Grimble",
		Personality: "gruff",
		Background:  "A retired mercenary who now tends the tavern.",
		CurrentMood: entities.MoodNeutral,
		Memory:      []string{"Player said: hello there"},
		Relationships: map[string]entities.Relationship{
			"player_001": {Affinity: 2, Notes: []string{"bought a round"}},
		},
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	state := s.testState()

	saveOut, err := s.repo.Save(s.ctx, npcstate.SaveInput{State: state})
	s.Require().NoError(err)
	s.Equal(state, saveOut.State)

	getOut, err := s.repo.Get(s.ctx, npcstate.GetInput{NPCID: "npc_grimble"})
	s.Require().NoError(err)
	s.Equal(state, getOut.State)
}

func (s *RedisRepositoryTestSuite) TestSaveStampsLastInteraction() {
	state := s.testState()
	s.Require().True(state.LastInteraction.IsZero())

	saveOut, err := s.repo.Save(s.ctx, npcstate.SaveInput{State: state})
	s.Require().NoError(err)
	s.True(saveOut.State.LastInteraction.Equal(s.now))

	getOut, err := s.repo.Get(s.ctx, npcstate.GetInput{NPCID: "npc_grimble"})
	s.Require().NoError(err)
	s.True(getOut.State.LastInteraction.Equal(s.now))
}

func (s *RedisRepositoryTestSuite) TestSaveRequiresState() {
	_, err := s.repo.Save(s.ctx, npcstate.SaveInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestSaveRequiresID() {
	state := s.testState()
	state.ID = ""

	_, err := s.repo.Save(s.ctx, npcstate.SaveInput{State: state})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, npcstate.GetInput{NPCID: "npc_missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestSaveReplaces() {
	state := s.testState()

	_, err := s.repo.Save(s.ctx, npcstate.SaveInput{State: state})
	s.Require().NoError(err)

	state.CurrentMood = entities.MoodFriendly
	state.Memory = append(state.Memory, "Player said: thank you friend")

	_, err = s.repo.Save(s.ctx, npcstate.SaveInput{State: state})
	s.Require().NoError(err)

	getOut, err := s.repo.Get(s.ctx, npcstate.GetInput{NPCID: "npc_grimble"})
	s.Require().NoError(err)
	s.Equal(entities.MoodFriendly, getOut.State.CurrentMood)
	s.Len(getOut.State.Memory, 2)
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	state := s.testState()

	_, err := s.repo.Save(s.ctx, npcstate.SaveInput{State: state})
	s.Require().NoError(err)

	delOut, err := s.repo.Delete(s.ctx, npcstate.DeleteInput{NPCID: "npc_grimble"})
	s.Require().NoError(err)
	s.Equal(int32(1), delOut.InteractionsDeleted)

	_, err = s.repo.Get(s.ctx, npcstate.GetInput{NPCID: "npc_grimble"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDeleteMissing() {
	delOut, err := s.repo.Delete(s.ctx, npcstate.DeleteInput{NPCID: "npc_missing"})
	s.Require().NoError(err)
	s.Equal(int32(0), delOut.InteractionsDeleted)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
