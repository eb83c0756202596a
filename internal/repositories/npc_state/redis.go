package npcstate

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/dungeonforge/dungeonforge-api/internal/entities"
	"github.com/dungeonforge/dungeonforge-api/internal/errors"
	"github.com/dungeonforge/dungeonforge-api/internal/pkg/clock"
	redisclient "github.com/dungeonforge/dungeonforge-api/internal/redis"
)

const (
	// Key pattern: npc_state:{npc_id}
	stateKeyPrefix = "npc_state:"
	defaultTTL     = 24 * time.Hour

	// Error messages
	errStateNil   = "state cannot be nil"
	errNPCIDEmpty = "NPC ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for NPC state
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Save stores or replaces an NPC's state with the specified TTL,
// stamping the interaction time before writing
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument(errStateNil)
	}
	if input.State.ID == "" {
		return nil, errors.InvalidArgument(errNPCIDEmpty)
	}

	input.State.LastInteraction = r.clock.Now().UTC()

	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	stateJSON, err := json.Marshal(input.State)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal NPC state")
	}

	key := r.buildKey(input.State.ID)
	err = r.client.Set(ctx, key, stateJSON, ttl).Err()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store NPC state in Redis")
	}

	return &SaveOutput{
		State: input.State,
	}, nil
}

// Get retrieves an NPC's state by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.NPCID == "" {
		return nil, errors.InvalidArgument(errNPCIDEmpty)
	}

	key := r.buildKey(input.NPCID)

	stateJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("NPC state %q not found", input.NPCID)
		}
		return nil, errors.Wrapf(err, "failed to get NPC state from Redis")
	}

	var state entities.NPCState
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal NPC state")
	}

	return &GetOutput{
		State: &state,
	}, nil
}

// Delete removes an NPC's state
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.NPCID == "" {
		return nil, errors.InvalidArgument(errNPCIDEmpty)
	}

	key := r.buildKey(input.NPCID)

	// Get the state first to count remembered interactions
	getOutput, err := r.Get(ctx, GetInput(input))

	var interactionsDeleted int32
	if err == nil && getOutput.State != nil {
		// nolint:gosec // memory is capped at 10 entries
		interactionsDeleted = int32(len(getOutput.State.Memory))
	}

	result := r.client.Del(ctx, key)
	if result.Err() != nil {
		return nil, errors.Wrapf(result.Err(), "failed to delete NPC state from Redis")
	}

	return &DeleteOutput{
		InteractionsDeleted: interactionsDeleted,
	}, nil
}

// buildKey creates the Redis key for an NPC's state
func (r *redisRepository) buildKey(npcID string) string {
	return fmt.Sprintf("%s%s", stateKeyPrefix, npcID)
}
