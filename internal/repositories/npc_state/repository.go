// Package npcstate provides repository interface and types for persistent
// NPC conversational state
package npcstate

import (
	"context"
	"time"

	"github.com/dungeonforge/dungeonforge-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=npcstatemock github.com/dungeonforge/dungeonforge-api/internal/repositories/npc_state Repository

// SaveInput contains parameters for storing an NPC's state
type SaveInput struct {
	State *entities.NPCState

	// TTL is how long the state should live. Zero means the repository default.
	TTL time.Duration
}

// SaveOutput contains the result of storing an NPC's state
type SaveOutput struct {
	State *entities.NPCState
}

// GetInput contains parameters for retrieving an NPC's state
type GetInput struct {
	NPCID string
}

// GetOutput contains the result of retrieving an NPC's state
type GetOutput struct {
	State *entities.NPCState
}

// DeleteInput contains parameters for deleting an NPC's state
type DeleteInput struct {
	NPCID string
}

// DeleteOutput contains the result of deleting an NPC's state
type DeleteOutput struct {
	InteractionsDeleted int32
}

// Repository defines the interface for NPC state storage operations
type Repository interface {
	// Save stores or replaces an NPC's state with the specified TTL
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves an NPC's state by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes an NPC's state
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
