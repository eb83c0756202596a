// Package dungeon implements the procedural dungeon generation engine:
// spatial room placement, difficulty-scaled encounter and treasure
// synthesis, and proximity-based connection inference.
package dungeon

//go:generate mockgen -destination=mock/mock_service.go -package=dungeonmock github.com/dungeonforge/dungeonforge-api/internal/orchestrators/dungeon Service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dungeonforge/dungeonforge-api/internal/catalog"
	"github.com/dungeonforge/dungeonforge-api/internal/entities"
	"github.com/dungeonforge/dungeonforge-api/internal/errors"
)

// Service defines the generation interface
type Service interface {
	// GenerateDungeon synthesizes a complete dungeon for one request
	GenerateDungeon(ctx context.Context, input *GenerateDungeonInput) (*GenerateDungeonOutput, error)

	// GenerateEncounter synthesizes a single ad-hoc encounter with no
	// dungeon context
	GenerateEncounter(ctx context.Context, input *GenerateEncounterInput) (*GenerateEncounterOutput, error)
}

// Config holds the dependencies for the dungeon orchestrator
type Config struct {
	Catalog *catalog.Catalog

	// Rand seeds per-request random sources. Optional; defaults to a
	// time-seeded source. Tests inject a pinned source here.
	Rand *rand.Rand
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog *catalog.Catalog

	// seedSrc is only ever used to derive request-local sources, under mu,
	// so concurrent generation requests need no further locking.
	mu      sync.Mutex
	seedSrc *rand.Rand
}

// NewOrchestrator creates a new dungeon orchestrator with the provided
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
		catalog: cfg.Catalog,
		seedSrc: seedSrc,
	}, nil
}

// requestRand derives a request-local random source so a generation call
// never contends with other requests mid-run.
func (o *orchestrator) requestRand() *rand.Rand {
	o.mu.Lock()
	seed := o.seedSrc.Int63()
	o.mu.Unlock()
	return rand.New(rand.NewSource(seed))
}

// GenerateDungeon synthesizes a complete dungeon: size class to room count,
// placement, population, connectivity, assembly. It never fails on valid
// primitive inputs; unknown theme/size strings fall back to defaults.
func (o *orchestrator) GenerateDungeon(ctx context.Context, input *GenerateDungeonInput) (*GenerateDungeonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	rng := o.requestRand()

	roomCount := o.roomCount(rng, input.Size)
	rooms := o.placeRooms(rng, roomCount, input.Theme, input.Level)
	encounters := o.generateEncounters(rng, rooms, input.Difficulty)
	treasures := o.generateTreasures(rng, rooms, input.Difficulty)
	connections := o.buildConnections(rooms)

	dungeon := &entities.Dungeon{
		Name:        fmt.Sprintf("%s - Level %d", cases.Title(language.English).String(input.Theme), input.Level),
		Description: o.catalog.DungeonDescription(input.Theme, input.Size, input.Level),
		Rooms:       rooms,
		Encounters:  encounters,
		Treasures:   treasures,
		Connections: connections,
	}

	slog.Info("Dungeon generated",
		"theme", input.Theme,
		"size", input.Size,
		"level", input.Level,
		"rooms", len(rooms),
		"encounters", len(encounters),
		"treasures", len(treasures),
		"connections", len(connections),
	)

	return &GenerateDungeonOutput{Dungeon: dungeon}, nil
}

// GenerateEncounter synthesizes one ad-hoc encounter scaled by party size
// and flavored by location.
func (o *orchestrator) GenerateEncounter(ctx context.Context, input *GenerateEncounterInput) (*GenerateEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	rng := o.requestRand()

	// A bigger party faces individually weaker enemies.
	adjusted := input.Difficulty - (input.PartySize - 1)
	if adjusted < 1 {
		adjusted = 1
	}

	maxEnemies := input.PartySize + 1
	if maxEnemies > 4 {
		maxEnemies = 4
	}
	if maxEnemies < 1 {
		maxEnemies = 1
	}
	enemyCount := 1 + rng.Intn(maxEnemies)

	enemies := make([]entities.Monster, 0, enemyCount)
	for range enemyCount {
		enemies = append(enemies, o.selectEnemy(rng, adjusted))
	}

	encounter := &entities.RandomEncounter{
		Location:    input.Location,
		Difficulty:  input.Difficulty,
		Enemies:     enemies,
		Environment: o.catalog.Environment(input.Location),
		IsAmbush:    rng.Float64() < 0.3,
	}

	slog.Info("Encounter generated",
		"location", input.Location,
		"difficulty", input.Difficulty,
		"party_size", input.PartySize,
		"enemies", len(enemies),
		"ambush", encounter.IsAmbush,
	)

	return &GenerateEncounterOutput{Encounter: encounter}, nil
}

// selectEnemy filters the catalog to templates whose level fits the
// difficulty and draws uniformly, falling back to the base template when
// nothing qualifies. The returned monster is always an independent copy.
func (o *orchestrator) selectEnemy(rng *rand.Rand, difficulty int) entities.Monster {
	eligible := o.catalog.EligibleMonsters(difficulty + 1)
	if len(eligible) == 0 {
		return o.catalog.BaseMonster()
	}
	return eligible[rng.Intn(len(eligible))]
}
