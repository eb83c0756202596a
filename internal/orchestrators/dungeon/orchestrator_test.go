package dungeon

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dungeonforge/dungeonforge-api/internal/catalog"
	"github.com/dungeonforge/dungeonforge-api/internal/entities"
)

func newTestService(t *testing.T, seed int64) Service {
	t.Helper()
	svc, err := NewOrchestrator(&Config{
		Catalog: catalog.New(),
		Rand:    rand.New(rand.NewSource(seed)),
	})
	require.NoError(t, err)
	return svc
}

func TestNewOrchestrator_RequiresCatalog(t *testing.T) {
	_, err := NewOrchestrator(&Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Catalog")
}

func TestGenerateDungeon_NilInput(t *testing.T) {
	svc := newTestService(t, 1)
	_, err := svc.GenerateDungeon(context.Background(), nil)
	require.Error(t, err)
}

func TestGenerateDungeon_SmallCrypt(t *testing.T) {
	// Scenario: level 1 crypt, small, difficulty 1.
	svc := newTestService(t, 42)

	out, err := svc.GenerateDungeon(context.Background(), &GenerateDungeonInput{
		Level:      1,
		Theme:      "crypt",
		Size:       "small",
		Difficulty: 1,
	})
	require.NoError(t, err)
	d := out.Dungeon

	assert.Equal(t, "Crypt - Level 1", d.Name)
	assert.Contains(t, d.Description, "crypt of level 1")

	require.GreaterOrEqual(t, len(d.Rooms), 3)
	require.LessOrEqual(t, len(d.Rooms), 6)

	entranceSuffix := catalog.New().ThemeSuffix("crypt")
	assert.True(t, len(d.Rooms[0].Description) > len(entranceSuffix))
	assert.Equal(t, entranceSuffix, d.Rooms[0].Description[len(d.Rooms[0].Description)-len(entranceSuffix):])

	// Level < 3: the final room is the treasury, not the boss lair.
	assert.Equal(t, entities.RoomTypeTreasury, d.Rooms[len(d.Rooms)-1].RoomType)
}

func TestGenerateDungeon_UnknownThemeMedium(t *testing.T) {
	// Scenario: level 5, unknown theme, medium, difficulty 3.
	svc := newTestService(t, 7)

	out, err := svc.GenerateDungeon(context.Background(), &GenerateDungeonInput{
		Level:      5,
		Theme:      "unknowntheme",
		Size:       "medium",
		Difficulty: 3,
	})
	require.NoError(t, err)
	d := out.Dungeon

	require.GreaterOrEqual(t, len(d.Rooms), 7)
	require.LessOrEqual(t, len(d.Rooms), 12)
	assert.Equal(t, entities.RoomTypeBoss, d.Rooms[len(d.Rooms)-1].RoomType)

	// Generic fallback description, and no theme suffix on any room.
	assert.Equal(t, "A medium dungeon of level 5.", d.Description)
	base := catalog.New()
	for _, room := range d.Rooms {
		tmpl := base.RoomTemplate(room.RoomType)
		assert.Contains(t, tmpl.Descriptions, room.Description)
	}
}

func TestGenerateDungeon_Invariants(t *testing.T) {
	// Structural properties that must hold for every generated dungeon.
	for _, seed := range []int64{1, 2, 3, 99, 1234} {
		svc := newTestService(t, seed)

		out, err := svc.GenerateDungeon(context.Background(), &GenerateDungeonInput{
			Level:      4,
			Theme:      "cave",
			Size:       "large",
			Difficulty: 3,
		})
		require.NoError(t, err)
		d := out.Dungeon

		roomIDs := make(map[int]bool)
		for i, room := range d.Rooms {
			assert.Equal(t, i, room.ID, "ids are sequential from 0")
			roomIDs[room.ID] = true
		}

		assert.Equal(t, entities.RoomTypeEntrance, d.Rooms[0].RoomType)
		assert.Equal(t, 0, d.Rooms[0].X)
		assert.Equal(t, 0, d.Rooms[0].Y)

		coords := make(map[[2]int]bool)
		for _, room := range d.Rooms {
			key := [2]int{room.X, room.Y}
			assert.False(t, coords[key], "seed %d: duplicate coordinate %v", seed, key)
			coords[key] = true
		}

		for _, enc := range d.Encounters {
			assert.True(t, roomIDs[enc.RoomID], "encounter references existing room")
			assert.Equal(t, 3, enc.Difficulty)
			require.NotEmpty(t, enc.Enemies)
			assert.LessOrEqual(t, len(enc.Enemies), 3)
			for _, enemy := range enc.Enemies {
				assert.LessOrEqual(t, enemy.Level, 4, "enemy level must fit difficulty+1")
			}
		}

		for _, tr := range d.Treasures {
			assert.True(t, roomIDs[tr.RoomID], "treasure references existing room")
			require.NotEmpty(t, tr.Items)
			assert.LessOrEqual(t, len(tr.Items), 3)
			assert.GreaterOrEqual(t, tr.TrapDifficulty, 0)
			assert.LessOrEqual(t, tr.TrapDifficulty, 5)
		}
	}
}

func TestGenerateDungeon_ConnectionProperties(t *testing.T) {
	opposite := map[entities.Direction]entities.Direction{
		entities.DirectionNorth:     entities.DirectionSouth,
		entities.DirectionSouth:     entities.DirectionNorth,
		entities.DirectionEast:      entities.DirectionWest,
		entities.DirectionWest:      entities.DirectionEast,
		entities.DirectionNortheast: entities.DirectionSouthwest,
		entities.DirectionSouthwest: entities.DirectionNortheast,
		entities.DirectionNorthwest: entities.DirectionSoutheast,
		entities.DirectionSoutheast: entities.DirectionNorthwest,
	}

	svc := newTestService(t, 21)
	out, err := svc.GenerateDungeon(context.Background(), &GenerateDungeonInput{
		Level:      3,
		Theme:      "temple",
		Size:       "medium",
		Difficulty: 2,
	})
	require.NoError(t, err)
	d := out.Dungeon

	seen := make(map[entities.Connection]bool)
	for _, conn := range d.Connections {
		assert.False(t, seen[conn], "duplicate connection triple %+v", conn)
		seen[conn] = true
	}

	for _, conn := range d.Connections {
		reciprocal := entities.Connection{
			FromRoom:  conn.ToRoom,
			ToRoom:    conn.FromRoom,
			Direction: opposite[conn.Direction],
		}
		assert.True(t, seen[reciprocal], "missing reciprocal for %+v", conn)
	}

	// Exits mirror the outgoing connections of each room.
	for _, room := range d.Rooms {
		for _, exit := range room.Exits {
			assert.Equal(t, room.ID, exit.FromRoom)
			assert.True(t, seen[exit])
		}
	}
}

func TestGenerateDungeon_DoesNotMutateCatalog(t *testing.T) {
	shared := catalog.New()
	svc, err := NewOrchestrator(&Config{
		Catalog: shared,
		Rand:    rand.New(rand.NewSource(11)),
	})
	require.NoError(t, err)

	for range 10 {
		_, err := svc.GenerateDungeon(context.Background(), &GenerateDungeonInput{
			Level:      5,
			Theme:      "tower",
			Size:       "large",
			Difficulty: 6,
		})
		require.NoError(t, err)
		_, err = svc.GenerateEncounter(context.Background(), &GenerateEncounterInput{
			Difficulty: 4,
			Location:   "cave",
			PartySize:  3,
		})
		require.NoError(t, err)
	}

	assert.Equal(t, catalog.New(), shared, "catalog changed across generation calls")
}

func TestGenerateDungeon_EnemiesAreIndependentCopies(t *testing.T) {
	svc := newTestService(t, 5)

	out, err := svc.GenerateDungeon(context.Background(), &GenerateDungeonInput{
		Level:      5,
		Theme:      "crypt",
		Size:       "huge",
		Difficulty: 1,
	})
	require.NoError(t, err)

	// Difficulty 1 admits only level <= 2 monsters; goblins and skeletons
	// will repeat. Mutating one instance must not bleed into another.
	var monsters []*entities.Monster
	for i := range out.Dungeon.Encounters {
		for j := range out.Dungeon.Encounters[i].Enemies {
			monsters = append(monsters, &out.Dungeon.Encounters[i].Enemies[j])
		}
	}
	require.NotEmpty(t, monsters)

	monsters[0].HitPoints = -1
	monsters[0].LootTable[0] = "tampered"
	for _, m := range monsters[1:] {
		assert.NotEqual(t, -1, m.HitPoints)
		assert.NotEqual(t, "tampered", m.LootTable[0])
	}
}

func TestGenerateEncounter_ForestScenario(t *testing.T) {
	// Scenario: difficulty 1, forest, party of 4.
	svc := newTestService(t, 13)

	out, err := svc.GenerateEncounter(context.Background(), &GenerateEncounterInput{
		Difficulty: 1,
		Location:   "forest",
		PartySize:  4,
	})
	require.NoError(t, err)
	enc := out.Encounter

	assert.Equal(t, "forest", enc.Location)
	assert.Equal(t, 1, enc.Difficulty, "output difficulty is the requested one")
	assert.Equal(t, []string{"Rustling Leaves", "Dense Undergrowth"}, enc.Environment)

	require.NotEmpty(t, enc.Enemies)
	assert.LessOrEqual(t, len(enc.Enemies), 4)
	// Adjusted difficulty floors at 1, so only level <= 2 templates appear.
	for _, enemy := range enc.Enemies {
		assert.LessOrEqual(t, enemy.Level, 2)
	}
}

func TestGenerateEncounter_UnknownLocation(t *testing.T) {
	svc := newTestService(t, 3)

	out, err := svc.GenerateEncounter(context.Background(), &GenerateEncounterInput{
		Difficulty: 2,
		Location:   "volcano",
		PartySize:  1,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Unknown Area"}, out.Encounter.Environment)
	assert.LessOrEqual(t, len(out.Encounter.Enemies), 2)
}

func TestGenerateDungeon_DeterministicUnderPinnedSeed(t *testing.T) {
	input := &GenerateDungeonInput{Level: 2, Theme: "mansion", Size: "small", Difficulty: 2}

	first, err := newTestService(t, 77).GenerateDungeon(context.Background(), input)
	require.NoError(t, err)
	second, err := newTestService(t, 77).GenerateDungeon(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first.Dungeon, second.Dungeon)
}
