package dungeon

import (
	"math/rand"

	"github.com/dungeonforge/dungeonforge-api/internal/entities"
)

const (
	encounterChance    = 0.6
	ambushChance       = 0.2
	altarChance        = 0.3
	treasureChance     = 0.3
	commonRarityChance = 0.7
	hiddenChance       = 0.4
	trappedChance      = 0.3
)

// roomContents returns the prop labels for a room. Chambers get an altar
// roughly a third of the time.
func (o *orchestrator) roomContents(rng *rand.Rand, roomType entities.RoomType) []string {
	contents := o.catalog.RoomContents(roomType)
	if roomType == entities.RoomTypeChamber && rng.Float64() < altarChance {
		contents = append(contents, "Altar")
	}
	return contents
}

// generateEncounters rolls an encounter for every chamber, boss, and
// treasury room. At most one encounter per room.
func (o *orchestrator) generateEncounters(rng *rand.Rand, rooms []entities.Room, difficulty int) []entities.Encounter {
	encounters := make([]entities.Encounter, 0)

	for _, room := range rooms {
		switch room.RoomType {
		case entities.RoomTypeChamber, entities.RoomTypeBoss, entities.RoomTypeTreasury:
			if rng.Float64() < encounterChance {
				encounters = append(encounters, o.createEncounter(rng, room.ID, difficulty))
			}
		}
	}

	return encounters
}

// createEncounter builds one encounter. The difficulty value is copied from
// the request, never recomputed per room.
func (o *orchestrator) createEncounter(rng *rand.Rand, roomID, difficulty int) entities.Encounter {
	maxEnemies := difficulty
	if maxEnemies > 3 {
		maxEnemies = 3
	}
	// Difficulty 0 or below would collapse the [1, min(3, difficulty)]
	// range; clamp so the encounter still has one enemy.
	if maxEnemies < 1 {
		maxEnemies = 1
	}
	enemyCount := 1 + rng.Intn(maxEnemies)

	enemies := make([]entities.Monster, 0, enemyCount)
	for range enemyCount {
		enemies = append(enemies, o.selectEnemy(rng, difficulty))
	}

	return entities.Encounter{
		RoomID:     roomID,
		Enemies:    enemies,
		Difficulty: difficulty,
		IsAmbush:   rng.Float64() < ambushChance,
	}
}

// generateTreasures guarantees rare treasure in treasury and boss rooms and
// rolls lesser treasure everywhere else. At most one treasure per room.
func (o *orchestrator) generateTreasures(rng *rand.Rand, rooms []entities.Room, difficulty int) []entities.Treasure {
	treasures := make([]entities.Treasure, 0)

	for _, room := range rooms {
		switch {
		case room.RoomType == entities.RoomTypeTreasury || room.RoomType == entities.RoomTypeBoss:
			treasures = append(treasures, o.createTreasure(rng, room.ID, difficulty, entities.RarityRare))
		case rng.Float64() < treasureChance:
			rarity := entities.RarityUncommon
			if rng.Float64() < commonRarityChance {
				rarity = entities.RarityCommon
			}
			treasures = append(treasures, o.createTreasure(rng, room.ID, difficulty, rarity))
		}
	}

	return treasures
}

// createTreasure draws 1-3 distinct items (capped at the pool size), scales
// the gold range by difficulty, and rolls the hidden and trap flags
func (o *orchestrator) createTreasure(rng *rand.Rand, roomID, difficulty int, rarity entities.Rarity) entities.Treasure {
	tmpl := o.catalog.TreasureTemplate(rarity)

	itemCount := 1 + rng.Intn(3)
	if itemCount > len(tmpl.Items) {
		itemCount = len(tmpl.Items)
	}
	items := make([]string, 0, itemCount)
	for _, idx := range rng.Perm(len(tmpl.Items))[:itemCount] {
		items = append(items, tmpl.Items[idx])
	}

	gold := (tmpl.GoldMin + rng.Intn(tmpl.GoldMax-tmpl.GoldMin+1)) * difficulty

	trapDifficulty := 0
	if rng.Float64() < trappedChance {
		trapDifficulty = 1 + rng.Intn(5)
	}

	return entities.Treasure{
		RoomID:         roomID,
		Items:          items,
		Gold:           gold,
		IsHidden:       rng.Float64() < hiddenChance,
		TrapDifficulty: trapDifficulty,
	}
}
