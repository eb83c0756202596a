package dungeon

import (
	"math/rand"
	"strings"

	"github.com/dungeonforge/dungeonforge-api/internal/entities"
	"github.com/dungeonforge/dungeonforge-api/internal/pkg/weighted"
)

const (
	// placementAttempts caps the near-anchor retry loop, bounding a whole
	// generation run at rooms × attempts coordinate checks.
	placementAttempts = 100

	// fallbackSpan is the half-width of the uniform fallback square.
	fallbackSpan = 10
)

// roomCount draws the room count uniformly from the size class's band
func (o *orchestrator) roomCount(rng *rand.Rand, size string) int {
	band, ok := sizeBands[strings.ToLower(size)]
	if !ok {
		band = defaultSizeBand
	}
	return band.min + rng.Intn(band.max-band.min+1)
}

// placeRooms produces count rooms with sequential IDs from 0 and unique
// coordinates (modulo the documented fallback). Room 0 is always the
// entrance at the origin; the last room is the boss room at level 3 and up,
// otherwise the treasury.
func (o *orchestrator) placeRooms(rng *rand.Rand, count int, theme string, level int) []entities.Room {
	rooms := make([]entities.Room, 0, count)
	rooms = append(rooms, o.createRoom(rng, 0, entities.RoomTypeEntrance, theme, 0, 0))

	for i := 1; i < count; i++ {
		roomType := o.selectRoomType(rng, i, count, level)
		x, y := o.findRoomPosition(rng, rooms)
		rooms = append(rooms, o.createRoom(rng, i, roomType, theme, x, y))
	}

	return rooms
}

// selectRoomType picks a room type conditioned on position and level
func (o *orchestrator) selectRoomType(rng *rand.Rand, roomIndex, totalRooms, level int) entities.RoomType {
	if roomIndex == totalRooms-1 {
		if level >= 3 {
			return entities.RoomTypeBoss
		}
		return entities.RoomTypeTreasury
	}

	trapWeight, bossWeight := 0.1, 0.1
	if level < 2 {
		// Low-level skew. Deliberately not renormalized: the remaining
		// weights keep their raw values and the draw spans their sum.
		trapWeight, bossWeight = 0.05, 0.0
	}

	choices := []weighted.Choice[entities.RoomType]{
		{Value: entities.RoomTypeCorridor, Weight: 0.4},
		{Value: entities.RoomTypeChamber, Weight: 0.3},
		{Value: entities.RoomTypeTrap, Weight: trapWeight},
		{Value: entities.RoomTypeTreasury, Weight: 0.1},
		{Value: entities.RoomTypeBoss, Weight: bossWeight},
	}

	roomType, ok := weighted.Pick(rng, choices)
	if !ok {
		return entities.RoomTypeChamber
	}
	return roomType
}

// findRoomPosition offsets a random existing room by one step per axis,
// retrying on collision. After placementAttempts failures the coordinate is
// drawn uniformly from the fallback square WITHOUT a collision recheck:
// duplicate coordinates are possible here and downstream tolerates them.
func (o *orchestrator) findRoomPosition(rng *rand.Rand, existing []entities.Room) (int, int) {
	for attempt := 0; attempt < placementAttempts; attempt++ {
		anchor := existing[rng.Intn(len(existing))]
		x := anchor.X + rng.Intn(3) - 1
		y := anchor.Y + rng.Intn(3) - 1

		if !occupied(existing, x, y) {
			return x, y
		}
	}

	return rng.Intn(2*fallbackSpan+1) - fallbackSpan, rng.Intn(2*fallbackSpan+1) - fallbackSpan
}

func occupied(rooms []entities.Room, x, y int) bool {
	for _, r := range rooms {
		if r.X == x && r.Y == y {
			return true
		}
	}
	return false
}

// createRoom draws name and description independently from the type's
// template pools, appends the theme suffix, and attaches base contents
func (o *orchestrator) createRoom(rng *rand.Rand, id int, roomType entities.RoomType, theme string, x, y int) entities.Room {
	tmpl := o.catalog.RoomTemplate(roomType)

	name := tmpl.Names[rng.Intn(len(tmpl.Names))]
	description := tmpl.Descriptions[rng.Intn(len(tmpl.Descriptions))] + o.catalog.ThemeSuffix(theme)

	return entities.Room{
		ID:          id,
		Name:        name,
		Description: description,
		RoomType:    roomType,
		Contents:    o.roomContents(rng, roomType),
		X:           x,
		Y:           y,
	}
}
