package dungeon

import (
	"github.com/dungeonforge/dungeonforge-api/internal/entities"
)

// Size classes. Unrecognized sizes use the default band.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
	SizeHuge   = "huge"
)

// GenerateDungeonInput contains dungeon generation parameters
type GenerateDungeonInput struct {
	// Level is the character/dungeon level; it drives room-type weighting
	// and the final room's type
	Level int

	// Theme flavors descriptions ("crypt", "tower", ...). Unknown themes
	// get generic text.
	Theme string

	// Size is the size class name; unknown sizes use the default band
	Size string

	// Difficulty scales encounters and treasure
	Difficulty int
}

// GenerateDungeonOutput contains the generated dungeon
type GenerateDungeonOutput struct {
	Dungeon *entities.Dungeon
}

// GenerateEncounterInput contains ad-hoc encounter parameters
type GenerateEncounterInput struct {
	Difficulty int

	// Location keys the environment flavor list ("forest", "cave", ...)
	Location string

	// PartySize scales both the effective difficulty and the enemy count
	PartySize int
}

// GenerateEncounterOutput contains the generated encounter
type GenerateEncounterOutput struct {
	Encounter *entities.RandomEncounter
}

// sizeBand is an inclusive room-count range
type sizeBand struct {
	min, max int
}

var sizeBands = map[string]sizeBand{
	SizeSmall:  {3, 6},
	SizeMedium: {7, 12},
	SizeLarge:  {13, 20},
	SizeHuge:   {21, 35},
}

// defaultSizeBand applies to unrecognized size strings
var defaultSizeBand = sizeBand{5, 10}
