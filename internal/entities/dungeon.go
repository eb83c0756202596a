// Package entities provides core data structures for dungeonforge-api.
package entities

// RoomType tags a room with the template pool and population rules that apply
type RoomType string

// Room types
const (
	RoomTypeEntrance RoomType = "entrance"
	RoomTypeCorridor RoomType = "corridor"
	RoomTypeChamber  RoomType = "chamber"
	RoomTypeTreasury RoomType = "treasury"
	RoomTypeBoss     RoomType = "boss"
	RoomTypeTrap     RoomType = "trap"
)

// Rarity is a treasure tier controlling item pool and gold range
type Rarity string

// Treasure rarities
const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
)

// Direction is a compass label on a connection between adjacent rooms
type Direction string

// Compass directions
const (
	DirectionNorth     Direction = "north"
	DirectionSouth     Direction = "south"
	DirectionEast      Direction = "east"
	DirectionWest      Direction = "west"
	DirectionNortheast Direction = "northeast"
	DirectionNorthwest Direction = "northwest"
	DirectionSoutheast Direction = "southeast"
	DirectionSouthwest Direction = "southwest"
)

// Room is one placed room in a generated dungeon. IDs are sequential from 0
// (the entrance) and coordinates are unique within a dungeon, except under
// the documented placement fallback.
type Room struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	RoomType    RoomType     `json:"room_type"`
	Contents    []string     `json:"contents"`
	Exits       []Connection `json:"exits"`
	X           int          `json:"x"`
	Y           int          `json:"y"`
}

// Connection is a directed, derived edge between two adjacent rooms. Both
// directions of an adjacent pair are recorded as separate connections.
type Connection struct {
	FromRoom  int       `json:"from_room"`
	ToRoom    int       `json:"to_room"`
	Direction Direction `json:"direction"`
}

// Attack is one attack option on a monster stat block
type Attack struct {
	Name        string `json:"name"`
	Damage      string `json:"damage"`
	AttackBonus int    `json:"attack_bonus"`
	Range       string `json:"range"`
}

// Monster is a full monster stat block. Instances handed out by generation
// are independent copies of catalog templates, never shared references.
type Monster struct {
	Name             string   `json:"name"`
	MonsterType      string   `json:"monster_type"`
	Level            int      `json:"level"`
	HitPoints        int      `json:"hit_points"`
	ArmorClass       int      `json:"armor_class"`
	Attacks          []Attack `json:"attacks"`
	SpecialAbilities []string `json:"special_abilities"`
	LootTable        []string `json:"loot_table"`
}

// Clone returns a deep copy of the monster, safe for callers to mutate
func (m *Monster) Clone() Monster {
	out := *m
	out.Attacks = make([]Attack, len(m.Attacks))
	copy(out.Attacks, m.Attacks)
	out.SpecialAbilities = make([]string, len(m.SpecialAbilities))
	copy(out.SpecialAbilities, m.SpecialAbilities)
	out.LootTable = make([]string, len(m.LootTable))
	copy(out.LootTable, m.LootTable)
	return out
}

// Encounter is a monster group attached to one room. At most one per room.
type Encounter struct {
	RoomID     int       `json:"room_id"`
	Enemies    []Monster `json:"enemies"`
	Difficulty int       `json:"difficulty"`
	IsAmbush   bool      `json:"is_ambush"`
}

// Treasure is a loot cache attached to one room. At most one per room.
// TrapDifficulty 0 means untrapped.
type Treasure struct {
	RoomID         int      `json:"room_id"`
	Items          []string `json:"items"`
	Gold           int      `json:"gold"`
	IsHidden       bool     `json:"is_hidden"`
	TrapDifficulty int      `json:"trap_difficulty"`
}

// Dungeon is one complete generated result. It is owned by the caller for
// the duration of a request and never mutated after assembly.
type Dungeon struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Rooms       []Room       `json:"rooms"`
	Encounters  []Encounter  `json:"encounters"`
	Treasures   []Treasure   `json:"treasures"`
	Connections []Connection `json:"connections"`
}

// RandomEncounter is an ad-hoc encounter with no dungeon context
type RandomEncounter struct {
	Location    string    `json:"location"`
	Difficulty  int       `json:"difficulty"`
	Enemies     []Monster `json:"enemies"`
	Environment []string  `json:"environment"`
	IsAmbush    bool      `json:"is_ambush"`
}
